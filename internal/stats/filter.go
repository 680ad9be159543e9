// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package stats

import (
	"fmt"

	"github.com/pdiddy/paperscope/pkg/types"
)

// Filter restricts a record set to a year range and/or journal subset
// before aggregation. Zero year bounds and an empty journal list mean
// unrestricted.
type Filter struct {
	// FromYear is the inclusive lower year bound. Zero disables it.
	FromYear int

	// ToYear is the inclusive upper year bound. Zero disables it.
	ToYear int

	// Journals limits records to these journal names when non-empty.
	Journals []string
}

// IsZero reports whether the filter restricts nothing.
func (f Filter) IsZero() bool {
	return f.FromYear == 0 && f.ToYear == 0 && len(f.Journals) == 0
}

// Validate checks the filter bounds. An inverted year range returns an
// error wrapping types.ErrInvalidArgument.
func (f Filter) Validate() error {
	if f.FromYear > 0 && f.ToYear > 0 && f.FromYear > f.ToYear {
		return fmt.Errorf("%w: year range start %d is after end %d",
			types.ErrInvalidArgument, f.FromYear, f.ToYear)
	}
	return nil
}

// Apply returns the records matching the filter, preserving order.
// The input slice is never modified.
func (f Filter) Apply(records []types.Record) []types.Record {
	if f.IsZero() {
		return records
	}

	var wanted map[string]struct{}
	if len(f.Journals) > 0 {
		wanted = make(map[string]struct{}, len(f.Journals))
		for _, j := range f.Journals {
			wanted[j] = struct{}{}
		}
	}

	var out []types.Record
	for _, r := range records {
		if f.FromYear > 0 && r.PublishYear < f.FromYear {
			continue
		}
		if f.ToYear > 0 && r.PublishYear > f.ToYear {
			continue
		}
		if wanted != nil {
			if _, ok := wanted[r.Journal]; !ok {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

// JournalNames returns every distinct journal in first-occurrence
// order, for populating the dashboard's journal selector.
func JournalNames(records []types.Record) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, r := range records {
		if r.Journal == "" {
			continue
		}
		if _, ok := seen[r.Journal]; ok {
			continue
		}
		seen[r.Journal] = struct{}{}
		names = append(names, r.Journal)
	}
	return names
}
