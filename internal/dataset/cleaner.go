// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"fmt"
	"io"
	"strings"

	"github.com/araddon/dateparse"

	"github.com/pdiddy/paperscope/pkg/types"
)

// Source column names. The date column appears as publish_date in some
// exports and publish_time in others (the CORD-19 dump uses the latter).
const (
	colTitle    = "title"
	colAuthors  = "authors"
	colJournal  = "journal"
	colDate     = "publish_date"
	colDateAlt  = "publish_time"
	colAbstract = "abstract"
)

// Clean validates every row of a Table and returns the surviving
// records in source order. A row is dropped when its title is empty or
// its publish date does not parse; the optional year window in cfg
// drops records published outside it. The report counts each discard
// reason. Clean fails only when no rows survive, with an error
// wrapping types.ErrEmptyDataset.
func Clean(table *Table, cfg types.CleanConfig) ([]types.Record, types.CleaningReport, error) {
	var (
		records []types.Record
		report  types.CleaningReport
	)
	report.RowsIn = len(table.Rows)

	for _, row := range table.Rows {
		title := row.Get(colTitle)
		if title == "" {
			report.DiscardedMissingTitle++
			continue
		}

		rawDate := row.Get(colDate)
		if rawDate == "" {
			rawDate = row.Get(colDateAlt)
		}
		if rawDate == "" {
			report.DiscardedBadDate++
			continue
		}
		date, err := dateparse.ParseAny(rawDate)
		if err != nil {
			report.DiscardedBadDate++
			continue
		}

		year := date.Year()
		if (cfg.MinYear > 0 && year < cfg.MinYear) || (cfg.MaxYear > 0 && year > cfg.MaxYear) {
			report.DiscardedOutOfRange++
			continue
		}

		records = append(records, types.Record{
			ID:             row.ID,
			Title:          title,
			Authors:        row.Get(colAuthors),
			Journal:        row.Get(colJournal),
			PublishDate:    date,
			PublishYear:    year,
			Abstract:       row.Get(colAbstract),
			TitleWordCount: len(strings.Fields(title)),
		})
	}

	report.RowsOut = len(records)
	if report.RowsOut == 0 {
		return nil, report, fmt.Errorf("%w: %d rows read, %d discarded",
			types.ErrEmptyDataset, report.RowsIn, report.Discarded())
	}
	return records, report, nil
}

// WriteReport prints the cleaning report as a short summary block.
func WriteReport(report types.CleaningReport, w io.Writer) {
	fmt.Fprintf(w, "rows in:              %d\n", report.RowsIn)
	fmt.Fprintf(w, "missing title:        %d\n", report.DiscardedMissingTitle)
	fmt.Fprintf(w, "unparseable date:     %d\n", report.DiscardedBadDate)
	fmt.Fprintf(w, "outside year window:  %d\n", report.DiscardedOutOfRange)
	fmt.Fprintf(w, "rows out:             %d\n", report.RowsOut)
}
