// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Record is one cleaned publication entry. Every Record has a non-empty
// title and a parseable publication date; rows that fail either check
// never become Records.
type Record struct {
	// ID is a synthetic identifier assigned when the raw row is loaded.
	ID string `json:"id" yaml:"id"`

	// Title is the publication title.
	Title string `json:"title" yaml:"title"`

	// Authors is the author list as it appears in the source file.
	Authors string `json:"authors" yaml:"authors"`

	// Journal is the publishing journal. May be empty; journal-level
	// aggregations skip records without one.
	Journal string `json:"journal" yaml:"journal"`

	// PublishDate is the parsed publication date.
	PublishDate time.Time `json:"publish_date" yaml:"publish_date"`

	// PublishYear is the calendar year derived from PublishDate.
	PublishYear int `json:"publish_year" yaml:"publish_year"`

	// Abstract is the publication abstract. May be empty.
	Abstract string `json:"abstract" yaml:"abstract"`

	// TitleWordCount is the number of whitespace-separated words in Title.
	TitleWordCount int `json:"title_word_count" yaml:"title_word_count"`
}

// CleaningReport holds per-reason discard counts from a cleaning run.
// The counts are informational data-quality output, not an error
// condition.
type CleaningReport struct {
	// RowsIn is the number of raw rows read from the source.
	RowsIn int `json:"rows_in" yaml:"rows_in"`

	// DiscardedMissingTitle counts rows dropped for an empty title.
	DiscardedMissingTitle int `json:"discarded_missing_title" yaml:"discarded_missing_title"`

	// DiscardedBadDate counts rows dropped because the publish date
	// could not be parsed.
	DiscardedBadDate int `json:"discarded_bad_date" yaml:"discarded_bad_date"`

	// DiscardedOutOfRange counts rows dropped by the configured year
	// window.
	DiscardedOutOfRange int `json:"discarded_out_of_range" yaml:"discarded_out_of_range"`

	// RowsOut is the number of records that survived cleaning.
	RowsOut int `json:"rows_out" yaml:"rows_out"`
}

// Discarded returns the total number of dropped rows.
func (r CleaningReport) Discarded() int {
	return r.DiscardedMissingTitle + r.DiscardedBadDate + r.DiscardedOutOfRange
}
