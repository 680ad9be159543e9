// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "errors"

// Sentinel errors for the pipeline. Callers classify failures with
// errors.Is; stage code wraps these with fmt.Errorf("...: %w", ...).
var (
	// ErrDataSource indicates the input file is missing or not parseable
	// as delimited text. Fatal at startup.
	ErrDataSource = errors.New("data source unreadable")

	// ErrEmptyDataset indicates cleaning removed every row. Fatal at
	// startup: there is nothing to aggregate or display.
	ErrEmptyDataset = errors.New("no valid records after cleaning")

	// ErrInvalidArgument indicates a bad aggregation or filter parameter
	// (non-positive top-N, inverted year range). Recoverable: surfaced
	// inline to the user without ending the session.
	ErrInvalidArgument = errors.New("invalid argument")
)
