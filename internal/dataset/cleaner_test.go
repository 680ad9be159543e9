// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paperscope/pkg/types"
)

func tableOf(rows ...map[string]string) *Table {
	t := &Table{Columns: []string{colTitle, colAuthors, colJournal, colDate, colAbstract}}
	for i, fields := range rows {
		t.Rows = append(t.Rows, Row{ID: string(rune('a' + i)), Fields: fields})
	}
	return t
}

func TestCleanDiscardReasons(t *testing.T) {
	table := tableOf(
		map[string]string{colTitle: "A", colDate: "2020-01-01"},
		map[string]string{colTitle: "", colDate: "2020-05-01"},
		map[string]string{colTitle: "B", colDate: "bad-date"},
	)

	records, report, err := Clean(table, types.CleanConfig{})
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, "A", records[0].Title)
	assert.Equal(t, 2020, records[0].PublishYear)

	assert.Equal(t, 3, report.RowsIn)
	assert.Equal(t, 1, report.DiscardedMissingTitle)
	assert.Equal(t, 1, report.DiscardedBadDate)
	assert.Equal(t, 1, report.RowsOut)
	assert.Equal(t, report.RowsIn, report.RowsOut+report.Discarded())
}

func TestCleanMissingDateColumn(t *testing.T) {
	table := tableOf(map[string]string{colTitle: "No date at all"})

	_, report, err := Clean(table, types.CleanConfig{})
	assert.ErrorIs(t, err, types.ErrEmptyDataset)
	assert.Equal(t, 1, report.DiscardedBadDate)
}

func TestCleanPublishTimeAlias(t *testing.T) {
	// The CORD-19 dump names the date column publish_time.
	table := tableOf(map[string]string{colTitle: "Aliased", colDateAlt: "2021-03-09"})

	records, _, err := Clean(table, types.CleanConfig{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 2021, records[0].PublishYear)
}

func TestCleanYearWindow(t *testing.T) {
	table := tableOf(
		map[string]string{colTitle: "Too early", colDate: "2015-06-01"},
		map[string]string{colTitle: "In range", colDate: "2020-06-01"},
		map[string]string{colTitle: "Too late", colDate: "2024-06-01"},
	)

	records, report, err := Clean(table, types.CleanConfig{MinYear: 2019, MaxYear: 2023})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "In range", records[0].Title)
	assert.Equal(t, 2, report.DiscardedOutOfRange)
}

func TestCleanDerivedFields(t *testing.T) {
	table := tableOf(map[string]string{
		colTitle:   "  Crowding and the shape of COVID-19 epidemics  ",
		colAuthors: "Rader, B.",
		colJournal: "Nat Med",
		colDate:    "2020-10-05",
	})

	records, _, err := Clean(table, types.CleanConfig{})
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "Crowding and the shape of COVID-19 epidemics", rec.Title)
	assert.Equal(t, 7, rec.TitleWordCount)
	assert.Equal(t, "Nat Med", rec.Journal)
	assert.Equal(t, "a", rec.ID, "record keeps the row identifier")
}

func TestCleanAllRowsInvalid(t *testing.T) {
	table := tableOf(
		map[string]string{colTitle: "", colDate: "2020-01-01"},
		map[string]string{colTitle: "B", colDate: "not a date"},
	)

	_, report, err := Clean(table, types.CleanConfig{})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrEmptyDataset)
	assert.Equal(t, 0, report.RowsOut)
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	WriteReport(types.CleaningReport{RowsIn: 10, DiscardedBadDate: 2, RowsOut: 8}, &buf)
	out := buf.String()
	assert.Contains(t, out, "rows in:              10")
	assert.Contains(t, out, "unparseable date:     2")
	assert.Contains(t, out, "rows out:             8")
}
