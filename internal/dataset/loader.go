// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset loads publication metadata from delimited files and
// cleans the raw rows into validated records.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/pdiddy/paperscope/pkg/types"
)

// Row is one raw row from the source file: a synthetic identifier plus
// a field-to-value map keyed by header name.
type Row struct {
	ID     string
	Fields map[string]string
}

// Get returns the trimmed value for a column, or "" when absent.
func (r Row) Get(column string) string {
	return strings.TrimSpace(r.Fields[column])
}

// Table is the raw tabular structure produced by Load. Row order
// matches the source file.
type Table struct {
	Columns []string
	Rows    []Row
}

// Load reads a delimited file into a Table. The first record is the
// header; column order is irrelevant, and rows may have fewer fields
// than the header. A missing file or text that does not parse as CSV
// returns an error wrapping types.ErrDataSource.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", types.ErrDataSource, path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading header of %s: %v", types.ErrDataSource, path, err)
	}

	columns := make([]string, len(header))
	for i, c := range header {
		columns[i] = strings.TrimSpace(c)
	}

	table := &Table{Columns: columns}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: parsing %s: %v", types.ErrDataSource, path, err)
		}

		fields := make(map[string]string, len(columns))
		for i, col := range columns {
			if i < len(record) {
				fields[col] = record[i]
			}
		}
		table.Rows = append(table.Rows, Row{
			ID:     uuid.NewString(),
			Fields: fields,
		})
	}

	return table, nil
}
