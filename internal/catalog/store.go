// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists a cleaned dataset snapshot in SQLite so
// repeated analyze and dashboard runs can skip re-reading and
// re-cleaning the source CSV.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/paperscope/pkg/types"
)

const dbFile = "paperscope.db"

// Store manages the catalog SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the catalog database at cfg.Dir/paperscope.db,
// creating the schema if needed.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "catalog"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening catalog database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS publications (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL,
			title TEXT NOT NULL,
			authors TEXT,
			journal TEXT,
			publish_date TEXT NOT NULL,
			publish_year INTEGER NOT NULL,
			abstract TEXT,
			title_words INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_publications_year ON publications(publish_year)`,
		`CREATE INDEX IF NOT EXISTS idx_publications_journal ON publications(journal)`,
		`CREATE TABLE IF NOT EXISTS snapshot (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			source TEXT NOT NULL,
			created_at TEXT NOT NULL,
			rows_in INTEGER NOT NULL,
			discarded_missing_title INTEGER NOT NULL,
			discarded_bad_date INTEGER NOT NULL,
			discarded_out_of_range INTEGER NOT NULL,
			rows_out INTEGER NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save replaces the stored snapshot with the given dataset and its
// cleaning report. The previous snapshot, if any, is dropped in the
// same transaction.
func (s *Store) Save(ctx context.Context, source string, records []types.Record, report types.CleaningReport) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"publications", "snapshot"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO publications (id, title, authors, journal, publish_date, publish_year, abstract, title_words)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.ExecContext(ctx,
			r.ID, r.Title, r.Authors, r.Journal,
			r.PublishDate.Format(time.RFC3339), r.PublishYear,
			r.Abstract, r.TitleWordCount,
		)
		if err != nil {
			return fmt.Errorf("inserting record %s: %w", r.ID, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO snapshot (id, source, created_at, rows_in, discarded_missing_title,
			discarded_bad_date, discarded_out_of_range, rows_out)
		 VALUES (1, ?, ?, ?, ?, ?, ?, ?)`,
		source, time.Now().UTC().Format(time.RFC3339),
		report.RowsIn, report.DiscardedMissingTitle, report.DiscardedBadDate,
		report.DiscardedOutOfRange, report.RowsOut,
	)
	if err != nil {
		return fmt.Errorf("recording snapshot: %w", err)
	}

	return tx.Commit()
}

// Load rebuilds the record slice from the stored snapshot, in the
// original dataset order. An empty catalog returns an error wrapping
// types.ErrDataSource.
func (s *Store) Load(ctx context.Context) ([]types.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, authors, journal, publish_date, publish_year, abstract, title_words
		 FROM publications ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var records []types.Record
	for rows.Next() {
		var r types.Record
		var dateStr string
		if err := rows.Scan(&r.ID, &r.Title, &r.Authors, &r.Journal,
			&dateStr, &r.PublishYear, &r.Abstract, &r.TitleWordCount); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		if r.PublishDate, err = time.Parse(time.RFC3339, dateStr); err != nil {
			return nil, fmt.Errorf("parsing stored date %q: %w", dateStr, err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading catalog rows: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: catalog has no snapshot; run 'paperscope catalog build' first", types.ErrDataSource)
	}
	return records, nil
}

// SnapshotInfo describes the stored snapshot.
type SnapshotInfo struct {
	Source    string               `json:"source" yaml:"source"`
	CreatedAt time.Time            `json:"created_at" yaml:"created_at"`
	Records   int                  `json:"records" yaml:"records"`
	Cleaning  types.CleaningReport `json:"cleaning" yaml:"cleaning"`
}

// Info returns metadata about the stored snapshot, or an error
// wrapping types.ErrDataSource when the catalog is empty.
func (s *Store) Info(ctx context.Context) (SnapshotInfo, error) {
	var (
		info      SnapshotInfo
		createdAt string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT source, created_at, rows_in, discarded_missing_title,
			discarded_bad_date, discarded_out_of_range, rows_out
		 FROM snapshot WHERE id = 1`).
		Scan(&info.Source, &createdAt,
			&info.Cleaning.RowsIn, &info.Cleaning.DiscardedMissingTitle,
			&info.Cleaning.DiscardedBadDate, &info.Cleaning.DiscardedOutOfRange,
			&info.Cleaning.RowsOut)
	if err == sql.ErrNoRows {
		return info, fmt.Errorf("%w: catalog has no snapshot", types.ErrDataSource)
	}
	if err != nil {
		return info, fmt.Errorf("querying snapshot: %w", err)
	}

	if info.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return info, fmt.Errorf("parsing snapshot timestamp: %w", err)
	}

	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM publications`).Scan(&info.Records); err != nil {
		return info, fmt.Errorf("counting publications: %w", err)
	}
	return info, nil
}
