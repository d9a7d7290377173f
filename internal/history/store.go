// Package history persists run summaries to a local sqlite database so
// past pipeline runs can be inspected after the fact.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const createRunsTable = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	source_url TEXT NOT NULL,
	output_path TEXT NOT NULL,
	fetched INTEGER NOT NULL,
	loaded INTEGER NOT NULL,
	status TEXT NOT NULL,
	error TEXT,
	started_at DATETIME NOT NULL,
	finished_at DATETIME NOT NULL
);
`

// Run is one recorded pipeline run.
type Run struct {
	ID         string
	SourceURL  string
	OutputPath string
	Fetched    int
	Loaded     int
	Status     string
	Error      string
	StartedAt  time.Time
	FinishedAt time.Time
}

// Store wraps the sqlite run-history database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the run-history database at the given path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if _, err := db.Exec(createRunsTable); err != nil {
		db.Close()

		return nil, fmt.Errorf("failed to create runs table: %w", err)
	}

	return &Store{db: db}, nil
}

// Record inserts a completed run.
func (s *Store) Record(run Run) error {
	_, err := s.db.Exec(
		`INSERT INTO runs (id, source_url, output_path, fetched, loaded, status, error, started_at, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.SourceURL,
		run.OutputPath,
		run.Fetched,
		run.Loaded,
		run.Status,
		run.Error,
		run.StartedAt.UTC(),
		run.FinishedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}

	return nil
}

// Recent returns the most recent runs, newest first.
func (s *Store) Recent(limit int) ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT id, source_url, output_path, fetched, loaded, status, error, started_at, finished_at
		 FROM runs ORDER BY started_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run

	for rows.Next() {
		var run Run

		var errText sql.NullString

		if err := rows.Scan(
			&run.ID,
			&run.SourceURL,
			&run.OutputPath,
			&run.Fetched,
			&run.Loaded,
			&run.Status,
			&errText,
			&run.StartedAt,
			&run.FinishedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}

		run.Error = errText.String
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}

	return runs, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
