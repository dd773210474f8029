// Package storage keeps the log of finished runs for one session.
// Uses the pure-Go modernc.org/sqlite driver with a private in-memory
// database, so nothing outlives the session.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Run is a single finished run.
type Run struct {
	ID      int64
	Score   int
	Frames  int
	Cause   string
	EndedAt time.Time
}

// Summary aggregates every run in the log.
type Summary struct {
	Runs  int
	Best  int
	Total int
}

// Average is the mean score, or 0 with no runs.
func (s Summary) Average() float64 {
	if s.Runs == 0 {
		return 0
	}
	return float64(s.Total) / float64(s.Runs)
}

// RunLog manages the in-memory database of finished runs.
type RunLog struct {
	db *sql.DB
}

// OpenRunLog creates an empty run log.
func OpenRunLog() (*RunLog, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	log := &RunLog{db: db}
	if err := log.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return log, nil
}

func (l *RunLog) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			frames INTEGER NOT NULL DEFAULT 0,
			cause TEXT NOT NULL DEFAULT '',
			ended_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_score ON runs(score DESC);
	`
	_, err := l.db.Exec(schema)
	return err
}

// Close releases the database. The log is gone afterwards.
func (l *RunLog) Close() error {
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// Record appends a finished run and returns its ID.
// A zero EndedAt is stamped with the current time.
func (l *RunLog) Record(ctx context.Context, r Run) (int64, error) {
	if r.EndedAt.IsZero() {
		r.EndedAt = time.Now()
	}
	res, err := l.db.ExecContext(ctx,
		"INSERT INTO runs (score, frames, cause, ended_at) VALUES (?, ?, ?, ?)",
		r.Score, r.Frames, r.Cause, r.EndedAt.UnixNano(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// Recent returns up to limit runs, newest first.
func (l *RunLog) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := l.db.QueryContext(ctx,
		`SELECT id, score, frames, cause, ended_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var ended int64
		if err := rows.Scan(&r.ID, &r.Score, &r.Frames, &r.Cause, &ended); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.EndedAt = time.Unix(0, ended)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// Summary aggregates all recorded runs.
func (l *RunLog) Summary(ctx context.Context) (Summary, error) {
	var s Summary
	err := l.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(SUM(score), 0) FROM runs`,
	).Scan(&s.Runs, &s.Best, &s.Total)
	if err != nil {
		return Summary{}, fmt.Errorf("storage: cannot summarize runs: %w", err)
	}
	return s, nil
}
