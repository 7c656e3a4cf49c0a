// Package history archives match runs locally in SQLite so past results can
// be listed, re-exported and searched after the dashboard session ends.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/matchllm/matchctl/internal/match"
)

// Run is one archived match run: the raw response plus derived counters for
// cheap listing.
type Run struct {
	ID        string                      `json:"id"`
	Consulta  string                      `json:"consulta"`
	Produto   string                      `json:"produto"`
	Response  match.MatchMultipleResponse `json:"response"`
	Summary   match.ExecutiveSummary      `json:"summary"`
	CreatedAt time.Time                   `json:"created_at"`
}

// Store persists runs in SQLite.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the database at dbPath and initializes the
// schema. Parent directories are created if they do not exist.
func NewStore(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &Store{db: db}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		consulta TEXT,
		produto TEXT,
		response TEXT NOT NULL,
		total INTEGER NOT NULL,
		atende INTEGER NOT NULL,
		nao_atende INTEGER NOT NULL,
		duvida INTEGER NOT NULL,
		score REAL NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
	`
	_, err := db.Exec(schema)
	return err
}

// Save archives a run. A missing ID is assigned; the summary is derived from
// the response when empty.
func (s *Store) Save(ctx context.Context, run *Run) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.Summary.Total == 0 && run.Summary.Recomendacao == "" {
		run.Summary = match.Summarize(run.Response.Results)
	}
	responseJSON, err := json.Marshal(run.Response)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}
	run.CreatedAt = time.Now()

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (id, consulta, produto, response, total, atende, nao_atende, duvida, score, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Consulta, run.Produto, string(responseJSON),
		run.Summary.Total, run.Summary.Atende, run.Summary.NaoAtende, run.Summary.Duvida,
		run.Summary.Score, run.CreatedAt,
	)
	return err
}

// Get returns an archived run by ID.
func (s *Store) Get(ctx context.Context, id string) (*Run, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, consulta, produto, response, created_at FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run not found: %s", id)
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(row rowScanner) (*Run, error) {
	var run Run
	var responseJSON string
	if err := row.Scan(&run.ID, &run.Consulta, &run.Produto, &responseJSON, &run.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(responseJSON), &run.Response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	run.Summary = match.Summarize(run.Response.Results)
	return &run, nil
}

// List returns runs newest first, with offset and limit.
func (s *Store) List(ctx context.Context, offset, limit int) ([]*Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, consulta, produto, response, created_at
		 FROM runs ORDER BY created_at DESC, id LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Delete removes a run by ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	return err
}

// Count returns the total number of archived runs.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs`).Scan(&count)
	return count, err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
