// Package history keeps an audit trail of toolbox invocations in SQLite.
package history

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gobart/internal/models"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schema string

// ErrNotFound is returned by Get for an unknown invocation id.
var ErrNotFound = errors.New("history: invocation not found")

const (
	// maxStderr bounds the stored stderr tail.
	maxStderr = 4096

	// timeLayout is fixed width so rows sort by time as text.
	timeLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

// Store persists invocation records.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the store at dsn, which is a file path or any
// DSN the sqlite driver accepts.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("history: open: %w", err)
	}

	// connection-level pragmas such as busy_timeout only reach the connection
	// that ran them, so all access goes through one connection
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("history: set WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("history: set busy timeout: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("history: create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Record stores one invocation. Recording the same id twice replaces the
// earlier row.
func (s *Store) Record(ctx context.Context, inv models.Invocation) error {
	argv, err := json.Marshal(inv.Argv)
	if err != nil {
		return fmt.Errorf("history: marshal argv: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO invocations (id, tool, argv, exit_code, duration, stderr, error, started_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID,
		inv.Tool,
		string(argv),
		inv.ExitCode,
		int64(inv.Duration),
		tail(inv.Stderr, maxStderr),
		inv.Error,
		inv.StartedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("history: record: %w", err)
	}
	return nil
}

// List returns the most recent invocations, newest first. A limit of zero
// or less returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]models.Invocation, error) {
	query := `SELECT id, tool, argv, exit_code, duration, stderr, error, started_at
	          FROM invocations ORDER BY started_at DESC, id`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("history: list: %w", err)
	}
	defer rows.Close()

	var out []models.Invocation
	for rows.Next() {
		inv, err := scanInvocation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: list rows: %w", err)
	}
	return out, nil
}

// Get returns a single invocation by id.
func (s *Store) Get(ctx context.Context, id string) (models.Invocation, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, tool, argv, exit_code, duration, stderr, error, started_at
		 FROM invocations WHERE id = ?`, id)
	inv, err := scanInvocation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Invocation{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return inv, err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanInvocation(row scanner) (models.Invocation, error) {
	var (
		inv       models.Invocation
		argvJSON  string
		duration  int64
		startedAt string
	)
	err := row.Scan(&inv.ID, &inv.Tool, &argvJSON, &inv.ExitCode, &duration, &inv.Stderr, &inv.Error, &startedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return inv, err
	}
	if err != nil {
		return inv, fmt.Errorf("history: scan: %w", err)
	}
	if err := json.Unmarshal([]byte(argvJSON), &inv.Argv); err != nil {
		return inv, fmt.Errorf("history: unmarshal argv: %w", err)
	}
	inv.Duration = time.Duration(duration)
	inv.StartedAt, err = time.Parse(timeLayout, startedAt)
	if err != nil {
		return inv, fmt.Errorf("history: parse time: %w", err)
	}
	return inv, nil
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
