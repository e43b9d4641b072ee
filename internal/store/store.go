// Package store implements the persistence collaborator over SQLite:
// student records as rows, schedules and session reports as JSON
// documents.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps the database handle behind the repositories.
type Store struct {
	db *sql.DB
}

// Open connects to the SQLite database at dsn, applies recommended
// pragmas, and creates any missing tables.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// applyPragmas configures SQLite for single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// migrate creates the schema if it does not exist yet.
func migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS students (
			id             TEXT PRIMARY KEY,
			tutor_id       TEXT NOT NULL,
			name           TEXT NOT NULL,
			surname        TEXT NOT NULL,
			level          TEXT NOT NULL,
			current_lesson TEXT NOT NULL DEFAULT '',
			absence_count  INTEGER NOT NULL DEFAULT 0,
			progress       INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_students_tutor ON students(tutor_id)`,
		`CREATE TABLE IF NOT EXISTS schedules (
			tutor_id   TEXT PRIMARY KEY,
			doc        TEXT NOT NULL,
			updated_at TEXT NOT NULL DEFAULT (datetime('now'))
		)`,
		`CREATE TABLE IF NOT EXISTS session_records (
			id         TEXT PRIMARY KEY,
			tutor_id   TEXT NOT NULL,
			session_id TEXT NOT NULL,
			date       TEXT NOT NULL,
			doc        TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_session_records_tutor ON session_records(tutor_id)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. PHONICS_DB environment variable
// 2. $XDG_DATA_HOME/phonics/phonics.db
// 3. ~/.local/share/phonics/phonics.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("PHONICS_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "phonics", "phonics.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
