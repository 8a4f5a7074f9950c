package storage

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists the blob as the single row of a one-row table in a
// SQLite database file, using the pure-Go driver (no cgo). It is an
// alternate to FileStore for hosts that prefer keeping calculator session
// state alongside other SQLite-based tooling state.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if necessary) a SQLite database at path and
// ensures the blob table exists.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite state db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS session_blob (
		id INTEGER PRIMARY KEY CHECK (id = 0),
		data BLOB NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("create session_blob table: %w", err)
	}
	return nil
}

// Close closes the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Read returns the blob in row 0, or an empty slice if no row exists yet.
func (s *SQLiteStore) Read() ([]byte, error) {
	var data []byte
	err := s.db.QueryRow("SELECT data FROM session_blob WHERE id = 0").Scan(&data)
	if err == sql.ErrNoRows {
		return []byte{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session blob: %w", err)
	}
	return data, nil
}

// Write atomically replaces row 0's blob inside a transaction.
func (s *SQLiteStore) Write(data []byte) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin write transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO session_blob (id, data) VALUES (0, ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data`, data)
	if err != nil {
		return fmt.Errorf("write session blob: %w", err)
	}

	return tx.Commit()
}
