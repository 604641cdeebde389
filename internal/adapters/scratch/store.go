// Package scratch keeps the dashboard's device-local key/value storage in a
// sqlite file.
package scratch

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
	"weatherdash.app/internal/ports"
	apperrors "weatherdash.app/pkg/errors"
)

// SQLiteStore implements the ScratchStore port
type SQLiteStore struct {
	db *sql.DB
}

var _ ports.ScratchStore = (*SQLiteStore)(nil)

// Open opens (creating if needed) the scratch database at path and ensures
// its schema exists.
func Open(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, apperrors.NewValidationError("scratch store path is required")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, apperrors.NewDatabaseError("failed to create scratch directory", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, apperrors.NewDatabaseError("failed to open scratch store", err)
	}
	// a single connection keeps ":memory:" databases shared
	db.SetMaxOpenConns(1)

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func ensureSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS scratch (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return apperrors.NewDatabaseError("failed to create scratch table", err)
	}
	return nil
}

// Get returns the stored value and whether the key exists
func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM scratch WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, apperrors.NewDatabaseError(fmt.Sprintf("failed to read scratch key %q", key), err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value
func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO scratch (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	if err != nil {
		return apperrors.NewDatabaseError(fmt.Sprintf("failed to write scratch key %q", key), err)
	}
	return nil
}

// Close releases the underlying database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
