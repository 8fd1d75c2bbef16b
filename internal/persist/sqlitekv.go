package persist

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"platechat/internal/domain"
	"platechat/internal/logger"
)

//go:embed schema.sql
var schemaSQL string

// Compile-time interface check.
var _ domain.KeyValueStore = (*SQLiteKV)(nil)

// SQLiteKV is a single-table key-value store backed by SQLite. The schema
// is applied on open, so a fresh path just works.
type SQLiteKV struct {
	conn *sql.DB
	log  *logger.Logger
}

// NewSQLiteKV opens (or creates) the database at the given path.
func NewSQLiteKV(path string, log *logger.Logger) (*SQLiteKV, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sqlitekv: open %s: %w", path, err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlitekv: apply schema: %w", err)
	}
	return &SQLiteKV{conn: conn, log: log}, nil
}

// Get reads a key. Missing keys return domain.ErrNotFound.
func (s *SQLiteKV) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.conn.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("sqlitekv: get %s: %w", key, err)
	}
	return value, nil
}

// Set upserts a key.
func (s *SQLiteKV) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("sqlitekv: set %s: %w", key, err)
	}
	s.log.Debug("sqlitekv: wrote %s (%d bytes)", key, len(value))
	return nil
}

// Delete removes a key. Deleting a missing key is not an error.
func (s *SQLiteKV) Delete(ctx context.Context, key string) error {
	if _, err := s.conn.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("sqlitekv: delete %s: %w", key, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteKV) Close() error {
	return s.conn.Close()
}
