// internal/persist/sqlite.go
package persist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS game_saves (
	key        TEXT PRIMARY KEY,
	data       BLOB NOT NULL,
	updated_at INTEGER NOT NULL
)`

// SQLiteStore keeps saves in a single SQLite table.
type SQLiteStore struct {
	db  *sql.DB
	log *logrus.Entry
}

// OpenSQLite opens (or creates) the database at path and ensures the table
// exists. Use ":memory:" for a throwaway database.
func OpenSQLite(ctx context.Context, path string, log *logrus.Entry) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open sqlite %s: %v", ErrPersistence, path, err)
	}
	// One connection keeps ":memory:" databases alive and serialises writers.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: create table: %v", ErrPersistence, err)
	}
	return &SQLiteStore{db: db, log: entryOrDefault(log).WithField("store", "sqlite")}, nil
}

// Put upserts a save.
func (s *SQLiteStore) Put(ctx context.Context, key string, data []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO game_saves (key, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		key, data, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("%w: sqlite put %s: %v", ErrPersistence, key, err)
	}
	s.log.WithField("key", key).Debugf("Stored %d bytes.", len(data))
	return nil
}

// Get fetches a save.
func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM game_saves WHERE key = ?`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: sqlite get %s: %v", ErrPersistence, key, err)
	}
	return data, nil
}

// Delete removes a save if present.
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM game_saves WHERE key = ?`, key); err != nil {
		return fmt.Errorf("%w: sqlite delete %s: %v", ErrPersistence, key, err)
	}
	return nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error { return s.db.Close() }
