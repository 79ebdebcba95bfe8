// internal/persist/postgres.go
package persist

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

const postgresSchema = `CREATE TABLE IF NOT EXISTS game_saves (
	key        TEXT PRIMARY KEY,
	data       BYTEA NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresStore keeps saves in a Postgres table through a pgx pool.
type PostgresStore struct {
	pool *pgxpool.Pool
	log  *logrus.Entry
}

// OpenPostgres connects to dsn and ensures the table exists.
func OpenPostgres(ctx context.Context, dsn string, log *logrus.Entry) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: postgres connect: %v", ErrPersistence, err)
	}
	st, err := NewPostgresStore(ctx, pool, log)
	if err != nil {
		pool.Close()
		return nil, err
	}
	return st, nil
}

// NewPostgresStore wraps an existing pool and ensures the table exists.
func NewPostgresStore(ctx context.Context, pool *pgxpool.Pool, log *logrus.Entry) (*PostgresStore, error) {
	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		return nil, fmt.Errorf("%w: create table: %v", ErrPersistence, err)
	}
	return &PostgresStore{pool: pool, log: entryOrDefault(log).WithField("store", "postgres")}, nil
}

// Put upserts a save.
func (p *PostgresStore) Put(ctx context.Context, key string, data []byte) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO game_saves (key, data, updated_at) VALUES ($1, $2, now())
		 ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		key, data)
	if err != nil {
		return fmt.Errorf("%w: postgres put %s: %v", ErrPersistence, key, err)
	}
	p.log.WithField("key", key).Debugf("Stored %d bytes.", len(data))
	return nil
}

// Get fetches a save.
func (p *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := p.pool.QueryRow(ctx, `SELECT data FROM game_saves WHERE key = $1`, key).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: postgres get %s: %v", ErrPersistence, key, err)
	}
	return data, nil
}

// Delete removes a save if present.
func (p *PostgresStore) Delete(ctx context.Context, key string) error {
	if _, err := p.pool.Exec(ctx, `DELETE FROM game_saves WHERE key = $1`, key); err != nil {
		return fmt.Errorf("%w: postgres delete %s: %v", ErrPersistence, key, err)
	}
	return nil
}

// Close closes the pool.
func (p *PostgresStore) Close() error {
	p.pool.Close()
	return nil
}
