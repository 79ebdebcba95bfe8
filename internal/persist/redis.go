// internal/persist/redis.go
package persist

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// DefaultRedisPrefix namespaces save keys.
const DefaultRedisPrefix = "unoflip:save:"

// RedisStore keeps each save as a plain string value. SET replaces the value
// atomically.
type RedisStore struct {
	rdb    redis.UniversalClient
	prefix string
	log    *logrus.Entry
}

// NewRedisStore pings rdb and wraps it. An empty prefix selects
// DefaultRedisPrefix.
func NewRedisStore(ctx context.Context, rdb redis.UniversalClient, prefix string, log *logrus.Entry) (*RedisStore, error) {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%w: redis ping: %v", ErrPersistence, err)
	}
	return &RedisStore{rdb: rdb, prefix: prefix, log: entryOrDefault(log).WithField("store", "redis")}, nil
}

// Put stores a save without expiry.
func (r *RedisStore) Put(ctx context.Context, key string, data []byte) error {
	if err := r.rdb.Set(ctx, r.prefix+key, data, 0).Err(); err != nil {
		return fmt.Errorf("%w: redis set %s: %v", ErrPersistence, key, err)
	}
	r.log.WithField("key", key).Debugf("Stored %d bytes.", len(data))
	return nil
}

// Get fetches a save.
func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.rdb.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: redis get %s: %v", ErrPersistence, key, err)
	}
	return data, nil
}

// Delete removes a save if present.
func (r *RedisStore) Delete(ctx context.Context, key string) error {
	if err := r.rdb.Del(ctx, r.prefix+key).Err(); err != nil {
		return fmt.Errorf("%w: redis del %s: %v", ErrPersistence, key, err)
	}
	return nil
}

// Close closes the underlying client.
func (r *RedisStore) Close() error { return r.rdb.Close() }
