// internal/persist/persist.go

// Package persist encodes game snapshots into checksummed save files and
// keeps them in a durable Store: a directory, SQLite, Redis or Postgres.
package persist

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
)

var (
	// ErrPersistence wraps I/O and backend failures.
	ErrPersistence = errors.New("persistence failure")
	// ErrNotFound is returned when no save exists under a key.
	ErrNotFound = errors.New("save not found")
	// ErrCorrupt is returned for saves that fail decoding or validation.
	ErrCorrupt = errors.New("save is corrupt")
)

// Store keeps encoded saves by key. Implementations must make Put atomic:
// a reader sees either the previous save or the new one, never a mix.
type Store interface {
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	Close() error
}

func entryOrDefault(log *logrus.Entry) *logrus.Entry {
	if log == nil {
		return logrus.NewEntry(logrus.StandardLogger())
	}
	return log
}
