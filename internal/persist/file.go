// internal/persist/file.go
package persist

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// FileStore keeps one file per save. Relative keys resolve inside Dir;
// absolute keys are used as-is.
type FileStore struct {
	Dir string
	log *logrus.Entry
}

// NewFileStore creates dir if needed.
func NewFileStore(dir string, log *logrus.Entry) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create save dir %s: %v", ErrPersistence, dir, err)
	}
	return &FileStore{Dir: dir, log: entryOrDefault(log).WithField("store", "file")}, nil
}

func (f *FileStore) path(key string) string {
	if filepath.IsAbs(key) {
		return key
	}
	return filepath.Join(f.Dir, key)
}

// Put writes to a temporary file in the target directory and renames it
// into place.
func (f *FileStore) Put(_ context.Context, key string, data []byte) error {
	dst := f.path(key)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(dst), ".save-*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: write %s: %v", ErrPersistence, dst, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: sync %s: %v", ErrPersistence, dst, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", ErrPersistence, dst, err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return fmt.Errorf("%w: rename %s: %v", ErrPersistence, dst, err)
	}
	f.log.WithField("key", key).Debugf("Wrote %d bytes.", len(data))
	return nil
}

// Get reads a save file.
func (f *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrPersistence, key, err)
	}
	return data, nil
}

// Delete removes a save file. Missing files are not an error.
func (f *FileStore) Delete(_ context.Context, key string) error {
	err := os.Remove(f.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: delete %s: %v", ErrPersistence, key, err)
	}
	return nil
}

// Close is a no-op.
func (f *FileStore) Close() error { return nil }
