package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"moviedb/internal/logging"
)

const lockRetryDelay = 50 * time.Millisecond

// SaveFile writes the catalog to path. Data goes to a temp file in the same
// directory which is then renamed over path, so readers never observe a
// partially written catalog.
func (c *Catalog) SaveFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create catalog directory %q: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("open catalog for writing: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	if err := c.Save(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync catalog: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close catalog: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace catalog file: %w", err)
	}
	c.logger.Info("catalog saved", logging.String("path", path), logging.Int("count", c.Len()))
	return nil
}

// LoadFile replaces the catalog with the contents of path. A missing file
// returns (false, nil) so callers can fall back to defaults; a corrupt file
// returns an error wrapping ErrCorrupt and leaves the catalog untouched.
func (c *Catalog) LoadFile(path string) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.logger.Debug("catalog file absent", logging.String("path", path))
			return false, nil
		}
		return false, fmt.Errorf("open catalog: %w", err)
	}
	defer file.Close()

	if err := c.Load(file); err != nil {
		return false, fmt.Errorf("load %s: %w", path, err)
	}
	c.logger.Info("catalog loaded", logging.String("path", path), logging.Int("count", c.Len()))
	return true, nil
}

// FileLock is an advisory lock serializing catalog read-modify-write cycles
// across processes.
type FileLock struct {
	lock *flock.Flock
}

// Lock acquires an exclusive lock on "<path>.lock", waiting until ctx is done.
func Lock(ctx context.Context, path string) (*FileLock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}
	lock := flock.New(path + ".lock")
	ok, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("acquire catalog lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("acquire catalog lock: %s is held by another process", lock.Path())
	}
	return &FileLock{lock: lock}, nil
}

// RLock acquires a shared lock on "<path>.lock" for read-only access.
func RLock(ctx context.Context, path string) (*FileLock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}
	lock := flock.New(path + ".lock")
	ok, err := lock.TryRLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("acquire catalog read lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("acquire catalog read lock: %s is held by another process", lock.Path())
	}
	return &FileLock{lock: lock}, nil
}

// Unlock releases the lock. It is safe to call on a nil FileLock.
func (l *FileLock) Unlock() error {
	if l == nil || l.lock == nil {
		return nil
	}
	return l.lock.Unlock()
}
