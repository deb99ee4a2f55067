package storage

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// ErrLockTimeout is returned when the snapshot directory stays locked.
var ErrLockTimeout = errors.New("snapshot directory is locked")

// dirLock serializes snapshot writers across processes with an exclusive
// mkdir. A lock older than staleAfter is assumed to be left over from a
// crashed process and is broken.
type dirLock struct {
	path       string
	timeout    time.Duration
	retry      time.Duration
	staleAfter time.Duration
}

func newDirLock(path string) *dirLock {
	return &dirLock{
		path:       path,
		timeout:    10 * time.Second,
		retry:      50 * time.Millisecond,
		staleAfter: 2 * time.Minute,
	}
}

func (l *dirLock) acquire() error {
	deadline := time.Now().Add(l.timeout)
	for {
		err := os.Mkdir(l.path, FileModeDir)
		if err == nil {
			return nil
		}
		if !errors.Is(err, os.ErrExist) {
			return fmt.Errorf("create lock %s: %w", l.path, err)
		}
		if l.breakStale() {
			continue
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("%w: %s held for more than %s", ErrLockTimeout, l.path, l.timeout)
		}
		time.Sleep(l.retry)
	}
}

func (l *dirLock) breakStale() bool {
	info, err := os.Stat(l.path)
	if err != nil || time.Since(info.ModTime()) < l.staleAfter {
		return false
	}
	return os.Remove(l.path) == nil
}

func (l *dirLock) release() error {
	if err := os.Remove(l.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("release lock %s: %w", l.path, err)
	}
	return nil
}

// with runs fn while holding the lock.
func (l *dirLock) with(fn func() error) error {
	if err := l.acquire(); err != nil {
		return err
	}
	defer l.release()
	return fn()
}
