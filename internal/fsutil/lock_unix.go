//go:build unix

package fsutil

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// DirLock is an exclusive flock held on a directory's own file descriptor.
// No lock file is created; the kernel drops the lock when the descriptor is
// closed, including when the process dies.
type DirLock struct {
	file *os.File
}

// LockDir blocks until it holds an exclusive advisory lock on dir.
func LockDir(dir string) (*DirLock, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("open %s for locking: %w", dir, err)
	}
	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX); err != nil {
		f.Close()
		return nil, fmt.Errorf("flock %s: %w", dir, err)
	}
	return &DirLock{file: f}, nil
}

// Unlock releases the lock. Calling it more than once is a no-op.
func (l *DirLock) Unlock() error {
	if l == nil || l.file == nil {
		return nil
	}
	// Close alone would release the flock too.
	err := unix.Flock(int(l.file.Fd()), unix.LOCK_UN)
	if cerr := l.file.Close(); err == nil {
		err = cerr
	}
	l.file = nil
	return err
}
