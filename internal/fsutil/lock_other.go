//go:build !unix

package fsutil

// DirLock is a no-op where flock(2) is unavailable.
type DirLock struct{}

// LockDir returns a lock that guards nothing.
func LockDir(string) (*DirLock, error) {
	return &DirLock{}, nil
}

// Unlock is a no-op.
func (l *DirLock) Unlock() error {
	return nil
}
