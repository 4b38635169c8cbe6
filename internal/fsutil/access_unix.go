//go:build unix

package fsutil

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// IsExecutable asks the kernel whether the real user may execute path.
func IsExecutable(path string) bool {
	return path != "" && unix.Access(path, unix.X_OK) == nil
}

// CheckWritable returns an error wrapping ErrNotWritable when the real user
// may not modify entries of dir.
func CheckWritable(dir string) error {
	if err := unix.Access(dir, unix.W_OK); err != nil {
		return fmt.Errorf("%s: %w: %w", dir, ErrNotWritable, err)
	}
	return nil
}
