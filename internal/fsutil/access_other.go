//go:build !unix

package fsutil

import (
	"fmt"
	"os"
)

// IsExecutable falls back to the permission bits where access(2) is missing.
func IsExecutable(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().Perm()&0o111 != 0
}

// CheckWritable falls back to the owner write bit where access(2) is missing.
func CheckWritable(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", dir, ErrNotWritable, err)
	}
	if info.Mode().Perm()&0o200 == 0 {
		return fmt.Errorf("%s: %w", dir, ErrNotWritable)
	}
	return nil
}
