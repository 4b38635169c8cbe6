// Package fsutil holds the filesystem checks shared by the scanner and the
// switch engine: execute permission, directory write permission and an
// advisory lock on a directory.
package fsutil

import (
	"errors"
	"os"
)

// ErrNotWritable is returned by CheckWritable when the caller may not create
// or remove entries in a directory.
var ErrNotWritable = errors.New("directory is not writable")

// IsExecutableFile reports whether path resolves to a regular file the
// current process may execute. Directories never qualify, even though they
// carry execute bits.
func IsExecutableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	return IsExecutable(path)
}
