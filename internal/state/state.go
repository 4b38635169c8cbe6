// Package state reads the current state of a managed link without
// changing it: where it points one level down and where it finally lands.
package state

import (
	"os"
	"path/filepath"
)

// Link is a snapshot of a managed link.
type Link struct {
	// Path is the link location as configured by the module.
	Path string
	// Target is the immediate symlink target, empty when Path is not a symlink.
	Target string
	// Resolved is the canonical final destination, empty when the chain is broken.
	Resolved string
}

// Inspect reads the link at path. A missing link, or a path that is not a
// symlink, yields a Link with an empty Target.
func Inspect(path string) Link {
	link := Link{Path: path}

	target, err := os.Readlink(path)
	if err != nil || target == "" {
		return link
	}
	link.Target = target

	if resolved, ok := Canonical(path); ok {
		link.Resolved = resolved
	}
	return link
}

// Configured reports whether the link exists as a symlink.
func (l Link) Configured() bool {
	return l.Target != ""
}

// PointsTo reports whether the link's final destination is the same file
// as path once both are canonicalized. A broken link points nowhere.
func (l Link) PointsTo(path string) bool {
	if l.Resolved == "" {
		return false
	}
	other, ok := Canonical(path)
	return ok && other == l.Resolved
}

// Canonical returns the absolute path of path with every symlink resolved.
// It fails when any component does not exist.
func Canonical(path string) (string, bool) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", false
	}
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return "", false
	}
	return abs, true
}
