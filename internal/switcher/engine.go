// Package switcher resolves a requested target to one of a module's
// alternatives and repoints the module's managed link at it. It also
// answers the read-only list and show queries.
package switcher

import (
	"context"
	"path/filepath"

	"github.com/charmbracelet/log"

	"nuros-switch/internal/fsutil"
	"nuros-switch/internal/logger"
	"nuros-switch/internal/module"
	"nuros-switch/internal/state"
)

// unlocker is satisfied by *fsutil.DirLock.
type unlocker interface {
	Unlock() error
}

// Engine performs the module actions.
type Engine struct {
	loader   *module.Loader
	resolver *module.Resolver
	log      *log.Logger

	// Filesystem hooks, replaced in tests.
	checkWritable func(dir string) error
	isExecutable  func(path string) bool
	lockDir       func(dir string) (unlocker, error)
}

// New creates an Engine. A nil logger discards diagnostics.
func New(loader *module.Loader, resolver *module.Resolver, l *log.Logger) *Engine {
	return &Engine{
		loader:        loader,
		resolver:      resolver,
		log:           logger.OrDiscard(l),
		checkWritable: fsutil.CheckWritable,
		isExecutable:  fsutil.IsExecutableFile,
		lockDir: func(dir string) (unlocker, error) {
			return fsutil.LockDir(dir)
		},
	}
}

// Result describes a completed switch.
type Result struct {
	Module string
	// Target is the target as the user gave it.
	Target string
	// LinkPath is the managed link that was replaced.
	LinkPath string
	// Previous is the link's immediate target before the switch, empty if it was not a symlink.
	Previous string
	// Path is what the link points to now.
	Path string
}

// Set points m's managed link at the alternative named by target.
//
// target is matched against display names first, then alternative paths,
// and finally accepted as-is when it is an absolute path to an executable.
// The link directory must be writable; that is checked after resolution and
// before anything is touched. An exclusive lock on the link directory is
// held from enumeration to the final rename, so concurrent switches of links
// in one directory are serialized.
func (e *Engine) Set(ctx context.Context, m *module.Module, target string) (*Result, error) {
	linkPath, err := e.linkPath(ctx, m)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(linkPath)

	if lock, err := e.lockDir(dir); err != nil {
		// The permission check below reports the real problem, if any.
		e.log.Debug("switching without directory lock", "dir", dir, "err", err)
	} else {
		defer func() {
			if err := lock.Unlock(); err != nil {
				e.log.Debug("failed to release directory lock", "dir", dir, "err", err)
			}
		}()
	}

	alts, err := e.resolver.Resolve(ctx, m)
	if err != nil {
		return nil, err
	}

	path, ok := e.resolveTarget(alts, target)
	if !ok {
		return nil, &AlternativeNotFoundError{Module: m.Name, Target: target}
	}
	e.log.Debug("resolved target", "module", m.Name, "target", target, "path", path)

	if err := e.checkWritable(dir); err != nil {
		return nil, &PermissionError{LinkPath: linkPath, Err: err}
	}

	previous := state.Inspect(linkPath).Target
	if err := replaceSymlink(linkPath, path); err != nil {
		return nil, &SymlinkError{LinkPath: linkPath, Target: path, Err: err}
	}

	return &Result{
		Module:   m.Name,
		Target:   target,
		LinkPath: linkPath,
		Previous: previous,
		Path:     path,
	}, nil
}

// resolveTarget applies the resolution order: display name, then path,
// then an executable absolute path outside the enumerated list.
func (e *Engine) resolveTarget(alts []module.Alternative, target string) (string, bool) {
	for _, alt := range alts {
		if alt.Name == target {
			return alt.Path, true
		}
	}
	for _, alt := range alts {
		if alt.Path == target {
			return alt.Path, true
		}
	}
	if filepath.IsAbs(target) && e.isExecutable(target) {
		return target, true
	}
	return "", false
}

// linkPath loads m's metadata and returns its managed link.
func (e *Engine) linkPath(ctx context.Context, m *module.Module) (string, error) {
	e.loader.Load(ctx, m)
	linkPath, ok := m.LinkPath()
	if !ok {
		return "", &MissingLinkError{Module: m.Name}
	}
	return linkPath, nil
}
