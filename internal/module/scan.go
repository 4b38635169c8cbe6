package module

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"nuros-switch/internal/descriptor"
	"nuros-switch/internal/fsutil"
	"nuros-switch/internal/logger"
)

// Scanner builds a Registry from the user and system module directories.
type Scanner struct {
	log *log.Logger
}

// NewScanner creates a Scanner. A nil logger discards diagnostics.
func NewScanner(l *log.Logger) *Scanner {
	return &Scanner{log: logger.OrDiscard(l)}
}

// Scan walks userDir and then systemDir and registers every executable
// descriptor it finds. Either directory may be empty or missing. Scanning
// never fails: unreadable directories and entries only mean fewer modules.
func (s *Scanner) Scan(userDir, systemDir string) *Registry {
	reg := NewRegistry()
	s.scanDir(reg, userDir, ScopeUser)
	s.scanDir(reg, systemDir, ScopeSystem)
	s.log.Debug("module scan finished", "modules", reg.Len())
	return reg
}

// scanDir registers the descriptors of one directory. Names already in reg
// were found in a higher-precedence directory and are left alone.
func (s *Scanner) scanDir(reg *Registry, dir string, scope Scope) {
	if dir == "" {
		return
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}

	// ReadDir returns whatever it managed to read alongside the error.
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.log.Debug("module directory does not exist", "dir", dir, "scope", scope)
		} else {
			s.log.Debug("module directory unreadable", "dir", dir, "scope", scope, "err", err)
		}
	}

	for _, entry := range entries {
		fileName := entry.Name()
		if strings.HasPrefix(fileName, ".") {
			continue
		}

		name, ok := strings.CutSuffix(fileName, descriptor.Suffix)
		if !ok || name == "" {
			continue
		}

		path := filepath.Join(dir, fileName)
		if !fsutil.IsExecutableFile(path) {
			s.log.Debug("skipping non-executable descriptor", "path", path)
			continue
		}

		if !reg.Add(New(name, path, scope)) {
			s.log.Debug("module shadowed", "name", name, "path", path, "scope", scope)
		}
	}
}
