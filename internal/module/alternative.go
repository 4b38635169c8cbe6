package module

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"nuros-switch/internal/descriptor"
	"nuros-switch/internal/logger"
)

// DefaultPriority applies to lines that carry no priority field.
const DefaultPriority = 10

// Alternative is one candidate target for a module's managed link.
// Priority is informational; nothing selects by it.
type Alternative struct {
	Path     string
	Name     string
	Priority int
}

// ParseAlternatives parses descriptor output of the form "path|name|priority",
// one alternative per line, keeping line order. Lines without any "|" are
// returned in malformed and otherwise ignored.
func ParseAlternatives(out []byte) (alts []Alternative, malformed []string) {
	for _, line := range strings.Split(string(out), "\n") {
		if line == "" {
			continue
		}
		alt, ok := ParseLine(line)
		if !ok {
			malformed = append(malformed, line)
			continue
		}
		alts = append(alts, alt)
	}
	return alts, malformed
}

// ParseLine parses a single "path|name[|priority]" line. The first "|"
// ends the path and the second ends the name; a missing priority means
// DefaultPriority and an unparsable one means 0.
func ParseLine(line string) (Alternative, bool) {
	line = strings.TrimSuffix(line, "\r")

	path, rest, ok := strings.Cut(line, "|")
	if !ok {
		return Alternative{}, false
	}

	alt := Alternative{Path: path, Name: rest, Priority: DefaultPriority}
	if name, prio, ok := strings.Cut(rest, "|"); ok {
		alt.Name = name
		alt.Priority = parsePriority(prio)
	}
	return alt, true
}

// parsePriority reads an optionally signed decimal prefix after leading
// blanks and ignores whatever follows it, so "7" and " 7 high" are both 7
// and text without digits is 0.
func parsePriority(s string) int {
	s = strings.TrimLeft(s, " \t\n\v\f\r")

	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	const limit = 1<<31 - 1
	n := 0
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
		if n > limit {
			n = limit
		}
	}
	if neg {
		return -n
	}
	return n
}

// Resolver enumerates the alternatives a module offers. Results are never
// cached: every call runs the descriptor again.
type Resolver struct {
	eval descriptor.Evaluator
	log  *log.Logger
}

// NewResolver creates a Resolver backed by eval. A nil logger discards diagnostics.
func NewResolver(eval descriptor.Evaluator, l *log.Logger) *Resolver {
	return &Resolver{eval: eval, log: logger.OrDiscard(l)}
}

// Resolve runs the module's entry point and parses its output. A descriptor
// that exits non-zero still contributes the lines it printed; only failing
// to run the descriptor at all is an error. No output yields an empty list.
func (r *Resolver) Resolve(ctx context.Context, m *Module) ([]Alternative, error) {
	out, err := r.eval.EnumerateAlternatives(ctx, m.Path)
	if err != nil {
		var exitErr *descriptor.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("failed to get alternatives for %s: %w", m.Name, err)
		}
		r.log.Debug("find_alternatives exited non-zero", "module", m.Name, "status", exitErr.Code)
	}

	alts, malformed := ParseAlternatives(out)
	for _, line := range malformed {
		r.log.Debug("ignoring malformed alternative line", "module", m.Name, "line", line)
	}
	return alts, nil
}
