package descriptor

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Evaluator runs the descriptor protocol against a script.
// Implementations must start from a clean state for every call so that a
// failure evaluating one field cannot influence another.
type Evaluator interface {
	// ReadField sources script and returns the value of field with trailing
	// newlines stripped. An error means the value could not be obtained.
	ReadField(ctx context.Context, script string, field Field) (string, error)

	// EnumerateAlternatives sources script, calls its entry point and returns
	// the raw standard output. When the entry point exits non-zero the output
	// captured so far is returned together with an *ExitError.
	EnumerateAlternatives(ctx context.Context, script string) ([]byte, error)
}

// Kind selects an Evaluator implementation.
type Kind string

const (
	// KindBash spawns the configured shell for every call.
	KindBash Kind = "bash"
	// KindVirtual interprets descriptors in-process.
	KindVirtual Kind = "virtual"
)

// Options configures the evaluator returned by New.
type Options struct {
	// Shell is the interpreter used by the bash evaluator.
	Shell string
	// Timeout bounds a single call. Zero means no limit.
	Timeout time.Duration
}

// New returns the evaluator for kind.
func New(kind Kind, opts Options) (Evaluator, error) {
	switch kind {
	case KindBash, "":
		return NewBashEvaluator(opts.Shell, opts.Timeout), nil
	case KindVirtual:
		return NewVirtualEvaluator(opts.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown evaluator %q (expected %q or %q)", kind, KindBash, KindVirtual)
	}
}

// ExitError reports that a descriptor program ran but exited with a non-zero status.
type ExitError struct {
	Script string
	Code   int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("descriptor %s exited with status %d", e.Script, e.Code)
}

// TrimValue converts captured output to a field value, dropping any
// trailing newline and carriage-return characters.
func TrimValue(out []byte) string {
	return strings.TrimRight(string(out), "\r\n")
}

// withTimeout derives a context bounded by timeout when it is positive.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout > 0 {
		return context.WithTimeout(ctx, timeout)
	}
	return context.WithCancel(ctx)
}
