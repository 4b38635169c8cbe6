package descriptor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// VirtualEvaluator interprets descriptors in-process with mvdan/sh, so no
// system shell is needed. Commands the descriptor runs (command -v, ls, ...)
// still execute as real processes through the interpreter's exec handler.
type VirtualEvaluator struct {
	// Timeout bounds a single evaluation. Zero waits forever.
	Timeout time.Duration
}

// NewVirtualEvaluator creates a VirtualEvaluator.
func NewVirtualEvaluator(timeout time.Duration) *VirtualEvaluator {
	return &VirtualEvaluator{Timeout: timeout}
}

// ReadField implements Evaluator.
func (e *VirtualEvaluator) ReadField(ctx context.Context, script string, field Field) (string, error) {
	program, err := fieldProgram(field)
	if err != nil {
		return "", err
	}
	out, err := e.run(ctx, program, script)
	if err != nil {
		return "", fmt.Errorf("read %s from %s: %w", field, script, err)
	}
	return TrimValue(out), nil
}

// EnumerateAlternatives implements Evaluator.
func (e *VirtualEvaluator) EnumerateAlternatives(ctx context.Context, script string) ([]byte, error) {
	return e.run(ctx, enumerateProgram, script)
}

// run interprets program in a fresh runner with script bound to $1.
func (e *VirtualEvaluator) run(ctx context.Context, program, script string) ([]byte, error) {
	ctx, cancel := withTimeout(ctx, e.Timeout)
	defer cancel()

	prog, err := syntax.NewParser().Parse(strings.NewReader(program), "switch")
	if err != nil {
		return nil, fmt.Errorf("failed to parse descriptor program: %w", err)
	}

	var stdout bytes.Buffer
	// "--" keeps a script path starting with "-" from being read as a shell option.
	runner, err := interp.New(
		interp.Env(expand.ListEnviron(os.Environ()...)),
		interp.StdIO(nil, &stdout, io.Discard),
		interp.Params("--", script),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create interpreter: %w", err)
	}

	err = runner.Run(ctx, prog)
	if err == nil {
		return stdout.Bytes(), nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return stdout.Bytes(), fmt.Errorf("evaluate %s: %w", script, ctxErr)
	}

	if status, ok := interp.IsExitStatus(err); ok {
		return stdout.Bytes(), &ExitError{Script: script, Code: int(status)}
	}
	return stdout.Bytes(), fmt.Errorf("evaluate %s: %w", script, err)
}
