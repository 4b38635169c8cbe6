package descriptor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// DefaultShell is the interpreter the bash evaluator spawns when none is configured.
const DefaultShell = "/bin/bash"

// waitDelay is how long run keeps reading output after the shell was killed.
const waitDelay = 500 * time.Millisecond

// BashEvaluator evaluates descriptors by spawning a short-lived shell per call.
type BashEvaluator struct {
	// Shell is the interpreter path, DefaultShell when empty.
	Shell string
	// Timeout bounds a single child process. Zero waits forever.
	Timeout time.Duration
}

// NewBashEvaluator creates a BashEvaluator.
func NewBashEvaluator(shell string, timeout time.Duration) *BashEvaluator {
	if shell == "" {
		shell = DefaultShell
	}
	return &BashEvaluator{Shell: shell, Timeout: timeout}
}

// ReadField implements Evaluator.
func (e *BashEvaluator) ReadField(ctx context.Context, script string, field Field) (string, error) {
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
func (e *BashEvaluator) EnumerateAlternatives(ctx context.Context, script string) ([]byte, error) {
	return e.run(ctx, enumerateProgram, script)
}

// run executes program with the descriptor path as $1 and returns its standard output.
// The path travels as an argument, so it never needs quoting inside program.
func (e *BashEvaluator) run(ctx context.Context, program, script string) ([]byte, error) {
	ctx, cancel := withTimeout(ctx, e.Timeout)
	defer cancel()

	shell := e.Shell
	if shell == "" {
		shell = DefaultShell
	}

	// "switch" becomes $0 inside the child shell.
	cmd := exec.CommandContext(ctx, shell, "-c", program, "switch", script)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	// Grandchildren of a killed shell may hold stdout open; stop waiting on them.
	cmd.WaitDelay = waitDelay

	err := cmd.Run()
	if err == nil {
		return stdout.Bytes(), nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return stdout.Bytes(), fmt.Errorf("evaluate %s: %w", script, ctxErr)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return stdout.Bytes(), &ExitError{Script: script, Code: exitErr.ExitCode()}
	}
	return nil, fmt.Errorf("failed to start %s: %w", shell, err)
}
