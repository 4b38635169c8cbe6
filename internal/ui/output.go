// Package ui renders everything switch prints for the user. Color is a
// property of an Output value, never of the process.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"nuros-switch/internal/config"
)

// Output writes user-facing text to Out and diagnostics to Err.
type Output struct {
	Out io.Writer
	Err io.Writer

	colored bool

	red       *color.Color
	green     *color.Color
	yellow    *color.Color
	cyan      *color.Color
	bold      *color.Color
	errLabel  *color.Color
	warnLabel *color.Color
}

// New creates an Output. enabled decides whether escape sequences are emitted.
func New(out, errw io.Writer, enabled bool) *Output {
	o := &Output{Out: out, Err: errw, colored: enabled}
	o.red = o.newColor(color.FgRed)
	o.green = o.newColor(color.FgGreen)
	o.yellow = o.newColor(color.FgYellow)
	o.cyan = o.newColor(color.FgCyan)
	o.bold = o.newColor(color.Bold)
	o.errLabel = o.newColor(color.FgRed, color.Bold)
	o.warnLabel = o.newColor(color.FgYellow, color.Bold)
	return o
}

// newColor pins a color to this output's setting, ignoring color.NoColor.
func (o *Output) newColor(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if o.colored {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// Colored reports whether this output emits color.
func (o *Output) Colored() bool {
	return o.colored
}

// ShouldColor decides whether output gets color. In auto mode color is
// used only on a terminal, and NO_COLOR, SWITCH_NO_COLOR or TERM=dumb turn
// it off.
func ShouldColor(mode config.ColorMode, terminal bool, getenv func(string) string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if getenv == nil {
		getenv = os.Getenv
	}
	if getenv("NO_COLOR") != "" || getenv("SWITCH_NO_COLOR") != "" || getenv("TERM") == "dumb" {
		return false
	}
	return terminal
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Error prints "error: <message>" to Err.
func (o *Output) Error(format string, args ...any) {
	fmt.Fprintf(o.Err, "%s%s\n", o.errLabel.Sprint("error: "), o.red.Sprintf(format, args...))
}

// Warning prints "warning: <message>" to Err.
func (o *Output) Warning(format string, args ...any) {
	fmt.Fprintf(o.Err, "%s%s\n", o.warnLabel.Sprint("warning: "), o.yellow.Sprintf(format, args...))
}

// Success prints a green line to Out.
func (o *Output) Success(format string, args ...any) {
	fmt.Fprintln(o.Out, o.green.Sprintf(format, args...))
}

// Info prints a cyan line to Out.
func (o *Output) Info(format string, args ...any) {
	fmt.Fprintln(o.Out, o.cyan.Sprintf(format, args...))
}

// Hint prints an uncolored follow-up line to Out.
func (o *Output) Hint(format string, args ...any) {
	fmt.Fprintf(o.Out, format+"\n", args...)
}
