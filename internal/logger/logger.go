// Package logger builds the diagnostic logger shared by every component.
//
// Diagnostics go to stderr and stay silent below warn level unless debug
// output was requested, so degraded conditions (unreadable module
// directories, descriptors that fail to evaluate, malformed alternative
// lines) are visible with --debug without cluttering normal output.
package logger

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Prefix is printed in front of every diagnostic line.
const Prefix = "switch"

// Options configures New.
type Options struct {
	// Debug lowers the level to debug.
	Debug bool
	// Color enables ANSI styling. When false the output is plain text even on a terminal.
	Color bool
}

// New creates a logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		Prefix: Prefix,
		Level:  log.WarnLevel,
	})
	if opts.Debug {
		l.SetLevel(log.DebugLevel)
	}
	if !opts.Color {
		l.SetColorProfile(termenv.Ascii)
	}
	return l
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// OrDiscard returns l, or a discarding logger when l is nil.
func OrDiscard(l *log.Logger) *log.Logger {
	if l == nil {
		return Discard()
	}
	return l
}
