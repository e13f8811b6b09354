package compiler

import (
	"fmt"
	"io"
	"os"
)

// Logger provides verbose output for build and analysis decisions. A nil
// *Logger is valid and discards everything.
type Logger struct {
	enabled bool
	prefix  string
	out     io.Writer
}

// NewLogger creates a logger writing to stderr when enabled.
func NewLogger(enabled bool) *Logger {
	return &Logger{
		enabled: enabled,
		prefix:  "[regnfa] ",
		out:     os.Stderr,
	}
}

// SetOutput sets the output writer for the logger.
func (l *Logger) SetOutput(w io.Writer) {
	l.out = w
}

// Log prints a formatted line if verbose mode is enabled.
func (l *Logger) Log(format string, args ...interface{}) {
	if l.Enabled() {
		fmt.Fprintf(l.out, l.prefix+format+"\n", args...)
	}
}

// Section prints a section header if verbose mode is enabled.
func (l *Logger) Section(name string) {
	if l.Enabled() {
		fmt.Fprintf(l.out, "\n%s=== %s ===\n", l.prefix, name)
	}
}

// Enabled returns whether the logger is enabled.
func (l *Logger) Enabled() bool {
	return l != nil && l.enabled
}
