package logger

import (
	"fmt"
	"io"
)

// Logger is just a wrapper that prints stuff to Stdout or Stderr,
// with optional color.
type Logger struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Verbose bool
	Color   bool
}

// Outf prints a line to Stdout.
func (l *Logger) Outf(paint Painter, format string, args ...interface{}) {
	l.fprintln(l.Stdout, paint, format, args...)
}

// Errf prints a line to Stderr.
func (l *Logger) Errf(paint Painter, format string, args ...interface{}) {
	l.fprintln(l.Stderr, paint, format, args...)
}

// VerboseErrf prints a line to Stderr if verbose mode is enabled.
func (l *Logger) VerboseErrf(paint Painter, format string, args ...interface{}) {
	if l.Verbose {
		l.Errf(paint, format, args...)
	}
}

// Prompt writes s to Stdout without a trailing newline.
func (l *Logger) Prompt(s string) {
	if l.Stdout == nil {
		return
	}
	if l.Color {
		s = PromptColor(s)
	}
	fmt.Fprint(l.Stdout, s)
}

func (l *Logger) fprintln(w io.Writer, paint Painter, format string, args ...interface{}) {
	if w == nil {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if l.Color && paint != nil {
		msg = paint(msg)
	}
	fmt.Fprintln(w, msg)
}
