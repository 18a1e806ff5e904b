package linesource

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ReaderSource reads newline-terminated lines from any io.Reader.
type ReaderSource struct {
	r *bufio.Reader
}

// NewReaderSource creates a new ReaderSource over r.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{r: bufio.NewReader(r)}
}

/*
ReadLine implements the ports.LineSource interface. A final line without a
newline is returned with a nil error; the next call then returns io.EOF.
*/
func (s *ReaderSource) ReadLine() (string, error) {
	line, err := s.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}

// ScriptSource is a ReaderSource over an opened script file.
type ScriptSource struct {
	*ReaderSource
	file *os.File
}

// OpenScript opens path for reading as a script.
func OpenScript(path string) (*ScriptSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening script %s: %w", path, err)
	}
	return &ScriptSource{ReaderSource: NewReaderSource(f), file: f}, nil
}

// Close closes the underlying script file.
func (s *ScriptSource) Close() error {
	return s.file.Close()
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
