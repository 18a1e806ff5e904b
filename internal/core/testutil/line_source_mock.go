package testutil

import (
	"io"

	"github.com/AntonioJCosta/hsh/internal/core/ports"
)

// MockLineSource hands out Lines in order, then Err (io.EOF when nil).
type MockLineSource struct {
	Lines []string
	Err   error
	next  int
}

// ReadLine returns the next queued line.
func (m *MockLineSource) ReadLine() (string, error) {
	if m.next < len(m.Lines) {
		line := m.Lines[m.next]
		m.next++
		return line, nil
	}
	if m.Err != nil {
		return "", m.Err
	}
	return "", io.EOF
}

var _ ports.LineSource = (*MockLineSource)(nil)
