package environment

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AntonioJCosta/hsh/internal/core/ports"
)

// ErrInvalidName is returned when a variable name is empty or contains '='.
var ErrInvalidName = errors.New("invalid variable name")

/*
Store is the interpreter's environment. It is the single owner of every
variable the interpreter reads (PATH, HOME) or hands to children, and it
remembers the order entries were first seen so env prints them in host
order.

The process environment is only read once, by NewFromOS; mutations never
leak back into it.
*/
type Store struct {
	keys   []string
	values map[string]string
}

// New creates a Store from KEY=VALUE entries. Entries without '=' are ignored
// and a repeated key keeps its first position with the last value.
func New(entries []string) ports.Environment {
	s := &Store{values: make(map[string]string, len(entries))}
	for _, entry := range entries {
		key, value, ok := splitEntry(entry)
		if !ok {
			continue
		}
		s.put(key, value)
	}
	return s
}

// NewFromOS creates a Store seeded from the current process environment.
func NewFromOS() ports.Environment {
	return New(os.Environ())
}

// Get implements the ports.Environment interface.
func (s *Store) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set implements the ports.Environment interface.
func (s *Store) Set(key, value string) error {
	if err := validateName(key); err != nil {
		return err
	}
	s.put(key, value)
	return nil
}

// Unset implements the ports.Environment interface. Unsetting a missing key is not an error.
func (s *Store) Unset(key string) error {
	if err := validateName(key); err != nil {
		return err
	}
	if _, ok := s.values[key]; !ok {
		return nil
	}
	delete(s.values, key)
	for i, k := range s.keys {
		if k == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
	return nil
}

// Environ implements the ports.Environment interface.
func (s *Store) Environ() []string {
	out := make([]string, 0, len(s.keys))
	for _, k := range s.keys {
		out = append(out, k+"="+s.values[k])
	}
	return out
}

func (s *Store) put(key, value string) {
	if _, exists := s.values[key]; !exists {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

func splitEntry(entry string) (key, value string, ok bool) {
	key, value, ok = strings.Cut(entry, "=")
	if !ok || key == "" {
		return "", "", false
	}
	return key, value, true
}

func validateName(key string) error {
	if key == "" || strings.Contains(key, "=") {
		return fmt.Errorf("%w: %q", ErrInvalidName, key)
	}
	return nil
}
