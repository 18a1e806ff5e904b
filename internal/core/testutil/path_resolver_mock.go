package testutil

import (
	"errors"

	"github.com/AntonioJCosta/hsh/internal/core/ports"
)

// MockPathResolver is a mock implementation of ports.PathResolver.
type MockPathResolver struct {
	ResolveFunc    func(name string) (string, error)
	SearchPathFunc func() []string
}

// Resolve calls the mock ResolveFunc.
func (m *MockPathResolver) Resolve(name string) (string, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(name)
	}
	return "", errors.New("MockPathResolver.ResolveFunc not implemented")
}

// SearchPath calls the mock SearchPathFunc.
func (m *MockPathResolver) SearchPath() []string {
	if m.SearchPathFunc != nil {
		return m.SearchPathFunc()
	}
	return nil
}

var _ ports.PathResolver = (*MockPathResolver)(nil)
