package testutil

import (
	"context"

	"github.com/AntonioJCosta/hsh/internal/core/domain/command"
	"github.com/AntonioJCosta/hsh/internal/core/ports"
)

// MockDispatcher is a mock implementation of ports.Dispatcher that records
// the argument vectors it is handed.
type MockDispatcher struct {
	DispatchFunc func(ctx context.Context, argv command.Vector) error
	Dispatched   [][]string
	Status       int
}

// Dispatch records argv and calls the mock DispatchFunc, if any.
func (m *MockDispatcher) Dispatch(ctx context.Context, argv command.Vector) error {
	m.Dispatched = append(m.Dispatched, argv.Argv())
	if m.DispatchFunc != nil {
		return m.DispatchFunc(ctx, argv)
	}
	return nil
}

// LastStatus returns Status.
func (m *MockDispatcher) LastStatus() int {
	return m.Status
}

var _ ports.Dispatcher = (*MockDispatcher)(nil)
