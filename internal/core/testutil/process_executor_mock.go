package testutil

import (
	"context"
	"errors"

	"github.com/AntonioJCosta/hsh/internal/core/domain/command"
	"github.com/AntonioJCosta/hsh/internal/core/ports"
)

// MockProcessExecutor is a mock implementation of ports.ProcessExecutor.
// Every spawn it receives is recorded in Calls.
type MockProcessExecutor struct {
	ExecuteFunc func(ctx context.Context, spawn command.Spawn) (int, error)
	Calls       []command.Spawn
}

// Execute records spawn and calls the mock ExecuteFunc.
func (m *MockProcessExecutor) Execute(ctx context.Context, spawn command.Spawn) (int, error) {
	m.Calls = append(m.Calls, spawn)
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, spawn)
	}
	return command.StatusCommandNotFound, errors.New("MockProcessExecutor.ExecuteFunc not implemented")
}

var _ ports.ProcessExecutor = (*MockProcessExecutor)(nil)
