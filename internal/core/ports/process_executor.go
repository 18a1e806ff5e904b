package ports

import (
	"context"

	"github.com/AntonioJCosta/hsh/internal/core/domain/command"
)

// ProcessExecutor spawns a child process and blocks until it terminates.
type ProcessExecutor interface {
	// Execute runs spawn and returns the child's exit status. A non-nil error
	// means the child could not be started at all.
	Execute(ctx context.Context, spawn command.Spawn) (status int, err error)
}
