package ports

import (
	"context"

	"github.com/AntonioJCosta/hsh/internal/core/domain/command"
)

// Dispatcher routes a parsed command to a built-in or to an external program.
type Dispatcher interface {
	// Dispatch runs argv. Per-command failures are reported and swallowed;
	// the returned error is either a *command.ExitRequest or something the
	// read loop cannot recover from.
	Dispatch(ctx context.Context, argv command.Vector) error

	// LastStatus is the exit status of the most recent command.
	LastStatus() int
}
