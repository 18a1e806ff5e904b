package oscommand

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"syscall"

	"github.com/AntonioJCosta/hsh/internal/core/domain/command"
	"github.com/AntonioJCosta/hsh/internal/core/ports"
)

// ProcessExecutor implements the ProcessExecutor interface using os/exec.
type ProcessExecutor struct{}

// NewProcessExecutor creates a new ProcessExecutor.
func NewProcessExecutor() ports.ProcessExecutor {
	return &ProcessExecutor{}
}

/*
Execute starts spawn.Path with spawn.Argv and blocks until the child exits.
A child that is merely stopped keeps Execute blocked: Wait only returns once
the child terminates, so a stopped child holds the loop until it is continued
and exits.

The child sees exactly spawn.Env, never the interpreter's own process
environment. A child killed by a signal reports 128 plus the signal number.
When the image cannot be started at all, Execute returns
command.StatusCommandNotFound together with the start error.
*/
func (e *ProcessExecutor) Execute(ctx context.Context, spawn command.Spawn) (int, error) {
	if len(spawn.Argv) == 0 {
		return command.StatusCommandNotFound, fmt.Errorf("starting %s: empty argument vector", spawn.Path)
	}

	cmd := exec.CommandContext(ctx, spawn.Path)
	cmd.Args = spawn.Argv
	cmd.Env = spawn.Env
	if cmd.Env == nil {
		cmd.Env = []string{}
	}
	cmd.Stdin = spawn.Stdin
	cmd.Stdout = spawn.Stdout
	cmd.Stderr = spawn.Stderr

	if err := cmd.Start(); err != nil {
		return command.StatusCommandNotFound, fmt.Errorf("starting %s: %w", spawn.Path, err)
	}

	err := cmd.Wait()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitStatus(exitErr), nil
	}
	// The child ran but copying its output failed; its status is still known.
	if cmd.ProcessState != nil {
		return cmd.ProcessState.ExitCode(), nil
	}
	return 1, fmt.Errorf("waiting for %s: %w", spawn.Path, err)
}

func exitStatus(exitErr *exec.ExitError) int {
	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return exitErr.ExitCode()
}
