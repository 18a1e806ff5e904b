package dispatch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"syscall"
	"testing"

	"github.com/AntonioJCosta/hsh/internal/adapters/pathresolution"
	"github.com/AntonioJCosta/hsh/internal/core/domain/command"
	"github.com/AntonioJCosta/hsh/internal/core/ports"
	"github.com/AntonioJCosta/hsh/internal/core/testutil"
	"github.com/AntonioJCosta/hsh/internal/logger"
	"github.com/AntonioJCosta/hsh/internal/repositories/environment"
)

type testHarness struct {
	svc      ports.Dispatcher
	env      ports.Environment
	resolver *testutil.MockPathResolver
	executor *testutil.MockProcessExecutor
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
}

func newHarness(t *testing.T, envEntries ...string) *testHarness {
	t.Helper()
	h := &testHarness{
		env:      environment.New(envEntries),
		resolver: &testutil.MockPathResolver{},
		executor: &testutil.MockProcessExecutor{},
		stdout:   &bytes.Buffer{},
		stderr:   &bytes.Buffer{},
	}
	h.svc = NewService(Config{
		Argv0:    "hsh",
		Env:      h.env,
		Resolver: h.resolver,
		Executor: h.executor,
		Logger:   &logger.Logger{Stdout: h.stdout, Stderr: h.stderr},
	})
	return h
}

func TestNewService(t *testing.T) {
	t.Run("should return a service if collaborators are set", func(t *testing.T) {
		h := newHarness(t)
		if h.svc == nil {
			t.Fatal("NewService() returned nil, expected a service instance")
		}
	})

	t.Run("should panic if a collaborator is nil", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("NewService did not panic with a nil resolver")
			}
		}()
		_ = NewService(Config{
			Env:      environment.New(nil),
			Executor: &testutil.MockProcessExecutor{},
			Logger:   &logger.Logger{},
		})
	})
}

func TestService_Dispatch_Empty(t *testing.T) {
	h := newHarness(t)
	h.resolver.ResolveFunc = func(name string) (string, error) {
		t.Errorf("Resolve(%q) called for an empty vector", name)
		return "", nil
	}

	if err := h.svc.Dispatch(context.Background(), command.Vector{}); err != nil {
		t.Errorf("Dispatch() unexpected error = %v", err)
	}
	if len(h.executor.Calls) != 0 || h.stdout.Len() != 0 || h.stderr.Len() != 0 {
		t.Errorf("Dispatch() of an empty vector had side effects: calls=%d stdout=%q stderr=%q",
			len(h.executor.Calls), h.stdout.String(), h.stderr.String())
	}
}

func TestService_Dispatch_External(t *testing.T) {
	h := newHarness(t, "PATH=/usr/bin", "HOME=/home/u")
	h.resolver.ResolveFunc = func(name string) (string, error) {
		if name != "ls" {
			t.Errorf("Resolve() got %q, want %q", name, "ls")
		}
		return "/usr/bin/ls", nil
	}
	h.executor.ExecuteFunc = func(_ context.Context, spawn command.Spawn) (int, error) {
		return 3, nil
	}

	if err := h.svc.Dispatch(context.Background(), command.FromArgs("ls", "-l", "/tmp")); err != nil {
		t.Fatalf("Dispatch() unexpected error = %v", err)
	}

	if len(h.executor.Calls) != 1 {
		t.Fatalf("Execute() called %d times, want 1", len(h.executor.Calls))
	}
	spawn := h.executor.Calls[0]
	if spawn.Path != "/usr/bin/ls" {
		t.Errorf("spawn.Path = %q, want %q", spawn.Path, "/usr/bin/ls")
	}
	if want := []string{"ls", "-l", "/tmp"}; !reflect.DeepEqual(spawn.Argv, want) {
		t.Errorf("spawn.Argv = %q, want %q (argv[0] must stay the typed name)", spawn.Argv, want)
	}
	if want := []string{"PATH=/usr/bin", "HOME=/home/u"}; !reflect.DeepEqual(spawn.Env, want) {
		t.Errorf("spawn.Env = %q, want %q", spawn.Env, want)
	}
	if spawn.Stdout != h.stdout || spawn.Stderr != h.stderr {
		t.Error("spawn did not inherit the logger's writers")
	}
	if got := h.svc.LastStatus(); got != 3 {
		t.Errorf("LastStatus() = %d, want 3", got)
	}
}

func TestService_Dispatch_Unresolvable(t *testing.T) {
	h := newHarness(t)
	h.resolver.ResolveFunc = func(name string) (string, error) {
		return "", fmt.Errorf("%s: %w", name, pathresolution.ErrNotFound)
	}

	err := h.svc.Dispatch(context.Background(), command.FromArgs("notacommand123"))
	if err != nil {
		t.Fatalf("Dispatch() error = %v, want nil so the loop continues", err)
	}
	if got, want := h.stderr.String(), "hsh: No such file or directory\n"; got != want {
		t.Errorf("stderr = %q, want %q", got, want)
	}
	if len(h.executor.Calls) != 0 {
		t.Errorf("Execute() called %d times for an unresolvable command", len(h.executor.Calls))
	}
	if got := h.svc.LastStatus(); got != command.StatusCommandNotFound {
		t.Errorf("LastStatus() = %d, want %d", got, command.StatusCommandNotFound)
	}
}

func TestService_Dispatch_StartFailures(t *testing.T) {
	tests := []struct {
		name       string
		startErr   error
		wantStderr string
	}{
		{
			name:       "entry not found",
			startErr:   &fs.PathError{Op: "fork/exec", Path: "/bin/gone", Err: syscall.ENOENT},
			wantStderr: "hsh: No such file or directory\n",
		},
		{
			name:       "any other failure",
			startErr:   &fs.PathError{Op: "fork/exec", Path: "/bin/data", Err: syscall.EACCES},
			wantStderr: "Command not found.\n",
		},
		{
			name:       "resource exhaustion",
			startErr:   errors.New("fork: resource temporarily unavailable"),
			wantStderr: "Command not found.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.resolver.ResolveFunc = func(name string) (string, error) { return "/bin/" + name, nil }
			h.executor.ExecuteFunc = func(context.Context, command.Spawn) (int, error) {
				return command.StatusCommandNotFound, tt.startErr
			}

			if err := h.svc.Dispatch(context.Background(), command.FromArgs("x")); err != nil {
				t.Fatalf("Dispatch() error = %v, want nil", err)
			}
			if got := h.stderr.String(); got != tt.wantStderr {
				t.Errorf("stderr = %q, want %q", got, tt.wantStderr)
			}
			if got := h.svc.LastStatus(); got != command.StatusCommandNotFound {
				t.Errorf("LastStatus() = %d, want %d", got, command.StatusCommandNotFound)
			}
		})
	}
}

func TestService_Dispatch_BuiltinsNeverSpawn(t *testing.T) {
	h := newHarness(t)
	h.resolver.ResolveFunc = func(name string) (string, error) {
		t.Errorf("Resolve(%q) called for a built-in", name)
		return "", pathresolution.ErrNotFound
	}

	for _, argv := range [][]string{{"env"}, {"cd"}, {"setenv", "A", "1"}, {"unsetenv", "A"}} {
		if err := h.svc.Dispatch(context.Background(), command.FromArgs(argv...)); err != nil {
			t.Errorf("Dispatch(%q) unexpected error = %v", argv, err)
		}
	}
	if len(h.executor.Calls) != 0 {
		t.Errorf("Execute() called %d times for built-ins", len(h.executor.Calls))
	}
}

func TestService_Dispatch_NameMustMatchExactly(t *testing.T) {
	h := newHarness(t)
	var resolved []string
	h.resolver.ResolveFunc = func(name string) (string, error) {
		resolved = append(resolved, name)
		return "", pathresolution.ErrNotFound
	}

	for _, name := range []string{"EXIT", "exit2", "cd/"} {
		if err := h.svc.Dispatch(context.Background(), command.FromArgs(name)); err != nil {
			t.Errorf("Dispatch(%q) unexpected error = %v", name, err)
		}
	}
	if want := []string{"EXIT", "exit2", "cd/"}; !reflect.DeepEqual(resolved, want) {
		t.Errorf("resolved = %q, want %q", resolved, want)
	}
}
