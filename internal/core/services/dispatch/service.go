package dispatch

import (
	"context"
	"errors"
	"io"
	"io/fs"

	"github.com/AntonioJCosta/hsh/internal/core/domain/command"
	"github.com/AntonioJCosta/hsh/internal/core/ports"
	"github.com/AntonioJCosta/hsh/internal/logger"
)

// Config carries the collaborators of a dispatch service.
type Config struct {
	// Argv0 is the interpreter's own name, used as the prefix of error messages.
	Argv0    string
	Env      ports.Environment
	Resolver ports.PathResolver
	Executor ports.ProcessExecutor
	Logger   *logger.Logger
	// Stdin is handed to external commands.
	Stdin io.Reader
}

type service struct {
	argv0    string
	env      ports.Environment
	resolver ports.PathResolver
	executor ports.ProcessExecutor
	log      *logger.Logger
	stdin    io.Reader

	builtins   map[string]builtin
	lastStatus int
}

// NewService creates a new dispatch service.
// It panics if any collaborator is nil.
func NewService(cfg Config) ports.Dispatcher {
	if cfg.Env == nil || cfg.Resolver == nil || cfg.Executor == nil || cfg.Logger == nil {
		panic("dispatch: environment, resolver, executor and logger are required")
	}
	s := &service{
		argv0:    cfg.Argv0,
		env:      cfg.Env,
		resolver: cfg.Resolver,
		executor: cfg.Executor,
		log:      cfg.Logger,
		stdin:    cfg.Stdin,
	}
	s.builtins = defaultBuiltins()
	return s
}

/*
Dispatch implements the ports.Dispatcher interface.

Built-ins run in process. Anything else is resolved and spawned with the
user's original first token kept as argv[0]. A command that cannot be
resolved or started is reported and costs only its own status (127); the
returned error is reserved for the exit built-in.
*/
func (s *service) Dispatch(ctx context.Context, argv command.Vector) error {
	if argv.Empty() {
		return nil
	}

	if b, ok := s.builtins[argv.Name()]; ok {
		status, err := b.run(s, argv.Operands())
		s.lastStatus = status
		return err
	}

	s.lastStatus = s.runExternal(ctx, argv)
	return nil
}

// LastStatus implements the ports.Dispatcher interface.
func (s *service) LastStatus() int {
	return s.lastStatus
}

func (s *service) runExternal(ctx context.Context, argv command.Vector) int {
	name := argv.Name()

	path, err := s.resolver.Resolve(name)
	if err != nil {
		s.log.VerboseErrf(logger.DetailColor, "resolve: %v", err)
		s.log.Errf(logger.ErrorColor, "%s: No such file or directory", s.argv0)
		return command.StatusCommandNotFound
	}
	s.log.VerboseErrf(logger.DetailColor, "exec: %s as %q", path, name)

	status, err := s.executor.Execute(ctx, command.Spawn{
		Path:   path,
		Argv:   argv.Argv(),
		Env:    s.env.Environ(),
		Stdin:  s.stdin,
		Stdout: s.log.Stdout,
		Stderr: s.log.Stderr,
	})
	if err != nil {
		s.log.VerboseErrf(logger.DetailColor, "exec: %v", err)
		if errors.Is(err, fs.ErrNotExist) {
			s.log.Errf(logger.ErrorColor, "%s: No such file or directory", s.argv0)
		} else {
			s.log.Errf(logger.ErrorColor, "Command not found.")
		}
		return command.StatusCommandNotFound
	}

	s.log.VerboseErrf(logger.DetailColor, "exec: %s exited with status %d", name, status)
	return status
}
