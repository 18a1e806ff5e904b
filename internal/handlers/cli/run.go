package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/AntonioJCosta/hsh/internal/adapters/lineparsing"
	"github.com/AntonioJCosta/hsh/internal/adapters/linesource"
	"github.com/AntonioJCosta/hsh/internal/adapters/pathresolution"
	"github.com/AntonioJCosta/hsh/internal/adapters/settingsfile"
	"github.com/AntonioJCosta/hsh/internal/core/domain/command"
	"github.com/AntonioJCosta/hsh/internal/core/domain/settings"
	"github.com/AntonioJCosta/hsh/internal/core/ports"
	"github.com/AntonioJCosta/hsh/internal/core/services/dispatch"
	"github.com/AntonioJCosta/hsh/internal/core/services/interpreter"
	"github.com/AntonioJCosta/hsh/internal/logger"
	"github.com/spf13/cobra"
)

// Process exit statuses chosen by the CLI itself.
const (
	StatusFatal    = 1
	StatusUsage    = 2
	StatusCantOpen = 127
)

var (
	// ErrUsage marks bad invocations: too many operands or unknown flags.
	ErrUsage = errors.New("usage error")
	// ErrCantOpen marks a script that could not be opened. It has already
	// been reported when it is returned.
	ErrCantOpen = errors.New("cannot open script")
)

/*
Execute runs rootCmd and turns its outcome into a process exit status,
reporting anything that was not reported already.
*/
func Execute(ctx context.Context, rootCmd *cobra.Command, argv0 string) int {
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	stderr := rootCmd.ErrOrStderr()
	var exitReq *command.ExitRequest
	switch {
	case errors.As(err, &exitReq):
		return exitReq.Code
	case errors.Is(err, ErrCantOpen):
		return StatusCantOpen
	case errors.Is(err, ErrUsage):
		fmt.Fprintf(stderr, "%s: %v\n", argv0, err)
		fmt.Fprint(stderr, rootCmd.UsageString())
		return StatusUsage
	default:
		fmt.Fprintf(stderr, "%s: %v\n", argv0, err)
		return StatusFatal
	}
}

func maxOneScript(_ *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("%w: accepts at most one script, received %d arguments", ErrUsage, len(args))
	}
	return nil
}

func usageError(_ *cobra.Command, err error) error {
	return fmt.Errorf("%w: %v", ErrUsage, err)
}

// runRootCmd contains the core logic for the root command.
func runRootCmd(cmd *cobra.Command, args []string, opts Options, flags rootFlags) error {
	if opts.Env == nil || opts.Executor == nil {
		return fmt.Errorf("environment and process executor must be provided")
	}

	log := &logger.Logger{
		Stdout:  cmd.OutOrStdout(),
		Stderr:  cmd.ErrOrStderr(),
		Verbose: flags.verbose,
	}
	conf := loadSettings(flags.configPath, log)
	log.Color = opts.ColorCapable && conf.ColorEnabled() && !flags.noColor

	source, closeSource, err := openSource(args, cmd.InOrStdin(), opts.Argv0, log)
	if err != nil {
		return err
	}
	defer closeSource()

	dispatcher := dispatch.NewService(dispatch.Config{
		Argv0:    opts.Argv0,
		Env:      opts.Env,
		Resolver: pathresolution.NewResolver(opts.Env, conf.FallbackDir),
		Executor: opts.Executor,
		Logger:   log,
		Stdin:    cmd.InOrStdin(),
	})

	in := interpreter.New(interpreter.Config{
		Source:      source,
		Parser:      lineparsing.NewParser(conf.MaxTokens),
		Dispatcher:  dispatcher,
		Logger:      log,
		Prompt:      conf.Prompt,
		Interactive: len(args) == 0 && opts.Interactive,
	})

	err = in.Run(contextOf(cmd))
	log.VerboseErrf(logger.DetailColor, "last status: %d", in.LastStatus())
	return err
}

// loadSettings reads the settings file. A broken file is reported and the
// defaults are used instead.
func loadSettings(configPath string, log *logger.Logger) settings.Settings {
	if configPath == "" {
		configPath = settingsfile.DefaultPath()
	}
	if configPath == "" {
		return settings.Default()
	}

	provider, err := settingsfile.NewYAMLProvider(configPath)
	if err != nil {
		return settings.Default()
	}
	conf, err := provider.GetSettings()
	if err != nil {
		log.Errf(logger.WarningColor, "Warning: %v. Continuing with default settings.", err)
		return settings.Default()
	}
	log.VerboseErrf(logger.DetailColor, "settings: loaded %s", configPath)
	return conf
}

// openSource picks the script named in args, or stdin when there is none.
func openSource(args []string, stdin io.Reader, argv0 string, log *logger.Logger) (ports.LineSource, func(), error) {
	if len(args) == 0 {
		return linesource.NewReaderSource(stdin), func() {}, nil
	}

	script, err := linesource.OpenScript(args[0])
	if err != nil {
		log.VerboseErrf(logger.DetailColor, "%v", err)
		log.Errf(logger.ErrorColor, "%s: 0: Can't open %s", argv0, args[0])
		return nil, nil, fmt.Errorf("%w: %s", ErrCantOpen, args[0])
	}
	return script, func() { _ = script.Close() }, nil
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
