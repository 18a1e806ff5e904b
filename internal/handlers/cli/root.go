package cli

import (
	"io"

	"github.com/AntonioJCosta/hsh/internal/core/ports"
	"github.com/spf13/cobra"
)

// Options are the process-level collaborators the root command wires together.
type Options struct {
	// Argv0 is the name the interpreter was invoked as.
	Argv0  string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Interactive is true when Stdin is a terminal. It only matters when no
	// script is given.
	Interactive bool
	// ColorCapable is true when the output streams can render color.
	ColorCapable bool

	Env      ports.Environment
	Executor ports.ProcessExecutor
}

type rootFlags struct {
	configPath string
	verbose    bool
	noColor    bool
}

func NewRootCommand(version string, opts Options) *cobra.Command {
	var flags rootFlags

	rootCmd := &cobra.Command{
		Use:   "hsh [script]",
		Short: "hsh is a minimal command interpreter.",
		Long: `hsh reads command lines from a terminal, a pipe or a script file,
splits them on whitespace and runs either a built-in (cd, env, exit, setenv,
unsetenv, help) or the first matching program found in /bin and then $PATH.`,
		Version:       version,
		Args:          maxOneScript,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRootCmd(cmd, args, opts, flags)
		},
	}

	rootCmd.SetIn(opts.Stdin)
	rootCmd.SetOut(opts.Stdout)
	rootCmd.SetErr(opts.Stderr)
	rootCmd.SetFlagErrorFunc(usageError)

	rootCmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "Settings file (default $HSH_CONFIG or ~/.hshrc.yaml).")
	rootCmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Trace command resolution and exit statuses on stderr.")
	rootCmd.Flags().BoolVar(&flags.noColor, "no-color", false, "Disable colored prompt and error messages.")

	return rootCmd
}
