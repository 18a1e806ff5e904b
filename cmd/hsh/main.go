package main

import (
	"context"
	"os"

	"github.com/AntonioJCosta/hsh/internal/adapters/linesource"
	"github.com/AntonioJCosta/hsh/internal/adapters/oscommand"
	"github.com/AntonioJCosta/hsh/internal/handlers/cli"
	"github.com/AntonioJCosta/hsh/internal/repositories/environment"
)

// Version is set at build time
var Version = "dev"

func main() {
	argv0 := "hsh"
	if len(os.Args) > 0 && os.Args[0] != "" {
		argv0 = os.Args[0]
	}

	rootCmd := cli.NewRootCommand(Version, cli.Options{
		Argv0:        argv0,
		Stdin:        os.Stdin,
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
		Interactive:  linesource.IsTerminal(os.Stdin),
		ColorCapable: linesource.IsTerminal(os.Stdout) && linesource.IsTerminal(os.Stderr),
		Env:          environment.NewFromOS(),
		Executor:     oscommand.NewProcessExecutor(),
	})

	os.Exit(cli.Execute(context.Background(), rootCmd, argv0))
}
