package dispatch

import (
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/hsh/internal/core/domain/command"
	"github.com/AntonioJCosta/hsh/internal/logger"
	"github.com/olekukonko/tablewriter"
)

// statusIllegalNumber is what exit reports for a non-numeric operand.
const statusIllegalNumber = 2

type builtin struct {
	usage       string
	description string
	run         func(s *service, args []string) (int, error)
}

func defaultBuiltins() map[string]builtin {
	return map[string]builtin{
		"cd": {
			usage:       "cd DIR",
			description: "Change the working directory; ~ means $HOME.",
			run:         builtinCd,
		},
		"env": {
			usage:       "env",
			description: "Print the environment, one entry per line.",
			run:         builtinEnv,
		},
		"exit": {
			usage:       "exit [STATUS]",
			description: "Leave the interpreter with STATUS (default 0).",
			run:         builtinExit,
		},
		"setenv": {
			usage:       "setenv NAME VALUE",
			description: "Set an environment variable for later commands.",
			run:         builtinSetenv,
		},
		"unsetenv": {
			usage:       "unsetenv NAME",
			description: "Remove an environment variable.",
			run:         builtinUnsetenv,
		},
		"help": {
			usage:       "help",
			description: "List the built-in commands.",
			run:         builtinHelp,
		},
	}
}

// builtinCd needs a target: with none it refuses rather than going home.
func builtinCd(s *service, args []string) (int, error) {
	if len(args) == 0 {
		s.log.Errf(logger.ErrorColor, "cd: missing argument")
		return 1, nil
	}

	target := args[0]
	if target == "~" {
		target, _ = s.env.Get("HOME")
	}

	if err := os.Chdir(target); err != nil {
		s.log.VerboseErrf(logger.DetailColor, "cd: %v", err)
		s.log.Errf(logger.ErrorColor, "cd: No such file or directory")
		return 1, nil
	}
	return 0, nil
}

func builtinEnv(s *service, _ []string) (int, error) {
	for _, entry := range s.env.Environ() {
		s.log.Outf(nil, "%s", entry)
	}
	return 0, nil
}

/*
builtinExit asks the read loop to stop. The status is truncated to 8 bits the
way the kernel truncates it; a non-numeric operand is rejected with status 2
instead of being read as 0.
*/
func builtinExit(s *service, args []string) (int, error) {
	if len(args) == 0 {
		return 0, &command.ExitRequest{Code: 0}
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		s.log.Errf(logger.ErrorColor, "exit: Illegal number: %s", args[0])
		return statusIllegalNumber, &command.ExitRequest{Code: statusIllegalNumber}
	}
	code := n & 0xff
	return code, &command.ExitRequest{Code: code}
}

func builtinSetenv(s *service, args []string) (int, error) {
	if len(args) != 2 {
		s.log.Errf(logger.ErrorColor, "setenv: usage: setenv NAME VALUE")
		return 1, nil
	}
	if err := s.env.Set(args[0], args[1]); err != nil {
		s.log.Errf(logger.ErrorColor, "setenv: %v", err)
		return 1, nil
	}
	return 0, nil
}

func builtinUnsetenv(s *service, args []string) (int, error) {
	if len(args) != 1 {
		s.log.Errf(logger.ErrorColor, "unsetenv: usage: unsetenv NAME")
		return 1, nil
	}
	if err := s.env.Unset(args[0]); err != nil {
		s.log.Errf(logger.ErrorColor, "unsetenv: %v", err)
		return 1, nil
	}
	return 0, nil
}

func builtinHelp(s *service, _ []string) (int, error) {
	names := make([]string, 0, len(s.builtins))
	for name := range s.builtins {
		names = append(names, name)
	}
	sort.Strings(names)

	s.log.Outf(logger.HeaderColor, "Built-in commands:")

	table := tablewriter.NewWriter(s.log.Stdout)
	table.SetHeader([]string{"Name", "Usage", "Description"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, name := range names {
		b := s.builtins[name]
		table.Append([]string{name, b.usage, b.description})
	}
	table.Render()

	s.log.Outf(logger.InfoColor, "Other commands are looked up in: %s", strings.Join(s.resolver.SearchPath(), ":"))
	return 0, nil
}
