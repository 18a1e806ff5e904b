/*
Package interpreter runs the read loop: read a line, sanitize and tokenize
it, dispatch it, repeat. One line is finished completely before the next is
read.
*/
package interpreter

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/AntonioJCosta/hsh/internal/core/ports"
	"github.com/AntonioJCosta/hsh/internal/logger"
)

// Config carries the collaborators of an Interpreter.
type Config struct {
	Source     ports.LineSource
	Parser     ports.LineParser
	Dispatcher ports.Dispatcher
	Logger     *logger.Logger

	// Prompt is printed before every read when Interactive is set.
	Prompt      string
	Interactive bool
}

// Interpreter is the prompt loop.
type Interpreter struct {
	source      ports.LineSource
	parser      ports.LineParser
	dispatcher  ports.Dispatcher
	log         *logger.Logger
	prompt      string
	interactive bool
}

// New creates a new Interpreter.
// It panics if the source, parser, dispatcher or logger is nil.
func New(cfg Config) *Interpreter {
	if cfg.Source == nil || cfg.Parser == nil || cfg.Dispatcher == nil || cfg.Logger == nil {
		panic("interpreter: source, parser, dispatcher and logger are required")
	}
	return &Interpreter{
		source:      cfg.Source,
		parser:      cfg.Parser,
		dispatcher:  cfg.Dispatcher,
		log:         cfg.Logger,
		prompt:      cfg.Prompt,
		interactive: cfg.Interactive,
	}
}

/*
Run reads and executes lines until input ends.

It returns nil at end of input, the *command.ExitRequest produced by the exit
built-in, or an error when a line cannot be read or tokenized. Every other
failure is confined to its own line.
*/
func (in *Interpreter) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if in.interactive {
			in.log.Prompt(in.prompt)
		}

		raw, err := in.source.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("reading command line: %w", err)
		}

		argv, err := in.parser.Parse(raw)
		if err != nil {
			return fmt.Errorf("parsing command line: %w", err)
		}

		if err := in.dispatcher.Dispatch(ctx, argv); err != nil {
			return err
		}
	}
}

// LastStatus is the exit status of the most recent command.
func (in *Interpreter) LastStatus() int {
	return in.dispatcher.LastStatus()
}
