package command

import (
	"fmt"
	"io"
)

// Spawn is everything the process executor needs to start one external command.
type Spawn struct {
	Path string   // Resolved absolute path of the executable
	Argv []string // Full argument vector; Argv[0] is the name the user typed
	Env  []string // Environment snapshot in KEY=VALUE form

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// StatusCommandNotFound is reported for a child whose image could not be started.
const StatusCommandNotFound = 127

/*
ExitRequest is returned by the exit built-in. It travels up through the
interpreter to the CLI, which terminates the process with Code.
*/
type ExitRequest struct {
	Code int
}

func (e *ExitRequest) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}
