package ports

import "github.com/AntonioJCosta/hsh/internal/core/domain/command"

/*
LineParser turns one raw line into an argument vector: comment and newline
stripping followed by whitespace tokenization.
This is a driven port, representing a domain capability.
*/
type LineParser interface {
	Parse(raw string) (command.Vector, error)
}
