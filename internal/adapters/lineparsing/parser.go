package lineparsing

import (
	"github.com/AntonioJCosta/hsh/internal/core/domain/command"
	"github.com/AntonioJCosta/hsh/internal/core/ports"
)

// Parser sanitizes and tokenizes raw command lines.
type Parser struct {
	tokenLimit int
}

// NewParser creates a new Parser. A tokenLimit of 0 means unlimited.
func NewParser(tokenLimit int) ports.LineParser {
	return &Parser{tokenLimit: tokenLimit}
}

// Parse strips the comment and trailing newline from raw, then splits what
// is left on whitespace.
func (p *Parser) Parse(raw string) (command.Vector, error) {
	return Tokenize(Sanitize(raw), p.tokenLimit)
}
