/*
Package command defines the core domain entities for a single command line:
the argument vector produced by the tokenizer and the request handed to the
process executor.
*/
package command

import "strings"

// Span marks one token inside the owned line as the half-open range [Start, End).
type Span struct {
	Start int
	End   int
}

/*
Vector is the argument vector for one command line. It owns the sanitized
line and records each token as a Span into it, so tokens are never copied
until a caller asks for them.

Reading past the last token yields the sentinel: Arg returns ("", false).
The zero Vector is an empty, terminated vector.
*/
type Vector struct {
	line  string
	spans []Span
}

// NewVector builds a Vector over line from spans. Spans must lie within line.
func NewVector(line string, spans []Span) Vector {
	return Vector{line: line, spans: spans}
}

// FromArgs builds a Vector from already split arguments. Mostly useful in tests.
func FromArgs(args ...string) Vector {
	line := strings.Join(args, " ")
	spans := make([]Span, 0, len(args))
	offset := 0
	for _, a := range args {
		spans = append(spans, Span{Start: offset, End: offset + len(a)})
		offset += len(a) + 1
	}
	return Vector{line: line, spans: spans}
}

// Len is the number of tokens before the sentinel.
func (v Vector) Len() int {
	return len(v.spans)
}

// Empty reports whether the first element is the sentinel.
func (v Vector) Empty() bool {
	return len(v.spans) == 0
}

// Arg returns token i, or ("", false) once i reaches the sentinel.
func (v Vector) Arg(i int) (string, bool) {
	if i < 0 || i >= len(v.spans) {
		return "", false
	}
	s := v.spans[i]
	return v.line[s.Start:s.End], true
}

// Name is the command name, the first token.
func (v Vector) Name() string {
	name, _ := v.Arg(0)
	return name
}

// Operands are the tokens after the command name.
func (v Vector) Operands() []string {
	if len(v.spans) <= 1 {
		return nil
	}
	return v.Argv()[1:]
}

// Argv copies every token out of the line, in order.
func (v Vector) Argv() []string {
	argv := make([]string, len(v.spans))
	for i, s := range v.spans {
		argv[i] = v.line[s.Start:s.End]
	}
	return argv
}

// Spans exposes the token ranges. The returned slice must not be modified.
func (v Vector) Spans() []Span {
	return v.spans
}
