package lineparsing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AntonioJCosta/hsh/internal/core/domain/command"
)

// initialTokenCapacity is the span storage a fresh line starts with.
const initialTokenCapacity = 15

// ErrTokenLimit is returned when a line holds more tokens than the parser allows.
var ErrTokenLimit = errors.New("token limit exceeded")

/*
Sanitize removes a trailing comment and then a single trailing newline.

A '#' starts a comment only when it is unescaped, outside a double-quoted
region, and either the first character of the line or directly after a
space. "echo hi#keep" and "echo\t#x" are left alone.
*/
func Sanitize(raw string) string {
	line := raw
	if cut := commentStart(raw); cut >= 0 {
		line = raw[:cut]
	}
	return strings.TrimSuffix(line, "\n")
}

// commentStart returns the index of the comment-opening '#', or -1.
func commentStart(line string) int {
	inQuotes := false
	var prev byte

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"' && prev != '\\':
			inQuotes = !inQuotes
		case ch == '#' && prev != '\\' && !inQuotes:
			if i == 0 || prev == ' ' {
				return i
			}
		}
		prev = ch
	}
	return -1
}

/*
Tokenize splits line on spaces, tabs, carriage returns and newlines. Tokens
are recorded as spans into line; nothing is copied. Quotes carry no meaning
here.

Span storage starts at initialTokenCapacity and grows by half again each time
it fills. With limit > 0, a line with more than limit tokens fails with
ErrTokenLimit.
*/
func Tokenize(line string, limit int) (command.Vector, error) {
	spans := make([]command.Span, 0, initialTokenCapacity)
	start := -1

	for i := 0; i <= len(line); i++ {
		if i < len(line) && !isDelimiter(line[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start < 0 {
			continue
		}
		if limit > 0 && len(spans) >= limit {
			return command.Vector{}, fmt.Errorf("%w: more than %d tokens", ErrTokenLimit, limit)
		}
		spans = appendSpan(spans, command.Span{Start: start, End: i})
		start = -1
	}

	return command.NewVector(line, spans), nil
}

func appendSpan(spans []command.Span, s command.Span) []command.Span {
	if len(spans) == cap(spans) {
		grown := make([]command.Span, len(spans), growCapacity(cap(spans)))
		copy(grown, spans)
		spans = grown
	}
	return append(spans, s)
}

// growCapacity returns the next span capacity: 1.5x, and always at least one more.
func growCapacity(current int) int {
	next := current * 3 / 2
	if next <= current {
		next = current + 1
	}
	return next
}

func isDelimiter(ch byte) bool {
	switch ch {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}
