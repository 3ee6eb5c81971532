package lexer

import "fmt"

// SyntaxError describes a primitive that failed to match at Position.
type SyntaxError struct {
	Expected string
	Found    string
	Position int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("expected %s at position %d, got %s", e.Expected, e.Position, e.Found)
}

const snippetLen = 16

// errorAt builds a SyntaxError for the current position without consuming input.
func (l *Lexer) errorAt(expected string) *SyntaxError {
	return &SyntaxError{
		Expected: expected,
		Found:    l.snippet(),
		Position: l.pos,
	}
}

func (l *Lexer) snippet() string {
	if l.pos >= l.length {
		return "end of input"
	}
	rest := l.Remaining()
	if len(rest) > snippetLen {
		rest = rest[:snippetLen] + "..."
	}
	return fmt.Sprintf("%q", rest)
}
