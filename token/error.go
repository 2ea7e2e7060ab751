package token

import (
	"errors"
	"fmt"
)

// ErrSyntax is the sentinel every [ParseError] unwraps to.
var ErrSyntax = errors.New("luau: syntax error")

// ParseError is a diagnostic recorded while lexing. It is also the payload
// of error tokens, so it implements [Kind] as well as error.
type ParseError struct {
	Start   Position
	Message string
	End     Position // valid only when HasEnd is set
	HasEnd  bool
}

// NewParseError returns a ParseError spanning start to end.
func NewParseError(start Position, message string, end Position) ParseError {
	return ParseError{Start: start, Message: message, End: end, HasEnd: true}
}

// NewPointError returns a ParseError with no recorded end.
func NewPointError(start Position, message string) ParseError {
	return ParseError{Start: start, Message: message}
}

// Span returns the start and end of e. An error without a recorded end spans
// the single point at its start.
func (e ParseError) Span() (Position, Position) {
	if e.HasEnd {
		return e.Start, e.End
	}
	return e.Start, e.Start
}

// Error implements error.
func (e ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Start, e.Message)
}

// Unwrap returns [ErrSyntax].
func (e ParseError) Unwrap() error { return ErrSyntax }

// Text returns the empty string: diagnostics have no source spelling, even
// when they report a single unexpected character.
func (ParseError) Text() string { return "" }

func (ParseError) kind() {}
