package grammar

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned for blank symbols.
	ErrEmptyInput = errors.New("empty input")
	// ErrAccidentalDepth is returned when a note carries more than two accidentals.
	ErrAccidentalDepth = errors.New("accidental depth exceeds two")
	// ErrUnknownName is returned when a scale or mode phrase names nothing known.
	ErrUnknownName = errors.New("unknown scale or mode name")
)

// ParseError describes malformed notation text. Pos is a rune offset into
// the normalized input.
type ParseError struct {
	Input string
	Pos   int
	Msg   string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("parse: %s", e.Msg)
	}
	return fmt.Sprintf("parse %q: %s at position %d", e.Input, e.Msg, e.Pos)
}

func (e *ParseError) Unwrap() error { return e.Err }

func newError(input string, pos int, err error, format string, args ...any) *ParseError {
	return &ParseError{Input: input, Pos: pos, Msg: fmt.Sprintf(format, args...), Err: err}
}
