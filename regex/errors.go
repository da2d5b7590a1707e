package regex

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedPattern is returned for structurally broken patterns: an
	// incomplete escape, a '+' with nothing to repeat or an unterminated
	// bracket group.
	ErrMalformedPattern = errors.New("malformed pattern")

	// ErrUnsupportedEscape is returned for any escape other than \d and \w.
	ErrUnsupportedEscape = errors.New("unsupported escape")

	// ErrUnsupportedPattern is returned for pattern shapes the matcher does not recognize.
	ErrUnsupportedPattern = errors.New("unsupported pattern")
)

// PatternError describes why a pattern was rejected. It unwraps to one of the
// Err* sentinels above.
type PatternError struct {
	Pattern string
	Pos     int
	Escape  byte // byte following '\' for ErrUnsupportedEscape
	kind    error
	message string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("%v %q at %d: %s", e.kind, e.Pattern, e.Pos, e.message)
}

func (e *PatternError) Unwrap() error {
	return e.kind
}

func newPatternError(kind error, pattern string, i int, message string) *PatternError {
	return &PatternError{Pattern: pattern, Pos: i, kind: kind, message: message}
}

func newEscapeError(pattern string, i int) *PatternError {
	c := pattern[i+1]
	return &PatternError{
		Pattern: pattern,
		Pos:     i,
		Escape:  c,
		kind:    ErrUnsupportedEscape,
		message: fmt.Sprintf(`\%c is not supported, only \d and \w are`, c),
	}
}
