package timefmt

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPattern reports a pattern that contains an unknown token or an unterminated quote.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrContradiction reports a pattern mixing 24-hour tokens with a meridiem marker.
	ErrContradiction = errors.New("contradictory pattern")
	// ErrMismatch reports text that does not follow the pattern.
	ErrMismatch = errors.New("text does not match pattern")
	// ErrOutOfRange reports a field value outside its calendar range.
	ErrOutOfRange = errors.New("value out of range")
)

// Error describes a pattern compilation or parse failure.
type Error struct {
	Pattern string
	Input   string
	Detail  string
	Err     error
}

func newError(pattern, input string, err error, format string, args ...any) *Error {
	return &Error{Pattern: pattern, Input: input, Detail: fmt.Sprintf(format, args...), Err: err}
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Input != "" {
		return fmt.Sprintf("timefmt: %v: parsing %q with %q: %s", e.Err, e.Input, e.Pattern, e.Detail)
	}
	return fmt.Sprintf("timefmt: %v: %q: %s", e.Err, e.Pattern, e.Detail)
}

// Unwrap exposes the sentinel error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
