package calc

import (
	"errors"
	"fmt"
)

var (
	// ErrParse matches every *ParseError via errors.Is.
	ErrParse = errors.New("not a number")
	// ErrUnknownLabel is returned by ParseLabel for labels no button carries.
	ErrUnknownLabel = errors.New("unknown button label")
)

// ParseError reports display text that could not be read as a float64
// when an operator, equals or a unary function needed it.
type ParseError struct {
	Display string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Display == "" {
		return "parse: empty display"
	}
	return fmt.Sprintf("parse %q: %v", e.Display, ErrParse)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }
