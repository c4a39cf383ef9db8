package parser

import (
	"errors"
	"fmt"
)

// ErrMalformedMarkup is matched by every MalformedMarkupError.
var ErrMalformedMarkup = errors.New("malformed markup")

// MalformedMarkupError reports markup that is not well-formed or lacks a
// mandatory element.
type MalformedMarkupError struct {
	Err    error
	Reason string
	Line   int
}

func (e *MalformedMarkupError) Error() string {
	msg := "malformed markup"
	if e.Line > 0 {
		msg = fmt.Sprintf("%s at line %d", msg, e.Line)
	}

	if e.Reason != "" {
		msg += ": " + e.Reason
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap returns the underlying decoder error, if any.
func (e *MalformedMarkupError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrMalformedMarkup.
func (e *MalformedMarkupError) Is(target error) bool {
	return target == ErrMalformedMarkup
}

// UnknownElementError reports an element inside the template text that is
// not one of the recognized node variants.
type UnknownElementError struct {
	Tag  string
	Line int
}

func (e *UnknownElementError) Error() string {
	return fmt.Sprintf("unknown element <%s> at line %d", e.Tag, e.Line)
}
