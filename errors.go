package groundmodel

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidModel reports a structural violation: mismatched lengths, a bad
	// half-space sentinel or non-positive values.
	ErrInvalidModel = errors.New("groundmodel: invalid model")

	// ErrParse reports malformed or truncated model text.
	ErrParse = errors.New("groundmodel: parse error")

	// ErrDomain reports a derived quantity that is mathematically undefined,
	// e.g. Poisson's ratio with vp == vs.
	ErrDomain = errors.New("groundmodel: undefined derived quantity")

	// ErrBadArgument reports an invalid argument to a derived computation.
	ErrBadArgument = errors.New("groundmodel: invalid argument")
)

// ParseError carries the location of a failure while reading model text.
// It matches ErrParse and its cause with errors.Is.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	path := e.Path
	if path == "" {
		path = "<input>"
	}
	if e.Line > 0 {
		return fmt.Sprintf("groundmodel: parse %s:%d: %v", path, e.Line, e.Err)
	}
	return fmt.Sprintf("groundmodel: parse %s: %v", path, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidModel}, args...)...)
}

func domainf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrDomain}, args...)...)
}

func badArgf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrBadArgument}, args...)...)
}
