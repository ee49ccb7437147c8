package consoletypes

import "fmt"

// ArityError is returned when a command receives the wrong number of
// argument tokens. The handler is not invoked.
type ArityError struct {
	Expected int
	Got      int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("expected %d argument(s), got %d", e.Expected, e.Got)
}

// ArgParseError is returned when an argument token cannot be converted to
// the parameter type declared by the handler. Index is zero-based over the
// argument tokens. The handler is not invoked.
type ArgParseError struct {
	Index int
	Raw   string
	Cause error
}

func (e *ArgParseError) Error() string {
	return fmt.Sprintf("argument %d (%q): %v", e.Index+1, e.Raw, e.Cause)
}

func (e *ArgParseError) Unwrap() error { return e.Cause }

// InvocationError wraps an error raised by the command handler itself,
// including recovered panics. The engine reports it as a diagnostic
// instead of letting it escape.
type InvocationError struct {
	Cause error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("command failed: %v", e.Cause)
}

func (e *InvocationError) Unwrap() error { return e.Cause }

// ValueParseError is returned when a console variable assignment fails to
// parse. The bound storage is left unchanged.
type ValueParseError struct {
	Raw   string
	Cause error
}

func (e *ValueParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %v", e.Raw, e.Cause)
}

func (e *ValueParseError) Unwrap() error { return e.Cause }

// UnknownIdentifierError is returned when the first token of a line matches
// neither a registered command nor a registered variable.
type UnknownIdentifierError struct {
	Name string
}

func (e *UnknownIdentifierError) Error() string {
	return fmt.Sprintf("unknown identifier: %s", e.Name)
}
