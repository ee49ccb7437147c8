package consoletypes

import "io"

// Invoker is the type-erased form of a registered command. Implementations
// convert argument tokens to the handler's declared parameter types and run
// it, or return one of the taxonomy errors without invoking it.
type Invoker interface {
	// Invoke parses tokens and runs the handler exactly once. sink is the
	// output destination of the current Execute call and is never nil.
	Invoke(sink io.Writer, tokens []string) error
}

// Binding is the type-erased read/write accessor of a console variable.
// The binding references caller-owned storage and never copies it; the
// storage must outlive the binding.
type Binding interface {
	// GetAsString formats the current value of the bound storage.
	GetAsString() string
	// SetFromString parses raw into the bound type and overwrites the
	// storage in place. On parse failure the storage is left unchanged and
	// a *ValueParseError is returned.
	SetFromString(raw string) error
}
