// Package consoletypes defines the shared types for the quakeconsole engine.
// It contains the execution outcome model, the error taxonomy produced while
// dispatching a console line, and the interfaces implemented by type-erased
// command invokers and variable bindings.
package consoletypes

// OutcomeKind classifies the result of executing one console line.
type OutcomeKind int

const (
	// OutcomeEmpty means the line contained no tokens. Nothing was
	// dispatched and nothing was recorded to history.
	OutcomeEmpty OutcomeKind = iota
	// OutcomeCommandRan means a command was found and its handler ran.
	OutcomeCommandRan
	// OutcomeCommandError means a command was found but invocation failed
	// (arity mismatch, argument parse failure, or handler error).
	OutcomeCommandError
	// OutcomeVarSet means a console variable was assigned a new value.
	OutcomeVarSet
	// OutcomeVarSetError means a console variable assignment failed to parse.
	OutcomeVarSetError
	// OutcomeVarRead means a console variable's current value was printed.
	OutcomeVarRead
	// OutcomeUnknownIdentifier means the first token matched neither a
	// command nor a variable.
	OutcomeUnknownIdentifier
)

// String returns a short name for the outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeEmpty:
		return "empty"
	case OutcomeCommandRan:
		return "command-ran"
	case OutcomeCommandError:
		return "command-error"
	case OutcomeVarSet:
		return "var-set"
	case OutcomeVarSetError:
		return "var-set-error"
	case OutcomeVarRead:
		return "var-read"
	case OutcomeUnknownIdentifier:
		return "unknown-identifier"
	default:
		return "invalid"
	}
}

// Outcome reports what happened to one executed console line.
type Outcome struct {
	Kind OutcomeKind
	// Name is the identifier the line was dispatched to. Empty for
	// OutcomeEmpty; the unresolved first token for OutcomeUnknownIdentifier.
	Name string
	// Err carries the typed failure for the error kinds, nil otherwise.
	Err error
}

// Failed reports whether the outcome is one of the failure kinds.
func (o Outcome) Failed() bool {
	return o.Kind == OutcomeCommandError || o.Kind == OutcomeVarSetError ||
		o.Kind == OutcomeUnknownIdentifier
}

// EntryInfo is one row of a registry listing, used by help output and
// autocompletion front-ends.
type EntryInfo struct {
	Name string
	Help string
}
