// Package engine implements the Quake-style console core: the command and
// variable registries, the bounded command history, and the line execution
// loop that ties them together. Front-ends submit raw text lines and
// receive outcomes; all rendering concerns stay on their side.
package engine

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"quakeconsole/internal/cvar"
	"quakeconsole/internal/history"
	"quakeconsole/internal/invoker"
	"quakeconsole/internal/logger"
	"quakeconsole/internal/registry"
	"quakeconsole/pkg/consoletypes"
)

// DefaultHistorySize is the history capacity used when no option overrides it.
const DefaultHistorySize = 100

// Engine is one console instance. Engines are explicitly constructed and
// passed to collaborators; there is no package-level singleton.
//
// Registration is expected to happen at setup time. Execute is synchronous
// and runs handlers on the calling goroutine; a handler that blocks,
// blocks the console.
type Engine struct {
	commands *registry.Registry[consoletypes.Invoker]
	cvars    *registry.Registry[consoletypes.Binding]
	history  *history.Buffer
	log      *log.Logger
}

type engineOptions struct {
	historySize int
	log         *log.Logger
	noBuiltins  bool
}

// Option configures an Engine at construction time.
type Option func(*engineOptions)

// WithHistorySize sets the history capacity. Zero disables history.
func WithHistorySize(n int) Option {
	return func(o *engineOptions) { o.historySize = n }
}

// WithLogger routes the engine's structured logging to l.
func WithLogger(l *log.Logger) Option {
	return func(o *engineOptions) { o.log = l }
}

// WithoutBuiltins skips binding the default commands (echo, help, listCmd,
// listCVars, runFile).
func WithoutBuiltins() Option {
	return func(o *engineOptions) { o.noBuiltins = true }
}

// NewEngine creates a console engine with the default commands bound.
func NewEngine(opts ...Option) *Engine {
	options := engineOptions{
		historySize: DefaultHistorySize,
		log:         logger.Logger,
	}
	for _, opt := range opts {
		opt(&options)
	}

	e := &Engine{
		commands: registry.New[consoletypes.Invoker](),
		cvars:    registry.New[consoletypes.Binding](),
		history:  history.NewBuffer(options.historySize),
		log:      options.log,
	}

	if !options.noBuiltins {
		e.bindBuiltins()
	}
	return e
}

// BindCommand registers fn under name. fn may be any non-variadic func
// whose parameters are token-convertible; an optional leading io.Writer
// parameter receives the output sink of the Execute call. Registration
// errors (invalid signature, duplicate name) are returned to the caller.
func (e *Engine) BindCommand(name string, fn any, help string) error {
	inv, err := invoker.New(fn)
	if err != nil {
		return fmt.Errorf("bind %s: %w", name, err)
	}
	if err := e.commands.Register(name, inv, help); err != nil {
		return fmt.Errorf("bind %s: %w", name, err)
	}
	logger.BindOperation(e.log, "command", name, "arity", inv.Arity())
	return nil
}

// BindMemberCommand registers a method value as a command. A Go method
// value already captures its receiver, so this is BindCommand kept under
// the name front-ends expect from the bind surface.
func (e *Engine) BindMemberCommand(name string, method any, help string) error {
	return e.BindCommand(name, method, help)
}

// BindRawCommand registers a handler that receives its argument tokens
// unconverted. Raw commands accept any arity; the default commands use
// this shape.
func (e *Engine) BindRawCommand(name string, fn func(sink io.Writer, args []string) error, help string) error {
	if fn == nil {
		return fmt.Errorf("bind %s: handler cannot be nil", name)
	}
	if err := e.commands.Register(name, rawInvoker(fn), help); err != nil {
		return fmt.Errorf("bind %s: %w", name, err)
	}
	logger.BindOperation(e.log, "command", name, "arity", "raw")
	return nil
}

// BindCVar registers ref, a pointer to caller-owned storage, as a console
// variable. The storage must outlive the engine; the engine only ever
// reads and writes through the pointer.
func (e *Engine) BindCVar(name string, ref any, help string) error {
	b, err := cvar.New(ref)
	if err != nil {
		return fmt.Errorf("bind %s: %w", name, err)
	}
	if err := e.cvars.Register(name, b, help); err != nil {
		return fmt.Errorf("bind %s: %w", name, err)
	}
	logger.BindOperation(e.log, "cvar", name)
	return nil
}

// UnregisterCommand removes a command, reporting whether it existed.
// Removing a name that was never bound is logged as a warning.
func (e *Engine) UnregisterCommand(name string) bool {
	if !e.commands.Unregister(name) {
		e.log.Warn("Unregister of unknown command", "name", name)
		return false
	}
	return true
}

// UnregisterCVar removes a console variable, reporting whether it existed.
// Removing a name that was never bound is logged as a warning.
func (e *Engine) UnregisterCVar(name string) bool {
	if !e.cvars.Unregister(name) {
		e.log.Warn("Unregister of unknown cvar", "name", name)
		return false
	}
	return true
}

// EnumerateCommands lists all commands sorted by name, for help output and
// autocompletion.
func (e *Engine) EnumerateCommands() []consoletypes.EntryInfo {
	return e.commands.Enumerate()
}

// EnumerateCVars lists all console variables sorted by name.
func (e *Engine) EnumerateCVars() []consoletypes.EntryInfo {
	return e.cvars.Enumerate()
}

// HistorySize returns the number of retained history lines.
func (e *Engine) HistorySize() int {
	return e.history.Size()
}

// HistoryAt returns the history line at index i, oldest first.
func (e *Engine) HistoryAt(i int) (string, bool) {
	return e.history.At(i)
}

// History returns a copy of all retained history lines, oldest first.
func (e *Engine) History() []string {
	return e.history.Entries()
}

// ClearHistory discards all retained history lines.
func (e *Engine) ClearHistory() {
	e.history.Clear()
}

// Execute runs one console line against sink. The first token is resolved
// as a command, then as a variable; remaining tokens become arguments or
// the assigned value. Every failure is reported as a single diagnostic
// line on sink and never escapes as an error. Any non-empty line is
// recorded to history, including failing ones, so the user can recall and
// fix a typo.
func (e *Engine) Execute(line string, sink io.Writer) consoletypes.Outcome {
	if sink == nil {
		sink = io.Discard
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return consoletypes.Outcome{Kind: consoletypes.OutcomeEmpty}
	}

	name, args := fields[0], fields[1:]
	outcome := e.dispatch(name, args, sink)

	e.history.Push(line)
	logger.Dispatch(e.log, name, outcome.Kind.String())
	return outcome
}

func (e *Engine) dispatch(name string, args []string, sink io.Writer) consoletypes.Outcome {
	if entry, ok := e.commands.Lookup(name); ok {
		if err := entry.Value.Invoke(sink, args); err != nil {
			fmt.Fprintf(sink, "[error] %s: %v\n", name, err)
			return consoletypes.Outcome{Kind: consoletypes.OutcomeCommandError, Name: name, Err: err}
		}
		return consoletypes.Outcome{Kind: consoletypes.OutcomeCommandRan, Name: name}
	}

	if entry, ok := e.cvars.Lookup(name); ok {
		if len(args) > 0 {
			raw := strings.Join(args, " ")
			if err := entry.Value.SetFromString(raw); err != nil {
				fmt.Fprintf(sink, "[error] %s: %v\n", name, err)
				return consoletypes.Outcome{Kind: consoletypes.OutcomeVarSetError, Name: name, Err: err}
			}
			return consoletypes.Outcome{Kind: consoletypes.OutcomeVarSet, Name: name}
		}
		fmt.Fprintf(sink, "%s = %s\n", name, entry.Value.GetAsString())
		return consoletypes.Outcome{Kind: consoletypes.OutcomeVarRead, Name: name}
	}

	err := &consoletypes.UnknownIdentifierError{Name: name}
	fmt.Fprintf(sink, "[error] %v\n", err)
	return consoletypes.Outcome{Kind: consoletypes.OutcomeUnknownIdentifier, Name: name, Err: err}
}

// rawInvoker adapts a variable-arity handler to consoletypes.Invoker.
type rawInvoker func(sink io.Writer, args []string) error

func (f rawInvoker) Invoke(sink io.Writer, tokens []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &consoletypes.InvocationError{Cause: fmt.Errorf("panic: %v", r)}
		}
	}()
	if err := f(sink, tokens); err != nil {
		return &consoletypes.InvocationError{Cause: err}
	}
	return nil
}
