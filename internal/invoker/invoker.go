// Package invoker wraps arbitrary Go functions so the console can call
// them from string tokens. The wrapper captures the parameter signature at
// bind time via reflection; at execute time it converts each token to the
// matching parameter type and calls the function exactly once, or reports
// a typed failure without calling it at all.
package invoker

import (
	"fmt"
	"io"
	"reflect"

	"quakeconsole/pkg/consoletypes"
	"quakeconsole/pkg/stringprocessing"
)

var (
	writerType = reflect.TypeOf((*io.Writer)(nil)).Elem()
	errorType  = reflect.TypeOf((*error)(nil)).Elem()
)

// Invoker is the type-erased wrapper around one registered handler.
// It implements consoletypes.Invoker.
type Invoker struct {
	fn         reflect.Value
	params     []reflect.Type
	wantsSink  bool
	returnsErr bool
}

// New builds an Invoker from fn, validating the whole signature up front so
// every unsupported shape is a bind-time error rather than an execute-time
// surprise. fn must be a non-variadic func; an optional first parameter of
// type io.Writer receives the current output sink and does not count as an
// argument; every remaining parameter must be convertible from a token
// (see stringprocessing.Supported); fn may return nothing or a single
// error.
func New(fn any) (*Invoker, error) {
	if fn == nil {
		return nil, fmt.Errorf("handler cannot be nil")
	}

	v := reflect.ValueOf(fn)
	t := v.Type()
	if t.Kind() != reflect.Func {
		return nil, fmt.Errorf("handler must be a func, got %s", t.Kind())
	}
	if v.IsNil() {
		return nil, fmt.Errorf("handler cannot be nil")
	}
	if t.IsVariadic() {
		return nil, fmt.Errorf("variadic handlers are not supported")
	}

	switch t.NumOut() {
	case 0:
	case 1:
		if t.Out(0) != errorType {
			return nil, fmt.Errorf("handler may only return error, got %s", t.Out(0))
		}
	default:
		return nil, fmt.Errorf("handler may return at most one value, got %d", t.NumOut())
	}

	inv := &Invoker{fn: v, returnsErr: t.NumOut() == 1}

	start := 0
	if t.NumIn() > 0 && t.In(0) == writerType {
		inv.wantsSink = true
		start = 1
	}
	for i := start; i < t.NumIn(); i++ {
		pt := t.In(i)
		if !stringprocessing.Supported(pt) {
			return nil, fmt.Errorf("parameter %d has unsupported type %s", i, pt)
		}
		inv.params = append(inv.params, pt)
	}

	return inv, nil
}

// Arity returns the number of argument tokens the handler expects,
// excluding the optional sink parameter.
func (inv *Invoker) Arity() int {
	return len(inv.params)
}

// Invoke converts tokens and calls the handler. Argument conversion stops
// at the first failing token and the handler is never partially invoked.
// A panic inside the handler or a returned error is wrapped in
// *consoletypes.InvocationError instead of propagating.
func (inv *Invoker) Invoke(sink io.Writer, tokens []string) (err error) {
	if len(tokens) != len(inv.params) {
		return &consoletypes.ArityError{Expected: len(inv.params), Got: len(tokens)}
	}

	args := make([]reflect.Value, 0, len(tokens)+1)
	if inv.wantsSink {
		if sink == nil {
			sink = io.Discard
		}
		args = append(args, reflect.ValueOf(sink))
	}
	for i, token := range tokens {
		v, convErr := stringprocessing.ParseToken(inv.params[i], token)
		if convErr != nil {
			return &consoletypes.ArgParseError{Index: i, Raw: token, Cause: convErr}
		}
		args = append(args, v)
	}

	defer func() {
		if r := recover(); r != nil {
			err = &consoletypes.InvocationError{Cause: fmt.Errorf("panic: %v", r)}
		}
	}()

	out := inv.fn.Call(args)
	if inv.returnsErr && !out[0].IsNil() {
		return &consoletypes.InvocationError{Cause: out[0].Interface().(error)}
	}
	return nil
}
