// Package cvar implements type-erased bindings to console variables.
// A binding references storage owned by the registering caller and reads
// or writes it in place; the console never copies or owns the variable.
package cvar

import (
	"fmt"
	"reflect"

	"quakeconsole/pkg/consoletypes"
	"quakeconsole/pkg/stringprocessing"
)

// binding adapts a pointer to caller-owned storage to consoletypes.Binding.
type binding struct {
	ref reflect.Value // non-nil pointer; Elem is the bound storage
}

// New creates a binding over ref, which must be a non-nil pointer to a
// supported type (see stringprocessing.Supported). The pointed-to storage
// must outlive the binding. Unsupported shapes are bind-time errors.
func New(ref any) (consoletypes.Binding, error) {
	if ref == nil {
		return nil, fmt.Errorf("variable reference cannot be nil")
	}

	v := reflect.ValueOf(ref)
	if v.Kind() != reflect.Pointer {
		return nil, fmt.Errorf("variable reference must be a pointer, got %s", v.Kind())
	}
	if v.IsNil() {
		return nil, fmt.Errorf("variable reference cannot be nil")
	}
	if elem := v.Type().Elem(); !stringprocessing.Supported(elem) {
		return nil, fmt.Errorf("unsupported variable type %s", elem)
	}

	return &binding{ref: v}, nil
}

// Bind is the compile-time checked form of New for callers that know T.
func Bind[T any](ref *T) (consoletypes.Binding, error) {
	return New(ref)
}

// GetAsString formats the current value of the bound storage.
func (b *binding) GetAsString() string {
	return stringprocessing.FormatValue(b.ref.Elem())
}

// SetFromString parses raw into the bound type and overwrites the storage.
// Parsing happens into a temporary first, so a failed parse leaves the
// storage unchanged.
func (b *binding) SetFromString(raw string) error {
	v, err := stringprocessing.ParseToken(b.ref.Type().Elem(), raw)
	if err != nil {
		return &consoletypes.ValueParseError{Raw: raw, Cause: err}
	}
	b.ref.Elem().Set(v)
	return nil
}
