package stringprocessing

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
)

var (
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
	textMarshalerType   = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
)

// Supported reports whether values of type t can be produced from a console
// token. Covered: bool, string, every int/uint width, float32/64, and any
// type whose pointer implements encoding.TextUnmarshaler (the extension
// point for user-defined composite types).
func Supported(t reflect.Type) bool {
	if reflect.PointerTo(t).Implements(textUnmarshalerType) {
		return true
	}
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// ParseToken converts one token into a freshly allocated value of type t.
// The result is only valid when err is nil, so callers can parse into a
// temporary and leave their destination untouched on failure.
func ParseToken(t reflect.Type, token string) (reflect.Value, error) {
	// TextUnmarshaler wins over the built-in kinds so user types can
	// override formatting of their underlying representation.
	if reflect.PointerTo(t).Implements(textUnmarshalerType) {
		v := reflect.New(t)
		if err := v.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(token)); err != nil {
			return reflect.Value{}, err
		}
		return v.Elem(), nil
	}

	v := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.Bool:
		b, err := ParseBool(token)
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetBool(b)
	case reflect.String:
		v.SetString(token)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(token, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, &UnsupportedValueError{Token: token, Type: t.Kind().String()}
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(token, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, &UnsupportedValueError{Token: token, Type: t.Kind().String()}
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(token, t.Bits())
		if err != nil {
			return reflect.Value{}, &UnsupportedValueError{Token: token, Type: t.Kind().String()}
		}
		v.SetFloat(f)
	default:
		return reflect.Value{}, fmt.Errorf("unsupported type %s", t)
	}
	return v, nil
}

// FormatValue renders a value back into its console representation.
// Format and parse are inverses up to canonicalization (e.g. "5.0"
// formats as "5").
func FormatValue(v reflect.Value) string {
	if v.CanInterface() {
		if m, ok := v.Interface().(encoding.TextMarshaler); ok {
			if b, err := m.MarshalText(); err == nil {
				return string(b)
			}
		}
		if v.CanAddr() && reflect.PointerTo(v.Type()).Implements(textMarshalerType) {
			if b, err := v.Addr().Interface().(encoding.TextMarshaler).MarshalText(); err == nil {
				return string(b)
			}
		}
	}

	switch v.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.String:
		return v.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, v.Type().Bits())
	default:
		return fmt.Sprint(v.Interface())
	}
}
