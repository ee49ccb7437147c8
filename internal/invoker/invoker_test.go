package invoker

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quakeconsole/pkg/consoletypes"
)

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		fn      any
		wantErr string
	}{
		{
			name: "nil handler",
			fn:   nil, wantErr: "cannot be nil",
		},
		{
			name: "typed nil func",
			fn:   (func())(nil), wantErr: "cannot be nil",
		},
		{
			name: "not a func",
			fn:   42, wantErr: "must be a func",
		},
		{
			name: "variadic",
			fn:   func(args ...string) {}, wantErr: "variadic",
		},
		{
			name: "unsupported parameter",
			fn:   func(ch chan int) {}, wantErr: "unsupported type",
		},
		{
			name: "non-error return",
			fn:   func() int { return 0 }, wantErr: "may only return error",
		},
		{
			name: "too many returns",
			fn:   func() (int, error) { return 0, nil }, wantErr: "at most one value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.fn)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNew_SupportedShapes(t *testing.T) {
	valid := []any{
		func() {},
		func() error { return nil },
		func(a int, b float64, c bool, d string) {},
		func(out io.Writer) {},
		func(out io.Writer, n int) error { return nil },
	}
	for i, fn := range valid {
		_, err := New(fn)
		assert.NoError(t, err, "shape %d", i)
	}
}

func TestInvoker_Arity(t *testing.T) {
	inv, err := New(func(a, b int) {})
	require.NoError(t, err)
	assert.Equal(t, 2, inv.Arity())

	// The sink parameter does not count toward arity.
	inv, err = New(func(out io.Writer, a int) {})
	require.NoError(t, err)
	assert.Equal(t, 1, inv.Arity())
}

func TestInvoker_Invoke(t *testing.T) {
	var gotA int
	var gotB float64
	inv, err := New(func(a int, b float64) {
		gotA, gotB = a, b
	})
	require.NoError(t, err)

	require.NoError(t, inv.Invoke(io.Discard, []string{"3", "2.5"}))
	assert.Equal(t, 3, gotA)
	assert.Equal(t, 2.5, gotB)
}

func TestInvoker_Invoke_WritesToSink(t *testing.T) {
	inv, err := New(func(out io.Writer, a, b int) {
		fmt.Fprintln(out, a+b)
	})
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, inv.Invoke(&buf, []string{"2", "3"}))
	assert.Equal(t, "5\n", buf.String())
}

func TestInvoker_Invoke_NilSink(t *testing.T) {
	inv, err := New(func(out io.Writer) {
		fmt.Fprint(out, "dropped")
	})
	require.NoError(t, err)

	assert.NoError(t, inv.Invoke(nil, nil))
}

func TestInvoker_Invoke_ArityMismatch(t *testing.T) {
	called := false
	inv, err := New(func(a, b int) { called = true })
	require.NoError(t, err)

	invokeErr := inv.Invoke(io.Discard, []string{"2"})
	require.Error(t, invokeErr)

	var arityErr *consoletypes.ArityError
	require.ErrorAs(t, invokeErr, &arityErr)
	assert.Equal(t, 2, arityErr.Expected)
	assert.Equal(t, 1, arityErr.Got)
	assert.False(t, called, "handler must not run on arity mismatch")
}

func TestInvoker_Invoke_ZeroArity(t *testing.T) {
	called := false
	inv, err := New(func() { called = true })
	require.NoError(t, err)

	require.NoError(t, inv.Invoke(io.Discard, nil))
	assert.True(t, called)

	invokeErr := inv.Invoke(io.Discard, []string{"extra"})
	var arityErr *consoletypes.ArityError
	require.ErrorAs(t, invokeErr, &arityErr)
	assert.Equal(t, 0, arityErr.Expected)
}

func TestInvoker_Invoke_ArgParseError(t *testing.T) {
	called := false
	inv, err := New(func(a int, b int) { called = true })
	require.NoError(t, err)

	invokeErr := inv.Invoke(io.Discard, []string{"1", "oops"})
	require.Error(t, invokeErr)

	var parseErr *consoletypes.ArgParseError
	require.ErrorAs(t, invokeErr, &parseErr)
	assert.Equal(t, 1, parseErr.Index)
	assert.Equal(t, "oops", parseErr.Raw)
	assert.False(t, called, "handler must not run when an argument fails to parse")
}

func TestInvoker_Invoke_HandlerError(t *testing.T) {
	sentinel := errors.New("handler exploded")
	inv, err := New(func() error { return sentinel })
	require.NoError(t, err)

	invokeErr := inv.Invoke(io.Discard, nil)
	var invErr *consoletypes.InvocationError
	require.ErrorAs(t, invokeErr, &invErr)
	assert.ErrorIs(t, invErr.Cause, sentinel)
}

func TestInvoker_Invoke_HandlerPanic(t *testing.T) {
	inv, err := New(func() { panic("boom") })
	require.NoError(t, err)

	invokeErr := inv.Invoke(io.Discard, nil)
	var invErr *consoletypes.InvocationError
	require.ErrorAs(t, invokeErr, &invErr)
	assert.Contains(t, invErr.Error(), "boom")
}

func TestInvoker_Invoke_MethodValue(t *testing.T) {
	// A method value captures its receiver, which is how member-function
	// binding is expressed.
	counter := &testCounter{}
	inv, err := New(counter.Add)
	require.NoError(t, err)

	require.NoError(t, inv.Invoke(io.Discard, []string{"4"}))
	require.NoError(t, inv.Invoke(io.Discard, []string{"3"}))
	assert.Equal(t, 7, counter.total)
}

type testCounter struct {
	total int
}

func (c *testCounter) Add(n int) { c.total += n }

func BenchmarkInvoker_Invoke(b *testing.B) {
	inv, _ := New(func(a, b int) {})
	tokens := []string{"1", "2"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = inv.Invoke(io.Discard, tokens)
	}
}
