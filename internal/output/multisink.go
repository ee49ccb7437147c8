package output

import (
	"errors"
	"io"
	"sync"
)

// MultiSink fans every write out to all attached writers, so console
// output can be mirrored to a log file or stdout in addition to the
// on-screen console. Writers can be attached after construction.
type MultiSink struct {
	mu    sync.Mutex
	sinks []io.Writer
}

// NewMultiSink creates a sink writing to each of the given writers.
func NewMultiSink(sinks ...io.Writer) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// Attach adds another destination writer.
func (m *MultiSink) Attach(w io.Writer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sinks = append(m.sinks, w)
}

// Write implements io.Writer. All destinations receive the full payload;
// errors are collected rather than short-circuiting, so one broken
// destination does not starve the others.
func (m *MultiSink) Write(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error
	for _, w := range m.sinks {
		if _, err := w.Write(p); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return 0, errors.Join(errs...)
	}
	return len(p), nil
}
