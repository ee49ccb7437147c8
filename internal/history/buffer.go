// Package history implements the bounded command history of the console.
// The buffer keeps the most recent input lines in submission order so a
// front-end can walk them for up/down-arrow recall.
package history

import "sync"

// Buffer is a fixed-capacity FIFO of previously executed console lines.
// When full, pushing a new line evicts the oldest one. A capacity of zero
// disables history entirely.
type Buffer struct {
	mu       sync.RWMutex
	capacity int
	entries  []string
}

// NewBuffer creates a history buffer holding at most capacity lines.
// Negative capacities are treated as zero.
func NewBuffer(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{
		capacity: capacity,
		entries:  make([]string, 0, capacity),
	}
}

// Push appends a line, evicting the oldest entry when the buffer is full.
// No-op when the buffer has zero capacity.
func (b *Buffer) Push(line string) {
	if b.capacity == 0 {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.entries) == b.capacity {
		copy(b.entries, b.entries[1:])
		b.entries[len(b.entries)-1] = line
		return
	}
	b.entries = append(b.entries, line)
}

// At returns the line at index i, with 0 being the oldest retained entry.
// Returns false when i is out of range.
func (b *Buffer) At(i int) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if i < 0 || i >= len(b.entries) {
		return "", false
	}
	return b.entries[i], true
}

// Size returns the number of retained lines.
func (b *Buffer) Size() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}

// Capacity returns the fixed capacity set at construction.
func (b *Buffer) Capacity() int {
	return b.capacity
}

// Entries returns a copy of all retained lines, oldest first.
func (b *Buffer) Entries() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]string, len(b.entries))
	copy(out, b.entries)
	return out
}

// Clear discards all retained lines.
func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = b.entries[:0]
}
