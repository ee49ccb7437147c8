// Package registry provides the name-to-binding tables of the console.
// The engine instantiates one registry for commands and one for console
// variables; both share the same registration, lookup, and enumeration
// behavior.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"quakeconsole/pkg/consoletypes"
)

// Entry is one registered item: its unique name, its help text, and the
// type-erased value behind it.
type Entry[T any] struct {
	Name  string
	Help  string
	Value T
}

// Registry is a thread-safe mapping from unique names to entries.
// Mutation is expected at setup time; the engine only reads during
// execution.
type Registry[T any] struct {
	mu      sync.RWMutex
	entries map[string]Entry[T]
}

// New creates an empty registry.
func New[T any]() *Registry[T] {
	return &Registry[T]{
		entries: make(map[string]Entry[T]),
	}
}

// Register adds an entry. Returns an error if the name is empty or already
// taken; an existing entry is never silently shadowed.
func (r *Registry[T]) Register(name string, value T, help string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if _, exists := r.entries[name]; exists {
		return fmt.Errorf("%s already registered", name)
	}

	r.entries[name] = Entry[T]{Name: name, Help: help, Value: value}
	return nil
}

// Lookup retrieves an entry by exact, case-sensitive name match.
func (r *Registry[T]) Lookup(name string) (Entry[T], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, exists := r.entries[name]
	return entry, exists
}

// Unregister removes an entry by name, reporting whether it existed.
func (r *Registry[T]) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, exists := r.entries[name]
	delete(r.entries, name)
	return exists
}

// Enumerate returns the (name, help) pairs of all entries sorted
// lexicographically by name, which keeps help listings and autocompletion
// ordering stable.
func (r *Registry[T]) Enumerate() []consoletypes.EntryInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]consoletypes.EntryInfo, 0, len(r.entries))
	for _, entry := range r.entries {
		infos = append(infos, consoletypes.EntryInfo{Name: entry.Name, Help: entry.Help})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// Len returns the number of registered entries.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
