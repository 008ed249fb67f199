// Package state holds values shared by every request handler for the whole
// process lifetime.
//
// A State is created by the composer, handed explicitly to sub-components at
// registration time, populated during startup and frozen before the listener
// is bound. Values are addressed by typed keys so retrieval needs no type
// assertions at call sites.
package state

import (
	"fmt"
	"sync"
)

// Key addresses a value of type T in a State.
type Key[T any] struct {
	name string
}

// NewKey returns a key with the given name. Two keys with the same name
// address the same slot.
func NewKey[T any](name string) Key[T] {
	return Key[T]{name: name}
}

// String returns the key name.
func (k Key[T]) String() string {
	return k.name
}

// State is a concurrency-safe, freeze-once value container.
type State struct {
	mu     sync.RWMutex
	values map[string]any
	frozen bool
}

// New returns an empty, writable State.
func New() *State {
	return &State{values: make(map[string]any)}
}

// Set stores v under k. It fails with ErrFrozen after Freeze and with
// ErrAlreadySet if k is already bound, so every value is constructed once.
func Set[T any](s *State, k Key[T], v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.frozen {
		return fmt.Errorf("set %q: %w", k.name, ErrFrozen)
	}
	if _, ok := s.values[k.name]; ok {
		return fmt.Errorf("set %q: %w", k.name, ErrAlreadySet)
	}

	s.values[k.name] = v
	return nil
}

// Get returns the value stored under k.
func Get[T any](s *State, k Key[T]) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[k.name].(T)
	return v, ok
}

// MustGet is Get that panics when k is not bound. Handlers only run after
// composition completed, so a missing value is a wiring bug.
func MustGet[T any](s *State, k Key[T]) T {
	v, ok := Get(s, k)
	if !ok {
		panic(fmt.Sprintf("state: %q is not bound", k.name))
	}
	return v
}

// Freeze makes the State read-only.
func (s *State) Freeze() {
	s.mu.Lock()
	s.frozen = true
	s.mu.Unlock()
}
