// SPDX-License-Identifier: MIT

// Package registry holds a fixed number of matrix.Matrix values in slots and
// reuses slots in a ring.
//
// A Registry is NOT keyed by name: Insert always targets slot next mod
// capacity and releases whatever occupied that slot before, whatever its
// name. After N inserts into a capacity-N registry the (N+1)th insert evicts
// the matrix in slot 0. Names are not unique; FindByName returns the first
// slot, in slot order, whose occupant has exactly the requested name.
//
// All methods are safe for concurrent use: a single sync.Mutex serializes
// mutations, so no caller can observe a slot halfway through eviction.
//
// Errors:
//
//	ErrInvalidArgument - non-positive capacity or nil matrix.
//	ErrNotFound        - no occupied slot carries the requested name.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/lvmat/matrix"
)

// Sentinel errors for registry operations.
var (
	// ErrInvalidArgument indicates a non-positive capacity or a nil matrix.
	ErrInvalidArgument = errors.New("registry: invalid argument")

	// ErrNotFound indicates that no occupied slot carries the requested name.
	ErrNotFound = errors.New("registry: matrix not found")
)

// EvictFunc observes a matrix being released from slot.
// It runs with the registry lock held and must not call back into the Registry.
type EvictFunc func(slot int, evicted *matrix.Matrix)

// Option configures a Registry before creation.
type Option func(r *Registry)

// WithEvictHook registers fn to be called for every eviction, including
// those performed by DestroyAll.
func WithEvictHook(fn EvictFunc) Option {
	return func(r *Registry) { r.onEvict = fn }
}

// Registry is a fixed-capacity ring of optional matrix slots.
type Registry struct {
	mu      sync.Mutex
	slots   []*matrix.Matrix // len == capacity, nil means empty
	next    uint64           // monotonic insertion counter, never reset
	onEvict EvictFunc
}

// New creates an empty Registry with the given number of slots.
func New(capacity int, opts ...Option) (*Registry, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("New(%d): %w", capacity, ErrInvalidArgument)
	}
	r := &Registry{slots: make([]*matrix.Matrix, capacity)}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Cap returns the number of slots.
func (r *Registry) Cap() int { return len(r.slots) }

// Insert stores m in slot next mod Cap(), releasing the previous occupant of
// that slot first, and returns the slot index. The registry takes ownership of m.
// Complexity: O(1).
func (r *Registry) Insert(m *matrix.Matrix) (int, error) {
	if m == nil {
		return 0, fmt.Errorf("Insert: %w", ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	slot := int(r.next % uint64(len(r.slots)))
	r.release(slot)
	r.slots[slot] = m
	r.next++

	return slot, nil
}

// release empties slot, reporting the previous occupant to the hook.
// The slot reference is cleared before the hook runs so a matrix is never
// released twice. Caller must hold r.mu.
func (r *Registry) release(slot int) {
	old := r.slots[slot]
	if old == nil {
		return
	}
	r.slots[slot] = nil
	if r.onEvict != nil {
		r.onEvict(slot, old)
	}
}

// FindByName returns the first slot, scanning 0..Cap()-1, whose occupant's
// name equals name exactly.
// Complexity: O(Cap()).
func (r *Registry) FindByName(name string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.find(name)
}

// find is FindByName without locking. Caller must hold r.mu.
func (r *Registry) find(name string) (int, error) {
	for i, m := range r.slots {
		if m != nil && m.Name() == name {
			return i, nil
		}
	}

	return -1, fmt.Errorf("%q: %w", name, ErrNotFound)
}

// Lookup returns the first matrix named name.
func (r *Registry) Lookup(name string) (*matrix.Matrix, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot, err := r.find(name)
	if err != nil {
		return nil, err
	}

	return r.slots[slot], nil
}

// At returns the occupant of slot, or false if the slot is empty or out of range.
func (r *Registry) At(slot int) (*matrix.Matrix, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if slot < 0 || slot >= len(r.slots) || r.slots[slot] == nil {
		return nil, false
	}

	return r.slots[slot], true
}

// Len returns the number of occupied slots.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, m := range r.slots {
		if m != nil {
			n++
		}
	}

	return n
}

// Inserted returns the total number of successful inserts.
func (r *Registry) Inserted() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.next
}

// DestroyAll releases every occupied slot. The insertion counter is kept, so
// later inserts continue the ring where it stopped.
func (r *Registry) DestroyAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.slots {
		r.release(i)
	}
}
