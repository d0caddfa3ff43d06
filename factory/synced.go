// File: synced.go
// Title: Synchronized Factory Wrapper
// Description: Implements Synced, a mutex-guarded wrapper around Factory for
//              embedders that share one registry across goroutines. The core
//              Factory stays lock-free; synchronization is opt-in.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation

package factory

import (
	"sync"
)

// Synced wraps a Factory with a read-write mutex, exposing the same
// operation surface safely for concurrent use.
//
// UpdateItem holds the write lock across its remove and re-register steps,
// so concurrent readers never observe the name as temporarily absent.
type Synced[T any] struct {
	mu sync.RWMutex
	f  *Factory[T]
}

// NewSynced creates a synchronized factory with the given options
func NewSynced[T any](opts Options[T]) (*Synced[T], error) {
	f, err := New(opts)
	if err != nil {
		return nil, err
	}
	return &Synced[T]{f: f}, nil
}

// ID returns the unique instance identifier of the underlying factory
func (s *Synced[T]) ID() string {
	return s.f.ID()
}

// CaseInsensitive reports whether names are matched case-insensitively
func (s *Synced[T]) CaseInsensitive() bool {
	return s.f.CaseInsensitive()
}

// Register registers an item under its intrinsic type name
func (s *Synced[T]) Register(item Item[T]) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.Register(item)
}

// RegisterNamed registers an item under an explicit name or alias
func (s *Synced[T]) RegisterNamed(name string, item Item[T]) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.RegisterNamed(name, item)
}

// BulkRegister registers a list of items under their intrinsic type names
func (s *Synced[T]) BulkRegister(items []Item[T]) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.BulkRegister(items)
}

// BulkRegisterNamed registers a name-to-handle mapping
func (s *Synced[T]) BulkRegisterNamed(items map[string]Item[T]) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.BulkRegisterNamed(items)
}

// GetItem retrieves the handle registered under a name
func (s *Synced[T]) GetItem(name string) (Item[T], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.f.GetItem(name)
}

// HasItem reports whether a name is registered in the factory
func (s *Synced[T]) HasItem(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.f.HasItem(name)
}

// CheckItem returns an ItemNotFound error when the name is not registered
func (s *Synced[T]) CheckItem(name string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.f.CheckItem(name)
}

// RemoveItem deletes the entry registered under a name
func (s *Synced[T]) RemoveItem(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.RemoveItem(name)
}

// UpdateItem replaces the handle registered under a name atomically
func (s *Synced[T]) UpdateItem(name string, item Item[T]) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.UpdateItem(name, item)
}

// Clear removes all entries from the factory
func (s *Synced[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.f.Clear()
}

// Len returns the number of registered entries
func (s *Synced[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.f.Len()
}

// ItemNames returns all registered names in sorted order
func (s *Synced[T]) ItemNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.f.ItemNames()
}
