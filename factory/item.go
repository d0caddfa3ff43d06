// File: item.go
// Title: Factory Item Handle Definition
// Description: Defines the Item interface, the opaque type handle stored by
//              a Factory. An item couples an intrinsic type name with a
//              constructor that the factory stores but never invokes.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation

package factory

// Item is the type handle stored by a Factory: a named constructor for T.
//
// TypeName supplies the default registration name when no explicit name is
// given, replacing the reflection-based naming other ecosystems use. New
// builds a fresh instance of T; the factory stores the handle and returns it
// on lookup but never calls New itself; instantiation is deliberately left
// to the caller ("lazy").
//
// The dynamic type of an Item must be comparable with ==. List-form bulk
// registration relies on handle equality to detect the same handle appearing
// twice. Pointer handles (the common case) satisfy this automatically.
type Item[T any] interface {
	// TypeName returns the intrinsic identifier of the constructible type.
	TypeName() string

	// New creates a new, uninitialized instance of T.
	New() T
}

// ItemFunc adapts a name and a constructor function into an Item.
// Because every ItemFunc is a distinct pointer, two ItemFunc values are
// never equal even when built from the same constructor.
type ItemFunc[T any] struct {
	Name string
	Ctor func() T
}

// TypeName returns the configured name of the adapted constructor
func (i *ItemFunc[T]) TypeName() string {
	return i.Name
}

// New invokes the adapted constructor
func (i *ItemFunc[T]) New() T {
	return i.Ctor()
}

// NewItem creates an Item from a name and a constructor function
func NewItem[T any](name string, ctor func() T) Item[T] {
	return &ItemFunc[T]{Name: name, Ctor: ctor}
}
