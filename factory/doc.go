// File: doc.go
// Title: Package Documentation for factory
// Description: Package factory provides a generic, in-memory lazy factory
//              that registers named type handles for later lookup and
//              caller-driven instantiation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation

/*
Package factory provides a generic, in-memory lazy factory.

A Factory maps string names to type handles (Item values). The factory is
"lazy": it stores and returns constructors but never invokes them, leaving
the decision of when to instantiate entirely to the caller.

Each factory instance fixes its case policy at construction. Case-sensitive
factories compare names verbatim; case-insensitive factories fold every name
to its upper-cased form before storing or comparing, and the original input
casing is not retained.

Basic usage:

	reg, err := factory.New(factory.Options[Vehicle]{
		CaseInsensitive: true,
	})
	if err != nil {
		return err
	}
	if err := reg.Register(factory.NewItem("Sedan", NewSedan)); err != nil {
		return err
	}
	item, err := reg.GetItem("sedan") // folds to SEDAN
	if err != nil {
		return err
	}
	vehicle := item.New()

Bulk registration is all-or-nothing: the whole batch is validated against
both itself and the current factory state before a single entry is inserted,
so a failing batch leaves the factory untouched. The same applies to initial
items passed through Options: a validation failure aborts construction.

Errors carry structured codes from core/error. Registration conflicts are
reported as CodeDuplicateItem, missing names as CodeItemNotFound:

	if _, err := reg.GetItem("missing"); lferror.HasCode(err, lferror.CodeItemNotFound) {
		// handle the absence without string matching
	}

Factory performs no locking. All operations are synchronous in-memory map
manipulations with no suspension points. Embedders that share a factory
across goroutines wrap it in Synced, which guards every operation with a
read-write mutex and additionally makes UpdateItem's remove-and-re-register
sequence atomic.
*/
package factory
