// File: factory.go
// Title: Lazy Factory Implementation
// Description: Implements the Factory type, an in-memory registry that maps
//              names to type handles under a fixed case-sensitivity policy.
//              Supports single and bulk registration with all-or-nothing
//              validation, lookup, removal, update, and clearing.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation

package factory

import (
	"sort"

	"github.com/google/uuid"

	lferror "github.com/msto63/lazyfactory/core/error"
	lflog "github.com/msto63/lazyfactory/core/log"
	lfstringx "github.com/msto63/lazyfactory/utils/stringx"
)

// Options configures a Factory at construction time
type Options[T any] struct {
	// Logger receives registration and lookup events. Nil uses the
	// package default logger.
	Logger *lflog.Logger

	// CaseInsensitive disables case-sensitive name matching. When set,
	// every name is folded to its upper-cased form before being stored
	// or compared. The zero value keeps the default: case-sensitive.
	CaseInsensitive bool

	// Items is an optional initial list of handles registered under their
	// intrinsic type names. Mutually exclusive with NamedItems.
	Items []Item[T]

	// NamedItems is an optional initial name-to-handle mapping.
	// Mutually exclusive with Items.
	NamedItems map[string]Item[T]
}

// Factory is an in-memory registry of named type handles.
//
// The case-sensitivity policy is fixed at construction and applies to every
// operation. A Factory is not safe for concurrent use; embedders that share
// one across goroutines must either wrap it in Synced or provide their own
// synchronization around every call.
type Factory[T any] struct {
	items           map[string]Item[T]
	caseInsensitive bool
	id              string
	logger          *lflog.Logger
}

// New creates a Factory with the given options.
//
// When initial items are supplied they are registered through the same
// all-or-nothing bulk validation as BulkRegister/BulkRegisterNamed; any
// validation failure aborts construction and no factory is returned.
func New[T any](opts Options[T]) (*Factory[T], error) {
	logger := opts.Logger
	if logger == nil {
		logger = lflog.GetDefault()
	}

	if opts.Items != nil && opts.NamedItems != nil {
		return nil, lferror.New("initial items must be given either as a list or as a name map, not both").
			WithCode(lferror.CodeInvalidInput).
			WithOperation("factory.New")
	}

	id := uuid.NewString()
	f := &Factory[T]{
		items:           make(map[string]Item[T]),
		caseInsensitive: opts.CaseInsensitive,
		id:              id,
		logger: logger.
			WithField("component", "lazy-factory").
			WithField("factoryID", id),
	}

	if opts.Items != nil {
		if err := f.BulkRegister(opts.Items); err != nil {
			return nil, err
		}
	}
	if opts.NamedItems != nil {
		if err := f.BulkRegisterNamed(opts.NamedItems); err != nil {
			return nil, err
		}
	}

	f.logger.Info("factory initialized", lflog.Fields{
		"itemCount":       len(f.items),
		"caseInsensitive": f.caseInsensitive,
	})

	return f, nil
}

// ID returns the unique instance identifier of the factory
func (f *Factory[T]) ID() string {
	return f.id
}

// CaseInsensitive reports whether names are matched case-insensitively
func (f *Factory[T]) CaseInsensitive() bool {
	return f.caseInsensitive
}

// normalizeName applies the factory's case policy to a name
func (f *Factory[T]) normalizeName(name string) string {
	if f.caseInsensitive {
		return lfstringx.FoldName(name)
	}
	return name
}

// preRegister validates one item prior to registration and returns the
// normalized name it will be stored under. The item name defaults to the
// handle's intrinsic type name when no explicit name is given.
func (f *Factory[T]) preRegister(item Item[T], name string, operation string) (string, error) {
	if item == nil {
		return "", lferror.New("factory item cannot be nil").
			WithCode(lferror.CodeInvalidInput).
			WithOperation(operation)
	}

	if name == "" {
		name = item.TypeName()
	}
	if lfstringx.IsBlank(name) {
		return "", lferror.New("factory item name cannot be blank").
			WithCode(lferror.CodeInvalidInput).
			WithOperation(operation).
			WithDetail("typeName", item.TypeName())
	}

	name = f.normalizeName(name)

	if _, exists := f.items[name]; exists {
		return "", lferror.Newf("cannot register item %s because this factory already has an item named %s",
			item.TypeName(), name).
			WithCode(lferror.CodeDuplicateItem).
			WithOperation(operation).
			WithDetail("itemName", name)
	}

	return name, nil
}

// register inserts a validated entry into the factory
func (f *Factory[T]) register(name string, item Item[T]) {
	f.items[name] = item
	f.logger.Debug("factory item registered", lflog.Fields{
		"itemName": name,
		"typeName": item.TypeName(),
	})
}

// Register registers an item under its intrinsic type name
func (f *Factory[T]) Register(item Item[T]) error {
	return f.RegisterNamed("", item)
}

// RegisterNamed registers an item under an explicit name or alias.
// An empty name falls back to the item's intrinsic type name.
func (f *Factory[T]) RegisterNamed(name string, item Item[T]) error {
	normalized, err := f.preRegister(item, name, "factory.Register")
	if err != nil {
		return err
	}
	f.register(normalized, item)
	return nil
}

// BulkRegister registers a list of items under their intrinsic type names.
//
// Validation is all-or-nothing: the list must not contain the same handle
// twice, and every item must pass the same pre-registration checks as
// Register against the current factory state. Any failure aborts the whole
// batch before a single entry is inserted.
func (f *Factory[T]) BulkRegister(items []Item[T]) error {
	seen := make(map[Item[T]]struct{}, len(items))
	for _, item := range items {
		if _, dup := seen[item]; dup {
			return lferror.New("there are duplicate classes in the provided items list").
				WithCode(lferror.CodeDuplicateItem).
				WithOperation("factory.BulkRegister")
		}
		seen[item] = struct{}{}
	}

	type pending struct {
		name string
		item Item[T]
	}
	valid := make([]pending, 0, len(items))
	for _, item := range items {
		name, err := f.preRegister(item, "", "factory.BulkRegister")
		if err != nil {
			return err
		}
		valid = append(valid, pending{name: name, item: item})
	}

	for _, p := range valid {
		f.register(p.name, p.item)
	}

	f.logger.Debug("factory items bulk-registered", lflog.Fields{
		"registeredCount": len(valid),
	})
	return nil
}

// BulkRegisterNamed registers a name-to-handle mapping.
//
// In case-insensitive mode the mapping must not contain two keys that fold
// to the same name. Afterwards every entry must pass the same
// pre-registration checks as Register against the current factory state.
// Any failure aborts the whole batch before a single entry is inserted.
func (f *Factory[T]) BulkRegisterNamed(items map[string]Item[T]) error {
	if f.caseInsensitive {
		folded := make(map[string]struct{}, len(items))
		for name := range items {
			key := lfstringx.FoldName(name)
			if _, collision := folded[key]; collision {
				return lferror.New("there are classes that have the same name with different case-styles, "+
					"and since factory case sensitivity is disabled they cannot be registered").
					WithCode(lferror.CodeDuplicateItem).
					WithOperation("factory.BulkRegisterNamed")
			}
			folded[key] = struct{}{}
		}
	}

	type pending struct {
		name string
		item Item[T]
	}
	valid := make([]pending, 0, len(items))
	for name, item := range items {
		normalized, err := f.preRegister(item, name, "factory.BulkRegisterNamed")
		if err != nil {
			return err
		}
		valid = append(valid, pending{name: normalized, item: item})
	}

	for _, p := range valid {
		f.register(p.name, p.item)
	}

	f.logger.Debug("factory items bulk-registered", lflog.Fields{
		"registeredCount": len(valid),
	})
	return nil
}

// checkExists returns an ItemNotFound error when the normalized name is
// absent from the factory
func (f *Factory[T]) checkExists(normalized string, operation string) error {
	if _, ok := f.items[normalized]; !ok {
		return lferror.Newf("item %s is not registered in the current factory", normalized).
			WithCode(lferror.CodeItemNotFound).
			WithOperation(operation).
			WithDetail("itemName", normalized)
	}
	return nil
}

// GetItem retrieves the handle registered under a name.
// The handle is returned uninstantiated; calling its New is up to the caller.
func (f *Factory[T]) GetItem(name string) (Item[T], error) {
	normalized := f.normalizeName(name)
	if err := f.checkExists(normalized, "factory.GetItem"); err != nil {
		return nil, err
	}
	return f.items[normalized], nil
}

// HasItem reports whether a name is registered in the factory
func (f *Factory[T]) HasItem(name string) bool {
	_, ok := f.items[f.normalizeName(name)]
	return ok
}

// CheckItem returns an ItemNotFound error when the name is not registered.
// It is the error-raising counterpart of HasItem.
func (f *Factory[T]) CheckItem(name string) error {
	return f.checkExists(f.normalizeName(name), "factory.CheckItem")
}

// RemoveItem deletes the entry registered under a name
func (f *Factory[T]) RemoveItem(name string) error {
	normalized := f.normalizeName(name)
	if err := f.checkExists(normalized, "factory.RemoveItem"); err != nil {
		return err
	}
	delete(f.items, normalized)
	f.logger.Debug("factory item removed", lflog.Fields{"itemName": normalized})
	return nil
}

// UpdateItem replaces the handle registered under a name.
//
// The update is a remove followed by a register under the same name; it is
// not atomic. A concurrent reader could observe the name as absent between
// the two steps. Single-threaded callers are unaffected, and Synced holds
// its write lock across both steps.
func (f *Factory[T]) UpdateItem(name string, item Item[T]) error {
	if item == nil {
		return lferror.New("factory item cannot be nil").
			WithCode(lferror.CodeInvalidInput).
			WithOperation("factory.UpdateItem")
	}
	if err := f.RemoveItem(name); err != nil {
		return err
	}
	if err := f.RegisterNamed(name, item); err != nil {
		return err
	}
	f.logger.Debug("factory item updated", lflog.Fields{
		"itemName": f.normalizeName(name),
		"typeName": item.TypeName(),
	})
	return nil
}

// Clear removes all entries from the factory
func (f *Factory[T]) Clear() {
	removed := len(f.items)
	f.items = make(map[string]Item[T])
	f.logger.Debug("factory cleared", lflog.Fields{"removedCount": removed})
}

// Len returns the number of registered entries
func (f *Factory[T]) Len() int {
	return len(f.items)
}

// ItemNames returns all registered names in sorted order
func (f *Factory[T]) ItemNames() []string {
	names := make([]string, 0, len(f.items))
	for name := range f.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
