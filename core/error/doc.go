// File: doc.go
// Title: Package Documentation for error
// Description: Package error provides structured error handling for the
//              lazyfactory library with error codes, operations, and
//              contextual details on top of Go's standard error interface.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-02
// Modified: 2025-02-02
//
// Change History:
// - 2025-02-02 v0.1.0: Initial implementation

/*
Package error provides structured error handling for the lazyfactory library.

Errors carry a classification Code, the operation in which they occurred, and
optional key-value details. The type is fully compatible with the standard
library: it implements the error interface, supports errors.Is/errors.As via
Unwrap, and marshals to JSON for structured logging.

Typical usage:

	err := lferror.New("item SEDAN is not registered in the current factory").
		WithCode(lferror.CodeItemNotFound).
		WithOperation("factory.GetItem").
		WithDetail("itemName", "SEDAN")

Callers react to failures by code rather than by message:

	if lferror.HasCode(err, lferror.CodeItemNotFound) {
		// register a fallback item
	}

The package is intentionally small: no severity ladders, no stack capture.
A registry library raises two domain codes (DUPLICATE_ITEM, ITEM_NOT_FOUND)
plus a manifest validation code, and that is the entire surface consumers
need to branch on.
*/
package error
