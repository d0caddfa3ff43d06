// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the lazyfactory library. These codes
//              enable structured error handling and programmatic reaction
//              to registration and lookup failures.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-02
// Modified: 2025-02-02
//
// Change History:
// - 2025-02-02 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the lazyfactory library
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Factory specific
	CodeDuplicateItem Code = "DUPLICATE_ITEM"
	CodeItemNotFound  Code = "ITEM_NOT_FOUND"

	// Manifest specific
	CodeInvalidManifest Code = "INVALID_MANIFEST"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsFactoryCode returns true if the code belongs to the factory domain
func (c Code) IsFactoryCode() bool {
	switch c {
	case CodeDuplicateItem, CodeItemNotFound:
		return true
	default:
		return false
	}
}
