// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements the string operations the lazyfactory library
//              needs on top of the Go standard library, with a focus on
//              Unicode safety and the factory's name folding policy.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-02
// Modified: 2025-02-02
//
// Change History:
// - 2025-02-02 v0.1.0: Initial implementation with core utilities

package stringx

import (
	"strings"
	"unicode"
)

// IsEmpty returns true if the string is empty (length 0).
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
// This is more comprehensive than IsEmpty and commonly needed in validation.
func IsBlank(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotEmpty returns true if the string is not empty.
// Convenience function that's the inverse of IsEmpty.
func IsNotEmpty(s string) bool {
	return len(s) > 0
}

// IsNotBlank returns true if the string is not empty and contains
// non-whitespace characters. Convenience inverse of IsBlank.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// TrimToEmpty trims whitespace from both ends of the string.
// Always returns a valid string, never panics on empty input.
func TrimToEmpty(s string) string {
	return strings.TrimSpace(s)
}

// FoldName returns the canonical upper-cased form of a name.
// Case-insensitive registries use the folded form as their map key so that
// "sedan", "SEDAN", and "SeDaN" all address the same entry.
func FoldName(s string) string {
	return strings.ToUpper(s)
}

// EqualNames reports whether two names are equal under the given case policy.
func EqualNames(a, b string, caseInsensitive bool) bool {
	if caseInsensitive {
		return strings.EqualFold(a, b)
	}
	return a == b
}
