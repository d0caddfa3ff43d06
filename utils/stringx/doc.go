// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides the extended string operations used
//              across the lazyfactory library, in particular the name
//              folding policy for case-insensitive registries.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-02
// Modified: 2025-02-02
//
// Change History:
// - 2025-02-02 v0.1.0: Initial implementation

/*
Package stringx provides extended string operations for the lazyfactory library.

The package deliberately stays small: blank/empty checks used by input
validation, and the name folding functions that implement the factory's case
policy. FoldName upper-cases a name so that case-insensitive factories store
and compare canonical keys; the original input casing is not retained.
*/
package stringx
