// File: doc.go
// Title: Package Documentation for manifest
// Description: Package manifest provides declarative factory manifests in
//              TOML or YAML that describe the expected contents of a
//              factory and verify configuration/code parity at startup.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-04
// Modified: 2025-02-04
//
// Change History:
// - 2025-02-04 v0.1.0: Initial implementation

/*
Package manifest provides declarative factory manifests.

A manifest is a small TOML or YAML document naming the items a factory is
expected to carry:

	name = "vehicles"
	case-insensitive = true
	items = ["Sedan", "Truck"]

Manifests close the gap between configuration and code: the registrations
live in Go, the expectations live in a reviewable file, and Verify flags any
drift between the two at startup instead of at first lookup. Lint performs
the standalone checks (blank names, collisions under the declared case
policy) and is also run automatically by Load.

Manifests never construct anything. They carry names only, keeping the
factory's lazy contract intact.
*/
package manifest
