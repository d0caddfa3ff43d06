// File: doc.go
// Title: Package Documentation for log
// Description: Package log provides structured logging for the lazyfactory
//              library with levels, contextual fields, and pluggable
//              JSON/text output formats.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-02
// Modified: 2025-02-02
//
// Change History:
// - 2025-02-02 v0.1.0: Initial implementation

/*
Package log provides structured logging for the lazyfactory library.

The Logger carries a minimum level, an output format (JSON or text), and a
set of context fields that are attached to every entry. All WithX methods
return copies, so a derived logger never mutates its parent:

	logger := log.New().
		WithName("vehicles").
		WithField("component", "lazy-factory")
	logger.Info("factory initialized", log.Fields{"itemCount": 3})

A package-level default logger is available through GetDefault/SetDefault and
the package-level leveled functions. The factory package uses it whenever no
logger is supplied in its options.

Logging is synchronous; there is no background worker. The library performs
pure in-memory operations and never logs on hot paths above Debug level.
*/
package log
