// Package primitives provides the foundational, zero-dependency data structures
// for the airport automaton engine.
//
// Everything here describes airport layouts as data: element rows, movement
// hints, group descriptors and entry points. Nothing in this package builds or
// validates an automaton; that happens in the root package.
//
// Core invariants:
// - Element tables are terminated by a row whose Position is MaxElements
// - Rows sharing a Position are contiguous
// - Layouts are immutable once handed to a registry
package primitives
