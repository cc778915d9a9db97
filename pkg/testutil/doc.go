// Package testutil provides utilities for testing barrel components.
//
// Key components:
//   - NewTestFS: in-memory filesystem for fast, isolated tests
//   - WriteTree / WriteTreeFS: declarative source-tree setup
//   - SelectionConfig: a resolved configuration using the shipped defaults
//
// All test data should be defined inline, not in external files.
package testutil
