// Package storage handles the durable round trip of table state.
//
// Each table is persisted as a single self-describing JSON artifact
// (<dataDir>/<table>.json) holding the schema, every row in insertion order,
// and the list of indexed column names. Saving writes the whole artifact to a
// temporary file and renames it over the target, so readers never observe a
// partially written table.
//
// Storage is a pure persistence boundary: it holds no live references into
// the in-memory catalog, and loading applies the same strict schema and row
// validation the engine uses, so a tampered or truncated artifact surfaces as
// ErrCorruptData rather than as bad rows inside a running table.
//
// Key Responsibilities:
//   - Saving a table's complete state atomically (write-then-rename)
//   - Loading and validating persisted state on startup
//   - Removing artifacts for dropped tables (idempotent)
//   - Listing persisted tables so the catalog can reconstruct itself
package storage
