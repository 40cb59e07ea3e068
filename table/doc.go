// Package table implements the table engine: the sole authority for mutating
// one table's rows under its schema's constraints.
//
// A Table owns its schema, its rows in insertion order, and its hash indexes.
// Every mutating operation validates completely before touching state —
// arity, then strict value types, then primary-key/unique constraints — so an
// operation either applies in full or leaves the table untouched. Updates use
// the conservative collision policy: all target rows are checked before any
// is changed, and the whole update aborts on the first conflict.
//
// Rows carry stable surrogate IDs assigned from a per-table counter. Indexes
// map values to those IDs rather than to array positions, so deleting rows
// shifts positions without invalidating any index entry; a small ID-to-
// position map keeps indexed lookups O(1).
//
// Key Responsibilities:
//   - Constraint enforcement (PRIMARY KEY, UNIQUE) on insert and update
//   - Equality-filtered selection with index short-circuiting and projection
//   - Incremental index maintenance across every mutation
//   - Nested-loop inner equality joins
//
// Persistence is deliberately not handled here; the database facade snapshots
// a Table via Record() and hands it to the storage package.
package table
