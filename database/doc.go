// Package database is the engine facade: it owns the catalog and the storage
// backend, defines the structured Command form front ends submit, and maps
// each command onto the table engine.
//
// Mutating operations follow a fixed sequence: resolve the table through the
// catalog, let the table engine validate and apply the change, then persist
// the table's complete new state through storage. Because the table engine
// validates everything before mutating, a failed operation never reaches the
// persistence step and on-disk state only ever holds committed rows.
//
// The facade serializes access with one RWMutex. The engine itself is
// single-threaded by design (no transactions, no concurrent writers); the
// lock exists solely so a network front end can call in from multiple
// request goroutines without breaking the single-writer model.
package database
