// Package catalog maintains the registry of all live tables in the database.
//
// The catalog maps table names to their in-memory Table instances. It is
// constructed exactly once per session by loading every persisted artifact
// from storage, and from then on it is the single source of truth: reads and
// writes go through the tables it holds, and create/drop are the only
// operations that change its membership.
//
// Startup is tolerant per table: an artifact that fails to load (corrupt
// bytes, I/O error, schema that no longer validates) is skipped with a
// logged warning, so one damaged table never prevents the rest of the
// database from coming up.
//
// Key Responsibilities:
//   - Creating tables (rejecting duplicate names) with an initial saved state
//   - Dropping tables and removing their backing artifacts
//   - Resolving tables by name for the engine facade
//   - Flushing all live state back to storage on Close
package catalog
