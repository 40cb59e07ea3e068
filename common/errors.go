// Package common holds the sentinel errors shared by every layer of the
// engine.
package common

import "errors"

// Sentinel errors for every failure mode the engine can surface. Call sites
// wrap these with fmt.Errorf("...: %w", ...) to attach the offending table,
// column, or value; callers match with errors.Is.
var (
	// ErrTableExists is returned when creating a table whose name is taken.
	ErrTableExists = errors.New("reldb: table already exists")
	// ErrTableNotFound is returned when the named table is not in the catalog
	// or has no persisted artifact.
	ErrTableNotFound = errors.New("reldb: table not found")
	// ErrUnknownColumn is returned when an operation references a column the
	// schema does not define.
	ErrUnknownColumn = errors.New("reldb: unknown column")
	// ErrInvalidSchema is returned for malformed table definitions: no
	// columns, duplicate column names, or more than one primary key.
	ErrInvalidSchema = errors.New("reldb: invalid schema")
	// ErrArityMismatch is returned when a row's value count does not match
	// the schema's column count.
	ErrArityMismatch = errors.New("reldb: wrong number of values")
	// ErrTypeMismatch is returned when a value's kind does not match the
	// declared column type. There is no automatic coercion.
	ErrTypeMismatch = errors.New("reldb: value type mismatch")
	// ErrConstraintViolation is returned when an insert or update would
	// duplicate a primary-key or unique column value.
	ErrConstraintViolation = errors.New("reldb: constraint violation")
	// ErrIndexExists is returned when creating an index on an already
	// indexed column.
	ErrIndexExists = errors.New("reldb: index already exists")
	// ErrStorageIO is returned when a table artifact cannot be written or
	// read back.
	ErrStorageIO = errors.New("reldb: storage I/O failure")
	// ErrCorruptData is returned when a persisted artifact does not decode
	// into a valid schema and row set.
	ErrCorruptData = errors.New("reldb: corrupt table data")
)
