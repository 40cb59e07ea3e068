// Package schema defines the type system shared by every other package: the
// four column types (INT, TEXT, FLOAT, BOOL), column definitions with their
// constraint flags, and the tagged Value variant used for row cells.
//
// Validation is deliberately strict. A Value is accepted for a column only if
// its kind matches the declared type exactly; INT and FLOAT never coerce into
// each other, and BOOL is never treated as a number. The same strictness
// carries through persistence: Value marshals itself with an explicit type
// tag so a round trip through JSON cannot blur the INT/FLOAT distinction.
//
// Key Responsibilities:
//   - Declaring column types and constraint flags (PRIMARY KEY, UNIQUE)
//   - Structural schema validation (duplicate columns, multiple primary keys)
//   - Strict per-value and per-row type checking
//   - Lossless JSON encoding of cell values
//
// Usage Example:
//
//	s := schema.Schema{
//		{Name: "id", Type: schema.TypeInt, PrimaryKey: true},
//		{Name: "name", Type: schema.TypeText},
//	}
//	if err := s.Validate(); err != nil { ... }
//	err := s.CheckRow([]schema.Value{schema.Int(1), schema.Text("Alice")})
package schema
