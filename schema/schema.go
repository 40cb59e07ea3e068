package schema

import (
	"fmt"

	"reldb/common"
)

// ColumnType represents supported data types
type ColumnType string

const (
	TypeInt   ColumnType = "INT"
	TypeText  ColumnType = "TEXT"
	TypeFloat ColumnType = "FLOAT"
	TypeBool  ColumnType = "BOOL"
)

// valid reports whether t is one of the declared column types.
func (t ColumnType) valid() bool {
	switch t {
	case TypeInt, TypeText, TypeFloat, TypeBool:
		return true
	}
	return false
}

// Kind returns the value kind a column of this type stores.
func (t ColumnType) Kind() Kind {
	switch t {
	case TypeInt:
		return KindInt
	case TypeText:
		return KindText
	case TypeFloat:
		return KindFloat
	case TypeBool:
		return KindBool
	}
	return kindInvalid
}

// Column defines a table column
type Column struct {
	Name       string     `json:"name"`
	Type       ColumnType `json:"type"`
	PrimaryKey bool       `json:"primary_key,omitempty"`
	Unique     bool       `json:"unique,omitempty"`
}

// Schema is the ordered column list of one table.
type Schema []Column

// Validate checks the structural rules for a table definition: at least one
// column, unique column names, valid types, and at most one primary key.
func (s Schema) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: table must have at least one column", common.ErrInvalidSchema)
	}

	seen := make(map[string]bool, len(s))
	pkCount := 0
	for _, col := range s {
		if col.Name == "" {
			return fmt.Errorf("%w: empty column name", common.ErrInvalidSchema)
		}
		if seen[col.Name] {
			return fmt.Errorf("%w: duplicate column '%s'", common.ErrInvalidSchema, col.Name)
		}
		seen[col.Name] = true

		if !col.Type.valid() {
			return fmt.Errorf("%w: invalid type '%s' for column '%s'", common.ErrInvalidSchema, col.Type, col.Name)
		}
		if col.PrimaryKey {
			pkCount++
		}
	}

	if pkCount > 1 {
		return fmt.Errorf("%w: more than one primary key", common.ErrInvalidSchema)
	}
	return nil
}

// ColumnIndex returns the position of the named column, or ErrUnknownColumn.
func (s Schema) ColumnIndex(name string) (int, error) {
	for i, col := range s {
		if col.Name == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: '%s'", common.ErrUnknownColumn, name)
}

// Names returns the column names in schema order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, col := range s {
		names[i] = col.Name
	}
	return names
}

// PrimaryKey returns the primary-key column name, or "" if none is declared.
func (s Schema) PrimaryKey() string {
	for _, col := range s {
		if col.PrimaryKey {
			return col.Name
		}
	}
	return ""
}

// CheckRow validates a full row against the schema: correct arity, then a
// strict kind match per column.
func (s Schema) CheckRow(values []Value) error {
	if len(values) != len(s) {
		return fmt.Errorf("%w: got %d values, table has %d columns",
			common.ErrArityMismatch, len(values), len(s))
	}
	for i, col := range s {
		if err := CheckValue(values[i], col); err != nil {
			return err
		}
	}
	return nil
}

// CheckValue validates a single value against one column's declared type.
// Validation is strict: an INT value is not accepted for a FLOAT column and
// vice versa. No automatic coercion.
func CheckValue(v Value, col Column) error {
	if v.Kind() != col.Type.Kind() {
		return fmt.Errorf("%w: column '%s' expects %s, got %s (%s)",
			common.ErrTypeMismatch, col.Name, col.Type, v.Kind(), v)
	}
	return nil
}
