package table

import (
	"fmt"

	"reldb/common"
	"reldb/index"
	"reldb/schema"
)

// CreateIndex builds a hash index on the named column with a full scan of
// the current rows. The index is maintained incrementally by every later
// insert, update and delete.
func (t *Table) CreateIndex(column string) error {
	ci, err := t.Columns.ColumnIndex(column)
	if err != nil {
		return err
	}
	if _, exists := t.indexes[column]; exists {
		return fmt.Errorf("%w: column '%s' of table '%s'", common.ErrIndexExists, column, t.Name)
	}

	idx := index.New(column)
	for _, row := range t.rows {
		idx.Add(row.Values[ci], row.ID)
	}
	t.indexes[column] = idx
	return nil
}

// HasIndex reports whether the column is indexed.
func (t *Table) HasIndex(column string) bool {
	_, ok := t.indexes[column]
	return ok
}

// IndexLookup returns the current positions of rows whose indexed column
// holds value. It fails with ErrUnknownColumn for a missing column and
// returns an empty result when the column is not indexed or nothing matches.
func (t *Table) IndexLookup(column string, value schema.Value) ([]int, error) {
	return t.matchPositions(&Where{Column: column, Value: value})
}
