package table

import "reldb/schema"

// Insert appends one row after validating arity, per-value types and every
// primary-key/unique constraint. All checks run before any mutation, so a
// failed insert leaves the table exactly as it was. Returns the number of
// rows inserted, always 1 on success.
func (t *Table) Insert(values []schema.Value) (int, error) {
	if err := t.Columns.CheckRow(values); err != nil {
		return 0, err
	}

	for ci, col := range t.Columns {
		if !col.PrimaryKey && !col.Unique {
			continue
		}
		if err := t.checkUnique(col, ci, values[ci], nil); err != nil {
			return 0, err
		}
	}

	row := Row{ID: t.nextRowID, Values: append([]schema.Value(nil), values...)}
	t.nextRowID++
	t.byID[row.ID] = len(t.rows)
	t.rows = append(t.rows, row)

	for col, idx := range t.indexes {
		ci, _ := t.Columns.ColumnIndex(col)
		idx.Add(row.Values[ci], row.ID)
	}

	return 1, nil
}
