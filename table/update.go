package table

import (
	"fmt"

	"reldb/common"
	"reldb/schema"
)

// Update sets the given column values on every row matching the filter and
// returns how many rows changed. Every target row's new values are validated
// against types and constraints before anything is mutated; any collision
// aborts the whole update, so a failed update never leaves a partial state.
func (t *Table) Update(set map[string]schema.Value, where *Where) (int, error) {
	positions, err := t.matchPositions(where)
	if err != nil {
		return 0, err
	}

	// Type-check the new values against their columns first.
	setIdx := make(map[int]schema.Value, len(set))
	for name, value := range set {
		ci, err := t.Columns.ColumnIndex(name)
		if err != nil {
			return 0, err
		}
		if err := schema.CheckValue(value, t.Columns[ci]); err != nil {
			return 0, err
		}
		setIdx[ci] = value
	}

	if len(positions) == 0 {
		return 0, nil
	}

	// Constraint pre-pass. A unique value may land on a target row only if
	// no row outside the target set holds it; setting a constrained column
	// on more than one target is itself a collision.
	targets := make(map[int64]bool, len(positions))
	for _, pos := range positions {
		targets[t.rows[pos].ID] = true
	}
	for ci, value := range setIdx {
		col := t.Columns[ci]
		if !col.PrimaryKey && !col.Unique {
			continue
		}
		if len(positions) > 1 {
			return 0, fmt.Errorf("%w: cannot set %d rows to the same value '%s' in unique column '%s'",
				common.ErrConstraintViolation, len(positions), value, col.Name)
		}
		if err := t.checkUnique(col, ci, value, targets); err != nil {
			return 0, err
		}
	}

	// Commit.
	for _, pos := range positions {
		row := &t.rows[pos]
		for ci, value := range setIdx {
			if idx, ok := t.indexes[t.Columns[ci].Name]; ok {
				idx.Update(row.Values[ci], value, row.ID)
			}
			row.Values[ci] = value
		}
	}
	return len(positions), nil
}
