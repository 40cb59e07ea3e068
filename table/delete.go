package table

// Delete removes every row matching the filter and returns the count. A nil
// filter clears the whole table. Index entries for removed rows are dropped;
// remaining entries stay valid because they reference stable row IDs, not
// positions, even though the surviving rows shift down.
func (t *Table) Delete(where *Where) (int, error) {
	positions, err := t.matchPositions(where)
	if err != nil {
		return 0, err
	}
	if len(positions) == 0 {
		return 0, nil
	}

	doomed := make(map[int]bool, len(positions))
	for _, pos := range positions {
		doomed[pos] = true

		row := t.rows[pos]
		for col, idx := range t.indexes {
			ci, _ := t.Columns.ColumnIndex(col)
			idx.Remove(row.Values[ci], row.ID)
		}
		delete(t.byID, row.ID)
	}

	kept := t.rows[:0]
	for pos, row := range t.rows {
		if !doomed[pos] {
			kept = append(kept, row)
		}
	}
	t.rows = kept

	// Renumber positions for the survivors.
	for pos, row := range t.rows {
		t.byID[row.ID] = pos
	}

	return len(positions), nil
}
