package table

import (
	"reldb/schema"
)

// Join performs an inner equality join against another table using the
// nested-loop algorithm: every pair of rows whose join columns hold equal
// values yields one result row, the left row's values followed by the right
// row's. No deduplication and no outer-join padding; cost is O(n*m).
//
// Result columns are labeled table.column so same-named columns from the two
// sides stay distinguishable.
func (t *Table) Join(other *Table, leftColumn, rightColumn string) (*ResultSet, error) {
	li, err := t.Columns.ColumnIndex(leftColumn)
	if err != nil {
		return nil, err
	}
	ri, err := other.Columns.ColumnIndex(rightColumn)
	if err != nil {
		return nil, err
	}

	rs := &ResultSet{Columns: make([]string, 0, len(t.Columns)+len(other.Columns))}
	for _, col := range t.Columns {
		rs.Columns = append(rs.Columns, t.Name+"."+col.Name)
	}
	for _, col := range other.Columns {
		rs.Columns = append(rs.Columns, other.Name+"."+col.Name)
	}

	for _, left := range t.rows {
		for _, right := range other.rows {
			if !left.Values[li].Equal(right.Values[ri]) {
				continue
			}
			combined := make([]schema.Value, 0, len(left.Values)+len(right.Values))
			combined = append(combined, left.Values...)
			combined = append(combined, right.Values...)
			rs.Rows = append(rs.Rows, combined)
		}
	}
	return rs, nil
}
