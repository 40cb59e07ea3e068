package table

import (
	"reldb/schema"
)

// ResultSet is a finite, materialized query result: projected column labels
// plus one value slice per matching row. It is detached from table state, so
// iterating it twice yields the same rows regardless of later mutations.
type ResultSet struct {
	Columns []string
	Rows    [][]schema.Value
}

// Select returns the rows matching the optional equality filter, projected
// onto the requested columns in request order. An empty projection selects
// every column in schema order. Rows come back in insertion order.
func (t *Table) Select(projection []string, where *Where) (*ResultSet, error) {
	proj, err := t.projectionIndexes(projection)
	if err != nil {
		return nil, err
	}

	positions, err := t.matchPositions(where)
	if err != nil {
		return nil, err
	}

	rs := &ResultSet{Columns: make([]string, len(proj))}
	for i, ci := range proj {
		rs.Columns[i] = t.Columns[ci].Name
	}

	rs.Rows = make([][]schema.Value, 0, len(positions))
	for _, pos := range positions {
		out := make([]schema.Value, len(proj))
		for i, ci := range proj {
			out[i] = t.rows[pos].Values[ci]
		}
		rs.Rows = append(rs.Rows, out)
	}
	return rs, nil
}

// projectionIndexes maps requested column names to schema positions,
// defaulting to all columns.
func (t *Table) projectionIndexes(projection []string) ([]int, error) {
	if len(projection) == 0 {
		all := make([]int, len(t.Columns))
		for i := range t.Columns {
			all[i] = i
		}
		return all, nil
	}

	proj := make([]int, len(projection))
	for i, name := range projection {
		ci, err := t.Columns.ColumnIndex(name)
		if err != nil {
			return nil, err
		}
		proj[i] = ci
	}
	return proj, nil
}
