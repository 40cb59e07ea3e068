package table

import (
	"fmt"
	"sort"

	"reldb/common"
	"reldb/index"
	"reldb/schema"
	"reldb/storage"
)

// Row is one stored row: a stable surrogate ID plus values positionally
// aligned with the table's columns. IDs are never reused within a table's
// lifetime, so index entries stay valid while row positions shift.
type Row struct {
	ID     int64
	Values []schema.Value
}

// Where is the single supported filter form: column equals value.
type Where struct {
	Column string
	Value  schema.Value
}

// Table owns one table's schema, rows and indexes, and is the sole authority
// for mutating them under the schema's constraints.
type Table struct {
	Name    string
	Columns schema.Schema

	rows      []Row
	byID      map[int64]int // row ID -> current position
	indexes   map[string]*index.Index
	nextRowID int64
}

// New creates an empty table, validating the schema first.
func New(name string, columns schema.Schema) (*Table, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty table name", common.ErrInvalidSchema)
	}
	if err := columns.Validate(); err != nil {
		return nil, err
	}
	return &Table{
		Name:    name,
		Columns: columns,
		byID:    make(map[int64]int),
		indexes: make(map[string]*index.Index),
	}, nil
}

// FromRecord reconstructs a table from its persisted state. Rows get fresh
// surrogate IDs in insertion order and persisted index columns are rebuilt.
func FromRecord(rec *storage.TableRecord) (*Table, error) {
	t, err := New(rec.Name, rec.Columns)
	if err != nil {
		return nil, err
	}
	for _, values := range rec.Rows {
		row := Row{ID: t.nextRowID, Values: values}
		t.byID[row.ID] = len(t.rows)
		t.rows = append(t.rows, row)
		t.nextRowID++
	}
	for _, col := range rec.Indexes {
		if err := t.CreateIndex(col); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Record snapshots the table's full current state for persistence.
func (t *Table) Record() *storage.TableRecord {
	rec := &storage.TableRecord{
		Name:    t.Name,
		Columns: t.Columns,
		Rows:    make([][]schema.Value, len(t.rows)),
		Indexes: t.IndexedColumns(),
	}
	for i, row := range t.rows {
		rec.Rows[i] = append([]schema.Value(nil), row.Values...)
	}
	return rec
}

// RowCount returns the number of live rows.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// IndexedColumns returns the indexed column names, sorted.
func (t *Table) IndexedColumns() []string {
	if len(t.indexes) == 0 {
		return nil
	}
	cols := make([]string, 0, len(t.indexes))
	for col := range t.indexes {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols
}

// matchPositions resolves a filter to current row positions, in row order.
// A nil filter matches every row. An indexed filter column short-circuits
// through the index instead of scanning.
func (t *Table) matchPositions(where *Where) ([]int, error) {
	if where == nil {
		all := make([]int, len(t.rows))
		for i := range t.rows {
			all[i] = i
		}
		return all, nil
	}

	ci, err := t.Columns.ColumnIndex(where.Column)
	if err != nil {
		return nil, err
	}

	if idx, ok := t.indexes[where.Column]; ok {
		var positions []int
		for _, id := range idx.Lookup(where.Value) {
			if pos, live := t.byID[id]; live {
				positions = append(positions, pos)
			}
		}
		sort.Ints(positions)
		return positions, nil
	}

	var positions []int
	for i, row := range t.rows {
		if row.Values[ci].Equal(where.Value) {
			positions = append(positions, i)
		}
	}
	return positions, nil
}

// checkUnique verifies that value may be stored in the named constrained
// column, consulting the column's index when one exists. exclude holds row
// IDs exempt from the check (the rows being updated onto the value).
func (t *Table) checkUnique(col schema.Column, ci int, value schema.Value, exclude map[int64]bool) error {
	if idx, ok := t.indexes[col.Name]; ok {
		for _, id := range idx.Lookup(value) {
			if !exclude[id] {
				return constraintErr(col, value)
			}
		}
		return nil
	}

	for _, row := range t.rows {
		if exclude[row.ID] {
			continue
		}
		if row.Values[ci].Equal(value) {
			return constraintErr(col, value)
		}
	}
	return nil
}

func constraintErr(col schema.Column, value schema.Value) error {
	kind := "unique"
	if col.PrimaryKey {
		kind = "primary key"
	}
	return fmt.Errorf("%w: duplicate value '%s' for %s column '%s'",
		common.ErrConstraintViolation, value, kind, col.Name)
}
