package index

import (
	"reldb/schema"
)

// Index is a hash index over one column: canonical value key -> row IDs.
// Row IDs are stable surrogate identifiers assigned by the table engine, so
// deleting a row never invalidates the entries for the rows that remain.
type Index struct {
	Column  string
	entries map[string][]int64
}

// New creates an empty index on the named column.
func New(column string) *Index {
	return &Index{
		Column:  column,
		entries: make(map[string][]int64),
	}
}

// Add records that rowID currently holds value in the indexed column.
func (idx *Index) Add(value schema.Value, rowID int64) {
	key := value.Key()
	idx.entries[key] = append(idx.entries[key], rowID)
}

// Remove drops rowID from the bucket for value. Unknown pairs are ignored.
func (idx *Index) Remove(value schema.Value, rowID int64) {
	key := value.Key()
	ids, ok := idx.entries[key]
	if !ok {
		return
	}

	kept := ids[:0]
	for _, id := range ids {
		if id != rowID {
			kept = append(kept, id)
		}
	}
	if len(kept) == 0 {
		delete(idx.entries, key)
	} else {
		idx.entries[key] = kept
	}
}

// Update moves rowID from the old value's bucket to the new one.
func (idx *Index) Update(oldValue, newValue schema.Value, rowID int64) {
	if oldValue.Equal(newValue) {
		return
	}
	idx.Remove(oldValue, rowID)
	idx.Add(newValue, rowID)
}

// Lookup returns the IDs of rows holding value, in insertion order. A value
// with no rows yields an empty result, never an error.
func (idx *Index) Lookup(value schema.Value) []int64 {
	return idx.entries[value.Key()]
}

// Contains reports whether any row holds value.
func (idx *Index) Contains(value schema.Value) bool {
	_, ok := idx.entries[value.Key()]
	return ok
}

// Len returns the number of distinct values in the index.
func (idx *Index) Len() int {
	return len(idx.entries)
}
