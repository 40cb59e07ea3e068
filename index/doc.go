// Package index provides hash indexes for equality lookups on one column.
//
// An index maps canonical value keys to lists of stable row IDs, giving O(1)
// amortized lookup for WHERE column = value compared to a full scan. The
// canonical key is kind-prefixed, so INT 1, FLOAT 1.0 and TEXT "1" occupy
// distinct buckets and an index lookup can never match across types.
//
// Indexes live entirely in memory. The table engine builds one with a full
// scan when CREATE INDEX runs (or at startup for persisted index columns)
// and afterwards maintains it incrementally on every insert, update and
// delete, so index content always reflects the current row set exactly.
//
// Usage Example:
//
//	idx := index.New("age")
//	idx.Add(schema.Int(30), 1)
//	idx.Add(schema.Int(30), 3)
//	ids := idx.Lookup(schema.Int(30)) // [1, 3]
//	idx.Remove(schema.Int(30), 1)
package index
