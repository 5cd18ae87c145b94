// Package axistable provides an embedded two-dimensional associative table
// over integer identities.
//
// A Table maps a (row, column) cell to a set of value identities and keeps
// two derived axis indices up to date: every value reachable from a row
// through any column, and every value reachable from a column through any
// row. Both axis lookups are O(1).
//
// # Quick Start
//
//	t := axistable.New[axistable.Key, axistable.Key, axistable.Key]()
//	t.Insert(1, 10, 100)
//	t.Insert(1, 10, 101)
//	t.Insert(2, 10, 200)
//
//	t.Cell(1, 10).IDs() // [100 101]
//	t.Row(1).IDs()      // [100 101]
//	t.Col(10).IDs()     // [100 101 200]
//
//	t.Remove(1, 10, 100)
//	inv := axistable.BuildInverse(t)
//	inv.ColumnExcept(1, 10).IDs() // [200]
//
// # Identities
//
// Row, column and value types implement Identifier. The table stores only
// the identities they report, so those must be stable and unique per axis.
// Key adapts plain integers.
//
// # Multiplicity
//
// A value may sit in several cells of the same row. The row index therefore
// keeps a per-(row, value) count of the distinct cells holding the value,
// and Remove drops the value from the row index only when that count falls
// to zero. Columns work the same way. Re-inserting a triple that is already
// present is a no-op, so the counts always equal the number of contributing
// cells.
//
// # Inverse Table
//
// BuildInverse derives, for every occupied cell (r, c), Col(c) \ Row(r) and
// Row(r) \ Col(c). The result is a detached snapshot; it is not maintained
// incrementally and must be rebuilt after the table changes.
//
// # Concurrency
//
// Nothing in this package locks. A Table must be used from one goroutine at
// a time. BuildInverse may fan out internally (WithParallelism) but returns
// only when the build is complete.
package axistable
