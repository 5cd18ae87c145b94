package axistable

import (
	"iter"
	"time"

	"github.com/hupe1980/axistable/idset"
)

// Table maps (row, column) cells to sets of value identities and keeps, for
// every row and every column, the union of the values held by its cells.
//
// R, C and V are the row, column and value key types. Only their identities
// are stored.
//
// A Table is not safe for concurrent use. Callers that share one across
// goroutines must serialize access themselves.
type Table[R, C, V Identifier] struct {
	cells map[Cell]*idset.Set
	rows  axisIndex
	cols  axisIndex

	logger  *Logger
	metrics MetricsCollector
}

// New creates an empty Table.
func New[R, C, V Identifier](optFns ...Option) *Table[R, C, V] {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	return &Table[R, C, V]{
		cells:   make(map[Cell]*idset.Set, o.capacity),
		rows:    newAxisIndex(o.capacity),
		cols:    newAxisIndex(o.capacity),
		logger:  o.logger,
		metrics: o.metricsCollector,
	}
}

// Insert adds value to the cell at (row, col).
//
// Inserting a triple that is already present leaves the table unchanged.
func (t *Table[R, C, V]) Insert(row R, col C, value V) {
	t.InsertIDs(row.ID(), col.ID(), value.ID())
}

// InsertIDs is Insert on raw identities.
func (t *Table[R, C, V]) InsertIDs(rowID, colID, valueID uint64) {
	if t.metrics == nil {
		t.insert(rowID, colID, valueID)
		return
	}

	start := time.Now()
	added := t.insert(rowID, colID, valueID)
	t.metrics.RecordInsert(time.Since(start), added)
}

func (t *Table[R, C, V]) insert(rowID, colID, valueID uint64) bool {
	cell := Cell{Row: rowID, Col: colID}

	set, ok := t.cells[cell]
	if !ok {
		set = idset.New()
		t.cells[cell] = set
		t.rows.link(rowID, colID)
		t.cols.link(colID, rowID)
	}

	// Counters track distinct cells, so a repeated triple must not bump them.
	if !set.Add(valueID) {
		return false
	}

	t.rows.retain(rowID, valueID)
	t.cols.retain(colID, valueID)

	return true
}

// Remove removes valueID from the cell at (rowID, colID) and reports whether
// it was present. Removing an absent triple is a no-op.
//
// The value stays in the row (column) index as long as another cell of that
// row (column) still holds it.
func (t *Table[R, C, V]) Remove(rowID, colID, valueID uint64) bool {
	if t.metrics == nil {
		return t.remove(rowID, colID, valueID)
	}

	start := time.Now()
	removed := t.remove(rowID, colID, valueID)
	t.metrics.RecordRemove(time.Since(start), removed)

	return removed
}

func (t *Table[R, C, V]) remove(rowID, colID, valueID uint64) bool {
	cell := Cell{Row: rowID, Col: colID}

	if !removeFrom(t.cells, cell, valueID) {
		return false
	}

	if _, ok := t.cells[cell]; !ok {
		t.rows.unlink(rowID, colID)
		t.cols.unlink(colID, rowID)
	}

	t.rows.release(rowID, valueID)
	t.cols.release(colID, valueID)

	return true
}

// Cell returns the values held at (rowID, colID).
// The view is empty if the cell is not occupied.
func (t *Table[R, C, V]) Cell(rowID, colID uint64) idset.View {
	if s, ok := t.cells[Cell{Row: rowID, Col: colID}]; ok {
		return s.View()
	}
	return idset.View{}
}

// Row returns every value held by any cell of rowID.
func (t *Table[R, C, V]) Row(rowID uint64) idset.View {
	return t.rows.view(rowID)
}

// Col returns every value held by any cell of colID.
func (t *Table[R, C, V]) Col(colID uint64) idset.View {
	return t.cols.view(colID)
}

// Columns returns the columns that have an occupied cell in rowID.
func (t *Table[R, C, V]) Columns(rowID uint64) idset.View {
	return t.rows.linksOf(rowID)
}

// Rows returns the rows that have an occupied cell in colID.
func (t *Table[R, C, V]) Rows(colID uint64) idset.View {
	return t.cols.linksOf(colID)
}

// Multiplicity returns the number of distinct cells on the given axis key
// that hold valueID.
func (t *Table[R, C, V]) Multiplicity(axis Axis, key, valueID uint64) int {
	if axis == AxisCol {
		return t.cols.multiplicity(key, valueID)
	}
	return t.rows.multiplicity(key, valueID)
}

// Len returns the number of occupied cells.
func (t *Table[R, C, V]) Len() int {
	return len(t.cells)
}

// IsEmpty reports whether the table holds no values.
func (t *Table[R, C, V]) IsEmpty() bool {
	return len(t.cells) == 0
}

// Cells returns an iterator over the occupied cells and their values.
// Iteration order is unspecified. The table must not be mutated while
// iterating.
func (t *Table[R, C, V]) Cells() iter.Seq2[Cell, idset.View] {
	return func(yield func(Cell, idset.View) bool) {
		for c, s := range t.cells {
			if !yield(c, s.View()) {
				return
			}
		}
	}
}

// RowIDs returns an iterator over the rows with at least one value.
// Iteration order is unspecified.
func (t *Table[R, C, V]) RowIDs() iter.Seq[uint64] {
	return keys(t.rows.values)
}

// ColIDs returns an iterator over the columns with at least one value.
// Iteration order is unspecified.
func (t *Table[R, C, V]) ColIDs() iter.Seq[uint64] {
	return keys(t.cols.values)
}

func keys(m map[uint64]*idset.Set) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for k := range m {
			if !yield(k) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the table sharing no state with t.
// The copy keeps t's logger and metrics collector.
func (t *Table[R, C, V]) Clone() *Table[R, C, V] {
	return &Table[R, C, V]{
		cells:   cloneSets(t.cells),
		rows:    t.rows.clone(),
		cols:    t.cols.clone(),
		logger:  t.logger,
		metrics: t.metrics,
	}
}
