package axistable

import (
	"time"

	"github.com/hupe1980/axistable/idset"
)

// RemoveRow removes every value from every cell of rowID and returns the
// number of triples removed.
//
// Cost is proportional to the cells of rowID, not to the table size.
func (t *Table[R, C, V]) RemoveRow(rowID uint64) int {
	start := time.Now()
	n := t.removeLine(t.rows.links[rowID], func(colID uint64) Cell {
		return Cell{Row: rowID, Col: colID}
	})

	t.logger.LogBulkRemove(AxisRow, rowID, n)
	if t.metrics != nil {
		t.metrics.RecordBulkRemove(AxisRow, n, time.Since(start))
	}

	return n
}

// RemoveColumn removes every value from every cell of colID and returns the
// number of triples removed.
func (t *Table[R, C, V]) RemoveColumn(colID uint64) int {
	start := time.Now()
	n := t.removeLine(t.cols.links[colID], func(rowID uint64) Cell {
		return Cell{Row: rowID, Col: colID}
	})

	t.logger.LogBulkRemove(AxisCol, colID, n)
	if t.metrics != nil {
		t.metrics.RecordBulkRemove(AxisCol, n, time.Since(start))
	}

	return n
}

func (t *Table[R, C, V]) removeLine(links *idset.Set, cellOf func(other uint64) Cell) int {
	if links == nil {
		return 0
	}

	// IDs copies, so removal may prune links and cells while we walk them.
	n := 0
	for _, other := range links.IDs() {
		cell := cellOf(other)
		values, ok := t.cells[cell]
		if !ok {
			continue
		}
		for _, v := range values.IDs() {
			if t.remove(cell.Row, cell.Col, v) {
				n++
			}
		}
	}

	return n
}

// Clear removes all values, keeping the table's configuration.
func (t *Table[R, C, V]) Clear() {
	cells := len(t.cells)

	t.cells = make(map[Cell]*idset.Set)
	t.rows = newAxisIndex(0)
	t.cols = newAxisIndex(0)

	t.logger.Debug("table cleared", "cells", cells)
}
