package axistable

import (
	"iter"
	"time"

	"github.com/hupe1980/axistable/idset"
	"golang.org/x/sync/errgroup"
)

// Source is the read-only view of a table that BuildInverse consumes.
// *Table satisfies it.
//
// With WithParallelism > 1, Row and Col are called from several goroutines
// at once and must be safe for concurrent reads.
type Source interface {
	Len() int
	Cells() iter.Seq2[Cell, idset.View]
	Row(rowID uint64) idset.View
	Col(colID uint64) idset.View
}

// InverseTable holds, for every cell occupied at build time, the values seen
// on the cell's column but not on its row, and the reverse.
//
// An InverseTable owns all of its sets and never observes later changes to
// the table it was built from. Rebuild it to catch up.
type InverseTable struct {
	colExcept map[Cell]*idset.Set
	rowExcept map[Cell]*idset.Set
}

// BuildInverse computes the inverse of src in one pass over its occupied
// cells. It has no failure mode.
func BuildInverse(src Source, optFns ...InverseOption) *InverseTable {
	o := defaultInverseOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	start := time.Now()

	cells := make([]Cell, 0, src.Len())
	for c := range src.Cells() {
		cells = append(cells, c)
	}

	colExcept := make([]*idset.Set, len(cells))
	rowExcept := make([]*idset.Set, len(cells))

	diff := func(lo, hi int) {
		for i := lo; i < hi; i++ {
			row := src.Row(cells[i].Row)
			col := src.Col(cells[i].Col)
			colExcept[i] = col.Difference(row)
			rowExcept[i] = row.Difference(col)
		}
	}

	workers := min(o.parallelism, len(cells))
	if workers <= 1 {
		workers = 1
		diff(0, len(cells))
	} else {
		// Each worker owns a disjoint slot range of the result slices.
		chunk := (len(cells) + workers - 1) / workers

		var g errgroup.Group
		g.SetLimit(workers)
		for lo := 0; lo < len(cells); lo += chunk {
			hi := min(lo+chunk, len(cells))
			g.Go(func() error {
				diff(lo, hi)
				return nil
			})
		}
		_ = g.Wait()
	}

	inv := &InverseTable{
		colExcept: make(map[Cell]*idset.Set, len(cells)),
		rowExcept: make(map[Cell]*idset.Set, len(cells)),
	}
	for i, c := range cells {
		inv.colExcept[c] = colExcept[i]
		inv.rowExcept[c] = rowExcept[i]
	}

	o.logger.LogRebuild(len(cells), workers)
	if o.metricsCollector != nil {
		o.metricsCollector.RecordRebuild(len(cells), time.Since(start))
	}

	return inv
}

// ColumnExcept returns the values of column colID that are not reachable
// from row rowID, as of the build. It is empty for cells that were not
// occupied at build time.
func (inv *InverseTable) ColumnExcept(rowID, colID uint64) idset.View {
	if s, ok := inv.colExcept[Cell{Row: rowID, Col: colID}]; ok {
		return s.View()
	}
	return idset.View{}
}

// RowExcept returns the values of row rowID that are not reachable from
// column colID, as of the build.
func (inv *InverseTable) RowExcept(rowID, colID uint64) idset.View {
	if s, ok := inv.rowExcept[Cell{Row: rowID, Col: colID}]; ok {
		return s.View()
	}
	return idset.View{}
}

// Has reports whether the cell was occupied at build time.
func (inv *InverseTable) Has(rowID, colID uint64) bool {
	_, ok := inv.colExcept[Cell{Row: rowID, Col: colID}]
	return ok
}

// Len returns the number of cells covered.
func (inv *InverseTable) Len() int {
	return len(inv.colExcept)
}

// Cells returns an iterator over the covered cells in unspecified order.
func (inv *InverseTable) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for c := range inv.colExcept {
			if !yield(c) {
				return
			}
		}
	}
}
