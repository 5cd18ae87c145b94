package axistable

import (
	"testing"

	"github.com/hupe1980/axistable/idset"
	"github.com/hupe1980/axistable/testutil"
	"github.com/stretchr/testify/require"
)

type intTable = Table[Key, Key, Key]

func newIntTable(opts ...Option) *intTable {
	return New[Key, Key, Key](opts...)
}

// state is a plain-map rendering of every index of a table, comparable with
// require.Equal regardless of bitmap internals.
type state struct {
	Cells     map[Cell][]uint64
	Rows      map[uint64][]uint64
	Cols      map[uint64][]uint64
	RowLinks  map[uint64][]uint64
	ColLinks  map[uint64][]uint64
	RowCounts map[axisKey]uint32
	ColCounts map[axisKey]uint32
}

func snapshot(t *intTable) state {
	flat := func(m map[uint64]*idset.Set) map[uint64][]uint64 {
		out := make(map[uint64][]uint64, len(m))
		for k, s := range m {
			out[k] = s.IDs()
		}
		return out
	}
	counts := func(m map[axisKey]uint32) map[axisKey]uint32 {
		out := make(map[axisKey]uint32, len(m))
		for k, n := range m {
			out[k] = n
		}
		return out
	}

	cells := make(map[Cell][]uint64, len(t.cells))
	for c, s := range t.cells {
		cells[c] = s.IDs()
	}

	return state{
		Cells:     cells,
		Rows:      flat(t.rows.values),
		Cols:      flat(t.cols.values),
		RowLinks:  flat(t.rows.links),
		ColLinks:  flat(t.cols.links),
		RowCounts: counts(t.rows.counts),
		ColCounts: counts(t.cols.counts),
	}
}

func apply(tbl *intTable, ops []testutil.Op) {
	for _, op := range ops {
		switch op.Kind {
		case testutil.OpInsert:
			tbl.InsertIDs(op.Row, op.Col, op.Value)
		case testutil.OpRemove:
			tbl.Remove(op.Row, op.Col, op.Value)
		}
	}
}

// requireMatchesOracle checks every query of tbl against a brute-force scan.
func requireMatchesOracle(t *testing.T, tbl *intTable, o *testutil.Oracle) {
	t.Helper()

	require.NoError(t, tbl.Validate())

	cells := o.Cells()
	require.Equal(t, len(cells), tbl.Len())
	for c := range cells {
		require.Equal(t, o.Cell(c[0], c[1]).IDs(), tbl.Cell(c[0], c[1]).IDs(), "cell %v", c)
	}

	rows := o.Rows()
	require.Len(t, rows, len(tbl.rows.values))
	for r := range rows {
		require.Equal(t, o.Row(r).IDs(), tbl.Row(r).IDs(), "row %d", r)
	}

	cols := o.Cols()
	require.Len(t, cols, len(tbl.cols.values))
	for c := range cols {
		require.Equal(t, o.Col(c).IDs(), tbl.Col(c).IDs(), "col %d", c)
	}
}
