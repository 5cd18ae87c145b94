package testutil

import "github.com/hupe1980/axistable/idset"

// Triple is one (row, column, value) entry.
type Triple struct {
	Row   uint64
	Col   uint64
	Value uint64
}

// Oracle is a brute-force model of a table: a flat set of triples.
// Every query scans all triples, so its answers are independent of any
// index bookkeeping.
type Oracle struct {
	triples map[Triple]struct{}
}

// NewOracle creates an empty Oracle.
func NewOracle() *Oracle {
	return &Oracle{
		triples: make(map[Triple]struct{}),
	}
}

// Insert adds a triple.
func (o *Oracle) Insert(row, col, value uint64) {
	o.triples[Triple{Row: row, Col: col, Value: value}] = struct{}{}
}

// Remove removes a triple and reports whether it was present.
func (o *Oracle) Remove(row, col, value uint64) bool {
	t := Triple{Row: row, Col: col, Value: value}
	if _, ok := o.triples[t]; !ok {
		return false
	}
	delete(o.triples, t)
	return true
}

// Apply replays ops in order.
func (o *Oracle) Apply(ops ...Op) {
	for _, op := range ops {
		switch op.Kind {
		case OpInsert:
			o.Insert(op.Row, op.Col, op.Value)
		case OpRemove:
			o.Remove(op.Row, op.Col, op.Value)
		}
	}
}

// Len returns the number of triples.
func (o *Oracle) Len() int {
	return len(o.triples)
}

// Cell returns the values at (row, col).
func (o *Oracle) Cell(row, col uint64) *idset.Set {
	return o.collect(func(t Triple) bool { return t.Row == row && t.Col == col })
}

// Row returns the union of every cell of row.
func (o *Oracle) Row(row uint64) *idset.Set {
	return o.collect(func(t Triple) bool { return t.Row == row })
}

// Col returns the union of every cell of col.
func (o *Oracle) Col(col uint64) *idset.Set {
	return o.collect(func(t Triple) bool { return t.Col == col })
}

// Cells returns the occupied cells as [row, col] pairs.
func (o *Oracle) Cells() map[[2]uint64]struct{} {
	cells := make(map[[2]uint64]struct{})
	for t := range o.triples {
		cells[[2]uint64{t.Row, t.Col}] = struct{}{}
	}
	return cells
}

// Rows returns every row with at least one triple.
func (o *Oracle) Rows() map[uint64]struct{} {
	rows := make(map[uint64]struct{})
	for t := range o.triples {
		rows[t.Row] = struct{}{}
	}
	return rows
}

// Cols returns every column with at least one triple.
func (o *Oracle) Cols() map[uint64]struct{} {
	cols := make(map[uint64]struct{})
	for t := range o.triples {
		cols[t.Col] = struct{}{}
	}
	return cols
}

// RowMultiplicity returns the number of distinct cells of row holding value.
func (o *Oracle) RowMultiplicity(row, value uint64) int {
	n := 0
	for t := range o.triples {
		if t.Row == row && t.Value == value {
			n++
		}
	}
	return n
}

// ColumnExcept returns Col(col) \ Row(row).
func (o *Oracle) ColumnExcept(row, col uint64) *idset.Set {
	return o.Col(col).Difference(o.Row(row))
}

// RowExcept returns Row(row) \ Col(col).
func (o *Oracle) RowExcept(row, col uint64) *idset.Set {
	return o.Row(row).Difference(o.Col(col))
}

func (o *Oracle) collect(match func(Triple) bool) *idset.Set {
	s := idset.New()
	for t := range o.triples {
		if match(t) {
			s.Add(t.Value)
		}
	}
	return s
}
