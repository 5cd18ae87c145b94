package axistable

// Stats is a point-in-time summary of a Table.
type Stats struct {
	// Cells is the number of occupied cells.
	Cells int
	// Rows is the number of rows with at least one value.
	Rows int
	// Cols is the number of columns with at least one value.
	Cols int
	// Triples is the number of (row, column, value) triples.
	Triples int
	// RowMultiplicities is the number of (row, value) counters.
	RowMultiplicities int
	// ColMultiplicities is the number of (column, value) counters.
	ColMultiplicities int
	// BitmapBytes is the in-memory size of all identity bitmaps.
	BitmapBytes uint64
}

// Stats returns a summary of t. It walks every cell.
func (t *Table[R, C, V]) Stats() Stats {
	s := Stats{
		Cells:             len(t.cells),
		Rows:              len(t.rows.values),
		Cols:              len(t.cols.values),
		RowMultiplicities: len(t.rows.counts),
		ColMultiplicities: len(t.cols.counts),
		BitmapBytes:       t.rows.sizeInBytes() + t.cols.sizeInBytes(),
	}

	for _, set := range t.cells {
		s.Triples += set.Len()
		s.BitmapBytes += set.SizeInBytes()
	}

	return s
}
