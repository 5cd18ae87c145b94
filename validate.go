package axistable

// Validate audits every index of t against its cells and returns an
// *InvariantError describing the first inconsistency found, or nil.
//
// It walks the whole table and is never called implicitly. It does not
// detect identity instability of caller objects, only its consequences.
func (t *Table[R, C, V]) Validate() error {
	wantRows := make(map[axisKey]int, len(t.rows.counts))
	wantCols := make(map[axisKey]int, len(t.cols.counts))

	for cell, set := range t.cells {
		if set.IsEmpty() {
			return &InvariantError{Kind: KindEmptyCell, Cell: cell}
		}
		if !t.rows.linksOf(cell.Row).Contains(cell.Col) {
			return &InvariantError{Kind: KindLink, Axis: AxisRow, Key: cell.Row, Value: cell.Col, Cell: cell}
		}
		if !t.cols.linksOf(cell.Col).Contains(cell.Row) {
			return &InvariantError{Kind: KindLink, Axis: AxisCol, Key: cell.Col, Value: cell.Row, Cell: cell}
		}
		for v := range set.All() {
			wantRows[axisKey{key: cell.Row, value: v}]++
			wantCols[axisKey{key: cell.Col, value: v}]++
		}
	}

	if err := t.validateAxis(AxisRow, &t.rows, wantRows); err != nil {
		return err
	}
	return t.validateAxis(AxisCol, &t.cols, wantCols)
}

func (t *Table[R, C, V]) validateAxis(axis Axis, a *axisIndex, want map[axisKey]int) error {
	for k, n := range want {
		if got := int(a.counts[k]); got != n {
			return &InvariantError{Kind: KindMultiplicity, Axis: axis, Key: k.key, Value: k.value, Want: n, Got: got}
		}
		if !a.view(k.key).Contains(k.value) {
			return &InvariantError{Kind: KindMembership, Axis: axis, Key: k.key, Value: k.value}
		}
	}

	for k, n := range a.counts {
		if want[k] == 0 {
			return &InvariantError{Kind: KindMultiplicity, Axis: axis, Key: k.key, Value: k.value, Want: 0, Got: int(n)}
		}
	}

	// Every wanted pair is a member, so equal totals rule out extra members.
	members := 0
	for key, s := range a.values {
		if s.IsEmpty() {
			return &InvariantError{Kind: KindEmptyEntry, Axis: axis, Key: key}
		}
		members += s.Len()
	}
	if members != len(want) {
		for key, s := range a.values {
			for v := range s.All() {
				if want[axisKey{key: key, value: v}] == 0 {
					return &InvariantError{Kind: KindMembership, Axis: axis, Key: key, Value: v}
				}
			}
		}
	}

	links := 0
	for key, s := range a.links {
		if s.IsEmpty() {
			return &InvariantError{Kind: KindEmptyEntry, Axis: axis, Key: key}
		}
		links += s.Len()
	}
	if links != len(t.cells) {
		for key, s := range a.links {
			for other := range s.All() {
				cell := Cell{Row: key, Col: other}
				if axis == AxisCol {
					cell = Cell{Row: other, Col: key}
				}
				if _, ok := t.cells[cell]; !ok {
					return &InvariantError{Kind: KindLink, Axis: axis, Key: key, Value: other, Cell: cell}
				}
			}
		}
	}

	return nil
}
