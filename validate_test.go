package axistable

import (
	"errors"
	"testing"

	"github.com/hupe1980/axistable/idset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_DetectsCorruption(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(tbl *intTable)
		kind    InvariantKind
		axis    Axis
	}{
		{
			name:    "inflated row counter",
			corrupt: func(tbl *intTable) { tbl.rows.counts[axisKey{key: 1, value: 100}] = 2 },
			kind:    KindMultiplicity,
			axis:    AxisRow,
		},
		{
			name:    "stray column counter",
			corrupt: func(tbl *intTable) { tbl.cols.counts[axisKey{key: 10, value: 42}] = 1 },
			kind:    KindMultiplicity,
			axis:    AxisCol,
		},
		{
			name:    "value missing from row index",
			corrupt: func(tbl *intTable) { tbl.rows.values[1].Remove(100) },
			kind:    KindMembership,
			axis:    AxisRow,
		},
		{
			name:    "extra value in column index",
			corrupt: func(tbl *intTable) { tbl.cols.values[10].Add(42) },
			kind:    KindMembership,
			axis:    AxisCol,
		},
		{
			name:    "missing row link",
			corrupt: func(tbl *intTable) { tbl.rows.unlink(1, 10) },
			kind:    KindLink,
			axis:    AxisRow,
		},
		{
			name:    "stray column link",
			corrupt: func(tbl *intTable) { tbl.cols.link(10, 99) },
			kind:    KindLink,
			axis:    AxisCol,
		},
		{
			name:    "empty row entry",
			corrupt: func(tbl *intTable) { tbl.rows.values[7] = idset.New() },
			kind:    KindEmptyEntry,
			axis:    AxisRow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := newIntTable()
			tbl.Insert(1, 10, 100)
			require.NoError(t, tbl.Validate())

			tt.corrupt(tbl)

			err := tbl.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInconsistent))

			var ie *InvariantError
			require.True(t, errors.As(err, &ie))
			assert.Equal(t, tt.kind, ie.Kind)
			assert.Equal(t, tt.axis, ie.Axis)
			assert.NotEmpty(t, ie.Error())
		})
	}
}

func TestValidate_EmptyCell(t *testing.T) {
	tbl := newIntTable()
	tbl.Insert(1, 10, 100)
	tbl.cells[Cell{Row: 7, Col: 7}] = idset.New()

	err := tbl.Validate()

	var ie *InvariantError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, KindEmptyCell, ie.Kind)
	assert.Equal(t, Cell{Row: 7, Col: 7}, ie.Cell)
	assert.Equal(t, "empty cell: (7, 7)", ie.Error())
}

func TestInvariantError_Error(t *testing.T) {
	e := &InvariantError{Kind: KindMultiplicity, Axis: AxisRow, Key: 1, Value: 5, Want: 1, Got: 2}
	assert.Equal(t, "multiplicity mismatch: row 1 value 5: want 1, got 2", e.Error())

	e = &InvariantError{Kind: KindLink, Axis: AxisCol, Key: 10, Value: 99}
	assert.Equal(t, "link mismatch: col 10 id 99", e.Error())

	e = &InvariantError{Kind: KindEmptyEntry, Axis: AxisRow, Key: 7}
	assert.Equal(t, "empty axis entry: row 7", e.Error())
}
