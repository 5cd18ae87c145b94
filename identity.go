package axistable

// Identifier is implemented by every type used as a row key, column key or
// value in a Table.
//
// ID must return the same identity for the lifetime of the object, and no two
// objects used on the same axis may share an identity. The table does not
// check either condition: an object that reports a different identity across
// calls silently corrupts the indices. Row, column and value identities live
// in separate index spaces and may overlap freely.
type Identifier interface {
	ID() uint64
}

// Key is an Identifier for callers whose keys already are plain integers.
type Key uint64

// ID implements Identifier.
func (k Key) ID() uint64 { return uint64(k) }

// Cell addresses one (row, column) intersection of a Table.
type Cell struct {
	Row uint64
	Col uint64
}

// Axis selects one of the two derived indices of a Table.
type Axis uint8

const (
	// AxisRow is the index of values reachable from a row through any column.
	AxisRow Axis = iota
	// AxisCol is the index of values reachable from a column through any row.
	AxisCol
)

func (a Axis) String() string {
	switch a {
	case AxisRow:
		return "row"
	case AxisCol:
		return "col"
	default:
		return "unknown"
	}
}
