package axistable

import (
	"errors"
	"fmt"
)

var (
	// ErrInconsistent is returned by Validate when the indices of a Table
	// disagree with its cells.
	ErrInconsistent = errors.New("table indices are inconsistent")
)

// InvariantKind names the invariant an InvariantError reports.
type InvariantKind string

const (
	// KindEmptyCell: a cell entry holds no values.
	KindEmptyCell InvariantKind = "empty cell"
	// KindEmptyEntry: an axis or link entry holds no identities.
	KindEmptyEntry InvariantKind = "empty axis entry"
	// KindMultiplicity: a counter differs from the number of cells holding the value.
	KindMultiplicity InvariantKind = "multiplicity mismatch"
	// KindMembership: an axis entry differs from the union of its cells.
	KindMembership InvariantKind = "axis membership mismatch"
	// KindLink: a link entry differs from the occupied cells of its key.
	KindLink InvariantKind = "link mismatch"
)

// InvariantError describes the first inconsistency found by Validate.
//
// errors.Is(err, ErrInconsistent) reports true for every InvariantError.
type InvariantError struct {
	Kind  InvariantKind
	Axis  Axis
	Key   uint64
	Value uint64
	Cell  Cell

	// Want and Got are set for counter mismatches.
	Want int
	Got  int
}

func (e *InvariantError) Error() string {
	switch e.Kind {
	case KindEmptyCell:
		return fmt.Sprintf("%s: (%d, %d)", e.Kind, e.Cell.Row, e.Cell.Col)
	case KindMultiplicity:
		return fmt.Sprintf("%s: %s %d value %d: want %d, got %d", e.Kind, e.Axis, e.Key, e.Value, e.Want, e.Got)
	case KindMembership, KindLink:
		return fmt.Sprintf("%s: %s %d id %d", e.Kind, e.Axis, e.Key, e.Value)
	default:
		return fmt.Sprintf("%s: %s %d", e.Kind, e.Axis, e.Key)
	}
}

func (e *InvariantError) Unwrap() error { return ErrInconsistent }
