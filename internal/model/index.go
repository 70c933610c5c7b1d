package model

// Direction is a one-step carousel move.
type Direction int

const (
	// Previous moves towards index 0 (left arrow, swipe right)
	Previous Direction = iota
	// Next moves towards the last page (right arrow, swipe left)
	Next
)

// String returns the direction name used in logs
func (d Direction) String() string {
	switch d {
	case Previous:
		return "previous"
	case Next:
		return "next"
	default:
		return "unknown"
	}
}

// Index is a position in [0, n). Moves that would leave the range are
// rejected, so the value is always valid.
type Index struct {
	value int
	n     int
}

// NewIndex creates an index over n positions, starting at 0.
// n below 1 is treated as 1.
func NewIndex(n int) Index {
	if n < 1 {
		n = 1
	}
	return Index{n: n}
}

// Value returns the current position
func (ix Index) Value() int { return ix.value }

// Len returns the number of positions
func (ix Index) Len() int { return ix.n }

// AtStart reports whether the index is at position 0
func (ix Index) AtStart() bool { return ix.value == 0 }

// AtEnd reports whether the index is at the last position
func (ix Index) AtEnd() bool { return ix.value == ix.n-1 }

// CanMove reports whether a step in direction d stays in range
func (ix Index) CanMove(d Direction) bool {
	switch d {
	case Previous:
		return !ix.AtStart()
	case Next:
		return !ix.AtEnd()
	default:
		return false
	}
}

// Move steps one position in direction d. It returns false and leaves the
// index unchanged when the step would leave the range.
func (ix *Index) Move(d Direction) bool {
	if !ix.CanMove(d) {
		return false
	}
	if d == Previous {
		ix.value--
	} else {
		ix.value++
	}
	return true
}
