package maze

import "math"

// maxCells caps the supported cell count so mixed-radix indices always fit
// comfortably in an int, including on 32-bit targets.
const maxCells = math.MaxInt32

// Grid describes the cell space of a maze: a fixed dimension count D and one
// positive length per dimension. It owns the index↔coordinate bijection used
// to enumerate cells and is immutable once built.
type Grid struct {
	// lengths[d] is the extent of dimension d, in [1, 255].
	lengths []uint8
	// cells is the product of all lengths.
	cells int
}

// NewGrid validates a length vector and returns the Grid over it.
// The input is copied, so later caller mutation cannot affect the grid.
// Returns ErrNoDimensions for an empty vector, ErrZeroLength if any
// dimension is 0, ErrTooManyCells if the cell count overflows.
// Complexity: O(D).
func NewGrid(lengths []uint8) (Grid, error) {
	if len(lengths) == 0 {
		return Grid{}, ErrNoDimensions
	}
	cells := 1
	for _, l := range lengths {
		if l == 0 {
			return Grid{}, ErrZeroLength
		}
		if cells > maxCells/int(l) {
			return Grid{}, ErrTooManyCells
		}
		cells *= int(l)
	}
	cp := make([]uint8, len(lengths))
	copy(cp, lengths)

	return Grid{lengths: cp, cells: cells}, nil
}

// Dims reports the dimension count D.
// Complexity: O(1).
func (g Grid) Dims() int {
	return len(g.lengths)
}

// CellCount reports the total number of cells (the product of all lengths).
// Complexity: O(1).
func (g Grid) CellCount() int {
	return g.cells
}

// Lengths returns a copy of the per-dimension length vector.
// Complexity: O(D).
func (g Grid) Lengths() []uint8 {
	cp := make([]uint8, len(g.lengths))
	copy(cp, g.lengths)

	return cp
}

// InBounds reports whether p names a cell of the grid: D components, each
// strictly below its dimension's length.
// Complexity: O(D).
func (g Grid) InBounds(p Point) bool {
	if len(p) != len(g.lengths) {
		return false
	}
	for d, c := range p {
		if c >= g.lengths[d] {
			return false
		}
	}

	return true
}

// Coordinate decodes a cell index into its coordinate via repeated
// modulo/divide by each dimension's length, in dimension order.
// The second return is false when idx is outside [0, CellCount).
// Complexity: O(D).
func (g Grid) Coordinate(idx int) (Point, bool) {
	if idx < 0 {
		return nil, false
	}
	p := make(Point, len(g.lengths))
	for d, l := range g.lengths {
		p[d] = uint8(idx % int(l))
		idx /= int(l)
	}
	// A nonzero remainder means idx >= CellCount: no such cell.
	if idx != 0 {
		return nil, false
	}

	return p, true
}

// Index encodes a coordinate into its cell index via a positional radix
// sum, the inverse of Coordinate. The second return is false when p is not
// a cell of the grid.
// Complexity: O(D).
func (g Grid) Index(p Point) (int, bool) {
	if !g.InBounds(p) {
		return 0, false
	}
	idx, stride := 0, 1
	for d, c := range p {
		idx += int(c) * stride
		stride *= int(g.lengths[d])
	}

	return idx, true
}
