package maze

import "math"

// CanMove reports whether a walker at point may step to its forward
// neighbor along the given dimension.
//
// The result is tri-state:
//   - ok == false: the query made no sense — dimension out of range, the
//     coordinate increment would overflow, or either endpoint lies outside
//     the grid. Note this includes the last cell along a dimension, which
//     has no forward neighbor at all.
//   - open == true, ok == true: a walk connects the two cells; movement is
//     permitted.
//   - open == false, ok == true: both cells are in bounds but no walk
//     connects them (a wall).
//
// Complexity: O(D).
func (m *Maze) CanMove(point Point, dim int) (open, ok bool) {
	if dim < 0 || dim >= m.grid.Dims() || len(point) != m.grid.Dims() {
		return false, false
	}
	if point[dim] == math.MaxUint8 {
		// Incrementing would wrap the coordinate's storage type.
		return false, false
	}
	target := point.Clone()
	target[dim]++

	return m.checkPair(point, target)
}

// checkPair resolves a walk probe between two neighboring coordinates.
// Out-of-bounds endpoints yield (false, false); otherwise the walk-set is
// consulted in both storage directions, since each edge is stored once in
// its canonical low-to-high orientation.
func (m *Maze) checkPair(a, b Point) (open, ok bool) {
	if !m.grid.InBounds(a) || !m.grid.InBounds(b) {
		return false, false
	}
	// Checking twice is cheaper than storing both orientations.
	if _, hit := m.walks[walkKey(a, b)]; hit {
		return true, true
	}
	if _, hit := m.walks[walkKey(b, a)]; hit {
		return true, true
	}

	return false, true
}

// Lengths returns a copy of the per-dimension length vector the maze was
// generated over.
// Complexity: O(D).
func (m *Maze) Lengths() []uint8 {
	return m.grid.Lengths()
}

// Grid returns the cell space of the maze, exposing the index↔coordinate
// bijection and bounds checks used during generation.
// Complexity: O(1).
func (m *Maze) Grid() Grid {
	return m.grid
}
