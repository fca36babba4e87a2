package maze

import (
	"github.com/emirpasic/gods/trees/binaryheap"

	"github.com/Earthmark/nothing-moves/dsu"
)

// Maze is a generated maze: a grid plus the walk-set of accepted edges.
// It is immutable after New returns and safe for concurrent readers.
type Maze struct {
	grid Grid
	// walks holds each accepted edge (a, b) keyed by the concatenated
	// coordinate bytes of a then b; b is always a's forward neighbor along
	// exactly one dimension.
	walks map[string]struct{}
}

// candidate is one potential walk: the edge from the cell at index cell to
// its forward neighbor along dim, competing at a random priority.
type candidate struct {
	priority uint32
	cell     int
	dim      int
}

// byPriorityDesc orders candidates so the heap pops the highest draw first.
// Ties are broken arbitrarily; 32-bit draws make them effectively unique.
func byPriorityDesc(a, b interface{}) int {
	pa, pb := a.(candidate).priority, b.(candidate).priority
	switch {
	case pa > pb:
		return -1
	case pa < pb:
		return 1
	default:
		return 0
	}
}

// New generates a maze over the given per-dimension lengths.
//
// Every (cell, dimension) pair is a candidate edge toward the cell's forward
// neighbor. Candidates are drained in random-priority order; an edge is
// accepted exactly when its endpoints were not yet connected, tracked by a
// disjoint-set forest over cell indices. The result spans the grid with
// CellCount-1 walks and no cycles.
//
// Generation is deterministic for a fixed random stream: pass WithSeed (or
// WithRand) to reproduce a layout. Without options the DefaultSeed source
// is used.
//
// Error conditions:
//   - ErrNoDimensions: lengths is empty.
//   - ErrZeroLength: a length of 0 was supplied.
//   - ErrTooManyCells: the cell count overflows the index range.
//
// Complexity: O(C·D·log(C·D)) time, O(C·D) memory, C = cell count.
func New(lengths []uint8, opts ...Option) (*Maze, error) {
	// 1. Validate the length vector and fix the cell-index bijection.
	grid, err := NewGrid(lengths)
	if err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	// 2. One disjoint-set node per cell, addressed by cell index.
	forest := dsu.New(grid.CellCount())

	// 3. Enqueue every candidate edge with a fresh random priority.
	//    Draw order is cell-index-major, dimension-minor, which pins the
	//    walk-set for a fixed random stream.
	dims := grid.Dims()
	pending := binaryheap.NewWith(byPriorityDesc)
	for cell := 0; cell < grid.CellCount(); cell++ {
		for dim := 0; dim < dims; dim++ {
			pending.Push(candidate{priority: cfg.rng.Uint32(), cell: cell, dim: dim})
		}
	}

	// In general each cell links with at most one other, so CellCount-1
	// walks will be accepted out of CellCount·D candidates.
	walks := make(map[string]struct{}, grid.CellCount())

	// 4. Drain candidates from highest priority down, keeping every edge
	//    that joins two previously separate regions.
	for !pending.Empty() {
		v, _ := pending.Pop()
		c := v.(candidate)

		a, _ := grid.Coordinate(c.cell)
		// The last cell along a dimension has no forward neighbor.
		if a[c.dim] == grid.lengths[c.dim]-1 {
			continue
		}
		b := a.Clone()
		b[c.dim]++
		bIdx, _ := grid.Index(b)
		if forest.TryMerge(c.cell, bIdx) {
			walks[walkKey(a, b)] = struct{}{}
		}
	}

	return &Maze{grid: grid, walks: walks}, nil
}

// walkKey packs an edge into its storage key: the coordinate bytes of a
// followed by those of b. Both points have the same dimension count, so no
// separator is needed for the key to stay unambiguous.
func walkKey(a, b Point) string {
	k := make([]byte, 0, len(a)+len(b))
	k = append(k, a...)
	k = append(k, b...)

	return string(k)
}
