package maze_test

import (
	"errors"
	"testing"

	"github.com/Earthmark/nothing-moves/maze"
)

//----------------------------------------------------------------------------//
// NewGrid and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects malformed length vectors.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name    string
		lengths []uint8
		err     error
	}{
		{"Empty", []uint8{}, maze.ErrNoDimensions},
		{"Nil", nil, maze.ErrNoDimensions},
		{"SingleZero", []uint8{0}, maze.ErrZeroLength},
		{"EmbeddedZero", []uint8{3, 0, 2}, maze.ErrZeroLength},
		{"Overflow", []uint8{255, 255, 255, 255, 255}, maze.ErrTooManyCells},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := maze.NewGrid(tc.lengths)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGrid(%v) error = %v; want %v", tc.lengths, err, tc.err)
			}
		})
	}
}

// TestInBounds checks membership over a 3×2 grid, including wrong-arity points.
func TestInBounds(t *testing.T) {
	g, err := maze.NewGrid([]uint8{3, 2})
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}

	valid := []maze.Point{{0, 0}, {2, 1}, {1, 1}}
	for _, p := range valid {
		if !g.InBounds(p) {
			t.Errorf("InBounds(%v)=false; want true", p)
		}
	}
	invalid := []maze.Point{{3, 0}, {0, 2}, {255, 255}, {1}, {1, 1, 1}, nil}
	for _, p := range invalid {
		if g.InBounds(p) {
			t.Errorf("InBounds(%v)=true; want false", p)
		}
	}
}

//----------------------------------------------------------------------------//
// Index Bijection Tests
//----------------------------------------------------------------------------//

// TestCoordinate_RoundTrip verifies the mixed-radix bijection: decoding any
// index in [0, CellCount) and re-encoding it returns the original index,
// while indices outside that range decode to "undefined".
func TestCoordinate_RoundTrip(t *testing.T) {
	vectors := [][]uint8{
		{2},
		{5, 1, 1},
		{3, 4, 5},
		{2, 3, 2, 2},
		{1, 1, 1, 1, 1, 1},
	}
	for _, lengths := range vectors {
		g, err := maze.NewGrid(lengths)
		if err != nil {
			t.Fatalf("NewGrid(%v) error: %v", lengths, err)
		}
		for idx := 0; idx < g.CellCount(); idx++ {
			p, ok := g.Coordinate(idx)
			if !ok {
				t.Fatalf("Coordinate(%d) undefined for lengths %v", idx, lengths)
			}
			back, ok := g.Index(p)
			if !ok || back != idx {
				t.Errorf("Index(Coordinate(%d)) = (%d,%v) for lengths %v; want (%d,true)", idx, back, ok, lengths, idx)
			}
		}
		for _, idx := range []int{-1, g.CellCount(), g.CellCount() + 7} {
			if _, ok := g.Coordinate(idx); ok {
				t.Errorf("Coordinate(%d) defined for lengths %v; want undefined", idx, lengths)
			}
		}
	}
}

// TestIndex_OutOfBounds verifies that points outside the grid do not encode.
func TestIndex_OutOfBounds(t *testing.T) {
	g, err := maze.NewGrid([]uint8{4, 3})
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}

	bad := []maze.Point{{4, 0}, {0, 3}, {9, 9}, {1}, {1, 1, 1}}
	for _, p := range bad {
		if _, ok := g.Index(p); ok {
			t.Errorf("Index(%v) defined; want undefined", p)
		}
	}
}

// TestLengths_Copy verifies that Lengths hands out an independent copy.
func TestLengths_Copy(t *testing.T) {
	g, err := maze.NewGrid([]uint8{4, 3})
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}

	first := g.Lengths()
	first[0] = 99
	if second := g.Lengths(); second[0] != 4 {
		t.Errorf("Lengths()[0] = %d after caller mutation; want 4", second[0])
	}
}
