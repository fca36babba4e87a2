// File: maze/example_test.go
package maze_test

import (
	"fmt"

	"github.com/Earthmark/nothing-moves/maze"
)

////////////////////////////////////////////////////////////////////////////////
// Example: New + CanMove
////////////////////////////////////////////////////////////////////////////////

// ExampleMaze_CanMove demonstrates generating a maze and probing movement.
// Scenario:
//
//   - Lengths [5,1,1]: effectively a 1-D corridor expressed in 3-D.
//   - The only spanning tree over a corridor is the corridor itself, so
//     every interior forward move is open regardless of seed.
//   - The last cell has no forward neighbor: the query is undefined
//     (ok == false), which is distinct from hitting a wall.
//
// Complexity: generation O(C·D·log(C·D)), each query O(D).
func ExampleMaze_CanMove() {
	m, err := maze.New([]uint8{5, 1, 1}, maze.WithSeed(684153987))
	if err != nil {
		fmt.Println("generate:", err)
		return
	}

	for x := uint8(0); x < 5; x++ {
		open, ok := m.CanMove(maze.Point{x, 0, 0}, 0)
		fmt.Printf("from (%d,0,0) forward: open=%v defined=%v\n", x, open, ok)
	}

	// Output:
	// from (0,0,0) forward: open=true defined=true
	// from (1,0,0) forward: open=true defined=true
	// from (2,0,0) forward: open=true defined=true
	// from (3,0,0) forward: open=true defined=true
	// from (4,0,0) forward: open=false defined=false
}

////////////////////////////////////////////////////////////////////////////////
// Example: Grid bijection
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Coordinate demonstrates the mixed-radix cell bijection used to
// enumerate cells during generation.
// Scenario:
//
//   - Lengths [3,2]: six cells, indices 0..5.
//   - Dimension 0 is the fastest-varying radix.
//
// Complexity: O(D) per conversion.
func ExampleGrid_Coordinate() {
	g, err := maze.NewGrid([]uint8{3, 2})
	if err != nil {
		fmt.Println("grid:", err)
		return
	}

	for idx := 0; idx < g.CellCount(); idx++ {
		p, _ := g.Coordinate(idx)
		back, _ := g.Index(p)
		fmt.Printf("%d -> %v -> %d\n", idx, []uint8(p), back)
	}

	// Output:
	// 0 -> [0 0] -> 0
	// 1 -> [1 0] -> 1
	// 2 -> [2 0] -> 2
	// 3 -> [0 1] -> 3
	// 4 -> [1 1] -> 4
	// 5 -> [2 1] -> 5
}
