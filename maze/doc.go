// Package maze generates random spanning-tree mazes over hyper-rectangular
// grids of any dimension and answers O(1) movement queries against them.
//
// What:
//
//   - Grid wraps a per-dimension length vector with a mixed-radix
//     index↔coordinate bijection and bounds checks.
//   - New carves a maze: every (cell, dimension) candidate edge receives a
//     random priority, and a Kruskal-style pass over the priority queue
//     accepts exactly the edges that connect previously separate regions.
//   - Maze.CanMove probes the finished walk-set: can a walker step from a
//     cell to its forward neighbor along one axis?
//
// Why:
//
//   - Game levels: the walk-set is the ground truth for which walls to draw
//     and which moves to allow, in 2-D up to 6-D and beyond.
//   - Procedural content: deterministic seeds give shareable, replayable
//     layouts.
//
// Determinism:
//
//	Generation draws one value from the random source per candidate edge,
//	in cell-index-major, dimension-minor order. Two runs over the same
//	lengths with identical random streams produce identical walk-sets.
//
// Queries are tri-state. CanMove returns (open, ok): ok == false means the
// query itself was out of range (bad dimension, coordinate overflow, or an
// endpoint outside the grid) — deliberately distinct from a valid query
// that finds a wall (open == false, ok == true).
//
// Complexity:
//
//   - New:     O(C·D·log(C·D)) time, O(C·D) memory (C = cell count).
//   - CanMove: O(D) time (two hash probes on a D-byte key), O(D) memory.
//
// Errors:
//
//   - ErrNoDimensions: the length vector is empty.
//   - ErrZeroLength: a dimension length of 0 was supplied.
//   - ErrTooManyCells: the cell count overflows the index range.
//
// A Maze is immutable after New returns and safe to share across any number
// of concurrent readers without synchronization.
package maze
