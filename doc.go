// Package nothingmoves is an N-dimensional maze generator and
// connectivity-query engine.
//
// 🚀 What is nothing-moves?
//
//	A small, deterministic library that carves a random spanning tree
//	through a hyper-rectangular grid of any dimension and answers O(1)
//	movement queries against the result:
//		• dsu/   — arena-backed disjoint-set forest (union–find)
//		• maze/  — grid indexing, randomized-Kruskal generation, CanMove queries
//		• level/ — load-time plumbing: seeded construction plus the
//		  player position / active axis pair a frontend starts from
//
// ✨ Why choose nothing-moves?
//
//   - Any dimension – 1-D corridors to 6-D (and beyond) hypermazes, one API
//   - Deterministic – identical seed, identical maze, every time
//   - Immutable after construction – share a Maze across readers freely
//   - No engine baggage – rendering, input and state machines live elsewhere
//
// Quick ASCII example (a 4×3 maze is a spanning tree over the grid):
//
//	┌───────┬───┐
//	│ ╶───╴ │ ╷ │
//	│ ╷ ╶───┘ │ │
//	└─┴───────┴─┘
//
// Construction consumes one random draw per candidate edge; queries are
// pure lookups. See maze.New and maze.Maze.CanMove for the core contract.
package nothingmoves
