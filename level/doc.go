// Package level is the load-time seam between the maze core and a
// presentation layer.
//
// What:
//
//   - LoadRequest names everything a frontend supplies to ask for a new
//     level: a 64-bit seed and a dimension-length vector. Zero values fall
//     back to deterministic defaults.
//   - Load builds the maze and returns a Level carrying the state every
//     frontend seeds its own UI from at load time: the current position
//     (the all-zero coordinate) and the active axis (axis 0).
//   - Level.Move steps the position along an axis, in either direction,
//     only when the maze permits it; Level.SetAxis switches the active axis.
//
// Why:
//
//   - Keeps seed plumbing and player bookkeeping out of the maze engine,
//     which stays a pure generate-and-query value.
//   - A renderer only ever reads Level.Maze(), Position() and Axis().
//
// Errors:
//
//   - Construction failures from maze.New are wrapped with load context;
//     branch on the maze sentinels via errors.Is.
//   - ErrAxisRange: SetAxis was asked for an axis the level does not have.
//
// Concurrency: a Level is mutable (position, axis) and is meant to be owned
// by a single frontend loop; the embedded Maze remains safe to share.
package level
