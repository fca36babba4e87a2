package level

import (
	"github.com/pkg/errors"

	"github.com/Earthmark/nothing-moves/maze"
)

// ErrAxisRange indicates a requested active axis outside [0, D).
var ErrAxisRange = errors.New("level: axis out of range")

// DefaultSeed is used when a LoadRequest leaves Seed zero.
const DefaultSeed = maze.DefaultSeed

// defaultLengths is the fallback grid when a LoadRequest names none:
// the smallest maze with a choice in every dimension.
var defaultLengths = []uint8{2, 2}

// LoadRequest describes one level to construct.
type LoadRequest struct {
	// Seed for the maze's random source. 0 means DefaultSeed, so the
	// zero-value request is fully deterministic.
	Seed int64
	// Lengths is the per-dimension grid extent; nil/empty means a 2×2 grid.
	Lengths []uint8
}

// Level is a generated maze plus the player state a frontend starts from.
type Level struct {
	maze *maze.Maze
	// pos is the player's cell; all-zero at load.
	pos maze.Point
	// axis is the active movement/display axis; 0 at load.
	axis int
}

// Load resolves request defaults, generates the maze, and seeds the level
// state: position at the origin cell, active axis 0.
// Construction errors carry load context and wrap the maze sentinels.
// Complexity: dominated by maze.New.
func Load(req LoadRequest) (*Level, error) {
	lengths := req.Lengths
	if len(lengths) == 0 {
		lengths = defaultLengths
	}
	seed := req.Seed
	if seed == 0 {
		seed = DefaultSeed
	}

	m, err := maze.New(lengths, maze.WithSeed(seed))
	if err != nil {
		return nil, errors.Wrapf(err, "level: load %v", lengths)
	}

	return &Level{
		maze: m,
		pos:  make(maze.Point, len(lengths)),
		axis: 0,
	}, nil
}

// Maze exposes the generated maze for read-only adjacency queries.
func (l *Level) Maze() *maze.Maze {
	return l.maze
}

// Position returns a copy of the player's current cell coordinate.
// Complexity: O(D).
func (l *Level) Position() maze.Point {
	return l.pos.Clone()
}

// Axis returns the active axis.
func (l *Level) Axis() int {
	return l.axis
}

// SetAxis switches the active axis. Returns ErrAxisRange when the axis does
// not exist on this level's grid.
func (l *Level) SetAxis(axis int) error {
	if axis < 0 || axis >= len(l.pos) {
		return ErrAxisRange
	}
	l.axis = axis

	return nil
}

// Move attempts to step the position by one cell along dim; delta selects
// the direction (+1 forward, -1 backward, anything else is rejected).
// The step happens only when a walk connects the two cells, and the return
// reports whether the position changed.
//
// Backward movement probes the same forward walk from the neighbor's side,
// since walks are stored in their low-to-high orientation.
// Complexity: O(D).
func (l *Level) Move(dim, delta int) bool {
	switch delta {
	case 1:
		if open, ok := l.maze.CanMove(l.pos, dim); ok && open {
			l.pos[dim]++
			return true
		}
	case -1:
		if dim < 0 || dim >= len(l.pos) || l.pos[dim] == 0 {
			return false
		}
		from := l.pos.Clone()
		from[dim]--
		if open, ok := l.maze.CanMove(from, dim); ok && open {
			l.pos = from
			return true
		}
	}

	return false
}
