package maze

import "errors"

var (
	// ErrNoDimensions indicates an empty length vector; a grid needs at
	// least one dimension.
	ErrNoDimensions = errors.New("maze: length vector must have at least one dimension")
	// ErrZeroLength indicates a dimension of length 0. A zero-length axis
	// would make the cell count 0; constructing such a maze is rejected
	// rather than defined as an empty value.
	ErrZeroLength = errors.New("maze: dimension lengths must be positive")
	// ErrTooManyCells indicates the product of the dimension lengths
	// overflows the supported cell-index range.
	ErrTooManyCells = errors.New("maze: cell count exceeds index range")
)
