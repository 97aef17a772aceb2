// Package heightmap defines the grid type, coordinates and sentinel errors.
package heightmap

import (
	"errors"
	"fmt"
)

// MaxHeight is the largest value a cell may hold.
const MaxHeight uint8 = 9

// Sentinel errors for heightmap operations.
var (
	// ErrMalformedInput is the parent of every construction failure.
	ErrMalformedInput = errors.New("heightmap: malformed input")
	// ErrInvalidDigit indicates a cell outside the digit domain 0..9.
	ErrInvalidDigit = fmt.Errorf("%w: cell is not a digit 0..9", ErrMalformedInput)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedInput)
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("heightmap: coordinate out of bounds")
)

// Coord is a cell position: X is the column, Y is the row.
type Coord struct {
	X, Y int
}

// String renders the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid is an immutable rectangular field of heights.
// Cells are stored row-major: the value at (x,y) lives at cells[y*Width+x].
type Grid struct {
	Width, Height int
	cells         []uint8
}

// neighborOffsets lists the 4-connected steps in W, E, N, S order.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
