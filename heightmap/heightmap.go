package heightmap

import "fmt"

// New constructs a Grid from rows of raw height values.
// The input is deep-copied; later changes to rows do not affect the Grid.
// Returns ErrNonRectangular if any row length differs from the first,
// ErrInvalidDigit if any value exceeds MaxHeight.
// An empty rows slice yields a zero-sized Grid.
// Complexity: O(W×H) time and memory.
func New(rows [][]uint8) (*Grid, error) {
	if len(rows) == 0 {
		return &Grid{}, nil
	}
	h, w := len(rows), len(rows[0])
	cells := make([]uint8, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x, v := range row {
			if v > MaxHeight {
				return nil, fmt.Errorf("%w: value %d at (%d,%d)", ErrInvalidDigit, v, x, y)
			}
		}
		cells = append(cells, row...)
	}

	return &Grid{Width: w, Height: h, cells: cells}, nil
}

// FromRows constructs a Grid from rows of ASCII digits, e.g. "2199943210".
// Returns ErrInvalidDigit for any byte outside '0'..'9' and
// ErrNonRectangular for rows of inconsistent length.
func FromRows(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return &Grid{}, nil
	}
	w := len(rows[0])
	values := make([][]uint8, len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrNonRectangular, y, len(row), w)
		}
		values[y] = make([]uint8, w)
		for x := 0; x < len(row); x++ {
			b := row[x]
			if b < '0' || b > '9' {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrInvalidDigit, b, x, y)
			}
			values[y][x] = b - '0'
		}
	}

	return New(values)
}

// Len returns the number of cells, Width×Height.
func (g *Grid) Len() int {
	return len(g.cells)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// ValueAt returns the height stored at (x,y), or ErrOutOfBounds.
// Complexity: O(1).
func (g *Grid) ValueAt(x, y int) (uint8, error) {
	if !g.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, x, y, g.Width, g.Height)
	}
	return g.cells[g.Index(x, y)], nil
}

// At returns the height at the row-major index idx.
// The caller guarantees 0 <= idx < Len(); traversals use it after InBounds.
func (g *Grid) At(idx int) uint8 {
	return g.cells[idx]
}

// Neighbors4 returns the in-bounds members of
// {(x-1,y), (x+1,y), (x,y-1), (x,y+1)}. Edge cells get three, corners two,
// and a 1×1 grid none. Returns ErrOutOfBounds if (x,y) itself is outside.
// Complexity: O(1).
func (g *Grid) Neighbors4(x, y int) ([]Coord, error) {
	if !g.InBounds(x, y) {
		return nil, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, x, y, g.Width, g.Height)
	}
	return g.AppendNeighbors4(make([]Coord, 0, 4), x, y), nil
}

// AppendNeighbors4 appends the in-bounds 4-neighbors of (x,y) to dst.
// It does not validate (x,y); hot loops reuse dst to avoid allocation.
func (g *Grid) AppendNeighbors4(dst []Coord, x, y int) []Coord {
	for _, d := range neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if g.InBounds(nx, ny) {
			dst = append(dst, Coord{X: nx, Y: ny})
		}
	}
	return dst
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}
