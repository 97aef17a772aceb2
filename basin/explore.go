package basin

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/smokebasin/heightmap"
)

// walker encapsulates the mutable state of one flood fill.
type walker struct {
	grid    *heightmap.Grid
	opts    Options
	queue   []int
	seen    *roaring.Bitmap
	members *roaring.Bitmap // nil unless the caller wants the cells
	size    int
	buf     []heightmap.Coord
}

// Size returns the number of non-sentinel cells reachable from seed.
// Returns ErrGridNil, ErrSeedOutOfBounds, ErrOptionViolation,
// or a wrapped OnVisit error.
func Size(g *heightmap.Grid, seed heightmap.Coord, opts ...Option) (int, error) {
	w, err := newWalker(g, seed, opts, false)
	if err != nil {
		return 0, err
	}
	if err := w.loop(); err != nil {
		return 0, err
	}
	return w.size, nil
}

// Cells returns the basin around seed as a bitmap of row-major indices
// (see heightmap.Grid.Index). A sentinel seed yields an empty bitmap.
func Cells(g *heightmap.Grid, seed heightmap.Coord, opts ...Option) (*roaring.Bitmap, error) {
	w, err := newWalker(g, seed, opts, true)
	if err != nil {
		return nil, err
	}
	if err := w.loop(); err != nil {
		return nil, err
	}
	return w.members, nil
}

// newWalker validates input and seeds the queue.
func newWalker(g *heightmap.Grid, seed heightmap.Coord, opts []Option, collect bool) (*walker, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if !g.InBounds(seed.X, seed.Y) {
		return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrSeedOutOfBounds, seed, g.Width, g.Height)
	}

	w := &walker{
		grid: g,
		opts: o,
		seen: roaring.New(),
		buf:  make([]heightmap.Coord, 0, 4),
	}
	if collect {
		w.members = roaring.New()
	}
	w.enqueue(g.Index(seed.X, seed.Y))
	return w, nil
}

// enqueue marks idx seen and appends it to the queue, once per exploration.
// Marking at enqueue time keeps the queue bounded by the cell count.
func (w *walker) enqueue(idx int) {
	if !w.seen.CheckedAdd(uint32(idx)) {
		return
	}
	x, y := w.grid.Coordinate(idx)
	w.opts.OnEnqueue(heightmap.Coord{X: x, Y: y})
	w.queue = append(w.queue, idx)
}

// loop drains the queue in FIFO order.
func (w *walker) loop() error {
	for qi := 0; qi < len(w.queue); qi++ {
		if err := w.visit(w.queue[qi]); err != nil {
			return err
		}
	}
	return nil
}

// visit counts idx and expands from it unless it is a sentinel cell.
func (w *walker) visit(idx int) error {
	if w.grid.At(idx) >= w.opts.Sentinel {
		return nil
	}
	x, y := w.grid.Coordinate(idx)
	c := heightmap.Coord{X: x, Y: y}
	if err := w.opts.OnVisit(c); err != nil {
		return fmt.Errorf("basin: OnVisit error at %v: %w", c, err)
	}
	w.size++
	if w.members != nil {
		w.members.Add(uint32(idx))
	}

	w.buf = w.grid.AppendNeighbors4(w.buf[:0], x, y)
	for _, n := range w.buf {
		w.enqueue(w.grid.Index(n.X, n.Y))
	}
	return nil
}
