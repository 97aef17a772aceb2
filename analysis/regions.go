package analysis

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/smokebasin/basin"
	"github.com/katalvlaran/smokebasin/heightmap"
)

// region is one flooded basin and the low points that reached it.
type region struct {
	cells *roaring.Bitmap
	seeds []heightmap.Coord
}

// regionIndex floods each distinct basin once. A seed inside an already
// flooded basin gets that basin's full size, so every low point still
// reports its whole basin.
type regionIndex struct {
	grid    *heightmap.Grid
	opts    []basin.Option
	regions []*region
	floods  int
}

func newRegionIndex(g *heightmap.Grid, opts ...basin.Option) *regionIndex {
	return &regionIndex{grid: g, opts: opts}
}

// size returns the basin size around seed, flooding only on first contact.
func (ri *regionIndex) size(seed heightmap.Coord) (int, error) {
	if ri.grid.InBounds(seed.X, seed.Y) {
		idx := uint32(ri.grid.Index(seed.X, seed.Y))
		for _, r := range ri.regions {
			if r.cells.Contains(idx) {
				r.seeds = append(r.seeds, seed)
				return int(r.cells.GetCardinality()), nil
			}
		}
	}
	cells, err := basin.Cells(ri.grid, seed, ri.opts...)
	if err != nil {
		return 0, err
	}
	ri.floods++
	if !cells.IsEmpty() {
		ri.regions = append(ri.regions, &region{cells: cells, seeds: []heightmap.Coord{seed}})
	}
	return int(cells.GetCardinality()), nil
}

// shared lists regions reached from more than one seed, in first-seed order.
func (ri *regionIndex) shared() []basin.SharedBasin {
	var out []basin.SharedBasin
	for _, r := range ri.regions {
		if len(r.seeds) > 1 {
			out = append(out, basin.SharedBasin{Seeds: r.seeds, Size: int(r.cells.GetCardinality())})
		}
	}
	return out
}
