package basin

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/smokebasin/heightmap"
)

// Partition finds every maximal 4-connected region of cells below the
// sentinel. Each region is a slice of row-major indices in BFS order;
// regions are ordered by their first cell in row-major order.
// Only WithSentinel is honored; hooks are ignored.
//
// Time:   O(W·H).
// Memory: O(W·H) for seen flags and output.
func Partition(g *heightmap.Grid, opts ...Option) ([][]int, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	seen := make([]bool, g.Len())
	var regions [][]int
	buf := make([]heightmap.Coord, 0, 4)

	for i0 := 0; i0 < g.Len(); i0++ {
		if seen[i0] || g.At(i0) >= o.Sentinel {
			continue // ridge or already labeled
		}
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			ux, uy := g.Coordinate(queue[qi])
			buf = g.AppendNeighbors4(buf[:0], ux, uy)
			for _, n := range buf {
				vi := g.Index(n.X, n.Y)
				if !seen[vi] && g.At(vi) < o.Sentinel {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		regions = append(regions, queue)
	}
	return regions, nil
}

// Shared floods from each seed and reports every region reached from more
// than one seed. A seed already inside a previously flooded region is
// attributed to it without a second flood. Sentinel seeds are skipped.
// Result order follows the first seed of each region.
func Shared(g *heightmap.Grid, seeds []heightmap.Coord, opts ...Option) ([]SharedBasin, error) {
	type region struct {
		cells *roaring.Bitmap
		seeds []heightmap.Coord
	}
	var regions []*region

next:
	for _, s := range seeds {
		if g != nil && g.InBounds(s.X, s.Y) {
			idx := uint32(g.Index(s.X, s.Y))
			for _, r := range regions {
				if r.cells.Contains(idx) {
					r.seeds = append(r.seeds, s)
					continue next
				}
			}
		}
		cells, err := Cells(g, s, opts...)
		if err != nil {
			return nil, err
		}
		if cells.IsEmpty() {
			continue
		}
		regions = append(regions, &region{cells: cells, seeds: []heightmap.Coord{s}})
	}

	var out []SharedBasin
	for _, r := range regions {
		if len(r.seeds) > 1 {
			out = append(out, SharedBasin{Seeds: r.seeds, Size: int(r.cells.GetCardinality())})
		}
	}
	return out, nil
}
