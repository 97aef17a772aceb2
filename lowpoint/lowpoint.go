package lowpoint

import (
	"iter"

	"github.com/katalvlaran/smokebasin/heightmap"
)

// Point is a low point together with its height.
type Point struct {
	heightmap.Coord
	Value uint8
}

// RiskScore returns Value+1.
func (p Point) RiskScore() int {
	return int(p.Value) + 1
}

// Detector scans a grid for low points. It holds no state besides the grid,
// so one Detector may be ranged over any number of times.
type Detector struct {
	grid *heightmap.Grid
}

// NewDetector returns a Detector over g. A nil grid behaves as an empty one.
func NewDetector(g *heightmap.Grid) *Detector {
	if g == nil {
		g = &heightmap.Grid{}
	}
	return &Detector{grid: g}
}

// IsLowPoint reports whether the cell at row-major index idx is strictly
// lower than all of its existing neighbors.
func (d *Detector) IsLowPoint(idx int) bool {
	g := d.grid
	v := g.At(idx)
	x, y := g.Coordinate(idx)
	var buf [4]heightmap.Coord
	for _, n := range g.AppendNeighbors4(buf[:0], x, y) {
		if g.At(g.Index(n.X, n.Y)) <= v {
			return false
		}
	}
	return true
}

// All returns the low points of the grid in row-major order.
func (d *Detector) All() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		g := d.grid
		for idx := 0; idx < g.Len(); idx++ {
			if !d.IsLowPoint(idx) {
				continue
			}
			x, y := g.Coordinate(idx)
			if !yield(Point{Coord: heightmap.Coord{X: x, Y: y}, Value: g.At(idx)}) {
				return
			}
		}
	}
}

// RiskSum totals RiskScore over every point of seq.
func RiskSum(seq iter.Seq[Point]) int {
	sum := 0
	for p := range seq {
		sum += p.RiskScore()
	}
	return sum
}
