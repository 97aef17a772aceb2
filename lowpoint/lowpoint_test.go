package lowpoint_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/smokebasin/heightmap"
	"github.com/katalvlaran/smokebasin/lowpoint"
)

var sample = []string{
	"2199943210",
	"3987894921",
	"9856789892",
	"8767896789",
	"9899965678",
}

// TestAll_Sample checks the four low points of the reference map.
func TestAll_Sample(t *testing.T) {
	g := must.M1(heightmap.FromRows(sample))
	d := lowpoint.NewDetector(g)

	got := slices.Collect(d.All())
	want := []lowpoint.Point{
		{Coord: heightmap.Coord{X: 1, Y: 0}, Value: 1},
		{Coord: heightmap.Coord{X: 9, Y: 0}, Value: 0},
		{Coord: heightmap.Coord{X: 2, Y: 2}, Value: 5},
		{Coord: heightmap.Coord{X: 6, Y: 4}, Value: 5},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 15, lowpoint.RiskSum(d.All()))
}

// TestAll_Restartable ranges over the same sequence twice.
func TestAll_Restartable(t *testing.T) {
	d := lowpoint.NewDetector(must.M1(heightmap.FromRows(sample)))
	seq := d.All()
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)
}

// TestAll_EarlyStop stops ranging after the first point.
func TestAll_EarlyStop(t *testing.T) {
	d := lowpoint.NewDetector(must.M1(heightmap.FromRows(sample)))
	n := 0
	for range d.All() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

// TestAll_Degenerate covers empty, single-cell, flat and all-sentinel grids.
func TestAll_Degenerate(t *testing.T) {
	cases := []struct {
		name      string
		rows      []string
		wantCount int
		wantRisk  int
	}{
		{"Empty", nil, 0, 0},
		{"EmptyRow", []string{""}, 0, 0},
		{"SingleCell", []string{"5"}, 1, 6},
		{"Flat", []string{"44", "44"}, 0, 0},
		{"AllNines", []string{"999", "999"}, 0, 0},
		{"Column", []string{"3", "1", "2"}, 1, 2},
		{"TwoMinima", []string{"1", "5", "0"}, 2, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := lowpoint.NewDetector(must.M1(heightmap.FromRows(tc.rows)))
			assert.Len(t, slices.Collect(d.All()), tc.wantCount)
			assert.Equal(t, tc.wantRisk, lowpoint.RiskSum(d.All()))
		})
	}
}

// TestNilGrid treats a nil grid as empty.
func TestNilGrid(t *testing.T) {
	assert.Equal(t, 0, lowpoint.RiskSum(lowpoint.NewDetector(nil).All()))
}

// bruteRiskSum checks every cell against every in-bounds neighbor through
// the checked accessors only.
func bruteRiskSum(t *testing.T, g *heightmap.Grid) int {
	sum := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			v := must.M1(g.ValueAt(x, y))
			low := true
			for _, n := range must.M1(g.Neighbors4(x, y)) {
				if must.M1(g.ValueAt(n.X, n.Y)) <= v {
					low = false
				}
			}
			if low {
				sum += int(v) + 1
			}
		}
	}
	return sum
}

// TestRiskSum_MatchesBruteForce compares against an independent scan on
// deterministic random grids of assorted shapes.
func TestRiskSum_MatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		w, h := 1+r.Intn(12), 1+r.Intn(12)
		rows := make([][]uint8, h)
		for y := range rows {
			rows[y] = make([]uint8, w)
			for x := range rows[y] {
				rows[y][x] = uint8(r.Intn(10))
			}
		}
		g := must.M1(heightmap.New(rows))
		got := lowpoint.RiskSum(lowpoint.NewDetector(g).All())
		if want := bruteRiskSum(t, g); got != want {
			t.Fatalf("trial %d (%dx%d): RiskSum = %d; want %d", trial, w, h, got, want)
		}
	}
}
