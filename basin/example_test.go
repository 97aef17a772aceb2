package basin_test

import (
	"fmt"

	"github.com/katalvlaran/smokebasin/basin"
	"github.com/katalvlaran/smokebasin/heightmap"
)

// ExampleSize floods the largest reference basin from its low point.
func ExampleSize() {
	g, _ := heightmap.FromRows([]string{
		"2199943210",
		"3987894921",
		"9856789892",
		"8767896789",
		"9899965678",
	})
	size, _ := basin.Size(g, heightmap.Coord{X: 2, Y: 2})
	fmt.Println("basin size:", size)

	// Output:
	// basin size: 14
}

// ExampleShared reports two low points that drain into one region.
func ExampleShared() {
	g, _ := heightmap.FromRows([]string{"010", "999"})
	shared, _ := basin.Shared(g, []heightmap.Coord{{X: 0, Y: 0}, {X: 2, Y: 0}})
	for _, s := range shared {
		fmt.Println(s.Seeds, "share", s.Size, "cells")
	}

	// Output:
	// [(0,0) (2,0)] share 3 cells
}
