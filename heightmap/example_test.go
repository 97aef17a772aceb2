package heightmap_test

import (
	"fmt"

	"github.com/katalvlaran/smokebasin/heightmap"
)

// ExampleGrid_Neighbors4 shows how edge cells lose out-of-range neighbors.
func ExampleGrid_Neighbors4() {
	g, _ := heightmap.FromRows([]string{
		"219",
		"398",
	})

	corner, _ := g.Neighbors4(0, 0)
	middle, _ := g.Neighbors4(1, 0)
	fmt.Println("corner:", corner)
	fmt.Println("top edge:", middle)

	_, err := g.ValueAt(3, 0)
	fmt.Println(err)

	// Output:
	// corner: [(1,0) (0,1)]
	// top edge: [(0,0) (2,0) (1,1)]
	// heightmap: coordinate out of bounds: (3,0) in 3x2 grid
}
