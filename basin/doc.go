// Package basin measures the sentinel-bounded regions of a heightmap.Grid.
//
// What
//
//   - Size floods outward from a seed cell by 4-connected steps and counts
//     the reachable cells whose height is below the sentinel (default 9).
//   - Cells returns the same region as a roaring bitmap of row-major indices.
//   - Shared groups seeds whose floods cover the same region.
//   - Partition labels every region of the grid at once.
//
// Sentinel cells absorb the flood: they are marked seen, never counted and
// never expanded. A seed that is itself a sentinel yields an empty basin.
//
// Each call owns a fresh visited set; nothing is shared between explorations.
// Two seeds inside one region therefore both report that region's full size.
// Shared exposes such pairs so callers can decide how to treat them.
//
// Hooks
//
//   - OnEnqueue runs when a cell enters the work queue.
//   - OnVisit runs for every counted cell; returning an error aborts the flood.
//
// Complexity (N = Width×Height)
//
//   - Size, Cells: O(N) time, O(N) memory for the queue and visited set.
//   - Partition:   O(N) time and memory.
//   - Shared:      O(N + S×B) where S is the number of seeds and B the number
//     of distinct regions found.
//
// Usage
//
//	size, err := basin.Size(g, heightmap.Coord{X: 1, Y: 0})
//
//	size, err := basin.Size(g, seed,
//	    basin.WithSentinel(8),
//	    basin.WithOnVisit(func(c heightmap.Coord) error { /* ... */ return nil }),
//	)
package basin
