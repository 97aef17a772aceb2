// Package heightmap stores a dense rectangular field of single-digit heights
// and answers bounds-checked lookups and 4-connected neighbor queries.
//
// What:
//
//   - Grid holds Width×Height cells (values 0..9) in one row-major slice.
//   - Built from digit rows (FromRows), raw values (New) or a line stream (Read).
//   - ValueAt and Neighbors4 never panic; out-of-range coordinates yield ErrOutOfBounds.
//   - Index and Coordinate convert between (x,y) and row-major indices.
//
// Why:
//
//   - Low-point detection and basin flood fill both need cheap, safe
//     neighbor enumeration at grid edges and corners.
//   - A flat slice keeps a whole grid in one allocation.
//
// Complexity:
//
//   - Construction: O(W×H) time and memory.
//   - ValueAt, InBounds, Index, Coordinate: O(1).
//   - Neighbors4: O(1), at most four coordinates.
//
// Errors:
//
//   - ErrMalformedInput: parent of every construction failure.
//   - ErrInvalidDigit: a row holds a character or value outside 0..9.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a coordinate lies outside [0,Width)×[0,Height).
//
// An empty input is not an error: it yields a zero-sized Grid with no cells.
package heightmap
