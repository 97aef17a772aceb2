// Package lowpoint finds the local minima of a heightmap.Grid.
//
// A cell is a low point when its height is strictly less than the height of
// every in-bounds 4-connected neighbor. Cells on edges and corners are compared
// only against the neighbors they have; the single cell of a 1×1 grid is
// vacuously a low point.
//
// Detector.All yields low points lazily in row-major order. The sequence is
// restartable: every range over it rescans the grid from (0,0).
//
// The risk score of a low point is its height plus one. RiskSum totals the
// scores over any sequence of low points.
//
// Complexity: one pass is O(W×H) time and O(1) extra memory.
package lowpoint
