// Package smokebasin analyzes digit heightmaps: it finds the local minima
// ("low points") of a grid and measures the basins that drain into them.
//
// What is in the module?
//
//	heightmap/ — the immutable Grid, bounds-checked lookups, 4-neighbors, line reader
//	lowpoint/  — lazy, restartable detection of low points and their risk scores
//	basin/     — sentinel-bounded flood fill, region partition, shared-basin check
//	topk/      — bounded aggregation of the k largest basin sizes
//	analysis/  — the whole pipeline in one call, with klog logging
//	cmd/smokebasin — CLI reading a heightmap from a file or stdin
//
// Quick ASCII example (9 is the ridge):
//
//	2 1 9
//	3 9 8
//
// The low point 1 at (1,0) drains a basin of three cells: 2, 1 and 3.
//
//	go run ./cmd/smokebasin analyze input.txt
package smokebasin
