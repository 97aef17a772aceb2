// Package analysis runs the full basin pipeline over a heightmap.Grid:
// low-point detection, one flood fill per low point, and top-k aggregation
// of the resulting basin sizes.
//
// The pass is single-threaded and synchronous. Each flood owns its visited
// set, so peak extra memory is that of one exploration.
package analysis
