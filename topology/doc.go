// Package topology implements the pure connectivity predicates the
// thinning and graph-extraction stages are built on: border points, end
// points, and simple points (26-connectivity of the object neighbourhood
// combined with 6-in-18 connectivity of the background neighbourhood).
//
// Both connectivity floods are iterative, using an explicit stack bounded
// by the 26/18-slot table size (package neighbourhood), rather than
// recursion — the teacher favors explicit loops over recursion in its
// tightest numeric kernels (see matrix/impl_statistics.go), and these
// floods run inside the thinner's innermost per-voxel loop.
package topology
