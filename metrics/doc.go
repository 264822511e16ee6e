// Package metrics derives scalar measures from a finished skeleton
// volume and graph: bone-volume fraction, per-edge length statistics,
// trabecula count, and a junction-connectivity histogram.
//
// Every function here is a pure read over (*volume.Volume,
// *skelgraph.Graph, voxel spacing) — nothing in this package mutates
// its inputs — styled after the teacher's matrix package: an
// operation-name constant per function, and staged comments (Compute /
// Return) in BVTV. No function here returns an error.
package metrics
