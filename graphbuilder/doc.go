// Package graphbuilder classifies the voxels of a thinned skeleton into
// junction-cluster nodes and curvilinear-chain edges, then refines,
// prunes, and fuses that classification into a final skelgraph.Graph.
//
// Build runs five passes over a *volume.Volume already reduced to one
// voxel of thickness by package thinner:
//
//  1. extract — seed search plus an iterative node/edge walk, using an
//     explicit worklist instead of recursion (the same choice package
//     topology makes for its connectivity floods).
//  2. refine — migrates node-cluster voxels whose removal would not
//     disconnect the remaining cluster into the adjoining edge.
//  3. prune — deletes short dangling branches and re-thins/re-extracts.
//  4. fuse — merges junctions joined by very short internal edges,
//     grounded on the teacher's union-find (see prim_kruskal.Kruskal).
//  5. emitAdjacency — verifies the closure invariant: every edge's
//     attached nodes list it back, and vice versa.
package graphbuilder
