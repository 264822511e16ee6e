// Package skelgraph holds the node/edge arena produced by a skeleton
// graph build.
//
// What:
//
//   - Node and Edge are addressed by small integer handles (NodeID,
//     EdgeID) rather than the string IDs the teacher's core.Graph uses:
//     voxel graphs are naturally integer-indexed, and a handle-based
//     arena sidesteps the cyclic raw-pointer ownership a C++ Node/Edge
//     pair otherwise needs.
//   - Node carries an insertion-ordered list of member padded voxel
//     indices plus its incident edge handles.
//   - Edge carries a double-ended deque of member voxel indices (walked
//     front-to-back or back-to-front as the builder discovers voxels
//     from either endpoint), its accumulated length, and up to two node
//     handles (a dangling end has its node field unset).
//   - Graph owns both arenas behind separate RWMutexes, mirroring the
//     teacher's muVert/muEdgeAdj split.
package skelgraph
