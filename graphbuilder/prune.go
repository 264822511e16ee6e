package graphbuilder

import (
	"github.com/katalvlaran/trabecula/skelgraph"
	"github.com/katalvlaran/trabecula/volume"
)

// prune removes every branch (an edge incident to exactly one node)
// whose accumulated length is below cfg.BranchThreshold, clearing its
// member voxels from both the classification map and the volume.
// Reports whether anything was removed, so the caller knows to
// re-thin and re-extract.
func prune(vol *volume.Volume, graph *skelgraph.Graph, cls *Classification, cfg BuildConfig) bool {
	removed := false
	for _, eid := range graph.EdgeIDs() {
		edge, err := graph.Edge(eid)
		if err != nil {
			continue
		}
		isBranch := edge.HasBack() != edge.HasFront() // exactly one endpoint
		if !isBranch || edge.Length >= cfg.BranchThreshold {
			continue
		}

		for _, voxel := range edge.Voxels() {
			cls.Clear(voxel)
			vol.Data[voxel] = 0
		}
		_ = graph.RemoveEdge(eid)
		removed = true
	}

	return removed
}
