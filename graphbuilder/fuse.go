package graphbuilder

import "github.com/katalvlaran/trabecula/skelgraph"

// fuse merges the two endpoints of every internal edge (an edge
// attached to two distinct nodes) whose length is below
// cfg.EdgeThreshold, repeating until no internal edge qualifies (a
// chain of short internal edges collapses to a single node).
//
// Grounded on the teacher's union-find style (prim_kruskal.Kruskal):
// here the "sets" are merged eagerly in place, one internal edge at a
// time, rather than batched behind a parent/rank map, since each merge
// must also move voxel membership and redirect sibling edges — state
// a plain disjoint-set forest does not carry.
func fuse(graph *skelgraph.Graph, cfg BuildConfig) {
	changed := true
	for changed {
		changed = false
		for _, eid := range graph.EdgeIDs() {
			edge, err := graph.Edge(eid)
			if err != nil {
				continue
			}
			if !edge.HasBack() || !edge.HasFront() || edge.Back == edge.Front {
				continue
			}
			if edge.Length >= cfg.EdgeThreshold {
				continue
			}

			mergeNodes(graph, edge.Back, edge.Front, eid)
			_ = graph.RemoveEdge(eid)
			changed = true
		}
	}
}

// mergeNodes absorbs backID into frontID: all of back's member voxels
// and incident edges (other than the fused edge itself) become
// front's, and front's connectivity becomes back.conn + front.conn -
// 2 (the shared edge removed from each side).
func mergeNodes(graph *skelgraph.Graph, backID, frontID skelgraph.NodeID, fusedEdge skelgraph.EdgeID) {
	back, err := graph.Node(backID)
	if err != nil {
		return
	}
	front, err := graph.Node(frontID)
	if err != nil {
		return
	}

	front.Members = append(front.Members, back.Members...)
	front.SetConnectivity(back.Connectivity() + front.Connectivity() - 2)

	for _, eid := range back.EdgeIDs {
		if eid == fusedEdge {
			continue
		}
		e, err := graph.Edge(eid)
		if err != nil {
			continue
		}
		if e.HasBack() && e.Back == backID {
			e.SetBack(frontID)
		}
		if e.HasFront() && e.Front == backID {
			e.SetFront(frontID)
		}
		front.EdgeIDs = append(front.EdgeIDs, eid)
	}

	_ = graph.RemoveNode(backID)
}
