package graphbuilder

import (
	"github.com/katalvlaran/trabecula/neighbourhood"
	"github.com/katalvlaran/trabecula/skelgraph"
	"github.com/katalvlaran/trabecula/topology"
	"github.com/katalvlaran/trabecula/volume"
)

// refine migrates node-cluster voxels into the adjoining edge at both
// of its ends, greedily, until no further voxel qualifies. Voxels only
// ever move Node -> Edge, never back, so this always terminates.
func refine(vol *volume.Volume, off [26]int, graph *skelgraph.Graph, cls *Classification) {
	for _, eid := range graph.EdgeIDs() {
		refineEdgeEnd(vol, off, graph, cls, eid, true)
		refineEdgeEnd(vol, off, graph, cls, eid, false)
	}
}

func refineEdgeEnd(vol *volume.Volume, off [26]int, graph *skelgraph.Graph, cls *Classification, eid skelgraph.EdgeID, back bool) {
	for {
		edge, err := graph.Edge(eid)
		if err != nil {
			return
		}
		nodeID, hasNode := endpoint(edge, back)
		if !hasNode {
			return
		}
		terminal, ok := edgeTerminal(edge, back)
		if !ok {
			return
		}

		voxel, ok := refinableNeighbour(off, cls, graph, terminal, nodeID, eid)
		if !ok {
			return
		}

		node, err := graph.Node(nodeID)
		if err != nil {
			return
		}
		removeMember(node, voxel)
		cls.SetEdge(voxel, eid)
		if back {
			edge.PushFront(voxel)
		} else {
			edge.PushBack(voxel)
		}
		// The refined voxel was 26-adjacent to the chain's prior terminal;
		// its exact step class is re-derived the next time the skeleton is
		// re-extracted (pass 3), so the conservative face-step contribution
		// is used here to keep Length monotonically increasing in the
		// meantime.
		edge.Length += 1.0
	}
}

func endpoint(edge *skelgraph.Edge, back bool) (skelgraph.NodeID, bool) {
	if back {
		return edge.Back, edge.HasBack()
	}

	return edge.Front, edge.HasFront()
}

func edgeTerminal(edge *skelgraph.Edge, back bool) (int, bool) {
	if edge.Members.Len() == 0 {
		return 0, false
	}
	if back {
		return edge.Members.Front().Value.(int), true
	}

	return edge.Members.Back().Value.(int), true
}

// refinableNeighbour looks among terminal's 26 neighbours for a node
// member of nodeID that satisfies is_node_refinable, returning the
// first one found.
func refinableNeighbour(off [26]int, cls *Classification, graph *skelgraph.Graph, terminal int, nodeID skelgraph.NodeID, excludeEdge skelgraph.EdgeID) (int, bool) {
	for _, idx := range neighbourhood.Neighbours(terminal, off) {
		t := cls.Get(idx)
		if t.Kind != TagNode || t.NodeID() != nodeID {
			continue
		}
		if isNodeRefinable(off, cls, graph, idx, nodeID, excludeEdge) {
			return idx, true
		}
	}

	return 0, false
}

// isNodeRefinable tests both refinement conditions for voxel: (i) the
// node-tagged neighbours of voxel restricted to nodeID remain mutually
// 26-connected without voxel (the same cond2 test topology.Simple
// uses, restricted to node membership instead of foreground), and (ii)
// every other edge currently touching voxel still touches the node
// through some other member voxel.
func isNodeRefinable(off [26]int, cls *Classification, graph *skelgraph.Graph, voxel int, nodeID skelgraph.NodeID, excludeEdge skelgraph.EdgeID) bool {
	nb := neighbourhood.Neighbours(voxel, off)

	connected := topology.Connected26(nb, func(idx int) bool {
		if idx == voxel {
			return false
		}
		t := cls.Get(idx)

		return t.Kind == TagNode && t.NodeID() == nodeID
	})
	if !connected {
		return false
	}

	var otherEdges []skelgraph.EdgeID
	for _, idx := range nb {
		t := cls.Get(idx)
		if t.Kind == TagEdge && t.EdgeID() != excludeEdge {
			otherEdges = append(otherEdges, t.EdgeID())
		}
	}
	if len(otherEdges) == 0 {
		return true
	}

	node, err := graph.Node(nodeID)
	if err != nil {
		return false
	}
	for _, otherEid := range otherEdges {
		if !edgeReachesNodeVia(off, cls, node, voxel, otherEid) {
			return false
		}
	}

	return true
}

func edgeReachesNodeVia(off [26]int, cls *Classification, node *skelgraph.Node, excludeVoxel int, eid skelgraph.EdgeID) bool {
	for _, member := range node.Members {
		if member == excludeVoxel {
			continue
		}
		for _, mnb := range neighbourhood.Neighbours(member, off) {
			t := cls.Get(mnb)
			if t.Kind == TagEdge && t.EdgeID() == eid {
				return true
			}
		}
	}

	return false
}

func removeMember(node *skelgraph.Node, voxel int) {
	for i, m := range node.Members {
		if m == voxel {
			node.Members = append(node.Members[:i], node.Members[i+1:]...)
			return
		}
	}
}
