package graphbuilder

import (
	"fmt"

	"github.com/katalvlaran/trabecula/skelgraph"
)

// emitAdjacency verifies the graph's closure invariant: every node's
// incident-edge list enumerates exactly the edges that reference it
// back, and vice versa. The extraction, refinement and fusion passes
// maintain this incrementally (via skelgraph.Graph.AttachEdge), so
// this pass is a check rather than a construction step.
func emitAdjacency(graph *skelgraph.Graph) error {
	for _, nid := range graph.NodeIDs() {
		node, err := graph.Node(nid)
		if err != nil {
			continue
		}
		for _, eid := range node.EdgeIDs {
			edge, err := graph.Edge(eid)
			if err != nil {
				return fmt.Errorf("graphbuilder: node %d references missing edge %d: %w", nid, eid, ErrClosureViolation)
			}
			if !((edge.HasBack() && edge.Back == nid) || (edge.HasFront() && edge.Front == nid)) {
				return fmt.Errorf("graphbuilder: edge %d does not reference node %d: %w", eid, nid, ErrClosureViolation)
			}
		}
	}

	for _, eid := range graph.EdgeIDs() {
		edge, err := graph.Edge(eid)
		if err != nil {
			continue
		}
		if edge.HasBack() {
			if err := nodeListsEdge(graph, edge.Back, eid); err != nil {
				return err
			}
		}
		if edge.HasFront() {
			if err := nodeListsEdge(graph, edge.Front, eid); err != nil {
				return err
			}
		}
	}

	return nil
}

func nodeListsEdge(graph *skelgraph.Graph, nid skelgraph.NodeID, eid skelgraph.EdgeID) error {
	node, err := graph.Node(nid)
	if err != nil {
		return fmt.Errorf("graphbuilder: edge %d references missing node %d: %w", eid, nid, ErrClosureViolation)
	}
	for _, e := range node.EdgeIDs {
		if e == eid {
			return nil
		}
	}

	return fmt.Errorf("graphbuilder: node %d does not list edge %d: %w", nid, eid, ErrClosureViolation)
}
