package graphbuilder

import (
	"math"

	"github.com/katalvlaran/trabecula/neighbourhood"
	"github.com/katalvlaran/trabecula/skelgraph"
	"github.com/katalvlaran/trabecula/volume"
)

// stepLength returns the length contribution of a step taken via the
// neighbour at the given offset-table index: 1.0 for the six
// face-adjacent directions, sqrt(2) for the twelve edge-diagonals,
// sqrt(3) for the eight corner-diagonals, matching the fixed
// 6-then-18-then-26 ordering neighbourhood.Offsets produces.
func stepLength(offsetIndex int) float64 {
	switch {
	case offsetIndex < 6:
		return 1.0
	case offsetIndex < 18:
		return math.Sqrt2
	default:
		return math.Sqrt(3)
	}
}

// findSeed linearly scans vol for the first foreground voxel whose
// 26-neighbourhood lit count is exactly 1 (an unambiguous tip).
func findSeed(vol *volume.Volume, off [26]int) (int, bool) {
	for i, b := range vol.Data {
		if b == 0 {
			continue
		}
		if neighbourhood.LitCount(vol, neighbourhood.Neighbours(i, off)) == 1 {
			return i, true
		}
	}

	return 0, false
}

// workItem is a deferred edge walk: a voxel to classify, optionally
// already attached (at its back) to the node it was deferred from.
type workItem struct {
	voxel       int
	fromNode    skelgraph.NodeID
	hasFromNode bool
}

// extract runs the seed search and pass-1 extraction, returning the
// populated graph and classification map. Returns ErrEmptySkeleton if
// vol has no foreground voxels, or ErrPureCycle if it has foreground
// voxels but no tip (seed search fails) — both are non-fatal: the
// caller gets an empty graph alongside the error.
func extract(vol *volume.Volume, off [26]int) (*skelgraph.Graph, *Classification, error) {
	if vol.CountForeground() == 0 {
		return skelgraph.NewGraph(), NewClassification(len(vol.Data)), ErrEmptySkeleton
	}

	seed, ok := findSeed(vol, off)
	if !ok {
		return skelgraph.NewGraph(), NewClassification(len(vol.Data)), ErrPureCycle
	}

	graph := skelgraph.NewGraph()
	cls := NewClassification(len(vol.Data))
	queue := []workItem{{voxel: seed}}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		if cls.Get(item.voxel).Kind != TagNone {
			continue // reached via an earlier branch already (cycle closure)
		}

		lit := neighbourhood.LitCount(vol, neighbourhood.Neighbours(item.voxel, off))
		if lit > 2 {
			nodeID, deferred := growNode(graph, cls, vol, off, item.voxel)
			for _, seedVoxel := range deferred {
				queue = append(queue, workItem{voxel: seedVoxel, fromNode: nodeID, hasFromNode: true})
			}
			continue
		}

		eid := graph.AddEdge()
		if item.hasFromNode {
			_ = graph.AttachEdge(eid, item.fromNode, true)
		}
		walkEdge(vol, off, cls, graph, item.voxel, eid, item.fromNode, item.hasFromNode, &queue)
	}

	return graph, cls, nil
}

// growNode breadth-first-collects the cluster of mutually 26-adjacent,
// unclassified voxels with lit_count > 2 starting at start, tagging
// each as a node member. Any unclassified neighbour with lit_count <= 2
// is deferred as a new edge seed rather than absorbed into the cluster.
// The node's connectivity is set to the number of deferred seeds; a
// caller that reached the node along an edge adds one for that edge.
// Returns the new node's handle and its deferred edge seeds.
func growNode(graph *skelgraph.Graph, cls *Classification, vol *volume.Volume, off [26]int, start int) (skelgraph.NodeID, []int) {
	nodeID := graph.AddNode()
	node, _ := graph.Node(nodeID)

	seen := map[int]bool{start: true}
	queue := []int{start}
	var deferred []int
	connectivity := 0

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		if cls.Get(v).Kind != TagNone {
			continue
		}

		lit := neighbourhood.LitCount(vol, neighbourhood.Neighbours(v, off))
		if lit <= 2 {
			deferred = append(deferred, v)
			connectivity++
			continue
		}

		cls.SetNode(v, nodeID)
		node.Members = append(node.Members, v)

		for _, nb := range neighbourhood.Neighbours(v, off) {
			if vol.Lit(nb) && !seen[nb] && cls.Get(nb).Kind == TagNone {
				seen[nb] = true
				queue = append(queue, nb)
			}
		}
	}

	node.SetConnectivity(connectivity)

	return nodeID, deferred
}

// walkEdge tags voxels starting at start as belonging to eid, advancing
// along the single unclassified lit neighbour at each step, until it
// either reaches a voxel whose lit_count > 2 (spawning a node, whose
// deferred seeds are pushed onto *queue, and attaching eid's front to
// it), reaches an already-classified node (reconnection, attaches
// front), or runs out of unclassified neighbours (a dangling tip).
func walkEdge(vol *volume.Volume, off [26]int, cls *Classification, graph *skelgraph.Graph, start int, eid skelgraph.EdgeID, originNode skelgraph.NodeID, hasOriginNode bool, queue *[]workItem) {
	cur := start
	firstStep := true
	for {
		lit := neighbourhood.LitCount(vol, neighbourhood.Neighbours(cur, off))
		if lit > 2 {
			nodeID, deferred := growNode(graph, cls, vol, off, cur)
			_ = graph.AttachEdge(eid, nodeID, false)
			if node, err := graph.Node(nodeID); err == nil {
				node.SetConnectivity(node.Connectivity() + 1) // the edge that arrived here
			}
			for _, seedVoxel := range deferred {
				*queue = append(*queue, workItem{voxel: seedVoxel, fromNode: nodeID, hasFromNode: true})
			}

			return
		}

		cls.SetEdge(cur, eid)
		e, _ := graph.Edge(eid)
		e.PushBack(cur)

		excludeNode, hasExcludeNode := originNode, hasOriginNode && firstStep
		firstStep = false

		next, stepIdx, tag, found := nextNeighbour(vol, off, cls, cur, excludeNode, hasExcludeNode)
		if !found {
			return // dangling tip
		}
		if tag.Kind == TagNode {
			_ = graph.AttachEdge(eid, tag.NodeID(), false)
			return
		}
		if tag.Kind == TagEdge {
			return // cycle closure onto another edge's voxel: leave dangling
		}

		e.Length += stepLength(stepIdx)
		cur = next
	}
}

// nextNeighbour scans cur's 26-neighbourhood in fixed offset order and
// returns the first lit neighbour along with its offset-table index and
// current tag. A TagNone result means "continue walking here"; any
// other tag means the walk has reached existing graph structure.
// excludeNode/hasExcludeNode skip the node this walk just departed from
// (relevant only for the first voxel after a deferred node seed, so the
// walk does not immediately "reach" the node it started at).
func nextNeighbour(vol *volume.Volume, off [26]int, cls *Classification, cur int, excludeNode skelgraph.NodeID, hasExcludeNode bool) (voxel int, offsetIndex int, tag Tag, found bool) {
	nb := neighbourhood.Neighbours(cur, off)
	for i, idx := range nb {
		if !vol.Lit(idx) {
			continue
		}
		t := cls.Get(idx)
		if t.Kind == TagEdge && t.EdgeID() == cls.Get(cur).EdgeID() {
			continue // the voxel we just came from
		}
		if hasExcludeNode && t.Kind == TagNode && t.NodeID() == excludeNode {
			continue // the node this edge walk departed from
		}

		return idx, i, t, true
	}

	return 0, 0, Tag{}, false
}
