package skelgraph

import (
	"container/list"
	"sync"
)

// NodeID addresses a Node within a Graph's arena.
type NodeID uint64

// EdgeID addresses an Edge within a Graph's arena.
type EdgeID uint64

// Node is a cluster of mutually 26-connected junction voxels, each with
// more than two lit neighbours.
type Node struct {
	ID      NodeID
	Members []int // padded voxel indices, insertion order
	EdgeIDs []EdgeID
	conn    int // connectivity degree tracked by the graph builder and used by junction fusion
}

// Edge is a chain of voxels connecting up to two nodes. Members is a
// deque so the builder can append discovered voxels from either end
// without re-slicing; the Back node sits at the deque's front end and
// the Front node at its back end.
type Edge struct {
	ID       EdgeID
	Members  *list.List // deque of int (padded voxel indices)
	Length   float64
	Back     NodeID // meaningful only when HasBack reports true
	Front    NodeID // meaningful only when HasFront reports true
	hasBack  bool
	hasFront bool
}

// NewEdge returns an empty Edge with the given ID.
func NewEdge(id EdgeID) *Edge {
	return &Edge{ID: id, Members: list.New()}
}

// PushBack appends a voxel at the Front-discovery end of the chain.
func (e *Edge) PushBack(voxel int) {
	e.Members.PushBack(voxel)
}

// PushFront appends a voxel at the Back-discovery end of the chain.
func (e *Edge) PushFront(voxel int) {
	e.Members.PushFront(voxel)
}

// SetBack attaches the node at the back (first-discovered) end.
func (e *Edge) SetBack(id NodeID) {
	e.Back = id
	e.hasBack = true
}

// SetFront attaches the node at the front (last-discovered) end.
func (e *Edge) SetFront(id NodeID) {
	e.Front = id
	e.hasFront = true
}

// HasBack reports whether the back end is attached to a node.
func (e *Edge) HasBack() bool { return e.hasBack }

// HasFront reports whether the front end is attached to a node.
func (e *Edge) HasFront() bool { return e.hasFront }

// VoxelCount returns the number of member voxels in the edge's chain.
func (e *Edge) VoxelCount() int { return e.Members.Len() }

// Voxels returns the member voxels in chain order (back to front).
func (e *Edge) Voxels() []int {
	out := make([]int, 0, e.Members.Len())
	for el := e.Members.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(int))
	}

	return out
}

// Graph is the skeleton graph arena: nodes and edges addressed by
// handle, guarded by separate locks in the teacher's muVert/muEdgeAdj
// style.
type Graph struct {
	muNode sync.RWMutex // guards nodes, nextNodeID
	muEdge sync.RWMutex // guards edges, nextEdgeID

	nodes      map[NodeID]*Node
	edges      map[EdgeID]*Edge
	nextNodeID NodeID
	nextEdgeID EdgeID
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[NodeID]*Node),
		edges: make(map[EdgeID]*Edge),
	}
}
