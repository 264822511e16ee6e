package graphbuilder

import "github.com/katalvlaran/trabecula/skelgraph"

// TagKind distinguishes the two mutually exclusive voxel roles a
// skeleton voxel can take during graph construction.
type TagKind uint8

const (
	TagNone TagKind = iota
	TagNode
	TagEdge
)

// Tag is the exclusive classification of one voxel: exactly one of
// Node/Edge is meaningful, selected by Kind.
type Tag struct {
	Kind TagKind
	ID   uint64 // skelgraph.NodeID or skelgraph.EdgeID, depending on Kind
}

// Classification is a dense map from padded linear voxel index to Tag.
type Classification struct {
	tags []Tag
}

// NewClassification returns a Classification sized for a volume with
// size padded voxels, every entry initialised to TagNone.
func NewClassification(size int) *Classification {
	return &Classification{tags: make([]Tag, size)}
}

// Get returns the tag at padded index i.
func (c *Classification) Get(i int) Tag {
	return c.tags[i]
}

// SetNode tags voxel i as belonging to node id.
func (c *Classification) SetNode(i int, id skelgraph.NodeID) {
	c.tags[i] = Tag{Kind: TagNode, ID: uint64(id)}
}

// SetEdge tags voxel i as belonging to edge id.
func (c *Classification) SetEdge(i int, id skelgraph.EdgeID) {
	c.tags[i] = Tag{Kind: TagEdge, ID: uint64(id)}
}

// Clear resets voxel i to TagNone.
func (c *Classification) Clear(i int) {
	c.tags[i] = Tag{}
}

// NodeID returns t's node handle; only meaningful when t.Kind == TagNode.
func (t Tag) NodeID() skelgraph.NodeID { return skelgraph.NodeID(t.ID) }

// EdgeID returns t's edge handle; only meaningful when t.Kind == TagEdge.
func (t Tag) EdgeID() skelgraph.EdgeID { return skelgraph.EdgeID(t.ID) }
