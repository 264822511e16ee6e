package skelgraph

import "errors"

var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node handle.
	ErrNodeNotFound = errors.New("skelgraph: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge handle.
	ErrEdgeNotFound = errors.New("skelgraph: edge not found")
)
