package graphbuilder

import "errors"

var (
	// ErrEmptySkeleton indicates the input volume has no foreground voxels
	// at all, so no graph can be built.
	ErrEmptySkeleton = errors.New("graphbuilder: skeleton has no foreground voxels")

	// ErrPureCycle indicates the skeleton has foreground voxels but no
	// lit_count==1 tip: seed search cannot find an unambiguous starting
	// point. Build still returns an empty graph rather than failing hard.
	ErrPureCycle = errors.New("graphbuilder: skeleton is a pure cycle with no tip voxel")

	// ErrClosureViolation indicates the final adjacency emission pass
	// found an edge and node disagreeing about their mutual incidence.
	ErrClosureViolation = errors.New("graphbuilder: node/edge adjacency closure violated")
)
