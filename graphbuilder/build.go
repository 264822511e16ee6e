package graphbuilder

import (
	"context"

	"github.com/katalvlaran/trabecula/skelgraph"
	"github.com/katalvlaran/trabecula/thinner"
	"github.com/katalvlaran/trabecula/volume"
)

// BuildConfig carries the two threshold constants spec.md fixes at
// 5.0 and 2.1. They are exposed here (rather than left as unexported
// constants) so boundary behaviour can be probed in tests without
// duplicating the production defaults; the CLI checks any override with
// config.Config.Validate before it reaches Build.
type BuildConfig struct {
	BranchThreshold float64
	EdgeThreshold   float64
}

// DefaultBuildConfig returns the threshold values the reference
// implementation hard-codes.
func DefaultBuildConfig() BuildConfig {
	return BuildConfig{BranchThreshold: 5.0, EdgeThreshold: 2.1}
}

// Build runs the full classify/refine/prune/fuse/emit pipeline over
// vol, mutating vol in place when pruning removes voxels. off is the
// 26-neighbour offset table for vol's Dims (neighbourhood.Offsets).
//
// ctx is checked between passes; a cancelled context aborts with
// whatever partial graph had been built for the pass in progress.
func Build(ctx context.Context, vol *volume.Volume, off [26]int, cfg BuildConfig) (*skelgraph.Graph, *Classification, error) {
	graph, cls, err := extract(vol, off)
	if err != nil {
		return graph, cls, err
	}
	if err := ctx.Err(); err != nil {
		return graph, cls, err
	}

	refine(vol, off, graph, cls)
	if err := ctx.Err(); err != nil {
		return graph, cls, err
	}

	if prune(vol, graph, cls, cfg) {
		if _, err := thinner.New(vol, thinner.Options{}).Run(ctx); err != nil {
			return graph, cls, err
		}
		graph, cls, err = extract(vol, off)
		if err != nil {
			return graph, cls, err
		}
		refine(vol, off, graph, cls)
	}
	if err := ctx.Err(); err != nil {
		return graph, cls, err
	}

	fuse(graph, cfg)

	if err := emitAdjacency(graph); err != nil {
		return graph, cls, err
	}

	return graph, cls, nil
}
