package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/trabecula/config"
	"github.com/katalvlaran/trabecula/graphbuilder"
	"github.com/katalvlaran/trabecula/metrics"
	"github.com/katalvlaran/trabecula/neighbourhood"
	"github.com/katalvlaran/trabecula/report"
	"github.com/katalvlaran/trabecula/thinner"
	"github.com/katalvlaran/trabecula/volume"
	"github.com/katalvlaran/trabecula/volumeio"
)

// Exit codes per the redesign's error taxonomy.
const (
	exitOK             = 0
	exitBadInput       = 2
	exitNoSkeleton     = 3
	exitIOFailure      = 4
	exitInternalFailed = 1
)

var (
	flagPitch           float64
	flagBranchThreshold float64
	flagEdgeThreshold   float64
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trabecula <basename>",
		Short: "Skeletonise a voxel volume and report its trabecular structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args[0])
		},
		SilenceUsage: true,
	}

	cmd.Flags().Float64Var(&flagPitch, "pitch", 0, "voxel pitch override (mm); 0 uses the header value")
	cmd.Flags().Float64Var(&flagBranchThreshold, "branch-threshold", 5.0, "branch pruning length threshold")
	cmd.Flags().Float64Var(&flagEdgeThreshold, "edge-threshold", 2.1, "internal edge fusion length threshold")

	return cmd
}

func run(ctx context.Context, basename string) error {
	loader := volumeio.FileLoader{}
	data, ext, headerPitch, err := loader.Load(basename)
	if err != nil {
		return exitError{code: exitIOFailure, err: err}
	}

	pitch := headerPitch
	if flagPitch != 0 {
		pitch = flagPitch
	}

	cfg := config.Load(ext.NX, ext.NY, ext.NZ, pitch, flagBranchThreshold, flagEdgeThreshold)
	if err := cfg.Validate(); err != nil {
		return exitError{code: exitBadInput, err: err}
	}

	vol, err := volume.Pad(data, ext)
	if err != nil {
		return exitError{code: exitBadInput, err: err}
	}

	inst := newInstrumentation()

	start := time.Now()
	t := thinner.New(vol, thinner.Options{
		OnSweep: func(sweep, deleted int) {
			fmt.Fprintf(os.Stderr, "thinning sweep %d: %d voxels deleted\n", sweep, deleted)
		},
	})
	thinResult, err := t.Run(ctx)
	inst.thinningDuration.Observe(time.Since(start).Seconds())
	inst.voxelsDeleted.Add(float64(thinResult.Deleted))
	if err != nil {
		return exitError{code: exitInternalFailed, err: err}
	}

	off := neighbourhood.Offsets(vol.Dims)
	graph, _, err := graphbuilder.Build(ctx, vol, off, cfg.BuildConfig())
	inst.graphNodesTotal.Set(float64(graph.NodeCount()))
	if err != nil {
		if errors.Is(err, graphbuilder.ErrEmptySkeleton) || errors.Is(err, graphbuilder.ErrPureCycle) {
			return exitError{code: exitNoSkeleton, err: err}
		}
		return exitError{code: exitInternalFailed, err: err}
	}

	summary := metrics.Summarize(vol, graph, cfg.VoxelPitch)

	saver := volumeio.FileSaver{Pitch: cfg.VoxelPitch}
	if err := saver.SaveSkeleton(basename, vol.Strip(ext), ext); err != nil {
		return exitError{code: exitIOFailure, err: err}
	}

	infoFile, err := os.Create(basename + "_infos.txt")
	if err != nil {
		return exitError{code: exitIOFailure, err: err}
	}
	defer infoFile.Close()

	if err := report.Render(infoFile, basename, ext, cfg.VoxelPitch, summary); err != nil {
		return exitError{code: exitIOFailure, err: err}
	}

	if text, gatherErr := inst.gather(); gatherErr == nil {
		fmt.Fprint(os.Stderr, text)
	}

	return nil
}

// exitError carries the process exit code the CLI entry point should
// use for a given failure, alongside the underlying cause.
type exitError struct {
	code int
	err  error
}

func (e exitError) Error() string { return e.err.Error() }
func (e exitError) Unwrap() error { return e.err }
