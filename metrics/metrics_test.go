package metrics_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trabecula/graphbuilder"
	"github.com/katalvlaran/trabecula/internal/voxelfixtures"
	"github.com/katalvlaran/trabecula/metrics"
	"github.com/katalvlaran/trabecula/neighbourhood"
)

func TestBVTV_SolidCubeSanityValue(t *testing.T) {
	v := voxelfixtures.SolidCube(10)

	got := metrics.BVTV(v)

	assert.InDelta(t, 190.99, got, 0.01)
}

func TestBVTV_EmptyVolumeIsZero(t *testing.T) {
	v := voxelfixtures.StraightRod(3)
	for i := range v.Data {
		v.Data[i] = 0
	}

	assert.Equal(t, 0.0, metrics.BVTV(v))
}

func TestAverageTrabecularLength_StraightRod(t *testing.T) {
	v := voxelfixtures.StraightRod(10)
	off := neighbourhood.Offsets(v.Dims)

	graph, _, err := graphbuilder.Build(context.Background(), v, off, graphbuilder.DefaultBuildConfig())
	require.NoError(t, err)

	stats := metrics.AverageTrabecularLength(graph, 2.0)

	assert.Equal(t, 18.0, stats.Mean)
	assert.Equal(t, 18.0, stats.Max)
	assert.Equal(t, 18.0, stats.Min)
	assert.Equal(t, 0.0, stats.StdDev)
}

func TestAverageTrabecularLength_NoEdgesIsZeroValue(t *testing.T) {
	v := voxelfixtures.StraightRod(3)
	for i := range v.Data {
		v.Data[i] = 0
	}
	off := neighbourhood.Offsets(v.Dims)

	graph, _, err := graphbuilder.Build(context.Background(), v, off, graphbuilder.DefaultBuildConfig())
	assert.ErrorIs(t, err, graphbuilder.ErrEmptySkeleton)

	stats := metrics.AverageTrabecularLength(graph, 1.0)
	assert.Equal(t, metrics.LengthStats{}, stats)
}

func TestNumberOfTrabeculae_MatchesEdgeCount(t *testing.T) {
	v := voxelfixtures.TJunction(7)
	off := neighbourhood.Offsets(v.Dims)

	graph, _, err := graphbuilder.Build(context.Background(), v, off, graphbuilder.DefaultBuildConfig())
	require.NoError(t, err)

	assert.Equal(t, 3, metrics.NumberOfTrabeculae(graph))
}

func TestNodesConnectivity_TJunctionHasOneBucketOfThree(t *testing.T) {
	v := voxelfixtures.TJunction(7)
	off := neighbourhood.Offsets(v.Dims)

	graph, _, err := graphbuilder.Build(context.Background(), v, off, graphbuilder.DefaultBuildConfig())
	require.NoError(t, err)

	buckets := metrics.NodesConnectivity(graph)
	require.Len(t, buckets, 1)
	assert.Equal(t, metrics.ConnectivityBucket{K: 3, Count: 1}, buckets[0])
}

func TestNodesConnectivity_NoNodesIsEmpty(t *testing.T) {
	v := voxelfixtures.StraightRod(10)
	off := neighbourhood.Offsets(v.Dims)

	graph, _, err := graphbuilder.Build(context.Background(), v, off, graphbuilder.DefaultBuildConfig())
	require.NoError(t, err)

	assert.Empty(t, metrics.NodesConnectivity(graph))
}
