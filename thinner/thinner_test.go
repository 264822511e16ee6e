package thinner_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trabecula/neighbourhood"
	"github.com/katalvlaran/trabecula/thinner"
	"github.com/katalvlaran/trabecula/volume"
)

func buildVolume(t *testing.T, nx, ny, nz int, lit func(x, y, z int) bool) *volume.Volume {
	t.Helper()
	ext := volume.Extents{NX: nx, NY: ny, NZ: nz}
	data := make([]byte, ext.Size())
	for z := 0; z < nz; z++ {
		for y := 0; y < ny; y++ {
			for x := 0; x < nx; x++ {
				if lit(x, y, z) {
					data[z*nx*ny+y*nx+x] = 1
				}
			}
		}
	}
	v, err := volume.Pad(data, ext)
	require.NoError(t, err)

	return v
}

// assertBorderInvariant checks that every voxel of the outermost padded
// shell is background, which every thinner.Run call must preserve since it
// only ever clears voxels, never sets them.
func assertBorderInvariant(t *testing.T, v *volume.Volume) {
	t.Helper()
	nx, ny, nz := v.Dims.NX, v.Dims.NY, v.Dims.NZ
	for z := 0; z < nz; z++ {
		for y := 0; y < ny; y++ {
			for x := 0; x < nx; x++ {
				if x == 0 || y == 0 || z == 0 || x == nx-1 || y == ny-1 || z == nz-1 {
					assert.False(t, v.Lit(v.Index(x, y, z)), "border voxel (%d,%d,%d) is lit", x, y, z)
				}
			}
		}
	}
}

// A straight rod of length 7 along X is already one voxel thick: thinning
// must leave it unchanged (idempotence on an already-thin object), save for
// the two endpoints which stay as end points.
func TestRun_StraightRodIsFixedPoint(t *testing.T) {
	v := buildVolume(t, 7, 1, 1, func(x, y, z int) bool { return true })
	before := v.Foreground()

	res, err := thinner.New(v, thinner.Options{}).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, res.Deleted)
	assert.Equal(t, before, v.Foreground())
	assertBorderInvariant(t, v)
}

// A solid 5x5x5 cube thins down to a single surviving voxel (or a small
// connected core) and never violates the border invariant.
func TestRun_SolidCubeThinsWithoutBorderViolation(t *testing.T) {
	v := buildVolume(t, 5, 5, 5, func(x, y, z int) bool { return true })
	before := v.CountForeground()

	res, err := thinner.New(v, thinner.Options{}).Run(context.Background())
	require.NoError(t, err)
	assert.Greater(t, res.Deleted, 0)
	assert.Less(t, v.CountForeground(), before)
	assert.GreaterOrEqual(t, v.CountForeground(), 1)
	assertBorderInvariant(t, v)
}

// Re-running the thinner over its own output must not delete anything
// further: thin(thin(V)) == thin(V).
func TestRun_Idempotent(t *testing.T) {
	v := buildVolume(t, 6, 6, 6, func(x, y, z int) bool { return true })

	_, err := thinner.New(v, thinner.Options{}).Run(context.Background())
	require.NoError(t, err)
	once := v.Foreground()

	res, err := thinner.New(v, thinner.Options{}).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, res.Deleted)
	assert.Equal(t, once, v.Foreground())
}

// An L-shaped elbow of two perpendicular arms thins to a connected medial
// curve and stays connected: a skeleton of an elbow must not fragment.
func TestRun_ElbowStaysConnected(t *testing.T) {
	v := buildVolume(t, 9, 9, 3, func(x, y, z int) bool {
		if z != 1 {
			return false
		}
		// A 3-voxel-thick horizontal arm and a 3-voxel-thick vertical arm,
		// sharing a corner: an elbow.
		horizontal := y >= 3 && y <= 5
		vertical := x >= 3 && x <= 5
		return horizontal || vertical
	})
	before := v.CountForeground()

	res, err := thinner.New(v, thinner.Options{}).Run(context.Background())
	require.NoError(t, err)
	assert.Greater(t, res.Deleted, 0)
	assert.Less(t, v.CountForeground(), before)
	assert.Greater(t, v.CountForeground(), 0)
	assert.Equal(t, 1, components26(v))
	assertBorderInvariant(t, v)
}

// components26 counts the 26-connected components of v's foreground.
func components26(v *volume.Volume) int {
	off := neighbourhood.Offsets(v.Dims)
	seen := make(map[int]bool)
	count := 0
	for _, p := range v.Foreground() {
		if seen[p] {
			continue
		}
		count++
		seen[p] = true
		stack := []int{p}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, q := range neighbourhood.Neighbours(cur, off) {
				if v.Lit(q) && !seen[q] {
					seen[q] = true
					stack = append(stack, q)
				}
			}
		}
	}

	return count
}

func TestRun_OnSweepHookFiresPerPass(t *testing.T) {
	v := buildVolume(t, 5, 5, 5, func(x, y, z int) bool { return true })

	sweeps := 0
	res, err := thinner.New(v, thinner.Options{
		OnSweep: func(sweep, deleted int) { sweeps++ },
	}).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, res.Sweeps, sweeps)
	assert.Greater(t, sweeps, 0)
}

func TestRun_ContextCancelledBetweenSubiterations(t *testing.T) {
	v := buildVolume(t, 5, 5, 5, func(x, y, z int) bool { return true })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := thinner.New(v, thinner.Options{}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, res.Sweeps)
}
