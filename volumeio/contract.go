package volumeio

import "github.com/katalvlaran/trabecula/volume"

// Loader reads a named voxel dataset, returning its raw foreground
// bytes (x-fastest, z-slowest, matching volume.Pad's expected layout),
// its extents, and its voxel pitch (the first pixel dimension from the
// container's header).
type Loader interface {
	Load(basename string) (data []byte, ext volume.Extents, pitch float64, err error)
}

// Saver writes a skeletonised voxel dataset back out under a derived
// name, in whatever container format the implementation owns.
type Saver interface {
	SaveSkeleton(basename string, data []byte, ext volume.Extents) error
}
