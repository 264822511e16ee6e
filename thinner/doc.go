// Package thinner drives the 6-subiteration topology-preserving erosion
// that reduces a padded binary volume to its one-voxel-thick skeleton.
//
// What:
//
//   - Thinner wraps a *volume.Volume and a live, order-preserving,
//     erase-friendly sequence of its foreground voxel indices.
//   - Run repeats the six named subiterations (U, D, N, S, E, W) until a
//     full sweep deletes nothing.
//   - Each subiteration collects candidates against a volume snapshot,
//     then re-validates and deletes them in an inner fixed-point loop,
//     since deleting one candidate can make another cease to be simple.
//
// Why:
//
//   - The two-phase collect/re-check scheme is what makes the result
//     independent of deletion order within a direction (package doc §5 of
//     the originating specification).
//
// Errors: none internally; thinning is total on any valid padded volume.
// A caller-supplied context is only observed between subiterations, never
// mid-subiteration, to preserve the fixed-point guarantee.
package thinner
