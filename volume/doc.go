// Package volume provides the padded binary voxel buffer that every other
// component in this module builds on: a one-voxel zero border around a
// dense [nx][ny][nz] foreground/background grid, plus the linear indexing
// used throughout the skeletonisation pipeline.
//
// What:
//
//   - Extents/Dims describe the original and padded voxel-grid shape.
//   - Volume wraps a padded []byte buffer, one byte per voxel.
//   - Pad copies an external buffer into a padded one, establishing the
//     zero-border invariant; Strip/ToExternal undo the padding at the
//     VolumeIO boundary.
//
// Why:
//
//   - Padding with a background border lets every neighbourhood probe in
//     neighbourhood/topology/thinner skip bounds checks entirely.
//
// Errors:
//
//	ErrInputShape - extents are non-positive, or the input buffer length
//	                does not match nx*ny*nz.
package volume
