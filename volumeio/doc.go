// Package volumeio defines the contract between the analysis core and
// whatever container format the caller's voxel data actually lives in,
// plus a minimal reference adapter exercising that contract.
//
// The core never depends on a concrete file format: volume.Pad takes a
// plain []byte plus volume.Extents. Loader and Saver are the seam a
// real Analyze-7.5 reader (see original_source/src/analyze_loader.cpp
// for the format this stands in for) would implement; FileLoader and
// FileSaver here are a minimal two-file stand-in (<basename>.hdr +
// <basename>.img), not a full Analyze-7.5 implementation.
package volumeio
