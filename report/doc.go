// Package report renders a finished analysis run as a plain-text
// summary: sample name, extents, pixel pitch, trabecula count, BV/TV,
// trabecular length statistics, and the connectivity histogram.
//
// Render takes volume.Extents directly rather than three loose
// integers, so there is no seam where a field could be transposed the
// way the original dump_infos wrote size_y twice instead of size_z.
package report
