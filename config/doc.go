// Package config validates the small set of inputs the pipeline takes
// before any volume is touched: extents, voxel pitch, and the two
// graph-builder thresholds. Everything here is field-tagged and
// checked with github.com/go-playground/validator/v10 rather than
// hand-rolled range checks scattered across call sites.
package config
