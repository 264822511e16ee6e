// Package voxelfixtures builds small, hand-checkable padded volumes for
// tests across thinner, graphbuilder and metrics: a straight rod, an
// elbow, a T-junction, a short spur off a T-junction, a near-double
// junction, and a solid cube. Each constructor follows the teacher's
// builder.Constructor naming convention (one function per named shape)
// but returns a ready *volume.Volume directly, since these fixtures
// have no configurable parameters beyond their lengths and sizes.
package voxelfixtures
