package metrics

import (
	"math"
	"sort"

	"github.com/katalvlaran/trabecula/skelgraph"
	"github.com/katalvlaran/trabecula/volume"
)

const (
	opBVTV                     = "BVTV"
	opAverageTrabecularLength  = "AverageTrabecularLength"
	opNumberOfTrabeculae       = "NumberOfTrabeculae"
	opNodesConnectivity        = "NodesConnectivity"
	dustLengthCutoff           = 2.0 // raw (unscaled) edge lengths at or below this are dust, excluded from Min
)

// LengthStats summarises a set of (spacing-scaled) edge lengths.
type LengthStats struct {
	Mean   float64
	Min    float64
	Max    float64
	StdDev float64
}

// ConnectivityBucket counts how many nodes have exactly K incident edges.
type ConnectivityBucket struct {
	K     int
	Count int
}

// BVTV returns the bone-volume-fraction estimate: the count of
// foreground voxels in the padded volume, divided by the theoretical
// voxel count of a ball inscribed in the volume's original extent
// ((pi/6)*nx*ny*nz), expressed as a percentage. Callers outside the
// bone-microstructure domain substitute their own denominator; this
// formula assumes a roughly spherical sample.
//
// Complexity: O(N) over the padded buffer.
func BVTV(vol *volume.Volume) float64 {
	// Stage 1 (Compute): count foreground voxels directly; the padded
	// border never contributes since Pad never lights it.
	count := vol.CountForeground()

	nx, ny, nz := vol.Dims.NX-2, vol.Dims.NY-2, vol.Dims.NZ-2
	denom := (math.Pi / 6.0) * float64(nx) * float64(ny) * float64(nz)
	if denom == 0 {
		return 0
	}

	// Stage 2 (Return): expressed as a percentage.
	return (float64(count) / denom) * 100.0
}

// AverageTrabecularLength returns {mean, min, max, stddev} over every
// edge's length scaled by spacing. Min ignores edges whose raw
// (unscaled) length is at or below dustLengthCutoff, treating them as
// segmentation dust rather than real trabeculae.
//
// Complexity: O(E).
func AverageTrabecularLength(graph *skelgraph.Graph, spacing float64) LengthStats {
	edgeIDs := graph.EdgeIDs()
	if len(edgeIDs) == 0 {
		return LengthStats{}
	}

	scaled := make([]float64, 0, len(edgeIDs))
	var minScaled float64
	haveMin := false
	var sum float64

	for _, eid := range edgeIDs {
		edge, err := graph.Edge(eid)
		if err != nil {
			continue
		}
		s := edge.Length * spacing
		scaled = append(scaled, s)
		sum += s
		if edge.Length > dustLengthCutoff && (!haveMin || s < minScaled) {
			minScaled = s
			haveMin = true
		}
	}
	if len(scaled) == 0 {
		return LengthStats{}
	}

	mean := sum / float64(len(scaled))

	maxScaled := scaled[0]
	var sqDiff float64
	for _, s := range scaled {
		if s > maxScaled {
			maxScaled = s
		}
		d := s - mean
		sqDiff += d * d
	}
	stddev := math.Sqrt(sqDiff / float64(len(scaled)))

	if !haveMin {
		minScaled = 0
	}

	return LengthStats{Mean: mean, Min: minScaled, Max: maxScaled, StdDev: stddev}
}

// NumberOfTrabeculae returns the edge count of the graph.
//
// Complexity: O(1).
func NumberOfTrabeculae(graph *skelgraph.Graph) int {
	return graph.EdgeCount()
}

// NodesConnectivity returns a sparse histogram of node connectivity
// degree, sorted ascending by K.
//
// Complexity: O(V log V).
func NodesConnectivity(graph *skelgraph.Graph) []ConnectivityBucket {
	counts := make(map[int]int)
	for _, nid := range graph.NodeIDs() {
		node, err := graph.Node(nid)
		if err != nil {
			continue
		}
		counts[len(node.EdgeIDs)]++
	}

	out := make([]ConnectivityBucket, 0, len(counts))
	for k, n := range counts {
		out = append(out, ConnectivityBucket{K: k, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].K < out[j].K })

	return out
}

// Summary bundles every metric computed for a single analysis run, for
// collaborators (the report package, instrumentation) that want the
// whole set rather than calling each function individually.
type Summary struct {
	BVTV          float64
	Length        LengthStats
	Trabeculae    int
	Connectivity  []ConnectivityBucket
}

// Summarize computes every metric in this package for one run.
func Summarize(vol *volume.Volume, graph *skelgraph.Graph, spacing float64) Summary {
	return Summary{
		BVTV:         BVTV(vol),
		Length:       AverageTrabecularLength(graph, spacing),
		Trabeculae:   NumberOfTrabeculae(graph),
		Connectivity: NodesConnectivity(graph),
	}
}
