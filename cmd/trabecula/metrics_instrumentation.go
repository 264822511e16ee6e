package main

import (
	"github.com/prometheus/client_golang/prometheus"
)

// instrumentation holds the batch counters/histograms this run reports
// at exit. Unlike a long-lived server, a CLI run never scrapes these
// over HTTP; they are gathered once at the end and logged to stderr,
// one line per metric family.
type instrumentation struct {
	registry         *prometheus.Registry
	thinningDuration prometheus.Histogram
	voxelsDeleted    prometheus.Counter
	graphNodesTotal  prometheus.Gauge
}

func newInstrumentation() *instrumentation {
	reg := prometheus.NewRegistry()

	inst := &instrumentation{
		registry: reg,
		thinningDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "thinning_duration_seconds",
			Help:    "Wall-clock time spent in the thinning pass.",
			Buckets: prometheus.DefBuckets,
		}),
		voxelsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "voxels_deleted_total",
			Help: "Foreground voxels removed by the thinning pass.",
		}),
		graphNodesTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "graph_nodes_total",
			Help: "Node count of the extracted skeleton graph.",
		}),
	}

	reg.MustRegister(inst.thinningDuration, inst.voxelsDeleted, inst.graphNodesTotal)

	return inst
}

// gather renders each registered metric family with its protobuf
// String() form, one family per line.
func (inst *instrumentation) gather() (string, error) {
	families, err := inst.registry.Gather()
	if err != nil {
		return "", err
	}

	var b []byte
	for _, mf := range families {
		b = append(b, []byte(mf.String())...)
		b = append(b, '\n')
	}

	return string(b), nil
}
