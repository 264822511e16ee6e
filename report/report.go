package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/trabecula/metrics"
	"github.com/katalvlaran/trabecula/volume"
)

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Render writes a plain-text summary of one analysis run to w: sample
// name, extents, pixel pitch, trabecula count, BV/TV, trabecular
// length statistics in millimetres, and the connectivity histogram.
func Render(w io.Writer, name string, ext volume.Extents, pitch float64, m metrics.Summary) error {
	lines := []string{
		fmt.Sprintf("sample: %s", name),
		fmt.Sprintf("nx: %d", ext.NX),
		fmt.Sprintf("ny: %d", ext.NY),
		fmt.Sprintf("nz: %d", ext.NZ),
		fmt.Sprintf("pixel pitch (mm): %s", fmtFloat(pitch)),
		fmt.Sprintf("trabecula count: %d", m.Trabeculae),
		fmt.Sprintf("bv/tv (%%): %s", fmtFloat(m.BVTV)),
		fmt.Sprintf("trabecular length mean (mm): %s", fmtFloat(m.Length.Mean)),
		fmt.Sprintf("trabecular length min (mm): %s", fmtFloat(m.Length.Min)),
		fmt.Sprintf("trabecular length max (mm): %s", fmtFloat(m.Length.Max)),
		fmt.Sprintf("trabecular length stddev (mm): %s", fmtFloat(m.Length.StdDev)),
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return fmt.Errorf("report: write: %w", err)
		}
	}

	if _, err := fmt.Fprintln(w, "connectivity histogram:"); err != nil {
		return fmt.Errorf("report: write: %w", err)
	}
	for _, b := range m.Connectivity {
		if _, err := fmt.Fprintf(w, "  k=%d: %d\n", b.K, b.Count); err != nil {
			return fmt.Errorf("report: write: %w", err)
		}
	}

	return nil
}
