package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats summarizes frame time distribution over the rolling
// window, plus scene gauges sampled at window end. Durations are in
// milliseconds.
type WindowStats struct {
	WindowEnd int64 `csv:"window_end"`
	Frames    int   `csv:"frames"`

	MeanMS float64 `csv:"mean_ms"`
	StdMS  float64 `csv:"std_ms"`
	P50MS  float64 `csv:"p50_ms"`
	P95MS  float64 `csv:"p95_ms"`
	P99MS  float64 `csv:"p99_ms"`
	MaxMS  float64 `csv:"max_ms"`

	// Gauges at window end
	Sparks         int `csv:"sparks"`
	PointerPresent int `csv:"pointer_present"`
}

// Window computes the frame time distribution over the collector's
// current window. Quantiles follow the empirical CDF.
func (p *PerfCollector) Window(windowEnd int64, sparks int, pointerPresent bool) WindowStats {
	ws := WindowStats{
		WindowEnd: windowEnd,
		Frames:    p.sampleCount,
		Sparks:    sparks,
	}
	if pointerPresent {
		ws.PointerPresent = 1
	}
	if p.sampleCount == 0 {
		return ws
	}

	ms := make([]float64, p.sampleCount)
	for i := 0; i < p.sampleCount; i++ {
		ms[i] = float64(p.samples[i].FrameDuration.Microseconds()) / 1000
	}
	sort.Float64s(ms)

	ws.MeanMS = stat.Mean(ms, nil)
	if len(ms) > 1 {
		ws.StdMS = stat.StdDev(ms, nil)
	}
	ws.P50MS = stat.Quantile(0.5, stat.Empirical, ms, nil)
	ws.P95MS = stat.Quantile(0.95, stat.Empirical, ms, nil)
	ws.P99MS = stat.Quantile(0.99, stat.Empirical, ms, nil)
	ws.MaxMS = ms[len(ms)-1]
	return ws
}

// LogStats logs the window summary.
func (ws WindowStats) LogStats() {
	slog.Info("frames",
		"window_end", ws.WindowEnd,
		"mean_ms", ws.MeanMS,
		"p95_ms", ws.P95MS,
		"p99_ms", ws.P99MS,
		"max_ms", ws.MaxMS,
		"sparks", ws.Sparks,
	)
}
