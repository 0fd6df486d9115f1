package app

import (
	"log/slog"

	"github.com/pthm-cable/emberfield/config"
)

// flushTelemetry emits and writes window stats every LogInterval frames.
func (a *App) flushTelemetry() {
	interval := int64(config.Cfg().Telemetry.LogInterval)
	if interval <= 0 || a.frameCount == 0 || a.frameCount%interval != 0 {
		return
	}

	ws := a.perf.Window(a.frameCount, a.sparks.Count(), a.framePointer.Present)
	perfStats := a.perf.Stats()

	if a.logStats {
		ws.LogStats()
		perfStats.LogStats()
	}

	if err := a.output.WritePerf(perfStats, a.frameCount); err != nil {
		slog.Error("failed to write perf stats", "error", err)
	}
	if err := a.output.WriteWindow(ws); err != nil {
		slog.Error("failed to write window stats", "error", err)
	}
}
