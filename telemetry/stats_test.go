package telemetry

import (
	"math"
	"testing"
	"time"
)

func TestWindowQuantiles(t *testing.T) {
	p := NewPerfCollector(16)
	for i := 1; i <= 10; i++ {
		p.record(PerfSample{FrameDuration: time.Duration(i) * time.Millisecond})
	}

	ws := p.Window(10, 3, true)

	if ws.Frames != 10 {
		t.Errorf("frames = %d, want 10", ws.Frames)
	}
	if math.Abs(ws.MeanMS-5.5) > 0.001 {
		t.Errorf("mean = %v, want 5.5", ws.MeanMS)
	}
	if math.Abs(ws.StdMS-3.02765) > 0.01 {
		t.Errorf("std = %v, want ~3.028", ws.StdMS)
	}
	if math.Abs(ws.P50MS-5.0) > 0.001 {
		t.Errorf("p50 = %v, want 5.0", ws.P50MS)
	}
	if math.Abs(ws.P95MS-10.0) > 0.001 {
		t.Errorf("p95 = %v, want 10.0", ws.P95MS)
	}
	if math.Abs(ws.P99MS-10.0) > 0.001 {
		t.Errorf("p99 = %v, want 10.0", ws.P99MS)
	}
	if math.Abs(ws.MaxMS-10.0) > 0.001 {
		t.Errorf("max = %v, want 10.0", ws.MaxMS)
	}
	if ws.Sparks != 3 {
		t.Errorf("sparks = %d, want 3", ws.Sparks)
	}
	if ws.PointerPresent != 1 {
		t.Errorf("pointer_present = %d, want 1", ws.PointerPresent)
	}
}

func TestWindowEmpty(t *testing.T) {
	p := NewPerfCollector(16)
	ws := p.Window(0, 0, false)

	if ws.Frames != 0 || ws.MeanMS != 0 || ws.P99MS != 0 || ws.MaxMS != 0 {
		t.Errorf("empty window should be all zeros, got %+v", ws)
	}
}

func TestWindowSingleFrame(t *testing.T) {
	p := NewPerfCollector(16)
	p.record(PerfSample{FrameDuration: 4 * time.Millisecond})

	ws := p.Window(1, 0, false)

	if math.Abs(ws.MeanMS-4.0) > 0.001 {
		t.Errorf("mean = %v, want 4.0", ws.MeanMS)
	}
	if ws.StdMS != 0 {
		t.Errorf("std of one frame = %v, want 0", ws.StdMS)
	}
	if math.Abs(ws.P50MS-4.0) > 0.001 {
		t.Errorf("p50 = %v, want 4.0", ws.P50MS)
	}
}

func TestWindowRollsOver(t *testing.T) {
	p := NewPerfCollector(8)
	for i := 1; i <= 20; i++ {
		p.record(PerfSample{FrameDuration: time.Duration(i) * time.Millisecond})
	}

	ws := p.Window(20, 0, false)

	if ws.Frames != 8 {
		t.Errorf("frames = %d, want window size 8", ws.Frames)
	}
	// The ring holds the last 8 samples, 13ms through 20ms.
	if math.Abs(ws.MeanMS-16.5) > 0.001 {
		t.Errorf("mean = %v, want 16.5", ws.MeanMS)
	}
}

func TestWindowGauges(t *testing.T) {
	p := NewPerfCollector(16)
	p.record(PerfSample{FrameDuration: 2 * time.Millisecond})

	ws := p.Window(5, 12, false)

	if ws.WindowEnd != 5 {
		t.Errorf("window_end = %d, want 5", ws.WindowEnd)
	}
	if ws.Sparks != 12 {
		t.Errorf("sparks = %d, want 12", ws.Sparks)
	}
	if ws.PointerPresent != 0 {
		t.Errorf("pointer_present = %d, want 0", ws.PointerPresent)
	}
}
