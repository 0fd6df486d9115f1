package field

import (
	"image/color"
	"testing"
)

func TestFadeCanvasScalesDotAlpha(t *testing.T) {
	inner := &recordingCanvas{}
	fc := &FadeCanvas{Inner: inner, Alpha: 0.5}

	fc.Clear(100, 100, color.RGBA{R: 10, G: 10, B: 10, A: 255})
	fc.FillCircle(5, 5, 2, color.RGBA{R: 200, G: 200, B: 200, A: 200})

	if inner.ops[0].col.A != 255 {
		t.Errorf("clear alpha %d, want 255 unscaled", inner.ops[0].col.A)
	}
	if inner.ops[1].col.A != 100 {
		t.Errorf("dot alpha %d, want 100 (200 * 0.5)", inner.ops[1].col.A)
	}
}

func TestFadeCanvasClampsAlpha(t *testing.T) {
	tests := []struct {
		name  string
		alpha float32
		want  uint8
	}{
		{"negative clamps to invisible", -0.5, 0},
		{"above one clamps to full", 3.0, 200},
		{"zero hides the dot", 0, 0},
		{"one passes through", 1, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := &recordingCanvas{}
			fc := &FadeCanvas{Inner: inner, Alpha: tt.alpha}

			fc.FillCircle(0, 0, 1, color.RGBA{A: 200})

			if got := inner.ops[0].col.A; got != tt.want {
				t.Errorf("dot alpha %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFadeCanvasSurfacePassthrough(t *testing.T) {
	flaky := &flakyCanvas{available: false}
	fc := &FadeCanvas{Inner: flaky, Alpha: 1}

	if fc.Available() {
		t.Error("expected unavailable surface to pass through the fade wrapper")
	}

	flaky.available = true
	if !fc.Available() {
		t.Error("expected restored surface to pass through the fade wrapper")
	}

	// A plain inner canvas has no surface state to report.
	plain := &FadeCanvas{Inner: &recordingCanvas{}, Alpha: 1}
	if !plain.Available() {
		t.Error("expected a plain inner canvas to always be available")
	}
}
