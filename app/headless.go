package app

import (
	"fmt"
	"log/slog"
	"math"
	"path/filepath"

	"github.com/pthm-cable/emberfield/config"
	"github.com/pthm-cable/emberfield/field"
	"github.com/pthm-cable/emberfield/raster"
	"github.com/pthm-cable/emberfield/telemetry"
	"github.com/pthm-cable/emberfield/theme"
)

const (
	// orbitSpeed is the scripted pointer's angular velocity in rad/s.
	orbitSpeed = 0.7

	// headlessBurstEvery fires a scripted click every N frames.
	headlessBurstEvery = 90

	// headlessDumpEvery writes a PNG every N frames when an output
	// directory is set.
	headlessDumpEvery = 120
)

// RunHeadless renders a fixed-step frame sequence into a software canvas
// with a scripted pointer orbit. No window, no audio. Identical options
// produce identical frames.
func (a *App) RunHeadless(frames int) error {
	cfg := config.Cfg()
	width, height := cfg.Screen.Width, cfg.Screen.Height
	fps := cfg.Screen.TargetFPS
	if fps <= 0 {
		fps = 60
	}
	dt := 1.0 / float64(fps)

	canvas := raster.NewCanvas()
	dumpDir := a.output.Dir()

	for i := 0; i < frames; i++ {
		a.perf.StartFrame()

		a.perf.StartPhase(telemetry.PhaseInput)
		a.pointer.Store(orbitPointer(i, dt, width, height))
		a.framePointer = a.pointer.Load()
		a.scene.Advance(dt)
		a.advanceMoodFade(dt)

		a.perf.StartPhase(telemetry.PhaseSparks)
		if i > 0 && i%headlessBurstEvery == 0 {
			a.sparks.Burst(a.framePointer.X, a.framePointer.Y)
		}
		a.sparks.Update(float32(dt))
		a.sparkDraws = a.sparks.Snapshot(a.sparkDraws)

		a.perf.StartPhase(telemetry.PhaseField)
		t := a.scene.Time() * a.timeScale
		if err := a.field.RenderFrame(canvas, width, height, t, a.framePointer); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}

		a.perf.StartPhase(telemetry.PhaseDraw)
		a.drawSparksRaster(canvas)

		a.perf.EndFrame()
		a.frameCount++
		a.flushTelemetry()

		if dumpDir != "" && (i+1)%headlessDumpEvery == 0 {
			path := filepath.Join(dumpDir, fmt.Sprintf("frame_%05d.png", i+1))
			if err := canvas.WritePNG(path); err != nil {
				return fmt.Errorf("dumping frame %d: %w", i+1, err)
			}
		}
	}

	if dumpDir != "" {
		path := filepath.Join(dumpDir, "frame_final.png")
		if err := canvas.WritePNG(path); err != nil {
			return fmt.Errorf("dumping final frame: %w", err)
		}
		slog.Info("headless run complete", "frames", frames, "final_frame", path)
	} else {
		slog.Info("headless run complete", "frames", frames)
	}

	return nil
}

// drawSparksRaster paints sparks as plain circles. The software canvas
// has no additive pass, so they land with source-over blending.
func (a *App) drawSparksRaster(canvas *raster.Canvas) {
	p := a.field.Params()
	alpha := a.scene.RevealAlpha()

	for i := range a.sparkDraws {
		s := &a.sparkDraws[i]

		fade := s.Fade * s.Fade * alpha * 255
		if fade < 2 {
			continue
		}

		col := theme.LerpColor(p.Dot, p.Accent, s.Warmth)
		col.A = uint8(fade)
		canvas.FillCircle(s.X, s.Y, s.Radius, col)
	}
}

// orbitPointer scripts a slow cursor circle around the surface center.
func orbitPointer(frame int, dt float64, width, height int) field.Pointer {
	t := float64(frame) * dt
	cx := float64(width) / 2
	cy := float64(height) / 2
	r := 0.3 * math.Min(float64(width), float64(height))
	return field.PointerAt(
		float32(cx+r*math.Cos(t*orbitSpeed)),
		float32(cy+r*math.Sin(t*orbitSpeed)),
	)
}
