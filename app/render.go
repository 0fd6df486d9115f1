package app

import (
	"errors"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/emberfield/config"
	"github.com/pthm-cable/emberfield/field"
	"github.com/pthm-cable/emberfield/scene"
	"github.com/pthm-cable/emberfield/telemetry"
	"github.com/pthm-cable/emberfield/ui"
)

const controlsLegend = "Space pause | M mood | A mute | Tab menu | F1 about | D timing | F11 fullscreen"

// Draw renders the frame: field dots, sparks, HUD, overlays.
func (a *App) Draw() {
	rl.BeginDrawing()

	alpha := a.frameAlpha()

	a.perf.StartPhase(telemetry.PhaseField)
	canvas := &field.FadeCanvas{Inner: a.canvas, Alpha: alpha}
	t := a.scene.Time() * a.timeScale
	err := a.field.RenderFrame(canvas, a.screenWidth, a.screenHeight, t, a.framePointer)
	if err != nil && !errors.Is(err, field.ErrSurfaceUnavailable) {
		slog.Error("frame render failed", "error", err)
	}

	a.perf.StartPhase(telemetry.PhaseDraw)
	p := a.field.Params()
	a.sparksR.Draw(a.sparkDraws, p.Dot, p.Accent, alpha)

	a.drawHUD()
	a.drawOverlays()

	rl.EndDrawing()

	a.perf.EndFrame()
	a.flushTelemetry()
}

// frameAlpha is the global fade applied to dots and sparks. It ramps from
// zero through the reveal; the HUD and overlays draw at full opacity.
func (a *App) frameAlpha() float32 {
	return a.scene.RevealAlpha()
}

func (a *App) drawHUD() {
	a.hud.Draw(ui.HUDData{
		Mood:         a.mood.Name,
		FPS:          rl.GetFPS(),
		Sparks:       a.sparks.Count(),
		Paused:       a.scene.Paused(),
		Muted:        a.audio.Muted(),
		ScreenWidth:  int32(a.screenWidth),
		ScreenHeight: int32(a.screenHeight),
	})
	a.hud.DrawControls(int32(a.screenWidth), int32(a.screenHeight), controlsLegend)

	if a.showPerf {
		a.perfPanel.SetPosition(int32(a.screenWidth)-262, 10)
		a.perfPanel.Draw(ui.PerfPanelData{
			Stats:  a.perf.Stats(),
			Window: config.Cfg().Telemetry.StatsWindow,
		})
	}
}

func (a *App) drawOverlays() {
	switch a.scene.Overlay() {
	case scene.OverlayMenu:
		a.menu.Draw(ui.MenuData{
			Moods:        a.moods.Moods(),
			ActiveIndex:  a.moods.Index(),
			AudioOn:      config.Cfg().Audio.Enabled,
			Muted:        a.audio.Muted(),
			ScreenWidth:  int32(a.screenWidth),
			ScreenHeight: int32(a.screenHeight),
		})
	case scene.OverlayAbout:
		a.about.Draw(int32(a.screenWidth), int32(a.screenHeight), Version)
	}
}
