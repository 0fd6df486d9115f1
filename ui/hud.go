package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/emberfield/telemetry"
)

// HUDData holds everything the corner readout needs for a frame.
type HUDData struct {
	Mood         string
	FPS          int32
	Sparks       int
	Paused       bool
	Muted        bool
	ScreenWidth  int32
	ScreenHeight int32
}

// HUD renders the persistent corner readout.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText("emberfield", 10, 10, h.renderer.Theme.TitleFontSize, rl.White)

	rl.DrawText(
		fmt.Sprintf("Mood: %s | FPS: %d | Sparks: %d", data.Mood, data.FPS, data.Sparks),
		10, 35, 14, rl.LightGray,
	)

	status := ""
	if data.Paused {
		status = "PAUSED"
	}
	if data.Muted {
		if status != "" {
			status += " | "
		}
		status += "MUTED"
	}
	if status != "" {
		rl.DrawText(status, 10, 55, 14, rl.Yellow)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenWidth, screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// PerfPanelData holds frame timing for the debug panel.
type PerfPanelData struct {
	Stats  telemetry.PerfStats
	Window int
}

// PerfPanel renders per-phase frame timing, toggled from the keyboard.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// phaseOrder fixes the row order; map iteration would shuffle it per frame.
var phaseOrder = []string{
	telemetry.PhaseInput,
	telemetry.PhaseField,
	telemetry.PhaseSparks,
	telemetry.PhaseAudio,
	telemetry.PhaseDraw,
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(data PerfPanelData) {
	r := p.renderer
	padding := r.Theme.Padding

	width := int32(250)
	height := padding*2 + 20 + 16 + int32(len(phaseOrder))*14 + 18
	r.DrawPanel(p.x, p.y, width, height)

	x := p.x + padding
	y := p.y + padding

	rl.DrawText("Frame Timing", x, y, 16, rl.White)
	y += 20

	rl.DrawText(
		fmt.Sprintf("avg %s | %d fps", data.Stats.AvgFrameDuration.Round(time.Microsecond), int(data.Stats.FPS)),
		x, y, 14, rl.Yellow,
	)
	y += 16

	for _, phase := range phaseOrder {
		avg := data.Stats.PhaseAvg[phase]
		pct := data.Stats.PhasePct[phase]

		color := rl.LightGray
		if pct > 50 {
			color = rl.Red
		} else if pct > 25 {
			color = rl.Orange
		}

		rl.DrawText(
			fmt.Sprintf("%-8s %8s %5.1f%%", phase, avg.Round(time.Microsecond), pct),
			x, y, 12, color,
		)
		y += 14
	}

	rl.DrawText(fmt.Sprintf("window: %d frames", data.Window), x, y+2, 12, rl.Gray)
}
