// Field parameter preview tool - the live dot grid with sliders.
//
// Usage: go run ./cmd/fieldpreview
package main

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/emberfield/field"
	"github.com/pthm-cable/emberfield/noise"
	"github.com/pthm-cable/emberfield/renderer"
)

const (
	windowWidth  = 1100
	windowHeight = 720
	panelWidth   = 300
	panelX       = float32(windowWidth - panelWidth)
	sliderWidth  = float32(panelWidth - 90)
)

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Field Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	params := field.DefaultParams()
	timeScale := float32(0.2)

	f := field.New(noise.NewSimplex(), params)
	canvas := renderer.NewRLCanvas()

	var t float32
	paused := false

	for !rl.WindowShouldClose() {
		if !paused {
			t += rl.GetFrameTime() * timeScale
		}

		// Mouse drives the pointer unless it sits over the panel.
		pointer := field.Pointer{}
		mouse := rl.GetMousePosition()
		if mouse.X < panelX && rl.IsCursorOnScreen() {
			pointer = field.PointerAt(mouse.X, mouse.Y)
		}

		f.SetParams(params)

		rl.BeginDrawing()

		f.RenderFrame(canvas, windowWidth, windowHeight, float64(t), pointer)

		// Control panel
		rl.DrawRectangle(int32(panelX), 0, panelWidth, windowHeight, rl.Color{R: 24, G: 24, B: 30, A: 245})

		px := panelX + 15
		py := float32(15)

		rl.DrawText("Field Parameters", int32(px), int32(py), 20, rl.RayWhite)
		py += 35

		// Spacing slider
		rl.DrawText("Spacing (px between dots)", int32(px), int32(py), 14, rl.Gray)
		py += 18
		newSpacing := gui.SliderBar(
			rl.Rectangle{X: px, Y: py, Width: sliderWidth, Height: 20},
			"8", "60",
			params.Spacing, 8, 60,
		)
		rl.DrawText(fmt.Sprintf("%.0f", params.Spacing), int32(px+sliderWidth+10), int32(py+2), 16, rl.LightGray)
		if newSpacing != params.Spacing {
			params.Spacing = newSpacing
		}
		py += 35

		// Scale slider
		rl.DrawText("Scale (noise freq per px)", int32(px), int32(py), 14, rl.Gray)
		py += 18
		newScale := gui.SliderBar(
			rl.Rectangle{X: px, Y: py, Width: sliderWidth, Height: 20},
			"0.002", "0.05",
			float32(params.Scale), 0.002, 0.05,
		)
		rl.DrawText(fmt.Sprintf("%.4f", params.Scale), int32(px+sliderWidth+10), int32(py+2), 16, rl.LightGray)
		if float64(newScale) != params.Scale {
			params.Scale = float64(newScale)
		}
		py += 35

		// Time scale slider
		rl.DrawText("Time scale (drift speed)", int32(px), int32(py), 14, rl.Gray)
		py += 18
		newTimeScale := gui.SliderBar(
			rl.Rectangle{X: px, Y: py, Width: sliderWidth, Height: 20},
			"0", "1.0",
			timeScale, 0, 1.0,
		)
		rl.DrawText(fmt.Sprintf("%.2f", timeScale), int32(px+sliderWidth+10), int32(py+2), 16, rl.LightGray)
		if newTimeScale != timeScale {
			timeScale = newTimeScale
		}
		py += 35

		// Influence radius slider
		rl.DrawText("Influence radius (px)", int32(px), int32(py), 14, rl.Gray)
		py += 18
		newInfluence := gui.SliderBar(
			rl.Rectangle{X: px, Y: py, Width: sliderWidth, Height: 20},
			"0", "400",
			params.InfluenceRadius, 0, 400,
		)
		rl.DrawText(fmt.Sprintf("%.0f", params.InfluenceRadius), int32(px+sliderWidth+10), int32(py+2), 16, rl.LightGray)
		if newInfluence != params.InfluenceRadius {
			params.InfluenceRadius = newInfluence
		}
		py += 35

		// Alpha base slider
		rl.DrawText("Alpha base (brightness weight)", int32(px), int32(py), 14, rl.Gray)
		py += 18
		newAlphaBase := gui.SliderBar(
			rl.Rectangle{X: px, Y: py, Width: sliderWidth, Height: 20},
			"0", "1",
			params.AlphaBase, 0, 1,
		)
		rl.DrawText(fmt.Sprintf("%.2f", params.AlphaBase), int32(px+sliderWidth+10), int32(py+2), 16, rl.LightGray)
		if newAlphaBase != params.AlphaBase {
			params.AlphaBase = newAlphaBase
		}
		py += 35

		// Alpha boost slider
		rl.DrawText("Alpha boost (proximity weight)", int32(px), int32(py), 14, rl.Gray)
		py += 18
		newAlphaBoost := gui.SliderBar(
			rl.Rectangle{X: px, Y: py, Width: sliderWidth, Height: 20},
			"0", "1",
			params.AlphaBoost, 0, 1,
		)
		rl.DrawText(fmt.Sprintf("%.2f", params.AlphaBoost), int32(px+sliderWidth+10), int32(py+2), 16, rl.LightGray)
		if newAlphaBoost != params.AlphaBoost {
			params.AlphaBoost = newAlphaBoost
		}
		py += 35

		// Radius base slider
		rl.DrawText("Radius base (px)", int32(px), int32(py), 14, rl.Gray)
		py += 18
		newRadiusBase := gui.SliderBar(
			rl.Rectangle{X: px, Y: py, Width: sliderWidth, Height: 20},
			"0.5", "5",
			params.RadiusBase, 0.5, 5,
		)
		rl.DrawText(fmt.Sprintf("%.1f", params.RadiusBase), int32(px+sliderWidth+10), int32(py+2), 16, rl.LightGray)
		if newRadiusBase != params.RadiusBase {
			params.RadiusBase = newRadiusBase
		}
		py += 35

		// Radius bright slider
		rl.DrawText("Radius bright (px at full noise)", int32(px), int32(py), 14, rl.Gray)
		py += 18
		newRadiusBright := gui.SliderBar(
			rl.Rectangle{X: px, Y: py, Width: sliderWidth, Height: 20},
			"0", "6",
			params.RadiusBright, 0, 6,
		)
		rl.DrawText(fmt.Sprintf("%.1f", params.RadiusBright), int32(px+sliderWidth+10), int32(py+2), 16, rl.LightGray)
		if newRadiusBright != params.RadiusBright {
			params.RadiusBright = newRadiusBright
		}
		py += 35

		// Radius prox slider
		rl.DrawText("Radius prox (px at pointer)", int32(px), int32(py), 14, rl.Gray)
		py += 18
		newRadiusProx := gui.SliderBar(
			rl.Rectangle{X: px, Y: py, Width: sliderWidth, Height: 20},
			"0", "6",
			params.RadiusProx, 0, 6,
		)
		rl.DrawText(fmt.Sprintf("%.1f", params.RadiusProx), int32(px+sliderWidth+10), int32(py+2), 16, rl.LightGray)
		if newRadiusProx != params.RadiusProx {
			params.RadiusProx = newRadiusProx
		}
		py += 45

		// Buttons
		if gui.Button(rl.Rectangle{X: px, Y: py, Width: 125, Height: 30}, toggleText(paused, "Resume", "Pause")) {
			paused = !paused
		}
		if gui.Button(rl.Rectangle{X: px + 135, Y: py, Width: 125, Height: 30}, "Reset All") {
			params = field.DefaultParams()
			timeScale = 0.2
			t = 0
		}
		py += 50

		// Output YAML
		rl.DrawText("YAML Config:", int32(px), int32(py), 16, rl.RayWhite)
		py += 22
		for _, line := range yamlLines(params, timeScale) {
			rl.DrawText(line, int32(px), int32(py), 13, rl.Gray)
			py += 15
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(px), windowHeight-30, 12, rl.LightGray)

		// Copy to clipboard on C key
		if rl.IsKeyPressed(rl.KeyC) {
			yaml := ""
			for _, line := range yamlLines(params, timeScale) {
				yaml += line + "\n"
			}
			rl.SetClipboardText(yaml)
		}

		rl.EndDrawing()
	}
}

func yamlLines(p field.Params, timeScale float32) []string {
	return []string{
		"field:",
		fmt.Sprintf("  spacing: %.0f", p.Spacing),
		fmt.Sprintf("  scale: %.4f", p.Scale),
		fmt.Sprintf("  time_scale: %.2f", timeScale),
		fmt.Sprintf("  alpha_base: %.2f", p.AlphaBase),
		fmt.Sprintf("  alpha_boost: %.2f", p.AlphaBoost),
		fmt.Sprintf("  radius_base: %.1f", p.RadiusBase),
		fmt.Sprintf("  radius_bright: %.1f", p.RadiusBright),
		fmt.Sprintf("  radius_prox: %.1f", p.RadiusProx),
		"pointer:",
		fmt.Sprintf("  influence_radius: %.0f", p.InfluenceRadius),
	}
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}
