package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/emberfield/config"
	"github.com/pthm-cable/emberfield/field"
	"github.com/pthm-cable/emberfield/scene"
)

// handleInput processes keyboard and mouse input.
func (a *App) handleInput() {
	a.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		a.scene.TogglePause()
	}

	if rl.IsKeyPressed(rl.KeyM) {
		a.cycleMood()
	}

	if rl.IsKeyPressed(rl.KeyA) {
		a.audio.ToggleMute()
	}

	if rl.IsKeyPressed(rl.KeyTab) {
		a.scene.ToggleOverlay(scene.OverlayMenu)
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		a.scene.ToggleOverlay(scene.OverlayAbout)
	}

	if rl.IsKeyPressed(rl.KeyD) {
		a.showPerf = !a.showPerf
	}

	// A minimized window freezes the clock without clearing the user's
	// own pause choice.
	a.scene.SetHidden(rl.IsWindowMinimized())
	a.audio.SetPaused(a.scene.Paused())

	a.updatePointer()

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		a.handleClick()
	}
}

// updatePointer publishes this frame's cursor state. The field sees an
// absent pointer while an overlay is open or the cursor is off the window.
func (a *App) updatePointer() {
	if a.scene.PointerLocked() || !rl.IsCursorOnScreen() {
		a.pointer.Clear()
		return
	}
	mp := rl.GetMousePosition()
	a.pointer.Store(field.PointerAt(mp.X, mp.Y))
}

// handleClick ignites a spark burst and a plink pitched by click height.
func (a *App) handleClick() {
	if a.scene.PointerLocked() || a.scene.Paused() {
		return
	}

	mp := rl.GetMousePosition()
	a.sparks.Burst(mp.X, mp.Y)

	cfg := config.Cfg()
	lift := 0.0
	if a.screenHeight > 0 {
		lift = 1 - float64(mp.Y)/float64(a.screenHeight)
		lift = min(max(lift, 0), 1)
	}
	a.audio.Plink(cfg.Audio.PlinkLowHz + lift*(cfg.Audio.PlinkHighHz-cfg.Audio.PlinkLowHz))
}

// handleResize propagates new window dimensions.
func (a *App) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	a.screenWidth = rl.GetScreenWidth()
	a.screenHeight = rl.GetScreenHeight()
}
