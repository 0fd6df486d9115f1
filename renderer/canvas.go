// Package renderer draws the engine's output through raylib: a Canvas
// adapter for the dot field and an additive pass for sparks.
package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RLCanvas adapts raylib's immediate-mode drawing to the field's Canvas
// contract. Draw calls must land between rl.BeginDrawing and
// rl.EndDrawing; the game loop owns that bracket.
type RLCanvas struct{}

// NewRLCanvas creates the raylib canvas adapter.
func NewRLCanvas() *RLCanvas {
	return &RLCanvas{}
}

// Clear erases the window to the frame's background color.
func (c *RLCanvas) Clear(width, height int, col color.RGBA) {
	rl.ClearBackground(col)
}

// FillCircle paints one dot.
func (c *RLCanvas) FillCircle(x, y, radius float32, col color.RGBA) {
	rl.DrawCircle(int32(x), int32(y), radius, col)
}

// Available reports whether the window surface can accept draws.
// False while the window is minimized.
func (c *RLCanvas) Available() bool {
	return rl.IsWindowReady() && !rl.IsWindowMinimized()
}
