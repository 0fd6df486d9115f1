package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/emberfield/systems"
	"github.com/pthm-cable/emberfield/theme"
)

// SparkRenderer draws click-burst sparks as fading dots layered over the
// field pass with additive blending.
type SparkRenderer struct{}

// NewSparkRenderer creates a new spark renderer.
func NewSparkRenderer() *SparkRenderer {
	return &SparkRenderer{}
}

// Draw renders all sparks. Warmth picks each spark's hue between the
// mood's dot and accent colors; globalAlpha scales the whole pass during
// the reveal.
func (r *SparkRenderer) Draw(sparks []systems.SparkDraw, dot, accent color.RGBA, globalAlpha float32) {
	if len(sparks) == 0 {
		return
	}

	rl.BeginBlendMode(rl.BlendAdditive)

	for i := range sparks {
		s := &sparks[i]

		// Quadratic fade so sparks die soft instead of popping out.
		alpha := s.Fade * s.Fade * globalAlpha * 255
		if alpha < 2 {
			continue
		}

		col := theme.LerpColor(dot, accent, s.Warmth)
		col.A = uint8(alpha)

		rl.DrawCircle(int32(s.X), int32(s.Y), s.Radius, col)
	}

	rl.EndBlendMode()
}
