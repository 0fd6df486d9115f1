// Package field renders a pointer-reactive noise field as a grid of dots.
// The renderer is stateless across frames: every paint operation is a pure
// function of the parameters, the surface size, the time coordinate, and
// the pointer. All per-frame inputs arrive as arguments.
package field

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// Turbulence layer constants. The agitated second noise octave near the
// pointer samples at 3x spatial frequency and 2x time speed, weighted by
// proximity times 0.6.
const (
	turbFrequency = 3.0
	turbTimeSpeed = 2.0
	turbGain      = 0.6
)

var (
	// ErrInvalidDimensions rejects a frame whose width, height, or cell
	// spacing is not positive. The surface is left untouched.
	ErrInvalidDimensions = errors.New("field: invalid dimensions")

	// ErrSurfaceUnavailable reports a canvas whose backing surface is
	// currently gone. The frame is skipped; rendering resumes once the
	// surface returns.
	ErrSurfaceUnavailable = errors.New("field: surface unavailable")
)

// Params holds the field tuning. Colors are injected by the caller; the
// accent is whatever hue the active mood supplies, not a fixed constant.
type Params struct {
	// Spacing is the distance between grid cells in surface pixels.
	Spacing float32

	// Scale converts surface pixels to noise-space units.
	Scale float64

	// InfluenceRadius is the pointer falloff distance in surface pixels.
	InfluenceRadius float32

	// Alpha weights. A dot's opacity is brightness*AlphaBase plus
	// proximity squared times AlphaBoost, clamped to 1.
	AlphaBase  float32
	AlphaBoost float32

	// Radius weights. A dot's radius is RadiusBase plus brightness times
	// RadiusBright plus proximity times RadiusProx.
	RadiusBase   float32
	RadiusBright float32
	RadiusProx   float32

	Background color.RGBA
	Dot        color.RGBA
	Accent     color.RGBA
}

// DefaultParams returns the stock tuning used when no config overrides it.
func DefaultParams() Params {
	return Params{
		Spacing:         22,
		Scale:           0.012,
		InfluenceRadius: 140,
		AlphaBase:       0.55,
		AlphaBoost:      0.45,
		RadiusBase:      1.6,
		RadiusBright:    2.6,
		RadiusProx:      2.2,
		Background:      color.RGBA{R: 12, G: 10, B: 16, A: 255},
		Dot:             color.RGBA{R: 148, G: 156, B: 168, A: 255},
		Accent:          color.RGBA{R: 255, G: 92, B: 48, A: 255},
	}
}

// Field renders frames of the noise field through an injected noise source.
type Field struct {
	noise  NoiseSource
	params Params
}

// New creates a field renderer over the given noise source.
func New(noise NoiseSource, params Params) *Field {
	return &Field{noise: noise, params: params}
}

// Params returns the current tuning.
func (f *Field) Params() Params {
	return f.params
}

// SetParams replaces the tuning. Takes effect on the next frame.
func (f *Field) SetParams(p Params) {
	f.params = p
}

// GridSize returns the cell counts for a surface: ceil(dim/spacing)+1 per
// axis, so the last row and column sit on or past the far edge.
func (f *Field) GridSize(width, height int) (cols, rows int) {
	spacing := float64(f.params.Spacing)
	cols = int(math.Ceil(float64(width)/spacing)) + 1
	rows = int(math.Ceil(float64(height)/spacing)) + 1
	return cols, rows
}

// RenderFrame paints one frame onto the canvas: a full clear, then one dot
// per grid cell in row-major order. t is the time coordinate fed to the
// noise; pointer is this frame's cursor state, read once by the caller.
//
// A non-positive width, height, or spacing returns ErrInvalidDimensions
// with zero paint operations. A canvas reporting an unavailable surface
// returns ErrSurfaceUnavailable, also with zero paint operations.
func (f *Field) RenderFrame(canvas Canvas, width, height int, t float64, pointer Pointer) error {
	p := f.params
	if width <= 0 || height <= 0 || p.Spacing <= 0 {
		return fmt.Errorf("%w: %dx%d at spacing %g", ErrInvalidDimensions, width, height, p.Spacing)
	}
	if sc, ok := canvas.(SurfaceChecker); ok && !sc.Available() {
		return ErrSurfaceUnavailable
	}

	canvas.Clear(width, height, p.Background)

	cols, rows := f.GridSize(width, height)
	for row := 0; row < rows; row++ {
		y := float32(row) * p.Spacing
		for col := 0; col < cols; col++ {
			x := float32(col) * p.Spacing

			prox := PointerProximity(pointer, x, y, p.InfluenceRadius)

			// Base field, one sample per cell. The turbulence octave is
			// only sampled inside the pointer's influence.
			n := f.noise.Noise3(float64(x)*p.Scale, float64(y)*p.Scale, t)
			if prox > 0 {
				turb := f.noise.Noise3(
					float64(x)*p.Scale*turbFrequency,
					float64(y)*p.Scale*turbFrequency,
					t*turbTimeSpeed,
				)
				n += turb * float64(prox) * turbGain
			}

			brightness := clamp01(float32(n+1) / 2)
			alpha := clamp01(brightness*p.AlphaBase + prox*prox*p.AlphaBoost)
			radius := p.RadiusBase + brightness*p.RadiusBright + prox*p.RadiusProx

			c := lerpColor(p.Dot, p.Accent, prox)
			c.A = uint8(alpha * 255)

			canvas.FillCircle(x, y, radius, c)
		}
	}

	return nil
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// lerpColor blends a toward b by t in [0, 1], leaving alpha to the caller.
func lerpColor(a, b color.RGBA, t float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(a.R) + (float32(b.R)-float32(a.R))*t),
		G: uint8(float32(a.G) + (float32(b.G)-float32(a.G))*t),
		B: uint8(float32(a.B) + (float32(b.B)-float32(a.B))*t),
		A: 255,
	}
}
