package raster

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/pthm-cable/emberfield/field"
	"github.com/pthm-cable/emberfield/noise"
)

func TestClearFillsSurface(t *testing.T) {
	c := NewCanvas()
	bg := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	c.Clear(16, 8, bg)

	img := c.Image()
	if img.Rect.Dx() != 16 || img.Rect.Dy() != 8 {
		t.Fatalf("expected 16x8 image, got %dx%d", img.Rect.Dx(), img.Rect.Dy())
	}

	corners := [][2]int{{0, 0}, {15, 0}, {0, 7}, {15, 7}}
	for _, p := range corners {
		if got := img.RGBAAt(p[0], p[1]); got != bg {
			t.Errorf("pixel (%d, %d) = %v, want %v", p[0], p[1], got, bg)
		}
	}
}

func TestFillCircleCoverage(t *testing.T) {
	c := NewCanvas()
	c.Clear(40, 40, color.RGBA{A: 255})
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	c.FillCircle(20, 20, 5, white)

	img := c.Image()
	if got := img.RGBAAt(20, 20); got != white {
		t.Errorf("center pixel = %v, want %v", got, white)
	}
	// Well outside the radius stays background.
	if got := img.RGBAAt(30, 20); got.R != 0 {
		t.Errorf("pixel at distance 10 = %v, want untouched background", got)
	}
}

func TestFillCircleClipsToSurface(t *testing.T) {
	c := NewCanvas()
	c.Clear(10, 10, color.RGBA{A: 255})

	// Circles straddling every edge must not panic.
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	c.FillCircle(0, 0, 6, white)
	c.FillCircle(10, 10, 6, white)
	c.FillCircle(-3, 5, 6, white)
	c.FillCircle(5, 13, 6, white)

	if got := c.Image().RGBAAt(0, 0); got != white {
		t.Errorf("corner pixel = %v, want %v", got, white)
	}
}

func TestBlendSemiTransparent(t *testing.T) {
	c := NewCanvas()
	c.Clear(8, 8, color.RGBA{A: 255})

	// Half-opaque white over black lands near mid gray.
	c.FillCircle(4, 4, 3, color.RGBA{R: 255, G: 255, B: 255, A: 128})
	got := c.Image().RGBAAt(4, 4)
	if got.R < 125 || got.R > 131 {
		t.Errorf("blended pixel R = %d, want ~128", got.R)
	}
	if got.A != 255 {
		t.Errorf("blended pixel A = %d, want 255 over opaque background", got.A)
	}
}

func TestFrameBytesDeterministic(t *testing.T) {
	render := func() []byte {
		c := NewCanvas()
		f := field.New(noise.NewSimplex(), field.DefaultParams())
		if err := f.RenderFrame(c, 160, 120, 3.25, field.PointerAt(55, 40)); err != nil {
			t.Fatalf("RenderFrame: %v", err)
		}
		var buf bytes.Buffer
		if err := c.EncodePNG(&buf); err != nil {
			t.Fatalf("EncodePNG: %v", err)
		}
		return buf.Bytes()
	}

	a := render()
	b := render()
	if !bytes.Equal(a, b) {
		t.Error("identical frames encoded to different PNG bytes")
	}
}
