// Package raster is a software canvas for headless rendering. Frames are
// rasterized into an image.RGBA with pure integer blending, so identical
// paint sequences produce byte-identical images on every platform.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
)

// Canvas rasterizes field paint operations into an RGBA image.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas creates a canvas. The backing image is allocated on the first
// Clear, sized to the frame dimensions.
func NewCanvas() *Canvas {
	return &Canvas{}
}

// Clear fills the whole surface with the given color, reallocating when
// the frame size changes.
func (c *Canvas) Clear(width, height int, col color.RGBA) {
	if c.img == nil || c.img.Rect.Dx() != width || c.img.Rect.Dy() != height {
		c.img = image.NewRGBA(image.Rect(0, 0, width, height))
	}

	// Fill the first row, then replicate it.
	row := c.img.Pix[:width*4]
	for x := 0; x < width; x++ {
		i := x * 4
		row[i+0] = col.R
		row[i+1] = col.G
		row[i+2] = col.B
		row[i+3] = col.A
	}
	for y := 1; y < height; y++ {
		copy(c.img.Pix[y*c.img.Stride:y*c.img.Stride+width*4], row)
	}
}

// FillCircle paints a filled circle with source-over blending. A pixel is
// covered when its center lies within the radius.
func (c *Canvas) FillCircle(x, y, radius float32, col color.RGBA) {
	if c.img == nil || radius <= 0 || col.A == 0 {
		return
	}

	cx := float64(x)
	cy := float64(y)
	r := float64(radius)
	r2 := r * r

	yMin := int(math.Floor(cy - r))
	yMax := int(math.Ceil(cy + r))
	for py := yMin; py <= yMax; py++ {
		dy := float64(py) + 0.5 - cy
		rem := r2 - dy*dy
		if rem < 0 {
			continue
		}
		half := math.Sqrt(rem)
		xMin := int(math.Ceil(cx - half - 0.5))
		xMax := int(math.Floor(cx + half - 0.5))
		for px := xMin; px <= xMax; px++ {
			c.blendPixel(px, py, col)
		}
	}
}

// blendPixel applies source-over blending at (px, py), ignoring pixels
// outside the surface.
func (c *Canvas) blendPixel(px, py int, col color.RGBA) {
	if px < 0 || py < 0 || px >= c.img.Rect.Dx() || py >= c.img.Rect.Dy() {
		return
	}

	i := c.img.PixOffset(px, py)
	pix := c.img.Pix[i : i+4 : i+4]

	a := uint32(col.A)
	inv := 255 - a
	pix[0] = uint8((uint32(col.R)*a + uint32(pix[0])*inv + 127) / 255)
	pix[1] = uint8((uint32(col.G)*a + uint32(pix[1])*inv + 127) / 255)
	pix[2] = uint8((uint32(col.B)*a + uint32(pix[2])*inv + 127) / 255)
	pix[3] = uint8((a*255 + uint32(pix[3])*inv + 127) / 255)
}

// Image returns the backing image, or nil before the first Clear.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// EncodePNG writes the current frame as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if c.img == nil {
		return fmt.Errorf("raster: no frame rendered")
	}
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// WritePNG saves the current frame as a PNG file.
func (c *Canvas) WritePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating png file: %w", err)
	}
	defer f.Close()

	if err := c.EncodePNG(f); err != nil {
		return err
	}
	return nil
}
