package field

import "image/color"

// Canvas is the paint sink for a rendered frame. A frame is one Clear
// followed by one FillCircle per grid cell, in row-major cell order.
type Canvas interface {
	// Clear erases the full surface to the given color. No raster state
	// survives from the previous frame.
	Clear(width, height int, c color.RGBA)

	// FillCircle paints a filled circle centered at (x, y).
	FillCircle(x, y, radius float32, c color.RGBA)
}

// SurfaceChecker is implemented by canvases whose backing surface can go
// away (a minimized window, a lost context). RenderFrame skips the frame
// and reports ErrSurfaceUnavailable while Available returns false; painting
// resumes on the next frame once the surface is back.
type SurfaceChecker interface {
	Available() bool
}

// NoiseSource supplies the gradient noise the field is built from.
// Implementations must be pure: identical inputs, identical outputs.
type NoiseSource interface {
	Noise3(x, y, z float64) float64
}
