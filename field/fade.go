package field

import "image/color"

// FadeCanvas scales the alpha of every dot drawn through it. The clear
// color passes through untouched so the background holds while the
// dots fade in.
type FadeCanvas struct {
	Inner Canvas
	Alpha float32
}

func (c *FadeCanvas) Clear(width, height int, col color.RGBA) {
	c.Inner.Clear(width, height, col)
}

func (c *FadeCanvas) FillCircle(x, y, radius float32, col color.RGBA) {
	a := c.Alpha
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	col.A = uint8(float32(col.A) * a)
	c.Inner.FillCircle(x, y, radius, col)
}

// Available defers to the inner canvas when it reports surface state.
func (c *FadeCanvas) Available() bool {
	if sc, ok := c.Inner.(SurfaceChecker); ok {
		return sc.Available()
	}
	return true
}
