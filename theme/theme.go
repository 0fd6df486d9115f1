// Package theme defines the mood palettes that color the field. A mood
// supplies the background, dot, and accent colors plus the ambient drone
// character; the field itself has no fixed hues.
package theme

import (
	"fmt"
	"image/color"
	"strconv"
)

// Mood is one selectable palette.
type Mood struct {
	Name       string
	Background color.RGBA
	Dot        color.RGBA
	Accent     color.RGBA

	// DroneHz is the ambient drone's base frequency for this mood.
	DroneHz float64

	// Intensity biases the drone gain, 0 to 1.
	Intensity float64
}

// Set is an ordered collection of moods with a cycling cursor.
type Set struct {
	moods []Mood
	index int
}

// NewSet creates a mood set. At least one mood is required.
func NewSet(moods []Mood) (*Set, error) {
	if len(moods) == 0 {
		return nil, fmt.Errorf("theme: no moods defined")
	}
	return &Set{moods: moods}, nil
}

// Current returns the active mood.
func (s *Set) Current() Mood {
	return s.moods[s.index]
}

// Cycle advances to the next mood, wrapping, and returns it.
func (s *Set) Cycle() Mood {
	s.index = (s.index + 1) % len(s.moods)
	return s.moods[s.index]
}

// Len returns the number of moods.
func (s *Set) Len() int {
	return len(s.moods)
}

// Index returns the active mood's position in the cycle.
func (s *Set) Index() int {
	return s.index
}

// Moods returns the full mood list in cycle order.
func (s *Set) Moods() []Mood {
	return s.moods
}

// Blend interpolates two moods by t in [0, 1]. Used for the short
// crossfade when cycling; non-color fields follow linearly.
func Blend(a, b Mood, t float32) Mood {
	return Mood{
		Name:       b.Name,
		Background: LerpColor(a.Background, b.Background, t),
		Dot:        LerpColor(a.Dot, b.Dot, t),
		Accent:     LerpColor(a.Accent, b.Accent, t),
		DroneHz:    a.DroneHz + (b.DroneHz-a.DroneHz)*float64(t),
		Intensity:  a.Intensity + (b.Intensity-a.Intensity)*float64(t),
	}
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa" into an RGBA color.
func ParseHexColor(s string) (color.RGBA, error) {
	if len(s) == 0 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("theme: color %q must start with '#'", s)
	}
	hex := s[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("theme: color %q must be #rrggbb or #rrggbbaa", s)
	}

	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("theme: parsing color %q: %w", s, err)
	}

	c := color.RGBA{A: 255}
	if len(hex) == 8 {
		c.A = uint8(v)
		v >>= 8
	}
	c.B = uint8(v)
	c.G = uint8(v >> 8)
	c.R = uint8(v >> 16)
	return c, nil
}

// LerpColor interpolates two colors by t in [0, 1].
func LerpColor(a, b color.RGBA, t float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(a.R) + (float32(b.R)-float32(a.R))*t),
		G: uint8(float32(a.G) + (float32(b.G)-float32(a.G))*t),
		B: uint8(float32(a.B) + (float32(b.B)-float32(a.B))*t),
		A: uint8(float32(a.A) + (float32(b.A)-float32(a.A))*t),
	}
}
