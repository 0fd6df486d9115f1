package field

import (
	"math"
	"sync/atomic"
)

// Pointer is a surface-local cursor position. The zero value is the absent
// sentinel: no pointer on the surface this frame.
type Pointer struct {
	X, Y    float32
	Present bool
}

// PointerAt returns a present pointer at the given surface coordinates.
func PointerAt(x, y float32) Pointer {
	return Pointer{X: x, Y: y, Present: true}
}

// Slot holds the most recent pointer state. Writers replace the whole
// value atomically, so a reader never observes an X from one update and a
// Y from another. The render loop loads it exactly once per frame.
type Slot struct {
	cur atomic.Pointer[Pointer]
}

// Store publishes a new pointer state.
func (s *Slot) Store(p Pointer) {
	if !p.Present {
		s.cur.Store(nil)
		return
	}
	v := p
	s.cur.Store(&v)
}

// Clear marks the pointer absent.
func (s *Slot) Clear() {
	s.cur.Store(nil)
}

// Load returns the latest pointer state.
func (s *Slot) Load() Pointer {
	if v := s.cur.Load(); v != nil {
		return *v
	}
	return Pointer{}
}

// PointerProximity returns the pointer influence at a cell position:
// 1 at zero distance, falling linearly to 0 at the influence radius and
// beyond. An influence radius of zero or less yields 0 everywhere.
func PointerProximity(p Pointer, x, y, influenceRadius float32) float32 {
	if !p.Present || influenceRadius <= 0 {
		return 0
	}
	dx := x - p.X
	dy := y - p.Y
	d := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	prox := 1 - d/influenceRadius
	if prox < 0 {
		return 0
	}
	return prox
}
