// Package components defines ECS components for spark entities.
package components

// Position is a screen-space location in pixels.
type Position struct {
	X, Y float32
}

// Velocity is a screen-space velocity in pixels per second.
type Velocity struct {
	X, Y float32
}

// Spark is a short-lived glow thrown off by a pointer click. Age runs
// from zero to Lifetime, both in seconds.
type Spark struct {
	Age      float32
	Lifetime float32
	Size     float32 // base radius in pixels
	Warmth   float32 // 0 dot-colored, 1 accent-colored
}
