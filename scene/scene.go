// Package scene tracks presentation state: the boot/reveal/live phase
// sequence, overlay visibility, and the pause-aware animation clock that
// drives the field.
package scene

// Phase is the startup sequence position.
type Phase int

const (
	// PhaseBoot is the initial blank hold before anything is shown.
	PhaseBoot Phase = iota
	// PhaseReveal fades the field in.
	PhaseReveal
	// PhaseLive is the steady state.
	PhaseLive
)

func (p Phase) String() string {
	switch p {
	case PhaseBoot:
		return "boot"
	case PhaseReveal:
		return "reveal"
	case PhaseLive:
		return "live"
	}
	return "unknown"
}

// Overlay identifies the modal panel currently shown, if any.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayMenu
	OverlayAbout
)

func (o Overlay) String() string {
	switch o {
	case OverlayNone:
		return "none"
	case OverlayMenu:
		return "menu"
	case OverlayAbout:
		return "about"
	}
	return "unknown"
}

// Scene owns the animation clock and presentation state. Time only moves
// while the scene is running; user pause and window minimize both freeze
// it, and an open overlay locks pointer influence without stopping time.
type Scene struct {
	phase        Phase
	phaseElapsed float64

	bootDuration   float64
	revealDuration float64

	overlay Overlay

	time       float64
	userPaused bool
	hidden     bool
}

// New creates a scene at the start of the boot phase. Negative durations
// are treated as zero.
func New(bootDuration, revealDuration float64) *Scene {
	return &Scene{
		bootDuration:   max(bootDuration, 0),
		revealDuration: max(revealDuration, 0),
	}
}

// Advance moves the clock and phase sequence forward by dt seconds.
// It is a no-op while paused.
func (s *Scene) Advance(dt float64) {
	if s.Paused() || dt <= 0 {
		return
	}

	s.time += dt
	s.phaseElapsed += dt

	// Overshoot carries into the next phase so short frames and long
	// frames reach the same state for the same total time.
	if s.phase == PhaseBoot && s.phaseElapsed >= s.bootDuration {
		s.phaseElapsed -= s.bootDuration
		s.phase = PhaseReveal
	}
	if s.phase == PhaseReveal && s.phaseElapsed >= s.revealDuration {
		s.phaseElapsed -= s.revealDuration
		s.phase = PhaseLive
	}
}

// Phase returns the current startup phase.
func (s *Scene) Phase() Phase {
	return s.phase
}

// Time returns the animation clock in seconds. Frozen while paused.
func (s *Scene) Time() float64 {
	return s.time
}

// RevealAlpha returns the global fade factor: 0 during boot, eased up
// through the reveal, 1 once live.
func (s *Scene) RevealAlpha() float32 {
	switch s.phase {
	case PhaseBoot:
		return 0
	case PhaseLive:
		return 1
	}
	if s.revealDuration <= 0 {
		return 1
	}
	t := s.phaseElapsed / s.revealDuration
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return float32(t * t * (3 - 2*t))
}

// TogglePause flips the user pause flag and returns the new paused state.
func (s *Scene) TogglePause() bool {
	s.userPaused = !s.userPaused
	return s.Paused()
}

// SetHidden records whether the window is minimized. A hidden window
// pauses the clock without touching the user's pause choice.
func (s *Scene) SetHidden(hidden bool) {
	s.hidden = hidden
}

// Paused reports whether the clock is frozen.
func (s *Scene) Paused() bool {
	return s.userPaused || s.hidden
}

// ToggleOverlay opens the given overlay, or closes it if it is already
// open. Opening one overlay replaces any other. Returns the new state.
func (s *Scene) ToggleOverlay(o Overlay) Overlay {
	if s.overlay == o {
		s.overlay = OverlayNone
	} else {
		s.overlay = o
	}
	return s.overlay
}

// CloseOverlay dismisses whatever overlay is open.
func (s *Scene) CloseOverlay() {
	s.overlay = OverlayNone
}

// Overlay returns the open overlay, or OverlayNone.
func (s *Scene) Overlay() Overlay {
	return s.overlay
}

// PointerLocked reports whether pointer influence should be withheld
// from the field. True whenever an overlay is open.
func (s *Scene) PointerLocked() bool {
	return s.overlay != OverlayNone
}
