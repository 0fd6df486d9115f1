package scene

import (
	"math"
	"testing"
)

func TestPhaseSequence(t *testing.T) {
	s := New(0.5, 1.0)

	if s.Phase() != PhaseBoot {
		t.Fatalf("expected boot phase at start, got %s", s.Phase())
	}
	if s.RevealAlpha() != 0 {
		t.Errorf("expected alpha 0 during boot, got %v", s.RevealAlpha())
	}

	s.Advance(0.3)
	if s.Phase() != PhaseBoot {
		t.Errorf("expected boot at 0.3s, got %s", s.Phase())
	}

	s.Advance(0.3)
	if s.Phase() != PhaseReveal {
		t.Errorf("expected reveal at 0.6s, got %s", s.Phase())
	}

	s.Advance(1.0)
	if s.Phase() != PhaseLive {
		t.Errorf("expected live at 1.6s, got %s", s.Phase())
	}
	if s.RevealAlpha() != 1 {
		t.Errorf("expected alpha 1 once live, got %v", s.RevealAlpha())
	}
}

func TestPhaseOvershootCarries(t *testing.T) {
	// One long frame should land in the same state as many short ones.
	long := New(0.5, 1.0)
	long.Advance(2.0)

	short := New(0.5, 1.0)
	for i := 0; i < 20; i++ {
		short.Advance(0.1)
	}

	if long.Phase() != PhaseLive || short.Phase() != PhaseLive {
		t.Fatalf("expected both scenes live, got %s and %s", long.Phase(), short.Phase())
	}
	if math.Abs(long.Time()-short.Time()) > 1e-9 {
		t.Errorf("expected equal clocks, got %v and %v", long.Time(), short.Time())
	}
}

func TestRevealAlphaEases(t *testing.T) {
	s := New(0, 2.0)
	s.Advance(1e-9)
	if s.Phase() != PhaseReveal {
		t.Fatalf("expected reveal after boot of zero length, got %s", s.Phase())
	}

	prev := s.RevealAlpha()
	if prev < 0 || prev > 0.01 {
		t.Errorf("expected alpha near 0 at reveal start, got %v", prev)
	}

	for i := 0; i < 10; i++ {
		s.Advance(0.15)
		a := s.RevealAlpha()
		if a < prev {
			t.Errorf("expected alpha to be non-decreasing, got %v after %v", a, prev)
		}
		if a < 0 || a > 1 {
			t.Errorf("expected alpha in [0,1], got %v", a)
		}
		prev = a
	}
}

func TestZeroDurationsSkipToLive(t *testing.T) {
	s := New(0, 0)
	s.Advance(0.016)
	if s.Phase() != PhaseLive {
		t.Errorf("expected live after first frame with zero durations, got %s", s.Phase())
	}
}

func TestPauseFreezesClock(t *testing.T) {
	s := New(0, 0)
	s.Advance(1.0)
	base := s.Time()

	if paused := s.TogglePause(); !paused {
		t.Fatal("expected toggle to pause")
	}
	s.Advance(5.0)
	if s.Time() != base {
		t.Errorf("expected frozen clock at %v, got %v", base, s.Time())
	}

	if paused := s.TogglePause(); paused {
		t.Fatal("expected toggle to resume")
	}
	s.Advance(0.5)
	if s.Time() != base+0.5 {
		t.Errorf("expected clock %v after resume, got %v", base+0.5, s.Time())
	}
}

func TestHiddenWindowPausesWithoutClearingUserChoice(t *testing.T) {
	s := New(0, 0)

	s.SetHidden(true)
	s.Advance(1.0)
	if s.Time() != 0 {
		t.Errorf("expected frozen clock while hidden, got %v", s.Time())
	}

	// Restoring the window resumes because the user never paused.
	s.SetHidden(false)
	s.Advance(1.0)
	if s.Time() != 1.0 {
		t.Errorf("expected clock to resume at 1.0, got %v", s.Time())
	}

	// A user pause must survive a minimize/restore round trip.
	s.TogglePause()
	s.SetHidden(true)
	s.SetHidden(false)
	if !s.Paused() {
		t.Error("expected user pause to persist across hide/show")
	}
}

func TestOverlayToggleAndReplace(t *testing.T) {
	s := New(0, 0)

	if s.Overlay() != OverlayNone || s.PointerLocked() {
		t.Fatal("expected no overlay at start")
	}

	if got := s.ToggleOverlay(OverlayMenu); got != OverlayMenu {
		t.Errorf("expected menu to open, got %s", got)
	}
	if !s.PointerLocked() {
		t.Error("expected pointer lock while menu is open")
	}

	// Opening another overlay replaces the first.
	if got := s.ToggleOverlay(OverlayAbout); got != OverlayAbout {
		t.Errorf("expected about to replace menu, got %s", got)
	}

	// Toggling the open overlay closes it.
	if got := s.ToggleOverlay(OverlayAbout); got != OverlayNone {
		t.Errorf("expected about to close, got %s", got)
	}
	if s.PointerLocked() {
		t.Error("expected pointer unlock once overlays close")
	}

	s.ToggleOverlay(OverlayMenu)
	s.CloseOverlay()
	if s.Overlay() != OverlayNone {
		t.Errorf("expected close to clear overlay, got %s", s.Overlay())
	}
}

func TestOverlayDoesNotStopClock(t *testing.T) {
	s := New(0, 0)
	s.ToggleOverlay(OverlayMenu)
	s.Advance(0.25)
	if s.Time() != 0.25 {
		t.Errorf("expected clock to run under overlay, got %v", s.Time())
	}
}
