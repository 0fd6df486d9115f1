package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/emberfield/field"
	"github.com/pthm-cable/emberfield/telemetry"
	"github.com/pthm-cable/emberfield/theme"
)

// activityFullSpeed is the pointer speed in pixels per second that counts
// as full agitation for the drone.
const activityFullSpeed = 600.0

// Update advances one frame: input, the scene clock, the mood crossfade,
// sparks, and audio targets. Drawing happens in Draw.
func (a *App) Update() {
	a.perf.StartFrame()

	a.perf.StartPhase(telemetry.PhaseInput)
	a.handleInput()
	a.framePointer = a.pointer.Load()

	dt := float64(rl.GetFrameTime())
	a.scene.Advance(dt)
	a.advanceMoodFade(dt)

	a.perf.StartPhase(telemetry.PhaseSparks)
	if !a.scene.Paused() {
		a.sparks.Update(float32(dt))
	}
	a.sparkDraws = a.sparks.Snapshot(a.sparkDraws)

	a.perf.StartPhase(telemetry.PhaseAudio)
	a.stepActivity(a.framePointer, dt)

	a.frameCount++
}

// cycleMood starts an eased crossfade from the current palette to the
// next mood.
func (a *App) cycleMood() {
	a.moodFrom = a.mood
	a.moodTarget = a.moods.Cycle()
	a.moodFadeT = 0
	a.moodFading = a.moodFadeDur > 0
	if !a.moodFading {
		a.mood = a.moodTarget
		a.applyMood(a.mood)
	}
}

// advanceMoodFade eases the palette and the drone toward the target mood.
// The fade runs on wall time, so a paused scene still crossfades.
func (a *App) advanceMoodFade(dt float64) {
	if !a.moodFading {
		return
	}

	a.moodFadeT += dt
	t := a.moodFadeT / a.moodFadeDur
	if t >= 1 {
		a.moodFading = false
		a.mood = a.moodTarget
	} else {
		e := t * t * (3 - 2*t)
		a.mood = theme.Blend(a.moodFrom, a.moodTarget, float32(e))
	}
	a.applyMood(a.mood)
}

// applyMood pushes a mood's palette into the field and its voice into
// the drone.
func (a *App) applyMood(m theme.Mood) {
	p := a.field.Params()
	p.Background = m.Background
	p.Dot = m.Dot
	p.Accent = m.Accent
	a.field.SetParams(p)

	a.audio.SetMood(m.DroneHz, m.Intensity)
}

// stepActivity maps pointer speed to the drone's agitation target.
func (a *App) stepActivity(p field.Pointer, dt float64) {
	level := 0.0
	if p.Present && a.prevPointer.Present && dt > 0 {
		dx := float64(p.X - a.prevPointer.X)
		dy := float64(p.Y - a.prevPointer.Y)
		speed := math.Sqrt(dx*dx+dy*dy) / dt
		level = min(speed/activityFullSpeed, 1)
	}
	a.prevPointer = p
	a.audio.SetActivity(level)
}
