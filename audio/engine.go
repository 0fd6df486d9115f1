// Package audio synthesizes the ambient drone and pointer plinks. All
// sound is generated at runtime, nothing is sampled from disk.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Engine owns the speaker, the looping mood drone, and one-shot plinks.
type Engine struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	drone       *DroneGenerator
	droneCtrl   *beep.Ctrl
	initialized bool
	paused      bool
	muted       bool

	// mood voicing, kept so Initialize can start with the right drone
	droneHz   float64
	intensity float64
}

// NewEngine creates an engine. Nothing plays until Initialize.
func NewEngine() *Engine {
	return &Engine{
		mixer:     &beep.Mixer{},
		droneHz:   55,
		intensity: 0.5,
	}
}

// Initialize opens the speaker and starts the drone loop.
func (e *Engine) Initialize() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("audio: opening speaker: %w", err)
	}

	e.drone = NewDroneGenerator(sampleRate, e.droneHz, e.intensity)
	e.droneCtrl = &beep.Ctrl{Streamer: e.drone}
	e.mixer.Add(e.droneCtrl)
	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// Cleanup silences everything. The speaker has no close, clearing the
// mixer is how playback ends.
func (e *Engine) Cleanup() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	speaker.Lock()
	if e.droneCtrl != nil {
		e.droneCtrl.Paused = true
	}
	e.mixer.Clear()
	speaker.Unlock()

	e.initialized = false
}

// SetMood retargets the drone to a mood's base frequency and intensity.
// The drone glides there, it never jumps.
func (e *Engine) SetMood(droneHz, intensity float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.droneHz = droneHz
	e.intensity = intensity
	if !e.initialized {
		return
	}

	speaker.Lock()
	e.drone.Retarget(droneHz, intensity)
	speaker.Unlock()
}

// SetActivity feeds pointer activity, 0 to 1, into the drone's shimmer
// voice.
func (e *Engine) SetActivity(level float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	speaker.Lock()
	e.drone.SetActivity(level)
	speaker.Unlock()
}

// SetPaused halts or resumes the drone alongside the scene clock.
func (e *Engine) SetPaused(paused bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.paused == paused {
		return
	}
	e.paused = paused
	e.applyDroneState()
}

// ToggleMute flips the mute flag and returns the new state. Mute also
// suppresses plinks.
func (e *Engine) ToggleMute() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.muted = !e.muted
	e.applyDroneState()
	return e.muted
}

// Muted reports whether audio is muted.
func (e *Engine) Muted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.muted
}

// Plink plays a short struck tone at the given frequency.
func (e *Engine) Plink(freq float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized || e.muted || e.paused {
		return
	}

	streamer := beep.Take(sampleRate.N(time.Millisecond*450), NewPlinkGenerator(sampleRate, freq))
	speaker.Lock()
	e.mixer.Add(streamer)
	speaker.Unlock()
}

// applyDroneState syncs the drone ctrl with pause and mute. Callers hold
// e.mu.
func (e *Engine) applyDroneState() {
	if !e.initialized || e.droneCtrl == nil {
		return
	}
	speaker.Lock()
	e.droneCtrl.Paused = e.paused || e.muted
	speaker.Unlock()
}
