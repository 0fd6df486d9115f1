package audio

import (
	"math"

	"github.com/gopxl/beep"
	opensimplex "github.com/ojrac/opensimplex-go"
)

const (
	// glideSeconds is the time constant for frequency and gain easing.
	glideSeconds = 0.4

	// lfoSeed fixes the drone's wobble so playback is reproducible.
	lfoSeed = 11
)

// DroneGenerator streams an endless two-voice drone with a sub octave
// and a shimmer voice driven by pointer activity. A slow simplex LFO
// wobbles the detune and breathes the gain. Frequency and gain changes
// glide over glideSeconds so mood switches never click.
type DroneGenerator struct {
	sr  beep.SampleRate
	lfo opensimplex.Noise
	pos int

	freq       float64
	targetFreq float64
	gain       float64
	targetGain float64

	activity       float64
	targetActivity float64

	phase1   float64
	phase2   float64
	phaseSub float64
	phaseShm float64
}

// NewDroneGenerator creates a drone at the given base frequency.
// Intensity, 0 to 1, sets the resting gain.
func NewDroneGenerator(sr beep.SampleRate, freq, intensity float64) *DroneGenerator {
	g := &DroneGenerator{
		sr:  sr,
		lfo: opensimplex.New(lfoSeed),
	}
	g.freq = freq
	g.targetFreq = freq
	g.gain = intensityGain(intensity)
	g.targetGain = g.gain
	return g
}

// Retarget glides the drone toward a new base frequency and intensity.
func (g *DroneGenerator) Retarget(freq, intensity float64) {
	g.targetFreq = freq
	g.targetGain = intensityGain(intensity)
}

// SetActivity sets the shimmer level, clamped to [0, 1].
func (g *DroneGenerator) SetActivity(level float64) {
	g.targetActivity = math.Min(math.Max(level, 0), 1)
}

func (g *DroneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	const twoPi = 2 * math.Pi
	srF := float64(g.sr)
	glide := 1 / (glideSeconds * srF)

	for i := range samples {
		g.freq += (g.targetFreq - g.freq) * glide
		g.gain += (g.targetGain - g.gain) * glide
		g.activity += (g.targetActivity - g.activity) * glide

		t := float64(g.pos) / srF
		wobble := g.lfo.Eval2(t*0.11, 0)
		breath := 0.8 + 0.2*g.lfo.Eval2(t*0.05, 40)

		// Two voices straddle the base frequency by a wobbling detune.
		detune := 1.2 + 0.6*wobble
		g.phase1 = wrapPhase(g.phase1 + twoPi*(g.freq-detune/2)/srF)
		g.phase2 = wrapPhase(g.phase2 + twoPi*(g.freq+detune/2)/srF)
		g.phaseSub = wrapPhase(g.phaseSub + twoPi*(g.freq/2)/srF)
		g.phaseShm = wrapPhase(g.phaseShm + twoPi*(g.freq*4)/srF)

		v1 := math.Sin(g.phase1)
		v2 := math.Sin(g.phase2)
		sub := math.Sin(g.phaseSub)
		shimmer := math.Sin(g.phaseShm) * g.activity * 0.18

		amp := g.gain * breath
		samples[i][0] = amp * (0.60*v1 + 0.40*v2 + 0.35*sub + shimmer)
		samples[i][1] = amp * (0.40*v1 + 0.60*v2 + 0.35*sub + shimmer)
		g.pos++
	}
	return len(samples), true
}

func (g *DroneGenerator) Err() error {
	return nil
}

// PlinkGenerator streams a short struck tone for pointer clicks. It
// decays toward silence but never ends; wrap it in beep.Take.
type PlinkGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewPlinkGenerator creates a plink at the given frequency. Frequencies
// at or below zero fall back to 440 Hz.
func NewPlinkGenerator(sr beep.SampleRate, freq float64) *PlinkGenerator {
	if freq <= 0 {
		freq = 440
	}
	return &PlinkGenerator{sr: sr, freq: freq}
}

func (g *PlinkGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Fast attack, exponential decay, with a quiet second partial
		// that dies faster than the fundamental.
		attack := math.Min(t/0.004, 1)
		env := attack * math.Exp(-t*7)

		s := 0.20 * env * math.Sin(2*math.Pi*g.freq*t)
		s += 0.07 * env * env * math.Sin(2*math.Pi*g.freq*2.01*t)

		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *PlinkGenerator) Err() error {
	return nil
}

// intensityGain maps mood intensity to the drone's resting gain.
func intensityGain(intensity float64) float64 {
	intensity = math.Min(math.Max(intensity, 0), 1)
	return 0.12 + 0.14*intensity
}

func wrapPhase(p float64) float64 {
	if p >= 2*math.Pi {
		p -= 2 * math.Pi
	}
	return p
}
