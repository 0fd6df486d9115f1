// Package app hosts the run loops around the field engine: scene phases,
// moods, audio, sparks, input, and telemetry. The windowed loop drives a
// raylib surface; the headless loop renders the same frames into a
// software canvas.
package app

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/emberfield/audio"
	"github.com/pthm-cable/emberfield/config"
	"github.com/pthm-cable/emberfield/field"
	"github.com/pthm-cable/emberfield/noise"
	"github.com/pthm-cable/emberfield/renderer"
	"github.com/pthm-cable/emberfield/scene"
	"github.com/pthm-cable/emberfield/systems"
	"github.com/pthm-cable/emberfield/telemetry"
	"github.com/pthm-cable/emberfield/theme"
	"github.com/pthm-cable/emberfield/ui"
)

// Version is shown on the about card.
const Version = "0.4.0"

// Options configures a run.
type Options struct {
	Seed      int64
	LogStats  bool
	OutputDir string
	Headless  bool
}

// App owns the engine and everything that feeds it.
type App struct {
	field   *field.Field
	pointer *field.Slot

	scene *scene.Scene
	moods *theme.Set

	// Mood crossfade state. mood is the currently applied palette,
	// possibly mid-fade between moodFrom and moodTarget.
	mood        theme.Mood
	moodFrom    theme.Mood
	moodTarget  theme.Mood
	moodFadeT   float64
	moodFadeDur float64
	moodFading  bool

	audio *audio.Engine

	world      *ecs.World
	sparks     *systems.SparkSystem
	sparkDraws []systems.SparkDraw

	perf     *telemetry.PerfCollector
	output   *telemetry.OutputManager
	logStats bool

	canvas    *renderer.RLCanvas
	sparksR   *renderer.SparkRenderer
	hud       *ui.HUD
	perfPanel *ui.PerfPanel
	menu      *ui.MenuPanel
	about     *ui.AboutPanel

	screenWidth  int
	screenHeight int

	// timeScale maps scene seconds to noise time units.
	timeScale float64

	showPerf   bool
	frameCount int64

	// framePointer is the Slot value for the frame in flight. The Slot is
	// loaded exactly once per frame; every consumer sees the same state.
	framePointer field.Pointer
	prevPointer  field.Pointer
}

// New assembles an app from the active configuration.
func New(opts Options) (*App, error) {
	cfg := config.Cfg()

	moods, err := theme.NewSet(cfg.Derived.Moods)
	if err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = cfg.Sparks.Seed
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	world := ecs.NewWorld()

	a := &App{
		field:   field.New(noise.NewSimplex(), cfg.Derived.FieldParams),
		pointer: &field.Slot{},

		scene: scene.New(cfg.Scene.BootSeconds, cfg.Scene.RevealSeconds),
		moods: moods,

		mood:        moods.Current(),
		moodTarget:  moods.Current(),
		moodFadeDur: cfg.Scene.MoodFadeSeconds,

		audio: audio.NewEngine(),

		world:  world,
		sparks: systems.NewSparkSystem(world, seed),

		perf:     telemetry.NewPerfCollector(cfg.Telemetry.StatsWindow),
		output:   output,
		logStats: opts.LogStats,

		canvas:    renderer.NewRLCanvas(),
		sparksR:   renderer.NewSparkRenderer(),
		hud:       ui.NewHUD(),
		perfPanel: ui.NewPerfPanel(0, 0),
		menu:      ui.NewMenuPanel(),
		about:     ui.NewAboutPanel(),

		screenWidth:  cfg.Screen.Width,
		screenHeight: cfg.Screen.Height,

		timeScale: cfg.Field.TimeScale,
	}

	if cfg.Audio.Enabled && !opts.Headless {
		if err := a.audio.Initialize(); err != nil {
			slog.Error("audio unavailable, running silent", "error", err)
		}
	}

	a.applyMood(a.mood)

	return a, nil
}

// Unload releases audio and closes telemetry outputs.
func (a *App) Unload() {
	a.audio.Cleanup()
	if err := a.output.Close(); err != nil {
		slog.Error("failed to close outputs", "error", err)
	}
}
