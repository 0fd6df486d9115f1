package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error loading defaults: %v", err)
	}

	if cfg.Screen.Width != 1280 || cfg.Screen.Height != 720 {
		t.Errorf("expected 1280x720 default screen, got %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Field.Spacing != 22 {
		t.Errorf("expected default spacing 22, got %v", cfg.Field.Spacing)
	}
	if cfg.Field.TimeScale != 0.2 {
		t.Errorf("expected default time scale 0.2, got %v", cfg.Field.TimeScale)
	}
	if len(cfg.Derived.Moods) != 4 {
		t.Fatalf("expected 4 default moods, got %d", len(cfg.Derived.Moods))
	}
	if cfg.Derived.Moods[0].Name != "ember" {
		t.Errorf("expected first mood ember, got %s", cfg.Derived.Moods[0].Name)
	}

	want := color.RGBA{R: 12, G: 10, B: 16, A: 255}
	if cfg.Derived.FieldParams.Background != want {
		t.Errorf("expected field background %v, got %v", want, cfg.Derived.FieldParams.Background)
	}
	if cfg.Derived.FieldParams.Spacing != 22 {
		t.Errorf("expected derived spacing 22, got %v", cfg.Derived.FieldParams.Spacing)
	}
	if cfg.Derived.FieldParams.InfluenceRadius != 140 {
		t.Errorf("expected derived influence radius 140, got %v", cfg.Derived.FieldParams.InfluenceRadius)
	}
	if !cfg.Audio.Enabled {
		t.Error("expected audio enabled by default")
	}
}

func TestLoadOverridesMergeWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.yaml")
	overlay := []byte("field:\n  spacing: 30\nscreen:\n  width: 640\n")
	if err := os.WriteFile(path, overlay, 0644); err != nil {
		t.Fatalf("writing overlay: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Field.Spacing != 30 {
		t.Errorf("expected overridden spacing 30, got %v", cfg.Field.Spacing)
	}
	if cfg.Screen.Width != 640 {
		t.Errorf("expected overridden width 640, got %d", cfg.Screen.Width)
	}
	// Fields absent from the overlay keep their defaults.
	if cfg.Screen.Height != 720 {
		t.Errorf("expected default height 720, got %d", cfg.Screen.Height)
	}
	if cfg.Field.Scale != 0.012 {
		t.Errorf("expected default scale 0.012, got %v", cfg.Field.Scale)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadBadMoodColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	overlay := []byte("moods:\n  - name: broken\n    background: \"zzz\"\n    dot: \"#000000\"\n    accent: \"#ffffff\"\n")
	if err := os.WriteFile(path, overlay, 0644); err != nil {
		t.Fatalf("writing overlay: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for unparseable mood color")
	}
}

func TestComputeDerivedSynthesizesMood(t *testing.T) {
	cfg := &Config{}
	if err := cfg.computeDerived(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cfg.Derived.Moods) != 1 {
		t.Fatalf("expected one synthesized mood, got %d", len(cfg.Derived.Moods))
	}
	if cfg.Derived.Moods[0].Name != "ember" {
		t.Errorf("expected synthesized ember mood, got %s", cfg.Derived.Moods[0].Name)
	}
	if cfg.Telemetry.StatsWindow != 120 {
		t.Errorf("expected stats window default 120, got %d", cfg.Telemetry.StatsWindow)
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected reload error: %v", err)
	}
	if back.Field.Spacing != cfg.Field.Spacing {
		t.Errorf("expected spacing to survive roundtrip, got %v", back.Field.Spacing)
	}
	if len(back.Derived.Moods) != len(cfg.Derived.Moods) {
		t.Errorf("expected %d moods after roundtrip, got %d", len(cfg.Derived.Moods), len(back.Derived.Moods))
	}
}
