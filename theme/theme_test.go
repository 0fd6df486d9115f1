package theme

import (
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    color.RGBA
		wantErr bool
	}{
		{"opaque", "#ff5c30", color.RGBA{R: 255, G: 92, B: 48, A: 255}, false},
		{"with alpha", "#10203040", color.RGBA{R: 16, G: 32, B: 48, A: 64}, false},
		{"black", "#000000", color.RGBA{A: 255}, false},
		{"white", "#ffffff", color.RGBA{R: 255, G: 255, B: 255, A: 255}, false},
		{"missing hash", "ff5c30", color.RGBA{}, true},
		{"too short", "#fff", color.RGBA{}, true},
		{"not hex", "#zzzzzz", color.RGBA{}, true},
		{"empty", "", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHexColor(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q, got none", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSetCycleWraps(t *testing.T) {
	set, err := NewSet([]Mood{
		{Name: "ember"},
		{Name: "drift"},
		{Name: "mint"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if set.Current().Name != "ember" {
		t.Errorf("expected initial mood ember, got %s", set.Current().Name)
	}

	order := []string{"drift", "mint", "ember", "drift"}
	for _, want := range order {
		got := set.Cycle()
		if got.Name != want {
			t.Errorf("expected cycle to reach %s, got %s", want, got.Name)
		}
	}
}

func TestNewSetRejectsEmpty(t *testing.T) {
	if _, err := NewSet(nil); err == nil {
		t.Error("expected error for empty mood set, got none")
	}
}

func TestBlendEndpoints(t *testing.T) {
	a := Mood{
		Name:       "ember",
		Background: color.RGBA{R: 12, G: 10, B: 16, A: 255},
		Accent:     color.RGBA{R: 255, G: 92, B: 48, A: 255},
		DroneHz:    55,
		Intensity:  0.6,
	}
	b := Mood{
		Name:       "drift",
		Background: color.RGBA{R: 8, G: 14, B: 24, A: 255},
		Accent:     color.RGBA{R: 92, G: 164, B: 255, A: 255},
		DroneHz:    41.2,
		Intensity:  0.4,
	}

	start := Blend(a, b, 0)
	if start.Background != a.Background || start.Accent != a.Accent {
		t.Errorf("expected blend at 0 to match first mood, got %+v", start)
	}
	if start.DroneHz != a.DroneHz {
		t.Errorf("expected drone %v at 0, got %v", a.DroneHz, start.DroneHz)
	}

	end := Blend(a, b, 1)
	if end.Background != b.Background || end.Accent != b.Accent {
		t.Errorf("expected blend at 1 to match second mood, got %+v", end)
	}
	if end.DroneHz != b.DroneHz {
		t.Errorf("expected drone %v at 1, got %v", b.DroneHz, end.DroneHz)
	}
	if end.Name != "drift" {
		t.Errorf("expected blend to carry target name, got %s", end.Name)
	}
}

func TestBlendMidpoint(t *testing.T) {
	a := Mood{Accent: color.RGBA{R: 0, G: 100, B: 200, A: 255}, DroneHz: 40}
	b := Mood{Accent: color.RGBA{R: 100, G: 200, B: 100, A: 255}, DroneHz: 60}

	mid := Blend(a, b, 0.5)
	if mid.Accent.R != 50 || mid.Accent.G != 150 || mid.Accent.B != 150 {
		t.Errorf("expected midpoint accent {50 150 150}, got %v", mid.Accent)
	}
	if mid.DroneHz != 50 {
		t.Errorf("expected midpoint drone 50, got %v", mid.DroneHz)
	}
}
