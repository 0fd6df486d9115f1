// Golden frame tool - renders one deterministic field frame to a PNG.
//
// The same parameters always produce the same image, so the output can
// be diffed against a checked-in golden file.
//
// Usage: go run ./cmd/goldenframe -width 1280 -height 720 -time 1.25 -out golden.png
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/pthm-cable/emberfield/field"
	"github.com/pthm-cable/emberfield/noise"
	"github.com/pthm-cable/emberfield/raster"
)

func main() {
	width := flag.Int("width", 1280, "Frame width in pixels")
	height := flag.Int("height", 720, "Frame height in pixels")
	spacing := flag.Float64("spacing", 22, "Pixels between grid dots")
	scale := flag.Float64("scale", 0.012, "Noise frequency per pixel")
	timeVal := flag.Float64("time", 1.25, "Noise time coordinate")
	pointerX := flag.Float64("pointer-x", -1, "Pointer x in pixels (negative = no pointer)")
	pointerY := flag.Float64("pointer-y", -1, "Pointer y in pixels (negative = no pointer)")
	out := flag.String("out", "golden.png", "Output PNG path")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	params := field.DefaultParams()
	params.Spacing = float32(*spacing)
	params.Scale = *scale

	var pointer field.Pointer
	if *pointerX >= 0 && *pointerY >= 0 {
		pointer = field.PointerAt(float32(*pointerX), float32(*pointerY))
	}

	f := field.New(noise.NewSimplex(), params)
	canvas := raster.NewCanvas()

	if err := f.RenderFrame(canvas, *width, *height, *timeVal, pointer); err != nil {
		slog.Error("frame render failed", "error", err)
		os.Exit(1)
	}

	if err := canvas.WritePNG(*out); err != nil {
		slog.Error("failed to write png", "error", err)
		os.Exit(1)
	}

	slog.Info("golden frame written",
		"path", *out,
		"width", *width,
		"height", *height,
		"time", *timeVal,
		"pointer_present", pointer.Present)
}
