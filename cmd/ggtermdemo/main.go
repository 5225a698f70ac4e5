// Command ggtermdemo renders a scripted terminal cursor session offscreen
// and writes the last frame as a PNG.
//
// Usage:
//
//	ggtermdemo -script moves.yaml -out cursor.png -frames 30
//
// Without -script a built-in session is rendered. The script is YAML; see
// default.yaml for the format.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/ggterm"
	"github.com/gogpu/ggterm/render"
	"github.com/gogpu/ggterm/text"
	"github.com/gogpu/gputypes"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	var (
		scriptPath = flag.String("script", "", "YAML cursor script (default: built-in)")
		output     = flag.String("out", "cursor.png", "output PNG file")
		frames     = flag.Int("frames", 0, "frames to render (default: the script's length)")
		backend    = flag.String("backend", "auto", "GPU backend: auto, vulkan or noop")
		verbose    = flag.Bool("v", false, "log per-frame diagnostics")
	)
	flag.Parse()

	if *verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	ggterm.SetLogger(logger)

	if err := run(*scriptPath, *output, *frames, *backend); err != nil {
		log.Fatalf("ggtermdemo: %v", err)
	}
}

func run(scriptPath, output string, frames int, backendName string) error {
	script, err := loadScript(scriptPath)
	if err != nil {
		return err
	}
	if frames <= 0 {
		frames = script.TotalFrames()
	}

	face, err := text.LoadGoMono(script.FontSize)
	if err != nil {
		return err
	}
	sizing := text.Sizing(face, script.Columns, script.Rows, script.Padding.X, script.Padding.Y)
	metrics := face.Metrics()

	dev, err := openDevice(backendName)
	if err != nil {
		return err
	}
	defer dev.Close()
	logger.Info("device opened", "name", dev.name, "headless", dev.headless)

	provider := render.NewHALDevice(dev.device, dev.queue, gputypes.TextureFormatRGBA8Unorm)
	opts := []render.Option{render.WithLabel("ggtermdemo")}
	if script.Thickness > 0 {
		opts = append(opts, render.WithThickness(script.Thickness))
	}
	renderer, err := render.NewFromProvider(provider, render.DefaultShader(), opts...)
	if err != nil {
		return err
	}
	defer renderer.Release()

	target, err := renderer.NewOffscreenTarget(uint32(sizing.Width), uint32(sizing.Height))
	if err != nil {
		return err
	}
	defer target.Destroy()

	background := ggterm.MustHex(script.Background)
	var decorations ggterm.DrawList

	for i, st := range script.steps(frames, text.Cursor) {
		decorations.Reset()
		for _, u := range script.Underlines {
			decorations.AddUnderline(sizing, metrics, u.Column, u.Row, u.Length, ggterm.MustHex(u.Color))
		}
		decorations.AddVisualBell(sizing, st.bellColor, st.bell)

		if err := target.Clear(background); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		cursor := st.cursor
		err := renderer.RenderFrame(target.View(), render.Frame{
			Sizing:      sizing,
			Metrics:     metrics,
			Cursor:      &cursor,
			Decorations: decorations.Quads(),
		})
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}

	stats := renderer.Stats()
	logger.Info("frames rendered", "frames", stats.Frames, "draw_calls", stats.DrawCalls, "last_vertices", stats.LastVertexCount)

	if dev.headless {
		logger.Warn("noop backend produces no pixels, skipping PNG", "out", output)
		return nil
	}
	img, err := target.Readback()
	if err != nil {
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Printf("Cursor frame saved to %s (%dx%d)\n", output, img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}
