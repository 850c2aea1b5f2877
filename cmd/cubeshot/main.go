// Command cubeshot renders one frame of the scene without a window and writes it as PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"cubescene/app"
	"cubescene/host"
)

func main() {
	var (
		out    = flag.String("o", "cube.png", "output PNG path")
		width  = flag.Int("width", 800, "container width in pixels")
		height = flag.Int("height", 600, "container height in pixels")
		at     = flag.Float64("at", 0, "elapsed time of the frame in milliseconds")
		dpr    = flag.Float64("dpr", 1, "device pixel ratio")
		hud    = flag.Bool("hud", false, "draw the status overlay")
	)
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.InfoLevel)

	img, err := shoot(host.HeadlessConfig{Width: *width, Height: *height, DevicePixelRatio: *dpr}, *at, *hud)
	if err != nil {
		log.Fatal().Err(err).Msg("render")
	}
	if err := writePNG(*out, img); err != nil {
		log.Fatal().Err(err).Msg("write")
	}
	log.Info().Str("path", *out).Int("width", img.Bounds().Dx()).Int("height", img.Bounds().Dy()).Msg("wrote frame")
}

// shoot mounts the scene into a headless host and renders one frame at ms.
func shoot(cfg host.HeadlessConfig, ms float64, hud bool) (*image.RGBA, error) {
	if ms < 0 {
		return nil, fmt.Errorf("elapsed time must be >= 0, got %v", ms)
	}
	h := host.NewHeadless(cfg)
	a, err := app.New(h, app.WithHUD(hud))
	if err != nil {
		return nil, err
	}
	h.StepAt(ms)
	return a.Renderer().Canvas().Image(), nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open %q: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %q: %w", path, err)
	}
	return f.Close()
}
