package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"cubescene/app"
	"cubescene/host"
	"cubescene/internal/buildinfo"
	"cubescene/internal/config"
)

func main() {
	var (
		configPath = flag.String("config", "config.yaml", "path to config.yaml (optional)")
		headless   = flag.Bool("headless", false, "run without a window")
		hz         = flag.Int("hz", 60, "frame rate in headless mode")
		frames     = flag.Uint64("frames", 0, "stop after N frames in headless mode (0 = run forever)")
		width      = flag.Int("width", 800, "container width in pixels")
		height     = flag.Int("height", 600, "container height in pixels")
		hud        = flag.Bool("hud", false, "draw a status overlay")
		logLevel   = flag.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg := config.Default()
	if c, err := config.Load(*configPath); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Fatal().Err(err).Str("path", *configPath).Msg("config")
		}
		log.Debug().Str("path", *configPath).Msg("no config file; using defaults")
	} else {
		cfg = c
	}

	// Flags given explicitly win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "headless":
			cfg.Headless.Enabled = *headless
		case "hz":
			cfg.Headless.Hz = *hz
		case "frames":
			cfg.Headless.Frames = *frames
		case "width":
			cfg.Window.Width = *width
		case "height":
			cfg.Window.Height = *height
		case "hud":
			cfg.HUD = *hud
		case "log-level":
			cfg.Log.Level = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	lvl, _ := cfg.Log.ZerologLevel()
	if !cfg.Log.Console {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
	log.Logger = log.Logger.Level(lvl)
	log.Info().Str("build", buildinfo.String()).Bool("headless", cfg.Headless.Enabled).Msg("starting")

	mount := func(env host.Env) error {
		_, err := app.New(env,
			app.WithLogger(log.Logger.With().Str("component", "app").Logger()),
			app.WithContainerID(cfg.Container),
			app.WithHUD(cfg.HUD),
		)
		return err
	}

	var err error
	if cfg.Headless.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		err = host.RunHeadless(ctx, host.HeadlessConfig{
			Hz:               cfg.Headless.Hz,
			Frames:           cfg.Headless.Frames,
			Width:            cfg.Window.Width,
			Height:           cfg.Window.Height,
			DevicePixelRatio: cfg.Headless.DevicePixelRatio,
			ContainerID:      cfg.Container,
		}, mount)
		if errors.Is(err, context.Canceled) {
			log.Info().Msg("shutting down")
			return
		}
	} else {
		err = host.RunWindow(host.WindowConfig{
			Title:       buildinfo.Title(cfg.Window.Title),
			Width:       cfg.Window.Width,
			Height:      cfg.Window.Height,
			Resizable:   cfg.Window.Resizable,
			TPS:         cfg.Window.TPS,
			ContainerID: cfg.Container,
		}, mount)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("scene stopped")
	}
}
