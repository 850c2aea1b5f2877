package app

import (
	"github.com/rs/zerolog"

	"cubescene/host"
)

type options struct {
	log         zerolog.Logger
	containerID string
	hud         bool
}

func defaultOptions() options {
	return options{
		log:         zerolog.Nop(),
		containerID: host.DefaultContainerID,
	}
}

// Option configures New.
type Option func(*options)

func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithContainerID mounts into the element with the given id instead of "app".
func WithContainerID(id string) Option {
	return func(o *options) {
		if id != "" {
			o.containerID = id
		}
	}
}

// WithHUD draws a one-line status overlay after every frame.
func WithHUD(on bool) Option {
	return func(o *options) { o.hud = on }
}
