package host

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host.
type HeadlessConfig struct {
	Hz               int
	Frames           uint64 // stop after N frames (0 = run until ctx is done)
	Width            int
	Height           int
	DevicePixelRatio float64
	ContainerID      string
}

// Headless is a host without a window. Frames carry virtual time: frame n is
// stamped n*1000/Hz milliseconds, independent of wall-clock jitter.
type Headless struct {
	cfg   HeadlessConfig
	env   *env
	root  *container
	frame uint64
	last  float64
}

func NewHeadless(cfg HeadlessConfig) *Headless {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}
	if !(cfg.DevicePixelRatio > 0) {
		cfg.DevicePixelRatio = 1
	}
	if cfg.ContainerID == "" {
		cfg.ContainerID = DefaultContainerID
	}
	root := newContainer(cfg.ContainerID, cfg.Width, cfg.Height)
	return &Headless{
		cfg:  cfg,
		root: root,
		env:  &env{doc: newDocument(root), win: &window{dpr: cfg.DevicePixelRatio}},
	}
}

func (h *Headless) Document() Document { return h.env.doc }
func (h *Headless) Window() Window     { return h.env.win }

// Container returns the container element the headless document was created with.
func (h *Headless) Container() Element { return h.root }

// Frames returns the number of frames dispatched so far.
func (h *Headless) Frames() uint64 { return h.frame }

// Resize sets the container size and dispatches a resize event synchronously.
func (h *Headless) Resize(w, height int) {
	h.root.setSize(w, height)
	h.env.win.dispatchResize()
}

// Step dispatches the next frame at its virtual time.
func (h *Headless) Step() bool {
	return h.StepAt(float64(h.frame) * 1000 / float64(h.cfg.Hz))
}

// StepAt dispatches one frame stamped ms. Stamps earlier than the previous
// frame are raised to it so elapsed time stays monotonic.
func (h *Headless) StepAt(ms float64) bool {
	if ms < h.last {
		ms = h.last
	}
	h.last = ms
	h.frame++
	return h.env.win.dispatchFrame(ms)
}

// Run dispatches frames at cfg.Hz until ctx is done or the frame budget is spent.
func (h *Headless) Run(ctx context.Context) error {
	d := time.Second / time.Duration(h.cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("%w: hz %d", ErrInvalidConfig, h.cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	for {
		if h.cfg.Frames > 0 && h.frame >= h.cfg.Frames {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.Step()
		}
	}
}

// RunHeadless mounts a scene into a new headless host and runs it.
func RunHeadless(ctx context.Context, cfg HeadlessConfig, mount func(Env) error) error {
	h := NewHeadless(cfg)
	if err := mount(h); err != nil {
		return err
	}
	return h.Run(ctx)
}
