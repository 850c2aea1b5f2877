//go:build cgo

package host

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a desktop window whose client area is the container
// element, mounts a scene into it and presents every image node appended to
// the container. It blocks until the window closes.
func RunWindow(cfg WindowConfig, mount func(Env) error) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, cfg.Width, cfg.Height)
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	if cfg.ContainerID == "" {
		cfg.ContainerID = DefaultContainerID
	}

	root := newContainer(cfg.ContainerID, cfg.Width, cfg.Height)
	e := &env{
		doc: newDocument(root),
		win: &window{dpr: ebiten.Monitor().DeviceScaleFactor()},
	}
	if err := mount(e); err != nil {
		return err
	}

	g := &hostGame{
		env:      e,
		root:     root,
		clock:    newFrameClock(time.Now),
		surfaces: make(map[Node]*ebiten.Image),
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(cfg.TPS)
	return ebiten.RunGame(g)
}

type hostGame struct {
	env      *env
	root     *container
	clock    *frameClock
	surfaces map[Node]*ebiten.Image
}

func (g *hostGame) Update() error {
	return nil
}

// Draw runs once per presented frame: it dispatches the frame callback, then
// presents the container's image nodes scaled to the screen.
func (g *hostGame) Draw(screen *ebiten.Image) {
	g.env.win.dispatchFrame(g.clock.Elapsed())

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	for _, n := range g.root.Children() {
		src, ok := n.(imageNode)
		if !ok {
			continue
		}
		img := src.Image()
		if img == nil || img.Bounds().Empty() {
			continue
		}
		w, h := img.Bounds().Dx(), img.Bounds().Dy()

		surf := g.surfaces[n]
		if surf == nil || surf.Bounds().Dx() != w || surf.Bounds().Dy() != h {
			if surf != nil {
				surf.Deallocate()
			}
			surf = ebiten.NewImage(w, h)
			g.surfaces[n] = surf
		}
		surf.WritePixels(img.Pix)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(sw)/float64(w), float64(sh)/float64(h))
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(surf, op)
	}
}

// Layout tracks the window's client size. A change resizes the container and
// dispatches a resize event before the next frame.
func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if dpr := ebiten.Monitor().DeviceScaleFactor(); dpr > 0 {
		g.env.win.dpr = dpr
	}
	if g.root.setSize(outsideWidth, outsideHeight) {
		g.env.win.dispatchResize()
	}
	w := int(float64(outsideWidth) * g.env.win.dpr)
	h := int(float64(outsideHeight) * g.env.win.dpr)
	return max(w, 1), max(h, 1)
}
