package app

import (
	"image"
	"image/color"
	"math"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"cubescene/internal/buildinfo"
)

const (
	hudBaseline = 7
	hudHeight   = 10
	hudPad      = 2
)

// hud writes a status line over the top-left corner of the frame.
type hud struct {
	font tinyfont.Fonter
	fg   color.RGBA
	bg   color.RGBA
}

func newHUD() *hud {
	return &hud{
		font: &tinyfont.TomThumb,
		fg:   color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		bg:   color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xFF},
	}
}

func (h *hud) draw(img *image.RGBA, status string) {
	d := canvasDisplay{img: img}
	w, ht := d.Size()
	if w <= 0 || ht < hudHeight {
		return
	}

	line := "cubescene " + buildinfo.Short() + " " + status
	_, outbox := tinyfont.LineWidth(h.font, line)
	stripW := min(int(outbox)+2*hudPad, int(w))
	for y := 0; y < hudHeight; y++ {
		for x := 0; x < stripW; x++ {
			img.SetRGBA(x, y, h.bg)
		}
	}
	tinyfont.WriteLine(d, h.font, hudPad, hudBaseline, line, h.fg)
}

var _ drivers.Displayer = canvasDisplay{}

// canvasDisplay lets tinyfont draw into a canvas image.
type canvasDisplay struct {
	img *image.RGBA
}

func (d canvasDisplay) Size() (x, y int16) {
	if d.img == nil {
		return 0, 0
	}
	b := d.img.Bounds()
	return int16(min(b.Dx(), math.MaxInt16)), int16(min(b.Dy(), math.MaxInt16))
}

func (d canvasDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.img == nil {
		return
	}
	if !(image.Point{X: int(x), Y: int(y)}.In(d.img.Bounds())) {
		return
	}
	d.img.SetRGBA(int(x), int(y), c)
}

func (d canvasDisplay) Display() error { return nil }
