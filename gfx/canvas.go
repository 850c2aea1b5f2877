package gfx

import "image"

// Canvas is the renderer's drawing surface.
//
// The drawing buffer is the style (CSS) size scaled by the renderer's pixel ratio.
type Canvas struct {
	img    *image.RGBA
	styleW int
	styleH int
}

func newCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.resize(w, h, w, h)
	return c
}

// NodeName identifies the canvas to hosts.
func (c *Canvas) NodeName() string { return "canvas" }

// Image returns the drawing buffer. Hosts present it as-is.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Width() int  { return c.img.Bounds().Dx() }
func (c *Canvas) Height() int { return c.img.Bounds().Dy() }

// StyleSize returns the size the host lays the canvas out at.
func (c *Canvas) StyleSize() (w, h int) { return c.styleW, c.styleH }

func (c *Canvas) resize(styleW, styleH, bufW, bufH int) {
	c.styleW, c.styleH = styleW, styleH
	if c.img != nil && c.img.Bounds().Dx() == bufW && c.img.Bounds().Dy() == bufH {
		return
	}
	c.img = image.NewRGBA(image.Rect(0, 0, bufW, bufH))
}
