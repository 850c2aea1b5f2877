package gfx

import "image/color"

// Color is a linear RGB color with channels in 0..1.
type Color struct {
	R, G, B float32
}

// Hex returns the color for a 0xRRGGBB value.
func Hex(v uint32) Color {
	return Color{
		R: float32((v>>16)&0xFF) / 255,
		G: float32((v>>8)&0xFF) / 255,
		B: float32(v&0xFF) / 255,
	}
}

// Hex returns the color as 0xRRGGBB, clamping each channel.
func (c Color) Hex() uint32 {
	rgba := c.ToRGBA()
	return uint32(rgba.R)<<16 | uint32(rgba.G)<<8 | uint32(rgba.B)
}

func (c Color) Add(o Color) Color     { return Color{c.R + o.R, c.G + o.G, c.B + o.B} }
func (c Color) Mul(o Color) Color     { return Color{c.R * o.R, c.G * o.G, c.B * o.B} }
func (c Color) Scale(s float32) Color { return Color{c.R * s, c.G * s, c.B * s} }

// ToRGBA converts to an opaque 8-bit color.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{R: channel8(c.R), G: channel8(c.G), B: channel8(c.B), A: 0xFF}
}

func channel8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xFF
	}
	return uint8(v*255 + 0.5)
}
