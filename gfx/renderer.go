package gfx

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// FrameSource drives an animation loop. It calls the registered callback once
// per presented frame with the elapsed time in milliseconds since the loop
// started. A nil callback unregisters.
type FrameSource interface {
	SetFrameCallback(fn func(elapsedMs float64))
}

// RendererOptions configures NewRenderer.
type RendererOptions struct {
	// Antialias smooths edges by rendering at twice the drawing-buffer
	// resolution and downsampling. Skipped when the pixel ratio is already 2
	// or higher.
	Antialias bool

	// Frames drives SetAnimationLoop. Without it, callers call Render themselves.
	Frames FrameSource
}

// RenderInfo counts work done by the renderer.
type RenderInfo struct {
	Frames    uint64
	Triangles int // drawn during the last frame
}

// Renderer is a software renderer drawing into its Canvas.
//
// Create it once and reuse it; buffers are reallocated only on resize.
type Renderer struct {
	antialias  bool
	frames     FrameSource
	pixelRatio float64

	width  int
	height int

	canvas *Canvas
	ss     *image.RGBA
	depth  []float32
	info   RenderInfo
}

func NewRenderer(opts RendererOptions) *Renderer {
	return &Renderer{
		antialias:  opts.Antialias,
		frames:     opts.Frames,
		pixelRatio: 1,
		width:      300,
		height:     150,
		canvas:     newCanvas(300, 150),
	}
}

func (r *Renderer) Canvas() *Canvas     { return r.canvas }
func (r *Renderer) Antialias() bool     { return r.antialias }
func (r *Renderer) PixelRatio() float64 { return r.pixelRatio }
func (r *Renderer) Info() RenderInfo    { return r.info }
func (r *Renderer) Size() (w, h int)    { return r.width, r.height }

// DrawingBufferSize returns the canvas size in device pixels.
func (r *Renderer) DrawingBufferSize() (w, h int) {
	return r.canvas.Width(), r.canvas.Height()
}

// SetPixelRatio sets the device-pixel to style-pixel ratio and resizes the canvas.
// Non-positive or non-finite ratios fall back to 1.
func (r *Renderer) SetPixelRatio(v float64) {
	if !(v > 0) || math.IsInf(v, 0) {
		v = 1
	}
	r.pixelRatio = v
	r.SetSize(r.width, r.height)
}

// SetSize resizes the output canvas to w x h style pixels.
func (r *Renderer) SetSize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	r.width, r.height = w, h
	bw := int(math.Floor(float64(w) * r.pixelRatio))
	bh := int(math.Floor(float64(h) * r.pixelRatio))
	r.canvas.resize(w, h, bw, bh)
}

// SetAnimationLoop registers fn to be called every frame. A nil fn stops the loop.
func (r *Renderer) SetAnimationLoop(fn func(elapsedMs float64)) {
	if r.frames == nil {
		return
	}
	if fn == nil {
		r.frames.SetFrameCallback(nil)
		return
	}
	r.frames.SetFrameCallback(fn)
}

func (r *Renderer) supersample() int {
	if r.antialias && r.pixelRatio < 2 {
		return 2
	}
	return 1
}

// Render draws the scene as seen through cam into the canvas.
func (r *Renderer) Render(s *Scene, cam *PerspectiveCamera) {
	if s == nil || cam == nil {
		return
	}
	dst := r.canvas.img
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	if w <= 0 || h <= 0 {
		return
	}

	target := dst
	if k := r.supersample(); k > 1 {
		if r.ss == nil || r.ss.Bounds().Dx() != w*k || r.ss.Bounds().Dy() != h*k {
			r.ss = image.NewRGBA(image.Rect(0, 0, w*k, h*k))
		}
		target = r.ss
	}

	r.info.Triangles = r.draw(target, s, cam)
	r.info.Frames++

	if target != dst {
		draw.BiLinear.Scale(dst, dst.Bounds(), target, target.Bounds(), draw.Src, nil)
	}
}
