package host

import "strings"

type container struct {
	id       string
	width    int
	height   int
	children []Node
}

func newContainer(id string, w, h int) *container {
	return &container{id: id, width: w, height: h}
}

func (c *container) ID() string        { return c.id }
func (c *container) ClientWidth() int  { return c.width }
func (c *container) ClientHeight() int { return c.height }

func (c *container) AppendChild(n Node) {
	if n == nil {
		return
	}
	c.children = append(c.children, n)
}

func (c *container) Children() []Node {
	out := make([]Node, len(c.children))
	copy(out, c.children)
	return out
}

// setSize reports whether the size changed.
func (c *container) setSize(w, h int) bool {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if c.width == w && c.height == h {
		return false
	}
	c.width, c.height = w, h
	return true
}

type document struct {
	elems map[string]*container
}

func newDocument(elems ...*container) *document {
	d := &document{elems: make(map[string]*container, len(elems))}
	for _, e := range elems {
		d.elems[e.id] = e
	}
	return d
}

func (d *document) QuerySelector(sel string) (Element, bool) {
	id, ok := strings.CutPrefix(sel, "#")
	if !ok || id == "" {
		return nil, false
	}
	el, ok := d.elems[id]
	if !ok {
		return nil, false
	}
	return el, true
}

type window struct {
	dpr      float64
	onResize func()
	onFrame  func(float64)
}

func (w *window) DevicePixelRatio() float64         { return w.dpr }
func (w *window) SetOnResize(fn func())             { w.onResize = fn }
func (w *window) SetFrameCallback(fn func(float64)) { w.onFrame = fn }

func (w *window) dispatchResize() {
	if w.onResize != nil {
		w.onResize()
	}
}

// dispatchFrame reports whether a frame callback ran.
func (w *window) dispatchFrame(ms float64) bool {
	if w.onFrame == nil {
		return false
	}
	w.onFrame(ms)
	return true
}

type env struct {
	doc *document
	win *window
}

func (e *env) Document() Document { return e.doc }
func (e *env) Window() Window     { return e.win }
