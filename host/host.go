// Package host provides the environment a scene is mounted into: a document
// with named container elements and a window that dispatches resize events
// and presentation frames.
//
// Two hosts exist: RunWindow opens a desktop window, Headless drives frames
// from a ticker at a fixed rate with deterministic virtual time.
//
// All callbacks run on the host's loop goroutine, one at a time.
package host

import (
	"errors"
	"image"
)

// DefaultContainerID is the container element hosts create when none is configured.
const DefaultContainerID = "app"

var ErrInvalidConfig = errors.New("host: invalid config")

// WindowConfig controls the desktop window host.
type WindowConfig struct {
	Title       string
	Width       int
	Height      int
	Resizable   bool
	TPS         int
	ContainerID string
}

// Node is something that can be appended to an Element.
type Node interface {
	NodeName() string
}

// imageNode is a Node the host presents on screen.
type imageNode interface {
	Node
	Image() *image.RGBA
}

// Element is a container a scene mounts its drawing surface into.
type Element interface {
	ID() string
	ClientWidth() int
	ClientHeight() int
	AppendChild(n Node)
	Children() []Node
}

// Document looks up elements.
type Document interface {
	// QuerySelector accepts "#id" selectors only.
	QuerySelector(sel string) (Element, bool)
}

// Window is the host window.
type Window interface {
	DevicePixelRatio() float64

	// SetOnResize replaces the resize handler. It runs synchronously on every
	// resize, after the container has its new size.
	SetOnResize(fn func())

	// SetFrameCallback registers the per-frame callback; nil unregisters.
	// The callback receives milliseconds elapsed since the first frame.
	SetFrameCallback(fn func(elapsedMs float64))
}

// Env is everything a scene can see of its host.
type Env interface {
	Document() Document
	Window() Window
}
