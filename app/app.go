// Package app mounts the spinning-cube scene into a host and animates it.
package app

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"

	"cubescene/gfx"
	"cubescene/host"
)

const (
	cameraFOV  = 75
	cameraNear = 0.1
	cameraFar  = 100

	maxPixelRatio = 2

	lightColor     = 0xffffff
	lightIntensity = 1
	cubeColor      = 0xf1c40f
)

var (
	cameraPosition = mgl32.Vec3{0, 0, 2}
	lightPositions = [2]mgl32.Vec3{{-1, 2, 4}, {2, -4, -4}}
)

// ErrContainerNotFound is returned by New when the host has no element to mount into.
var ErrContainerNotFound = errors.New("container element not found")

// App owns the renderer, the scene and everything in it.
//
// Camera and cube are nil until their setup step runs; resize and update
// tolerate that, render does not.
type App struct {
	log zerolog.Logger

	renderer *gfx.Renderer
	domApp   host.Element
	win      host.Window
	scene    *gfx.Scene

	camera *gfx.PerspectiveCamera
	cube   *gfx.Mesh

	hud *hud
}

// New mounts the scene into env's container and starts the animation loop.
func New(env host.Env, opts ...Option) (*App, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	el, ok := env.Document().QuerySelector("#" + o.containerID)
	if !ok {
		return nil, fmt.Errorf("app: #%s: %w", o.containerID, ErrContainerNotFound)
	}
	win := env.Window()

	r := gfx.NewRenderer(gfx.RendererOptions{Antialias: true, Frames: win})
	r.SetPixelRatio(math.Min(maxPixelRatio, win.DevicePixelRatio()))
	el.AppendChild(r.Canvas())

	a := &App{
		log:      o.log,
		renderer: r,
		domApp:   el,
		win:      win,
		scene:    gfx.NewScene(),
	}
	if o.hud {
		a.hud = newHUD()
	}
	a.log.Info().
		Str("container", el.ID()).
		Float64("pixel_ratio", r.PixelRatio()).
		Msg("mounting scene")

	a.setupCamera()
	a.setupLights()
	a.setupModels()
	a.setupEvents()
	return a, nil
}

func (a *App) Scene() *gfx.Scene              { return a.scene }
func (a *App) Camera() *gfx.PerspectiveCamera { return a.camera }
func (a *App) Cube() *gfx.Mesh                { return a.cube }
func (a *App) Renderer() *gfx.Renderer        { return a.renderer }

func (a *App) setupCamera() {
	w := a.domApp.ClientWidth()
	h := a.domApp.ClientHeight()

	a.camera = gfx.NewPerspectiveCamera(cameraFOV, float64(w)/float64(h), cameraNear, cameraFar)
	a.camera.Position = cameraPosition
}

func (a *App) setupLights() {
	for _, p := range lightPositions {
		l := gfx.NewDirectionalLight(gfx.Hex(lightColor), lightIntensity)
		l.Position = p
		a.scene.Add(l)
	}
}

func (a *App) setupModels() {
	geometry := gfx.BoxGeometry(1, 1, 1)
	material := gfx.NewMeshPhongMaterial(gfx.Hex(cubeColor))

	a.cube = gfx.NewMesh(geometry, material)
	a.scene.Add(a.cube)
}

func (a *App) setupEvents() {
	a.win.SetOnResize(a.resize)
	a.resize()

	a.renderer.SetAnimationLoop(a.render)
}

// resize matches the camera and canvas to the container. A zero height gives
// an infinite (or NaN) aspect; the renderer then has nothing to draw into.
func (a *App) resize() {
	w := a.domApp.ClientWidth()
	h := a.domApp.ClientHeight()

	if a.camera != nil {
		a.camera.Aspect = float64(w) / float64(h)
		a.camera.UpdateProjectionMatrix()
	}
	a.renderer.SetSize(w, h)

	a.log.Debug().Int("width", w).Int("height", h).Msg("resize")
}

// update spins the cube at one radian per second about X and Y.
func (a *App) update(ms float64) {
	t := ms / 1000

	if a.cube != nil {
		a.cube.Rotation.X = t
		a.cube.Rotation.Y = t
	}
}

func (a *App) render(ms float64) {
	a.update(ms)

	if a.camera == nil {
		panic("app: render called before camera setup")
	}
	a.renderer.Render(a.scene, a.camera)

	if a.hud != nil {
		w, h := a.renderer.DrawingBufferSize()
		a.hud.draw(a.renderer.Canvas().Image(), fmt.Sprintf("t=%.2fs %dx%d", ms/1000, w, h))
	}
}
