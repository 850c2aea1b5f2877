package gfx

import "github.com/go-gl/mathgl/mgl32"

// PerspectiveCamera projects with a vertical field of view.
//
// The projection matrix is cached: after changing FOV, Aspect, Near or Far,
// call UpdateProjectionMatrix before the next Render.
type PerspectiveCamera struct {
	Object3D

	FOV    float64 // vertical, degrees
	Aspect float64
	Near   float64
	Far    float64

	projection mgl32.Mat4
}

func NewPerspectiveCamera(fov, aspect, near, far float64) *PerspectiveCamera {
	c := &PerspectiveCamera{
		Object3D: newObject3D(),
		FOV:      fov,
		Aspect:   aspect,
		Near:     near,
		Far:      far,
	}
	c.UpdateProjectionMatrix()
	return c
}

// UpdateProjectionMatrix recomputes the projection from the four camera parameters.
// A non-finite aspect yields a degenerate matrix; nothing is drawn through it.
func (c *PerspectiveCamera) UpdateProjectionMatrix() {
	c.projection = mgl32.Perspective(
		mgl32.DegToRad(float32(c.FOV)),
		float32(c.Aspect),
		float32(c.Near),
		float32(c.Far),
	)
}

func (c *PerspectiveCamera) ProjectionMatrix() mgl32.Mat4 { return c.projection }

// ViewMatrix returns the world-to-camera matrix. The camera looks down its local -Z.
func (c *PerspectiveCamera) ViewMatrix() mgl32.Mat4 {
	return c.Matrix().Inv()
}
