package gfx

import "github.com/go-gl/mathgl/mgl32"

// DirectionalLight is an infinitely distant light. Its direction is implied by
// Position and Target: light travels from Position toward Target.
type DirectionalLight struct {
	Object3D

	Color     Color
	Intensity float32
	Target    mgl32.Vec3
}

// NewDirectionalLight returns a light positioned above the origin, aimed at it.
func NewDirectionalLight(c Color, intensity float32) *DirectionalLight {
	l := &DirectionalLight{
		Object3D:  newObject3D(),
		Color:     c,
		Intensity: intensity,
	}
	l.Position = mgl32.Vec3{0, 1, 0}
	return l
}

// Direction returns the unit vector along which the light travels.
func (l *DirectionalLight) Direction() mgl32.Vec3 {
	d := l.Target.Sub(l.Position)
	if d.Len() == 0 {
		return mgl32.Vec3{0, -1, 0}
	}
	return d.Normalize()
}
