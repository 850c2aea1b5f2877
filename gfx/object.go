package gfx

import "github.com/go-gl/mathgl/mgl32"

// Euler is a rotation in radians, applied in X, Y, Z order.
type Euler struct {
	X, Y, Z float64
}

// Object3D holds the transform shared by everything placed in a scene.
type Object3D struct {
	Name     string
	Position mgl32.Vec3
	Rotation Euler
	Scale    mgl32.Vec3
}

// Object is anything that can be added to a Scene.
type Object interface {
	object() *Object3D
}

func newObject3D() Object3D {
	return Object3D{Scale: mgl32.Vec3{1, 1, 1}}
}

func (o *Object3D) object() *Object3D { return o }

// Matrix returns the local-to-world matrix: translate * rotate * scale.
func (o *Object3D) Matrix() mgl32.Mat4 {
	rot := mgl32.HomogRotate3DX(float32(o.Rotation.X)).
		Mul4(mgl32.HomogRotate3DY(float32(o.Rotation.Y))).
		Mul4(mgl32.HomogRotate3DZ(float32(o.Rotation.Z)))
	return mgl32.Translate3D(o.Position.X(), o.Position.Y(), o.Position.Z()).
		Mul4(rot).
		Mul4(mgl32.Scale3D(o.Scale.X(), o.Scale.Y(), o.Scale.Z()))
}
