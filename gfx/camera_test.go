package gfx

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestPerspectiveProjectionCachedUntilUpdate(t *testing.T) {
	c := NewPerspectiveCamera(75, 4.0/3.0, 0.1, 100)
	before := c.ProjectionMatrix()

	c.Aspect = 2
	if c.ProjectionMatrix() != before {
		t.Fatal("projection changed without UpdateProjectionMatrix")
	}

	c.UpdateProjectionMatrix()
	after := c.ProjectionMatrix()
	if after == before {
		t.Fatal("projection not recomputed")
	}
	want := mgl32.Perspective(mgl32.DegToRad(75), 2, 0.1, 100)
	if !after.ApproxEqual(want) {
		t.Fatalf("projection: got %v, want %v", after, want)
	}
}

func TestPerspectiveInfiniteAspectDoesNotPanic(t *testing.T) {
	c := NewPerspectiveCamera(75, 1, 0.1, 100)
	c.Aspect = math.Inf(1)
	c.UpdateProjectionMatrix()
	c.Aspect = math.NaN()
	c.UpdateProjectionMatrix()
}

func TestViewMatrixLooksDownNegativeZ(t *testing.T) {
	c := NewPerspectiveCamera(75, 1, 0.1, 100)
	c.Position = mgl32.Vec3{0, 0, 2}
	origin := c.ViewMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if !origin.Vec3().ApproxEqual(mgl32.Vec3{0, 0, -2}) {
		t.Fatalf("origin in view space: got %v", origin)
	}
}

func TestObjectMatrixRotationOrder(t *testing.T) {
	o := newObject3D()
	o.Rotation = Euler{X: 0.3, Y: 1.1}
	want := mgl32.HomogRotate3DX(0.3).Mul4(mgl32.HomogRotate3DY(1.1))
	if !o.Matrix().ApproxEqual(want) {
		t.Fatalf("matrix: got %v, want %v", o.Matrix(), want)
	}
}
