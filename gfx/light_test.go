package gfx

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestDirectionalLightDirectionFromPosition(t *testing.T) {
	l := NewDirectionalLight(Hex(0xffffff), 1)
	l.Position = mgl32.Vec3{-1, 2, 4}
	want := mgl32.Vec3{1, -2, -4}.Normalize()
	if got := l.Direction(); !got.ApproxEqual(want) {
		t.Fatalf("direction: got %v, want %v", got, want)
	}
}

func TestDirectionalLightDegenerateDirection(t *testing.T) {
	l := NewDirectionalLight(Hex(0xffffff), 1)
	l.Position = mgl32.Vec3{}
	if got := l.Direction(); got != (mgl32.Vec3{0, -1, 0}) {
		t.Fatalf("direction: got %v", got)
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, v := range []uint32{0xf1c40f, 0xffffff, 0x000000, 0x111111} {
		if got := Hex(v).Hex(); got != v {
			t.Fatalf("Hex(%06x).Hex() = %06x", v, got)
		}
	}
}

func TestShadePhongFacingAndAwayFromLight(t *testing.T) {
	mat := NewMeshPhongMaterial(Hex(0xf1c40f))
	l := NewDirectionalLight(Hex(0xffffff), 1)
	l.Position = mgl32.Vec3{0, 0, 1}

	lit := shadePhong(mat, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 0, 1}, []*DirectionalLight{l})
	if lit.R < mat.Color.R || lit.G < mat.Color.G {
		t.Fatalf("front face darker than base color: %v", lit)
	}

	dark := shadePhong(mat, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 0, 1}, []*DirectionalLight{l})
	if dark != (Color{}) {
		t.Fatalf("back face lit: %v", dark)
	}
}
