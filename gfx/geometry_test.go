package gfx

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestBoxGeometryShape(t *testing.T) {
	g := BoxGeometry(1, 1, 1)
	if len(g.Vertices) != 24 {
		t.Fatalf("vertices: got %d, want 24", len(g.Vertices))
	}
	if len(g.Indices) != 36 {
		t.Fatalf("indices: got %d, want 36", len(g.Indices))
	}
	if g.TriangleCount() != 12 {
		t.Fatalf("triangles: got %d, want 12", g.TriangleCount())
	}
	for i, v := range g.Vertices {
		for _, c := range []float32{v.Position.X(), v.Position.Y(), v.Position.Z()} {
			if c != 0.5 && c != -0.5 {
				t.Fatalf("vertex %d: coordinate %v outside unit box", i, c)
			}
		}
	}
}

func TestBoxGeometryWindingMatchesNormals(t *testing.T) {
	g := BoxGeometry(2, 1, 3)
	for i := 0; i < len(g.Indices); i += 3 {
		a := g.Vertices[g.Indices[i]]
		b := g.Vertices[g.Indices[i+1]]
		c := g.Vertices[g.Indices[i+2]]
		n := b.Position.Sub(a.Position).Cross(c.Position.Sub(a.Position)).Normalize()
		if !n.ApproxEqual(a.Normal) {
			t.Fatalf("triangle %d: winding normal %v, vertex normal %v", i/3, n, a.Normal)
		}
	}
}

func TestBoxGeometryScalesPerAxis(t *testing.T) {
	g := BoxGeometry(2, 4, 6)
	var maxP mgl32.Vec3
	for _, v := range g.Vertices {
		for k := 0; k < 3; k++ {
			if v.Position[k] > maxP[k] {
				maxP[k] = v.Position[k]
			}
		}
	}
	if maxP != (mgl32.Vec3{1, 2, 3}) {
		t.Fatalf("half extents: got %v", maxP)
	}
}
