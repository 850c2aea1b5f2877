package gfx

import "github.com/go-gl/mathgl/mgl32"

// Vertex is a mesh vertex.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
}

// Geometry is an indexed triangle list. Front faces wind counter-clockwise.
type Geometry struct {
	Vertices []Vertex
	Indices  []uint16
}

func (g *Geometry) TriangleCount() int {
	if g == nil {
		return 0
	}
	return len(g.Indices) / 3
}

type boxFace struct {
	n, u, v mgl32.Vec3 // u x v == n
}

var boxFaces = [6]boxFace{
	{n: mgl32.Vec3{1, 0, 0}, u: mgl32.Vec3{0, 0, -1}, v: mgl32.Vec3{0, 1, 0}},
	{n: mgl32.Vec3{-1, 0, 0}, u: mgl32.Vec3{0, 0, 1}, v: mgl32.Vec3{0, 1, 0}},
	{n: mgl32.Vec3{0, 1, 0}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 0, -1}},
	{n: mgl32.Vec3{0, -1, 0}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 0, 1}},
	{n: mgl32.Vec3{0, 0, 1}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 1, 0}},
	{n: mgl32.Vec3{0, 0, -1}, u: mgl32.Vec3{-1, 0, 0}, v: mgl32.Vec3{0, 1, 0}},
}

// BoxGeometry builds an axis-aligned box centered on the origin.
// Each face has its own four vertices so normals stay flat.
func BoxGeometry(width, height, depth float32) *Geometry {
	size := mgl32.Vec3{width, height, depth}
	g := &Geometry{
		Vertices: make([]Vertex, 0, 24),
		Indices:  make([]uint16, 0, 36),
	}
	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	for _, f := range boxFaces {
		base := uint16(len(g.Vertices))
		for _, c := range corners {
			p := f.n.Add(f.u.Mul(c[0])).Add(f.v.Mul(c[1])).Mul(0.5)
			g.Vertices = append(g.Vertices, Vertex{
				Position: mgl32.Vec3{p.X() * size.X(), p.Y() * size.Y(), p.Z() * size.Z()},
				Normal:   f.n,
			})
		}
		g.Indices = append(g.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return g
}
