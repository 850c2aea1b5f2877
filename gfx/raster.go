package gfx

import (
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type screenPoint struct {
	x, y, z float32
}

func (r *Renderer) draw(img *image.RGBA, s *Scene, cam *PerspectiveCamera) int {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	clearImage(img, s.Background.ToRGBA())

	if cap(r.depth) < w*h {
		r.depth = make([]float32, w*h)
	}
	r.depth = r.depth[:w*h]
	for i := range r.depth {
		r.depth[i] = math.MaxFloat32
	}

	vp := cam.ProjectionMatrix().Mul4(cam.ViewMatrix())
	eye := cam.Position
	lights := s.directionalLights()

	drawn := 0
	s.eachMesh(func(m *Mesh) {
		drawn += r.drawMesh(img, w, h, vp, eye, lights, m)
	})
	return drawn
}

func (r *Renderer) drawMesh(img *image.RGBA, w, h int, vp mgl32.Mat4, eye mgl32.Vec3, lights []*DirectionalLight, m *Mesh) int {
	g := m.Geometry
	if g == nil || m.Material == nil || len(g.Vertices) == 0 || len(g.Indices) < 3 {
		return 0
	}
	model := m.Matrix()

	drawn := 0
	for i := 0; i+2 < len(g.Indices); i += 3 {
		var world [3]mgl32.Vec3
		var pts [3]screenPoint
		ok := true
		for k := 0; k < 3; k++ {
			idx := int(g.Indices[i+k])
			if idx >= len(g.Vertices) {
				ok = false
				break
			}
			wp := model.Mul4x1(g.Vertices[idx].Position.Vec4(1))
			world[k] = wp.Vec3()
			clip := vp.Mul4x1(wp)
			// No near-plane clipping: triangles reaching behind the eye are dropped.
			if !(clip.W() > 0) {
				ok = false
				break
			}
			inv := 1 / clip.W()
			ndc := mgl32.Vec3{clip.X() * inv, clip.Y() * inv, clip.Z() * inv}
			pts[k] = screenPoint{
				x: (ndc.X()*0.5 + 0.5) * float32(w),
				y: (1 - (ndc.Y()*0.5 + 0.5)) * float32(h),
				z: ndc.Z(),
			}
		}
		if !ok {
			continue
		}
		// Screen y points down; counter-clockwise front faces come out positive here.
		if edge(pts[0], pts[1], pts[2]) <= 0 {
			continue
		}

		n := world[1].Sub(world[0]).Cross(world[2].Sub(world[0]))
		if n.Len() == 0 {
			continue
		}
		n = n.Normalize()
		centroid := world[0].Add(world[1]).Add(world[2]).Mul(1.0 / 3)
		toEye := eye.Sub(centroid)
		if toEye.Len() > 0 {
			toEye = toEye.Normalize()
		}
		c := shadePhong(m.Material, n, toEye, lights).ToRGBA()
		r.fillTriangle(img, w, h, pts, c)
		drawn++
	}
	return drawn
}

// shadePhong evaluates Blinn-Phong lighting for one surface point.
func shadePhong(mat *MeshPhongMaterial, n, toEye mgl32.Vec3, lights []*DirectionalLight) Color {
	out := mat.Emissive
	for _, l := range lights {
		toLight := l.Direction().Mul(-1)
		diffuse := n.Dot(toLight)
		if diffuse <= 0 {
			continue
		}
		radiance := l.Color.Scale(l.Intensity)
		out = out.Add(radiance.Mul(mat.Color).Scale(diffuse))

		half := toLight.Add(toEye)
		if half.Len() == 0 {
			continue
		}
		if d := n.Dot(half.Normalize()); d > 0 {
			spec := float32(math.Pow(float64(d), float64(mat.Shininess)))
			out = out.Add(radiance.Mul(mat.Specular).Scale(spec))
		}
	}
	return out
}

func (r *Renderer) fillTriangle(img *image.RGBA, w, h int, p [3]screenPoint, c color.RGBA) {
	area := edge(p[0], p[1], p[2])
	if area == 0 {
		return
	}
	if area < 0 {
		p[1], p[2] = p[2], p[1]
		area = -area
	}

	minX := clampInt(int(floor3(p[0].x, p[1].x, p[2].x)), 0, w-1)
	maxX := clampInt(int(ceil3(p[0].x, p[1].x, p[2].x)), 0, w-1)
	minY := clampInt(int(floor3(p[0].y, p[1].y, p[2].y)), 0, h-1)
	maxY := clampInt(int(ceil3(p[0].y, p[1].y, p[2].y)), 0, h-1)
	invArea := 1 / area

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			q := screenPoint{x: float32(x) + 0.5, y: float32(y) + 0.5}
			w0 := edge(p[1], p[2], q)
			w1 := edge(p[2], p[0], q)
			w2 := edge(p[0], p[1], q)
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			z := (w0*p[0].z + w1*p[1].z + w2*p[2].z) * invArea
			idx := y*w + x
			if z >= r.depth[idx] {
				continue
			}
			r.depth[idx] = z
			off := img.PixOffset(x, y)
			img.Pix[off+0] = c.R
			img.Pix[off+1] = c.G
			img.Pix[off+2] = c.B
			img.Pix[off+3] = c.A
		}
	}
}

func clearImage(img *image.RGBA, c color.RGBA) {
	pix := img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i+0] = c.R
		pix[i+1] = c.G
		pix[i+2] = c.B
		pix[i+3] = c.A
	}
}

// edge is twice the signed area of triangle (a, b, c).
func edge(a, b, c screenPoint) float32 {
	return (c.x-a.x)*(b.y-a.y) - (c.y-a.y)*(b.x-a.x)
}

func floor3(a, b, c float32) float32 {
	return float32(math.Floor(float64(min(a, b, c))))
}

func ceil3(a, b, c float32) float32 {
	return float32(math.Ceil(float64(max(a, b, c))))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
