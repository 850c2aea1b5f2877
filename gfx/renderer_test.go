package gfx

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

type fakeFrames struct {
	fn    func(float64)
	calls int
}

func (f *fakeFrames) SetFrameCallback(fn func(float64)) {
	f.fn = fn
	f.calls++
}

func testScene() (*Scene, *PerspectiveCamera, *Mesh) {
	s := NewScene()
	l := NewDirectionalLight(Hex(0xffffff), 1)
	l.Position = mgl32.Vec3{-1, 2, 4}
	m := NewMesh(BoxGeometry(1, 1, 1), NewMeshPhongMaterial(Hex(0xf1c40f)))
	s.Add(l, m)
	cam := NewPerspectiveCamera(75, 1, 0.1, 100)
	cam.Position = mgl32.Vec3{0, 0, 2}
	return s, cam, m
}

func TestRendererSetSizeUsesPixelRatio(t *testing.T) {
	r := NewRenderer(RendererOptions{})
	r.SetPixelRatio(1.5)
	r.SetSize(400, 300)

	if w, h := r.Size(); w != 400 || h != 300 {
		t.Fatalf("size: got %dx%d", w, h)
	}
	if w, h := r.DrawingBufferSize(); w != 600 || h != 450 {
		t.Fatalf("drawing buffer: got %dx%d", w, h)
	}
	if w, h := r.Canvas().StyleSize(); w != 400 || h != 300 {
		t.Fatalf("style size: got %dx%d", w, h)
	}
}

func TestRendererInvalidPixelRatio(t *testing.T) {
	r := NewRenderer(RendererOptions{})
	r.SetPixelRatio(0)
	if r.PixelRatio() != 1 {
		t.Fatalf("pixel ratio: got %v", r.PixelRatio())
	}
}

func TestRendererDrawsCubeInCenter(t *testing.T) {
	for _, aa := range []bool{false, true} {
		r := NewRenderer(RendererOptions{Antialias: aa})
		r.SetSize(64, 64)
		s, cam, _ := testScene()
		r.Render(s, cam)

		if r.Info().Frames != 1 {
			t.Fatalf("aa=%v: frames: got %d", aa, r.Info().Frames)
		}
		if r.Info().Triangles == 0 {
			t.Fatalf("aa=%v: no triangles drawn", aa)
		}
		center := r.Canvas().Image().RGBAAt(32, 32)
		if center.R == 0 && center.G == 0 && center.B == 0 {
			t.Fatalf("aa=%v: center pixel is background", aa)
		}
		corner := r.Canvas().Image().RGBAAt(0, 0)
		if corner.R != 0 || corner.G != 0 || corner.B != 0 {
			t.Fatalf("aa=%v: corner pixel drawn: %v", aa, corner)
		}
	}
}

func TestRendererCullsBackFaces(t *testing.T) {
	r := NewRenderer(RendererOptions{})
	r.SetSize(32, 32)
	s, cam, _ := testScene()
	r.Render(s, cam)
	// Looking straight at an axis-aligned cube shows one face: two triangles.
	if got := r.Info().Triangles; got != 2 {
		t.Fatalf("triangles: got %d, want 2", got)
	}
}

func TestRendererZeroSizeSkipsDrawing(t *testing.T) {
	r := NewRenderer(RendererOptions{Antialias: true})
	r.SetSize(400, 0)
	s, cam, _ := testScene()
	r.Render(s, cam)
	if r.Info().Frames != 0 {
		t.Fatalf("frames: got %d", r.Info().Frames)
	}
}

func TestRendererAnimationLoopRegistration(t *testing.T) {
	f := &fakeFrames{}
	r := NewRenderer(RendererOptions{Frames: f})

	var got []float64
	r.SetAnimationLoop(func(ms float64) { got = append(got, ms) })
	if f.fn == nil {
		t.Fatal("callback not registered")
	}
	f.fn(16)
	f.fn(32)
	if len(got) != 2 || got[1] != 32 {
		t.Fatalf("frames: got %v", got)
	}

	r.SetAnimationLoop(nil)
	if f.fn != nil {
		t.Fatal("callback not cleared")
	}
}

func TestSceneAddIgnoresNil(t *testing.T) {
	s := NewScene()
	s.Add(nil, NewMesh(nil, nil))
	if n := len(s.Children()); n != 1 {
		t.Fatalf("children: got %d", n)
	}
}
