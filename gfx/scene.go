package gfx

// Scene is the root of everything a Renderer draws. Membership is append-only.
type Scene struct {
	Background Color

	children []Object
}

func NewScene() *Scene {
	return &Scene{}
}

// Add appends objects to the scene. Nil objects are ignored.
func (s *Scene) Add(objs ...Object) {
	for _, o := range objs {
		if o == nil {
			continue
		}
		s.children = append(s.children, o)
	}
}

// Children returns a copy of the scene's objects in insertion order.
func (s *Scene) Children() []Object {
	out := make([]Object, len(s.children))
	copy(out, s.children)
	return out
}

func (s *Scene) directionalLights() []*DirectionalLight {
	var out []*DirectionalLight
	for _, o := range s.children {
		if l, ok := o.(*DirectionalLight); ok && l != nil {
			out = append(out, l)
		}
	}
	return out
}

func (s *Scene) eachMesh(fn func(m *Mesh)) {
	for _, o := range s.children {
		if m, ok := o.(*Mesh); ok && m != nil {
			fn(m)
		}
	}
}
