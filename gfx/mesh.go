package gfx

// Mesh pairs a geometry with a material.
type Mesh struct {
	Object3D

	Geometry *Geometry
	Material *MeshPhongMaterial
}

func NewMesh(g *Geometry, m *MeshPhongMaterial) *Mesh {
	return &Mesh{
		Object3D: newObject3D(),
		Geometry: g,
		Material: m,
	}
}
