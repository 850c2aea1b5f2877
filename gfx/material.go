package gfx

// MeshPhongMaterial shades surfaces with diffuse and specular highlights.
type MeshPhongMaterial struct {
	Color     Color
	Specular  Color
	Emissive  Color
	Shininess float32
}

// NewMeshPhongMaterial returns a material with a dim specular and shininess 30.
func NewMeshPhongMaterial(c Color) *MeshPhongMaterial {
	return &MeshPhongMaterial{
		Color:     c,
		Specular:  Hex(0x111111),
		Shininess: 30,
	}
}
