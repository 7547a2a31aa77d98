// Package scene holds the declarative scene description, the runtime scene
// graph built from it, and ray picking against that graph.
package scene

// Node types of a scene description.
const (
	TypeScene     = "scene"
	TypeNode      = "node"
	TypeLibrary   = "library"
	TypeMaterial  = "material"
	TypeTranslate = "translate"
	TypeScale     = "scale"
	TypeRotate    = "rotate"
	TypeName      = "name"
	TypeLight     = "light"
	TypeLookAt    = "look_at"
	TypeCamera    = "camera"
	TypeShader    = "shader"
	TypeTeapot    = "teapot"
	TypeSphere    = "sphere"
	TypeBox       = "box"
	TypeMesh      = "mesh"
)

// Color is an RGB triple. Components may exceed 1.
type Color struct {
	R float32 `yaml:"r" json:"r" toml:"r"`
	G float32 `yaml:"g" json:"g" toml:"g"`
	B float32 `yaml:"b" json:"b" toml:"b"`
}

// Array returns the color as [3]float32.
func (c Color) Array() [3]float32 {
	return [3]float32{c.R, c.G, c.B}
}

// XYZ is a point or direction in a description.
type XYZ struct {
	X float32 `yaml:"x" json:"x" toml:"x"`
	Y float32 `yaml:"y" json:"y" toml:"y"`
	Z float32 `yaml:"z" json:"z" toml:"z"`
}

// Optics describes a camera projection.
type Optics struct {
	Type   string  `yaml:"type" json:"type" toml:"type" validate:"omitempty,oneof=perspective"`
	Fovy   float32 `yaml:"fovy" json:"fovy" toml:"fovy" validate:"gt=0,lt=180"`
	Aspect float32 `yaml:"aspect" json:"aspect" toml:"aspect" validate:"gte=0"`
	Near   float32 `yaml:"near" json:"near" toml:"near" validate:"gt=0"`
	Far    float32 `yaml:"far" json:"far" toml:"far" validate:"gtfield=Near"`
}

// ShaderParams are the uniform parameters a shader node exposes.
type ShaderParams struct {
	HighlightWorldPos *[3]float32 `yaml:"highlight_world_pos,omitempty" json:"highlight_world_pos,omitempty" toml:"highlight_world_pos,omitempty"`
	HighlightRadius   *float32    `yaml:"highlight_radius,omitempty" json:"highlight_radius,omitempty" toml:"highlight_radius,omitempty" validate:"omitempty,gt=0"`
	HighlightColor    *Color      `yaml:"highlight_color,omitempty" json:"highlight_color,omitempty" toml:"highlight_color,omitempty"`
}

// Node is one node of a declarative scene description. Only the fields
// relevant to its Type are read; the rest are ignored.
type Node struct {
	Type   string `yaml:"type" json:"type" toml:"type" validate:"required,oneof=scene node library material translate scale rotate name light look_at camera shader teapot sphere box mesh"`
	ID     string `yaml:"id,omitempty" json:"id,omitempty" toml:"id,omitempty"`
	CoreID string `yaml:"core_id,omitempty" json:"core_id,omitempty" toml:"core_id,omitempty" validate:"required_if=Type shader"`

	// name
	Name string `yaml:"name,omitempty" json:"name,omitempty" toml:"name,omitempty" validate:"required_if=Type name"`

	// translate / scale / rotate (rotate uses X,Y,Z as the axis)
	X     *float32 `yaml:"x,omitempty" json:"x,omitempty" toml:"x,omitempty"`
	Y     *float32 `yaml:"y,omitempty" json:"y,omitempty" toml:"y,omitempty"`
	Z     *float32 `yaml:"z,omitempty" json:"z,omitempty" toml:"z,omitempty"`
	Angle float32  `yaml:"angle,omitempty" json:"angle,omitempty" toml:"angle,omitempty"`

	// material
	BaseColor     *Color   `yaml:"base_color,omitempty" json:"base_color,omitempty" toml:"base_color,omitempty"`
	SpecularColor *Color   `yaml:"specular_color,omitempty" json:"specular_color,omitempty" toml:"specular_color,omitempty"`
	Specular      *float32 `yaml:"specular,omitempty" json:"specular,omitempty" toml:"specular,omitempty" validate:"omitempty,gte=0"`
	Shine         *float32 `yaml:"shine,omitempty" json:"shine,omitempty" toml:"shine,omitempty" validate:"omitempty,gte=0"`

	// light
	Mode          string `yaml:"mode,omitempty" json:"mode,omitempty" toml:"mode,omitempty" validate:"omitempty,oneof=dir ambient"`
	Color         *Color `yaml:"color,omitempty" json:"color,omitempty" toml:"color,omitempty"`
	Diffuse       *bool  `yaml:"diffuse,omitempty" json:"diffuse,omitempty" toml:"diffuse,omitempty"`
	SpecularLight *bool  `yaml:"specular_light,omitempty" json:"specular_light,omitempty" toml:"specular_light,omitempty"`
	Dir           *XYZ   `yaml:"dir,omitempty" json:"dir,omitempty" toml:"dir,omitempty"`

	// look_at / camera
	Eye    *XYZ    `yaml:"eye,omitempty" json:"eye,omitempty" toml:"eye,omitempty"`
	Look   *XYZ    `yaml:"look,omitempty" json:"look,omitempty" toml:"look,omitempty"`
	Up     *XYZ    `yaml:"up,omitempty" json:"up,omitempty" toml:"up,omitempty"`
	Optics *Optics `yaml:"optics,omitempty" json:"optics,omitempty" toml:"optics,omitempty"`

	// shader
	Params *ShaderParams `yaml:"params,omitempty" json:"params,omitempty" toml:"params,omitempty"`

	// mesh
	Src string `yaml:"src,omitempty" json:"src,omitempty" toml:"src,omitempty" validate:"required_if=Type mesh"`

	Nodes []*Node `yaml:"nodes,omitempty" json:"nodes,omitempty" toml:"nodes,omitempty" validate:"dive,required"`
}

// Add appends children and returns n for chaining.
func (n *Node) Add(children ...*Node) *Node {
	n.Nodes = append(n.Nodes, children...)
	return n
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	if n == nil {
		return 0
	}
	total := 1
	for _, c := range n.Nodes {
		total += c.Count()
	}
	return total
}

// IsGeometry reports whether the node type is a geometry primitive.
func IsGeometry(nodeType string) bool {
	switch nodeType {
	case TypeTeapot, TypeSphere, TypeBox, TypeMesh:
		return true
	}
	return false
}

func f32(v float32) *float32 { return &v }

func boolPtr(v bool) *bool { return &v }
