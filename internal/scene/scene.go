package scene

import (
	"github.com/Faultbox/raypick/internal/engine/geometry"
	"github.com/Faultbox/raypick/internal/engine/picking"
	"github.com/Faultbox/raypick/pkg/math"
)

// TransformKind identifies the operation a Transform applies.
type TransformKind int

const (
	KindTranslate TransformKind = iota
	KindScale
	KindRotate
)

// Transform is a mutable modelling transform. Instances below it see
// changes made through Set on the next frame and the next pick.
type Transform struct {
	ID    string
	Kind  TransformKind
	X     float32
	Y     float32
	Z     float32
	Angle float32 // degrees, rotate only
}

// Set replaces the transform's x, y, z.
func (t *Transform) Set(v math.Vec3) {
	t.X, t.Y, t.Z = v.X, v.Y, v.Z
}

// Vec returns x, y, z as a vector.
func (t *Transform) Vec() math.Vec3 {
	return math.Vec3{X: t.X, Y: t.Y, Z: t.Z}
}

// Matrix returns the local matrix of the transform.
func (t *Transform) Matrix() math.Mat4 {
	switch t.Kind {
	case KindScale:
		return math.Scale(t.X, t.Y, t.Z)
	case KindRotate:
		return math.RotateAxis(t.Vec(), math.Deg2Rad(t.Angle))
	default:
		return math.Translate(t.X, t.Y, t.Z)
	}
}

// LookAt is a mutable view transform.
type LookAt struct {
	ID   string
	Eye  math.Vec3
	Look math.Vec3
	Up   math.Vec3
}

// SetEye moves the eye position.
func (l *LookAt) SetEye(eye math.Vec3) {
	l.Eye = eye
}

// ViewMatrix returns the world to view matrix.
func (l *LookAt) ViewMatrix() math.Mat4 {
	return math.LookAt(l.Eye, l.Look, l.Up)
}

// Material holds surface parameters for Phong shading.
type Material struct {
	BaseColor     [3]float32
	SpecularColor [3]float32
	Specular      float32
	Shine         float32
}

// DefaultMaterial is applied to geometry outside any material node.
var DefaultMaterial = Material{
	BaseColor:     [3]float32{1, 1, 1},
	SpecularColor: [3]float32{1, 1, 1},
	Specular:      1,
	Shine:         10,
}

// Light is a scene light.
type Light struct {
	Mode     string
	Color    [3]float32
	Diffuse  bool
	Specular bool
	Dir      math.Vec3
}

// Shader is a shared shader core. All shader nodes referring to the same
// core see the same parameters.
type Shader struct {
	ID                string
	HighlightWorldPos math.Vec3
	HighlightRadius   float32
	HighlightColor    [3]float32
}

// SetHighlightWorldPos updates the highlight centre.
func (s *Shader) SetHighlightWorldPos(p math.Vec3) {
	s.HighlightWorldPos = p
}

// Default highlight parameters for shader cores that do not set them.
const DefaultHighlightRadius float32 = 30

var DefaultHighlightColor = [3]float32{1, 1, 0}

func (s *Shader) apply(p *ShaderParams) {
	if p == nil {
		return
	}
	if p.HighlightWorldPos != nil {
		s.HighlightWorldPos = math.V3(*p.HighlightWorldPos)
	}
	if p.HighlightRadius != nil {
		s.HighlightRadius = *p.HighlightRadius
	}
	if p.HighlightColor != nil {
		s.HighlightColor = p.HighlightColor.Array()
	}
}

// Instance is one drawable geometry occurrence with its inherited state.
type Instance struct {
	// Name is the nearest enclosing name node, empty when unnamed.
	Name     string
	Mesh     *geometry.Mesh
	Material Material
	Shader   *Shader

	chain []*Transform
}

// World returns the current model matrix of the instance.
func (i *Instance) World() math.Mat4 {
	m := math.Identity()
	for _, t := range i.chain {
		m = m.Mul(t.Matrix())
	}
	return m
}

// WorldBounds returns the world-space bounding box of the instance.
func (i *Instance) WorldBounds() picking.AABB {
	return i.Mesh.Bounds.Transform(i.World())
}

// Pickable reports whether the instance can be reported by a pick.
func (i *Instance) Pickable() bool {
	return i.Name != ""
}

// Scene is the runtime scene graph built from a description.
type Scene struct {
	instances  []*Instance
	lights     []Light
	transforms map[string]*Transform
	lookAts    map[string]*LookAt
	shaders    map[string]*Shader
	lookAt     *LookAt
	optics     Optics
}

// Stats summarises a scene.
type Stats struct {
	Instances int
	Pickable  int
	Triangles int
	Lights    int
	Shaders   int
}

// Instances returns all drawable instances in description order.
func (s *Scene) Instances() []*Instance { return s.instances }

// Lights returns the scene lights.
func (s *Scene) Lights() []Light { return s.lights }

// Optics returns the camera optics.
func (s *Scene) Optics() Optics { return s.optics }

// LookAt returns the first look_at node, or nil when the scene has none.
func (s *Scene) LookAt() *LookAt { return s.lookAt }

// FindTransform returns the transform with the given id.
func (s *Scene) FindTransform(id string) (*Transform, bool) {
	t, ok := s.transforms[id]
	return t, ok
}

// FindLookAt returns the look_at node with the given id.
func (s *Scene) FindLookAt(id string) (*LookAt, bool) {
	l, ok := s.lookAts[id]
	return l, ok
}

// FindShader returns the shader core with the given id or core id.
func (s *Scene) FindShader(id string) (*Shader, bool) {
	sh, ok := s.shaders[id]
	return sh, ok
}

// Instance returns the first instance with the given name.
func (s *Scene) Instance(name string) (*Instance, bool) {
	for _, inst := range s.instances {
		if inst.Name == name {
			return inst, true
		}
	}
	return nil, false
}

// Stats counts the scene contents.
func (s *Scene) Stats() Stats {
	st := Stats{
		Instances: len(s.instances),
		Lights:    len(s.lights),
	}
	seen := make(map[*Shader]bool)
	for _, sh := range s.shaders {
		seen[sh] = true
	}
	st.Shaders = len(seen)
	for _, inst := range s.instances {
		if inst.Pickable() {
			st.Pickable++
		}
		st.Triangles += inst.Mesh.TriangleCount()
	}
	return st
}
