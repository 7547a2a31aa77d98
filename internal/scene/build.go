package scene

import (
	"errors"
	"fmt"

	"github.com/Faultbox/raypick/internal/engine/geometry"
	"github.com/Faultbox/raypick/pkg/math"
)

var (
	// ErrDuplicateID is returned when two nodes share an id.
	ErrDuplicateID = errors.New("duplicate node id")
	// ErrUnknownShader is returned for shader nodes whose core was never defined.
	ErrUnknownShader = errors.New("unknown shader core")
)

// DefaultOptics is used when the description has no camera node.
var DefaultOptics = Optics{Type: "perspective", Fovy: 45, Near: 0.1, Far: 1000}

type buildState struct {
	scene *Scene
	lib   *geometry.Library
	ids   map[string]string
}

// inherited is the state passed down the tree while building.
type inherited struct {
	chain    []*Transform
	material Material
	name     string
	shader   *Shader
}

// Build flattens a description into a runtime scene. Geometry comes from lib.
func Build(desc *Node, lib *geometry.Library) (*Scene, error) {
	if err := Validate(desc); err != nil {
		return nil, err
	}

	b := &buildState{
		scene: &Scene{
			transforms: make(map[string]*Transform),
			lookAts:    make(map[string]*LookAt),
			shaders:    make(map[string]*Shader),
			optics:     DefaultOptics,
		},
		lib: lib,
		ids: make(map[string]string),
	}

	// Library shader cores may be referenced before they appear.
	if err := b.collectCores(desc, false); err != nil {
		return nil, err
	}
	if err := b.walk(desc, inherited{material: DefaultMaterial}); err != nil {
		return nil, err
	}

	if b.scene.lookAt == nil {
		b.scene.lookAt = &LookAt{Eye: math.Vec3{Z: 1}, Up: math.Vec3{Y: 1}}
	}
	return b.scene, nil
}

func (b *buildState) claim(id, nodeType string) error {
	if id == "" {
		return nil
	}
	if prev, ok := b.ids[id]; ok {
		return fmt.Errorf("%w: %q used by %s and %s", ErrDuplicateID, id, prev, nodeType)
	}
	b.ids[id] = nodeType
	return nil
}

func (b *buildState) collectCores(n *Node, inLibrary bool) error {
	if inLibrary && n.Type == TypeShader {
		if err := b.claim(n.ID, n.Type); err != nil {
			return err
		}
		sh := newShader(n)
		b.scene.shaders[n.CoreID] = sh
		if n.ID != "" {
			b.scene.shaders[n.ID] = sh
		}
	}
	for _, c := range n.Nodes {
		if err := b.collectCores(c, inLibrary || n.Type == TypeLibrary); err != nil {
			return err
		}
	}
	return nil
}

func newShader(n *Node) *Shader {
	sh := &Shader{
		ID:              n.CoreID,
		HighlightRadius: DefaultHighlightRadius,
		HighlightColor:  DefaultHighlightColor,
	}
	sh.apply(n.Params)
	return sh
}

func (b *buildState) walk(n *Node, st inherited) error {
	switch n.Type {
	case TypeLibrary:
		// Cores were registered up front; library content is never drawn.
		return b.claim(n.ID, n.Type)

	case TypeTranslate, TypeScale, TypeRotate:
		if err := b.claim(n.ID, n.Type); err != nil {
			return err
		}
		t := newTransform(n)
		if n.ID != "" {
			b.scene.transforms[n.ID] = t
		}
		chain := make([]*Transform, len(st.chain), len(st.chain)+1)
		copy(chain, st.chain)
		st.chain = append(chain, t)

	case TypeMaterial:
		st.material = mergeMaterial(st.material, n)

	case TypeName:
		st.name = n.Name

	case TypeShader:
		if err := b.claim(n.ID, n.Type); err != nil {
			return err
		}
		sh, ok := b.scene.shaders[n.CoreID]
		if !ok {
			if n.Params == nil {
				return fmt.Errorf("%w: %q", ErrUnknownShader, n.CoreID)
			}
			// A shader outside the library with params defines its own core.
			sh = newShader(n)
			b.scene.shaders[n.CoreID] = sh
			if n.ID != "" {
				b.scene.shaders[n.ID] = sh
			}
		} else if n.Params != nil {
			sh.apply(n.Params)
		}
		st.shader = sh

	case TypeLight:
		b.scene.lights = append(b.scene.lights, newLight(n))

	case TypeLookAt:
		if err := b.claim(n.ID, n.Type); err != nil {
			return err
		}
		l := newLookAt(n)
		if n.ID != "" {
			b.scene.lookAts[n.ID] = l
		}
		if b.scene.lookAt == nil {
			b.scene.lookAt = l
		}

	case TypeCamera:
		if n.Optics != nil {
			b.scene.optics = *n.Optics
		}

	case TypeTeapot, TypeSphere, TypeBox, TypeMesh:
		mesh, err := b.lib.Get(n.Type, n.Src)
		if err != nil {
			return fmt.Errorf("%s node: %w", n.Type, err)
		}
		b.scene.instances = append(b.scene.instances, &Instance{
			Name:     st.name,
			Mesh:     mesh,
			Material: st.material,
			Shader:   st.shader,
			chain:    st.chain,
		})
	}

	switch n.Type {
	case TypeTranslate, TypeScale, TypeRotate, TypeShader, TypeLookAt:
		// claimed above
	default:
		if err := b.claim(n.ID, n.Type); err != nil {
			return err
		}
	}

	for _, c := range n.Nodes {
		if err := b.walk(c, st); err != nil {
			return err
		}
	}
	return nil
}

func newTransform(n *Node) *Transform {
	t := &Transform{ID: n.ID, Angle: n.Angle}
	def := float32(0)
	switch n.Type {
	case TypeScale:
		t.Kind = KindScale
		def = 1
	case TypeRotate:
		t.Kind = KindRotate
	default:
		t.Kind = KindTranslate
	}
	t.X, t.Y, t.Z = orDefault(n.X, def), orDefault(n.Y, def), orDefault(n.Z, def)
	return t
}

func orDefault(v *float32, def float32) float32 {
	if v == nil {
		return def
	}
	return *v
}

func mergeMaterial(m Material, n *Node) Material {
	if n.BaseColor != nil {
		m.BaseColor = n.BaseColor.Array()
	}
	if n.SpecularColor != nil {
		m.SpecularColor = n.SpecularColor.Array()
	}
	if n.Specular != nil {
		m.Specular = *n.Specular
	}
	if n.Shine != nil {
		m.Shine = *n.Shine
	}
	return m
}

func newLight(n *Node) Light {
	l := Light{
		Mode:     n.Mode,
		Color:    [3]float32{1, 1, 1},
		Diffuse:  true,
		Specular: true,
		Dir:      math.Vec3{Z: -1},
	}
	if l.Mode == "" {
		l.Mode = "dir"
	}
	if n.Color != nil {
		l.Color = n.Color.Array()
	}
	if n.Diffuse != nil {
		l.Diffuse = *n.Diffuse
	}
	if n.SpecularLight != nil {
		l.Specular = *n.SpecularLight
	}
	if n.Dir != nil {
		l.Dir = xyz(*n.Dir)
	}
	return l
}

func newLookAt(n *Node) *LookAt {
	l := &LookAt{ID: n.ID, Eye: math.Vec3{Z: 1}, Up: math.Vec3{Y: 1}}
	if n.Eye != nil {
		l.Eye = xyz(*n.Eye)
	}
	if n.Look != nil {
		l.Look = xyz(*n.Look)
	}
	if n.Up != nil {
		l.Up = xyz(*n.Up)
	}
	return l
}

func xyz(p XYZ) math.Vec3 {
	return math.Vec3{X: p.X, Y: p.Y, Z: p.Z}
}
