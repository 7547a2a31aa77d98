package scene

import (
	"math/rand/v2"
	"strconv"

	"github.com/chewxy/math32"

	"github.com/Faultbox/raypick/internal/config"
)

// Well-known ids of the demo scene.
const (
	IDLookAt          = "theLookAt"
	IDIndicator       = "pickIndicator"
	IDHighlightShader = "highlightShader"
	NameIndicator     = "indicator"
)

// DemoAspect is the aspect ratio written into the demo camera.
const DemoAspect float32 = 1.47

// DemoDescription builds the teapot grid demo: a highlight shader library,
// the look-at camera, two directional lights, the white pick indicator and
// the grid wrapped in a highlight shader instance.
func DemoDescription(cfg *config.Config, rng *rand.Rand) *Node {
	hl := cfg.Highlight
	pos := hl.DefaultWorldPos
	radius := hl.Radius
	color := Color{R: hl.Color[0], G: hl.Color[1], B: hl.Color[2]}

	library := &Node{Type: TypeLibrary}
	library.Add(&Node{
		Type:   TypeShader,
		ID:     IDHighlightShader,
		CoreID: IDHighlightShader,
		Params: &ShaderParams{
			HighlightWorldPos: &pos,
			HighlightRadius:   &radius,
			HighlightColor:    &color,
		},
	})

	camera := &Node{
		Type: TypeCamera,
		Optics: &Optics{
			Type:   "perspective",
			Fovy:   cfg.Camera.Fovy,
			Aspect: DemoAspect,
			Near:   cfg.Camera.Near,
			Far:    cfg.Camera.Far,
		},
	}
	camera.Add(
		&Node{
			Type:          TypeLight,
			Mode:          "dir",
			Color:         &Color{R: 1, G: 1, B: 1},
			Diffuse:       boolPtr(true),
			SpecularLight: boolPtr(true),
			Dir:           &XYZ{X: -1, Y: -0.5, Z: 0},
		},
		&Node{
			Type:          TypeLight,
			Mode:          "dir",
			Color:         &Color{R: 0.7, G: 0.7, B: 0.7},
			Diffuse:       boolPtr(true),
			SpecularLight: boolPtr(true),
			Dir:           &XYZ{X: 1, Y: 0.5, Z: 1},
		},
		(&Node{Type: TypeNode}).Add(
			Indicator(),
			(&Node{Type: TypeShader, CoreID: IDHighlightShader}).Add(
				(&Node{Type: TypeNode}).Add(TeapotArray(cfg.Grid, rng)...),
			),
		),
	)

	lookAt := &Node{
		Type: TypeLookAt,
		ID:   IDLookAt,
		Eye:  &XYZ{Z: cfg.Camera.Distance},
		Look: &XYZ{},
		Up:   &XYZ{Y: 1},
	}
	lookAt.Add(camera)

	return (&Node{Type: TypeScene}).Add(library, lookAt)
}

// Indicator returns the white sphere that marks the last pick position.
func Indicator() *Node {
	return (&Node{
		Type:          TypeMaterial,
		BaseColor:     &Color{R: 1, G: 1, B: 1},
		SpecularColor: &Color{R: 0.9, G: 0.9, B: 0.9},
		Specular:      f32(0.9),
		Shine:         f32(6),
	}).Add(
		(&Node{Type: TypeName, Name: NameIndicator}).Add(
			(&Node{Type: TypeTranslate, ID: IDIndicator, X: f32(-20), Y: f32(0), Z: f32(-70)}).Add(
				(&Node{Type: TypeScale, X: f32(2), Y: f32(2), Z: f32(2)}).Add(
					&Node{Type: TypeSphere},
				),
			),
		),
	)
}

// TeapotArray returns one material node per grid cell, from Min to Max
// inclusive on every axis. Each wraps translate, name, scale and the
// primitive. Base colors are 0.2 plus a random value per channel.
func TeapotArray(grid config.GridConfig, rng *rand.Rand) []*Node {
	steps := gridSteps(grid)
	nodes := make([]*Node, 0, steps*steps*steps)

	for i := 0; i < steps; i++ {
		x := grid.Min + float32(i)*grid.Step
		for j := 0; j < steps; j++ {
			y := grid.Min + float32(j)*grid.Step
			for k := 0; k < steps; k++ {
				z := grid.Min + float32(k)*grid.Step
				nodes = append(nodes, gridCell(grid, x, y, z, rng))
			}
		}
	}
	return nodes
}

func gridCell(grid config.GridConfig, x, y, z float32, rng *rand.Rand) *Node {
	s := grid.Scale
	return (&Node{
		Type: TypeMaterial,
		BaseColor: &Color{
			R: 0.2 + rng.Float32(),
			G: 0.2 + rng.Float32(),
			B: 0.2 + rng.Float32(),
		},
		SpecularColor: &Color{R: 0.9, G: 0.9, B: 0.9},
		Specular:      f32(0.9),
		Shine:         f32(6),
	}).Add(
		(&Node{Type: TypeTranslate, X: f32(x), Y: f32(y), Z: f32(z)}).Add(
			(&Node{Type: TypeName, Name: CellName(x, y, z)}).Add(
				(&Node{Type: TypeScale, X: f32(s), Y: f32(s), Z: f32(s)}).Add(
					&Node{Type: grid.Primitive, Src: grid.Src},
				),
			),
		),
	)
}

// gridSteps is the number of positions per axis.
func gridSteps(grid config.GridConfig) int {
	if grid.Step <= 0 || grid.Max < grid.Min {
		return 0
	}
	return int(math32.Floor((grid.Max-grid.Min)/grid.Step+1e-4)) + 1
}

// CellName is the pick name of the grid cell at x, y, z.
func CellName(x, y, z float32) string {
	return "object_" + formatCoord(x) + "_" + formatCoord(y) + "_" + formatCoord(z)
}

func formatCoord(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}
