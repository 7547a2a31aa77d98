package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/raypick/internal/config"
	"github.com/Faultbox/raypick/internal/engine/geometry"
)

const yamlScene = `
type: scene
nodes:
  - type: look_at
    id: theLookAt
    eye: {x: 0, y: 0, z: -400}
    look: {x: 0, y: 0, z: 0}
    up: {x: 0, y: 1, z: 0}
    nodes:
      - type: camera
        optics: {type: perspective, fovy: 45, aspect: 1.47, near: 0.1, far: 1000}
        nodes:
          - type: light
            mode: dir
            color: {r: 1, g: 1, b: 1}
            dir: {x: -1, y: -0.5, z: 0}
          - type: material
            base_color: {r: 0.5, g: 0.2, b: 1.1}
            nodes:
              - type: translate
                id: pickIndicator
                x: 10
                nodes:
                  - type: name
                    name: ball
                    nodes:
                      - type: sphere
`

const jsonScene = `{
  "type": "scene",
  "nodes": [
    {"type": "translate", "z": 5, "nodes": [
      {"type": "name", "name": "crate", "nodes": [{"type": "box"}]}
    ]}
  ]
}`

const tomlScene = `
type = "scene"

[[nodes]]
type = "scale"
x = 2.0
y = 2.0
z = 2.0

  [[nodes.nodes]]
  type = "name"
  name = "pot"

    [[nodes.nodes.nodes]]
    type = "teapot"
`

func TestDecodeFormats(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
		want   string
	}{
		{"yaml", yamlScene, FormatYAML, "ball"},
		{"json", jsonScene, FormatJSON, "crate"},
		{"toml", tomlScene, FormatTOML, "pot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := Decode([]byte(tt.data), tt.format)
			require.NoError(t, err)

			s, err := Build(root, geometry.NewLibrary())
			require.NoError(t, err)
			_, ok := s.Instance(tt.want)
			assert.True(t, ok)
		})
	}
}

func TestDecodeYAMLFields(t *testing.T) {
	root, err := Decode([]byte(yamlScene), FormatYAML)
	require.NoError(t, err)

	s, err := Build(root, geometry.NewLibrary())
	require.NoError(t, err)

	ind, ok := s.FindTransform("pickIndicator")
	require.True(t, ok)
	assert.Equal(t, float32(10), ind.X)
	assert.Equal(t, float32(0), ind.Y)

	ball, _ := s.Instance("ball")
	assert.Equal(t, [3]float32{0.5, 0.2, 1.1}, ball.Material.BaseColor)
	assert.Equal(t, float32(1.47), s.Optics().Aspect)
	require.Len(t, s.Lights(), 1)
	assert.True(t, s.Lights()[0].Diffuse, "lights default to diffuse")
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Decode([]byte("type: teacup\n"), FormatYAML)
	assert.Error(t, err)

	_, err = Decode([]byte("{not json"), FormatJSON)
	assert.Error(t, err)

	_, err = Decode([]byte(jsonScene), Format("xml"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Decode([]byte("type: camera\noptics: {fovy: 45, near: 10, far: 1}\n"), FormatYAML)
	assert.Error(t, err, "far must exceed near")
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]Format{
		"a.yaml": FormatYAML, "b.YML": FormatYAML, "c.json": FormatJSON, "d.toml": FormatTOML,
	} {
		got, err := FormatFromPath(path)
		require.NoError(t, err)
		assert.Equal(t, want, got, path)
	}
	_, err := FormatFromPath("scene.obj")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoadFileResolvesMeshSources(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.json")
	data := `{"type": "scene", "nodes": [{"type": "mesh", "src": "models/pot.glb"}]}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	root, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "models", "pot.glb"), root.Nodes[0].Src)
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.Grid.Min, cfg.Grid.Max = -50, 50
	desc := DemoDescription(cfg, newRand(9))

	for _, format := range []Format{FormatYAML, FormatJSON, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := Encode(desc, format)
			require.NoError(t, err)

			back, err := Decode(data, format)
			require.NoError(t, err)
			assert.Equal(t, desc.Count(), back.Count())

			s, err := Build(back, geometry.NewLibrary())
			require.NoError(t, err)
			assert.Equal(t, 2*2*2+1, s.Stats().Instances)
		})
	}
}
