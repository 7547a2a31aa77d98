package geometry

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/raypick/pkg/math"
)

func checkMesh(t *testing.T, m *Mesh) {
	t.Helper()
	require.NotEmpty(t, m.Positions)
	require.Len(t, m.Normals, len(m.Positions))
	require.Zero(t, len(m.Indices)%3, "indices must form triangles")
	for _, idx := range m.Indices {
		require.Less(t, int(idx), len(m.Positions))
	}
	for _, p := range m.Positions {
		require.True(t, m.Bounds.Contains(p), "bounds must contain %v", p)
	}
}

func TestBox(t *testing.T) {
	m := Box()
	checkMesh(t, m)
	assert.Equal(t, 12, m.TriangleCount())
	assert.Equal(t, math.Vec3{X: -1, Y: -1, Z: -1}, m.Bounds.Min)
	assert.Equal(t, math.Vec3{X: 1, Y: 1, Z: 1}, m.Bounds.Max)
}

func TestSphere(t *testing.T) {
	m := Sphere(8, 12)
	checkMesh(t, m)
	for _, p := range m.Positions {
		assert.InDelta(t, 1, p.Length(), 1e-5)
	}
	assert.InDelta(t, 1, m.Bounds.Max.Y, 1e-5)
	assert.InDelta(t, -1, m.Bounds.Min.Y, 1e-5)
}

func TestSphereClampsResolution(t *testing.T) {
	m := Sphere(0, 0)
	checkMesh(t, m)
	assert.Equal(t, 2*3*2, m.TriangleCount())
}

func TestLathe(t *testing.T) {
	m := Lathe("cylinder", [][2]float32{{1, 0}, {1, 2}}, 8)
	checkMesh(t, m)
	assert.Equal(t, 16, m.TriangleCount())
	assert.InDelta(t, 2, m.Bounds.Max.Y, 1e-6)
	assert.InDelta(t, 1, m.Bounds.Max.X, 1e-6)
}

func TestTube(t *testing.T) {
	path := []math.Vec3{{}, {X: 1}, {X: 2}}
	m := Tube("pipe", path, []float32{0.5, 0.5, 0.5}, 4)
	checkMesh(t, m)
	assert.Equal(t, 2*4*2, m.TriangleCount())
	assert.InDelta(t, 0.5, m.Bounds.Max.Y, 1e-5)
}

func TestTeapotIsCenteredAndSized(t *testing.T) {
	m := Teapot()
	checkMesh(t, m)

	c := m.Bounds.Center()
	assert.InDelta(t, 0, c.X, 1e-4)
	assert.InDelta(t, 0, c.Y, 1e-4)
	assert.InDelta(t, 0, c.Z, 1e-4)

	size := m.Bounds.Size()
	assert.InDelta(t, 6.45, size.X, 0.2)
	assert.InDelta(t, 3.15, size.Y, 0.1)
	assert.InDelta(t, 4.0, size.Z, 0.1)
}

func TestMergeOffsetsIndices(t *testing.T) {
	a := Box()
	b := Box()
	m := Merge("two", a, b)
	assert.Len(t, m.Positions, len(a.Positions)*2)
	assert.Equal(t, uint32(len(a.Positions)), m.Indices[len(a.Indices)])
}

func TestInterleaved(t *testing.T) {
	m := Box()
	data := m.Interleaved()
	require.Len(t, data, len(m.Positions)*6)
	assert.Equal(t, m.Positions[0].X, data[0])
	assert.Equal(t, m.Normals[0].Z, data[5])
}

func TestLibraryCachesPrimitives(t *testing.T) {
	lib := NewLibrary()

	a, err := lib.Get(KindTeapot, "")
	require.NoError(t, err)
	b, err := lib.Get(KindTeapot, "")
	require.NoError(t, err)
	assert.Same(t, a, b)

	_, err = lib.Get("dodecahedron", "")
	assert.Error(t, err)

	_, err = lib.Get(KindMesh, "")
	assert.Error(t, err)

	assert.Len(t, lib.Meshes(), 1)
}

func TestLibraryMeshUsesLoader(t *testing.T) {
	lib := NewLibrary()
	calls := 0
	lib.load = func(path string) (*Mesh, error) {
		calls++
		if path == "broken.glb" {
			return nil, errors.New("boom")
		}
		return Box(), nil
	}

	_, err := lib.Get(KindMesh, "model.glb")
	require.NoError(t, err)
	_, err = lib.Get(KindMesh, "model.glb")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	_, err = lib.Get(KindMesh, "broken.glb")
	assert.Error(t, err)
}

func TestLoadGLTFMissingFile(t *testing.T) {
	_, err := LoadGLTF(filepath.Join(t.TempDir(), "missing.glb"))
	assert.Error(t, err)
}
