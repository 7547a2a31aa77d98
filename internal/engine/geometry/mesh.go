// Package geometry builds the triangle meshes shared by the renderer and the picker.
package geometry

import (
	"github.com/Faultbox/raypick/internal/engine/picking"
	"github.com/Faultbox/raypick/pkg/math"
)

// Mesh is an indexed triangle mesh in local space.
type Mesh struct {
	Name      string
	Positions []math.Vec3
	Normals   []math.Vec3
	Indices   []uint32
	Bounds    picking.AABB
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns the vertices of triangle i.
func (m *Mesh) Triangle(i int) (v0, v1, v2 math.Vec3) {
	return m.Positions[m.Indices[i*3]],
		m.Positions[m.Indices[i*3+1]],
		m.Positions[m.Indices[i*3+2]]
}

// ComputeBounds recalculates Bounds from Positions.
func (m *Mesh) ComputeBounds() {
	b := picking.EmptyAABB()
	for _, p := range m.Positions {
		b = b.Extend(p)
	}
	m.Bounds = b
}

// ComputeNormals sets smooth vertex normals by summing area-weighted face normals.
func (m *Mesh) ComputeNormals() {
	normals := make([]math.Vec3, len(m.Positions))
	for i := 0; i < m.TriangleCount(); i++ {
		i0, i1, i2 := m.Indices[i*3], m.Indices[i*3+1], m.Indices[i*3+2]
		p0, p1, p2 := m.Positions[i0], m.Positions[i1], m.Positions[i2]
		n := p1.Sub(p0).Cross(p2.Sub(p0))
		normals[i0] = normals[i0].Add(n)
		normals[i1] = normals[i1].Add(n)
		normals[i2] = normals[i2].Add(n)
	}
	for i := range normals {
		normals[i] = normals[i].Normalize()
	}
	m.Normals = normals
}

// Interleaved returns position+normal vertex data (6 floats per vertex) for upload.
func (m *Mesh) Interleaved() []float32 {
	out := make([]float32, 0, len(m.Positions)*6)
	for i, p := range m.Positions {
		var n math.Vec3
		if i < len(m.Normals) {
			n = m.Normals[i]
		}
		out = append(out, p.X, p.Y, p.Z, n.X, n.Y, n.Z)
	}
	return out
}

// Translate moves every vertex by d.
func (m *Mesh) Translate(d math.Vec3) {
	for i := range m.Positions {
		m.Positions[i] = m.Positions[i].Add(d)
	}
	m.ComputeBounds()
}

// Merge concatenates meshes into a single mesh, keeping each part's normals.
func Merge(name string, parts ...*Mesh) *Mesh {
	out := &Mesh{Name: name}
	for _, p := range parts {
		base := uint32(len(out.Positions))
		out.Positions = append(out.Positions, p.Positions...)
		out.Normals = append(out.Normals, p.Normals...)
		for _, idx := range p.Indices {
			out.Indices = append(out.Indices, base+idx)
		}
	}
	out.ComputeBounds()
	return out
}
