package geometry

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/raypick/pkg/math"
)

// Box returns an axis-aligned cube from -1 to 1 with flat-shaded faces.
func Box() *Mesh {
	m := &Mesh{Name: "box"}
	faces := []struct {
		n    math.Vec3
		u, v math.Vec3
	}{
		{math.Vec3{X: 1}, math.Vec3{Z: -1}, math.Vec3{Y: 1}},
		{math.Vec3{X: -1}, math.Vec3{Z: 1}, math.Vec3{Y: 1}},
		{math.Vec3{Y: 1}, math.Vec3{X: 1}, math.Vec3{Z: -1}},
		{math.Vec3{Y: -1}, math.Vec3{X: 1}, math.Vec3{Z: 1}},
		{math.Vec3{Z: 1}, math.Vec3{X: 1}, math.Vec3{Y: 1}},
		{math.Vec3{Z: -1}, math.Vec3{X: -1}, math.Vec3{Y: 1}},
	}
	for _, f := range faces {
		base := uint32(len(m.Positions))
		for _, c := range [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
			p := f.n.Add(f.u.Scale(c[0])).Add(f.v.Scale(c[1]))
			m.Positions = append(m.Positions, p)
			m.Normals = append(m.Normals, f.n)
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	m.ComputeBounds()
	return m
}

// Sphere returns a unit UV sphere.
func Sphere(rings, segments int) *Mesh {
	if rings < 2 {
		rings = 2
	}
	if segments < 3 {
		segments = 3
	}
	m := &Mesh{Name: "sphere"}
	for r := 0; r <= rings; r++ {
		phi := math32.Pi * float32(r) / float32(rings)
		y := math32.Cos(phi)
		ringR := math32.Sin(phi)
		for s := 0; s <= segments; s++ {
			theta := 2 * math32.Pi * float32(s) / float32(segments)
			p := math.Vec3{X: ringR * math32.Cos(theta), Y: y, Z: ringR * math32.Sin(theta)}
			m.Positions = append(m.Positions, p)
			m.Normals = append(m.Normals, p)
		}
	}
	m.Indices = gridIndices(rings, segments)
	m.ComputeBounds()
	return m
}

// Lathe revolves a profile of (radius, height) points around the Y axis.
func Lathe(name string, profile [][2]float32, segments int) *Mesh {
	m := &Mesh{Name: name}
	for _, pt := range profile {
		for s := 0; s <= segments; s++ {
			theta := 2 * math32.Pi * float32(s) / float32(segments)
			m.Positions = append(m.Positions, math.Vec3{
				X: pt[0] * math32.Cos(theta),
				Y: pt[1],
				Z: pt[0] * math32.Sin(theta),
			})
		}
	}
	m.Indices = gridIndices(len(profile)-1, segments)
	m.ComputeNormals()
	m.ComputeBounds()
	return m
}

// Tube sweeps a circle along path, with one radius per path point.
func Tube(name string, path []math.Vec3, radii []float32, sides int) *Mesh {
	m := &Mesh{Name: name}
	for i, p := range path {
		var tangent math.Vec3
		switch {
		case i == 0:
			tangent = path[1].Sub(path[0])
		case i == len(path)-1:
			tangent = path[i].Sub(path[i-1])
		default:
			tangent = path[i+1].Sub(path[i-1])
		}
		tangent = tangent.Normalize()

		ref := math.Vec3{Y: 1}
		if math32.Abs(tangent.Dot(ref)) > 0.9 {
			ref = math.Vec3{X: 1}
		}
		side := tangent.Cross(ref).Normalize()
		up := side.Cross(tangent)

		for s := 0; s <= sides; s++ {
			theta := 2 * math32.Pi * float32(s) / float32(sides)
			offset := side.Scale(math32.Cos(theta)).Add(up.Scale(math32.Sin(theta)))
			m.Positions = append(m.Positions, p.Add(offset.Scale(radii[i])))
		}
	}
	m.Indices = gridIndices(len(path)-1, sides)
	m.ComputeNormals()
	m.ComputeBounds()
	return m
}

// gridIndices triangulates a (rows+1) x (cols+1) vertex grid.
func gridIndices(rows, cols int) []uint32 {
	indices := make([]uint32, 0, rows*cols*6)
	stride := uint32(cols + 1)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			a := uint32(r)*stride + uint32(c)
			b := a + stride
			indices = append(indices, a, b, a+1, a+1, b, b+1)
		}
	}
	return indices
}
