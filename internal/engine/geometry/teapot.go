package geometry

import "github.com/Faultbox/raypick/pkg/math"

const teapotSegments = 32

var teapotBodyProfile = [][2]float32{
	{0, 0}, {1.4, 0}, {1.5, 0.1}, {1.75, 0.45}, {1.95, 0.9},
	{2.0, 1.35}, {1.93, 1.75}, {1.75, 2.1}, {1.5, 2.35}, {1.4, 2.4},
}

var teapotLidProfile = [][2]float32{
	{1.45, 2.4}, {1.3, 2.5}, {0.9, 2.65}, {0.3, 2.8},
	{0.25, 2.95}, {0.35, 3.05}, {0.2, 3.15}, {0, 3.15},
}

var teapotSpoutPath = []math.Vec3{
	{X: 1.6, Y: 0.7}, {X: 2.2, Y: 0.9}, {X: 2.6, Y: 1.4}, {X: 2.8, Y: 2.0}, {X: 3.1, Y: 2.4},
}

var teapotSpoutRadii = []float32{0.45, 0.35, 0.25, 0.2, 0.2}

var teapotHandlePath = []math.Vec3{
	{X: -1.8, Y: 2.0}, {X: -2.4, Y: 2.1}, {X: -2.8, Y: 1.9}, {X: -3.0, Y: 1.35},
	{X: -2.7, Y: 0.8}, {X: -1.9, Y: 0.7},
}

var teapotHandleRadii = []float32{0.15, 0.15, 0.15, 0.15, 0.15, 0.15}

// Teapot returns a procedural teapot centered on the origin, roughly
// 6.5 x 3.2 x 4 units like the classic Utah teapot.
func Teapot() *Mesh {
	m := Merge("teapot",
		Lathe("teapot-body", teapotBodyProfile, teapotSegments),
		Lathe("teapot-lid", teapotLidProfile, teapotSegments),
		Tube("teapot-spout", teapotSpoutPath, teapotSpoutRadii, 12),
		Tube("teapot-handle", teapotHandlePath, teapotHandleRadii, 10),
	)
	m.Translate(m.Bounds.Center().Scale(-1))
	return m
}
