package picking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/raypick/pkg/math"
)

func TestIntersectAABB(t *testing.T) {
	box := NewAABB(-1, -1, -1, 1, 1, 1)

	tests := []struct {
		name  string
		ray   Ray
		hit   bool
		wantT float32
	}{
		{"front", Ray{math.Vec3{Z: -5}, math.Vec3{Z: 1}}, true, 4},
		{"inside returns exit", Ray{math.Vec3{}, math.Vec3{X: 1}}, true, 1},
		{"behind", Ray{math.Vec3{Z: 5}, math.Vec3{Z: 1}}, false, 0},
		{"parallel outside", Ray{math.Vec3{Y: 3, Z: -5}, math.Vec3{Z: 1}}, false, 0},
		{"miss", Ray{math.Vec3{X: 3, Z: -5}, math.Vec3{Z: 1}}, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotT, hit := tt.ray.IntersectAABB(box)
			assert.Equal(t, tt.hit, hit)
			if tt.hit {
				assert.InDelta(t, tt.wantT, gotT, 1e-5)
			}
		})
	}
}

func TestNewAABBSwapsCorners(t *testing.T) {
	b := NewAABB(1, -2, 3, -1, 2, -3)
	assert.Equal(t, math.Vec3{X: -1, Y: -2, Z: -3}, b.Min)
	assert.Equal(t, math.Vec3{X: 1, Y: 2, Z: 3}, b.Max)
}

func TestAABBTransform(t *testing.T) {
	b := NewAABB(-1, -1, -1, 1, 1, 1)
	m := math.Translate(100, 0, 0).Mul(math.Scale(10, 10, 10))
	w := b.Transform(m)
	assert.InDelta(t, 90, w.Min.X, 1e-4)
	assert.InDelta(t, 110, w.Max.X, 1e-4)
	assert.InDelta(t, -10, w.Min.Z, 1e-4)
}

func TestEmptyAABBExtend(t *testing.T) {
	b := EmptyAABB()
	require.True(t, b.IsEmpty())
	b = b.Extend(math.Vec3{X: 1, Y: 2, Z: 3})
	assert.False(t, b.IsEmpty())
	assert.True(t, b.Contains(math.Vec3{X: 1, Y: 2, Z: 3}))
}

func TestIntersectTriangle(t *testing.T) {
	v0 := math.Vec3{X: -1, Y: -1}
	v1 := math.Vec3{X: 1, Y: -1}
	v2 := math.Vec3{Y: 1}

	tFront, ok := Ray{math.Vec3{Z: -5}, math.Vec3{Z: 1}}.IntersectTriangle(v0, v1, v2)
	require.True(t, ok)
	assert.InDelta(t, 5, tFront, 1e-5)

	// Back face counts as well
	tBack, ok := Ray{math.Vec3{Z: 5}, math.Vec3{Z: -1}}.IntersectTriangle(v0, v1, v2)
	require.True(t, ok)
	assert.InDelta(t, 5, tBack, 1e-5)

	_, ok = Ray{math.Vec3{X: 2, Z: -5}, math.Vec3{Z: 1}}.IntersectTriangle(v0, v1, v2)
	assert.False(t, ok, "outside the triangle")

	_, ok = Ray{math.Vec3{Z: -5}, math.Vec3{X: 1}}.IntersectTriangle(v0, v1, v2)
	assert.False(t, ok, "parallel to the plane")

	_, ok = Ray{math.Vec3{Z: 5}, math.Vec3{Z: 1}}.IntersectTriangle(v0, v1, v2)
	assert.False(t, ok, "triangle behind origin")
}

func TestRayTransformKeepsParameter(t *testing.T) {
	world := math.Translate(50, 0, 0).Mul(math.Scale(10, 10, 10))
	r := Ray{math.Vec3{X: 50, Z: -100}, math.Vec3{Z: 1}}

	local := r.Transform(world.Inverse())
	tl, ok := local.IntersectTriangle(math.Vec3{X: -1, Y: -1}, math.Vec3{X: 1, Y: -1}, math.Vec3{Y: 1})
	require.True(t, ok)

	hit := world.TransformVec3(local.At(tl))
	assert.InDelta(t, 0, hit.Z, 1e-3)
	assert.InDelta(t, 100, tl, 1e-3, "same t in both spaces")
}

func TestScreenToRayCenter(t *testing.T) {
	view := math.LookAt(math.Vec3{Z: -400}, math.Vec3{}, math.Vec3{Y: 1})
	proj := math.Perspective(math.Deg2Rad(45), 1, 0.1, 1000)
	inv := proj.Mul(view).Inverse()

	r := ScreenToRay(400, 300, 800, 600, inv)
	assert.InDelta(t, 1, r.Direction.Z, 1e-3)
	assert.InDelta(t, 0, r.Direction.X, 1e-3)
	assert.InDelta(t, -400, r.Origin.Z, 1)
}

func TestProjectRoundTrip(t *testing.T) {
	view := math.LookAt(math.Vec3{Z: -400}, math.Vec3{}, math.Vec3{Y: 1})
	proj := math.Perspective(math.Deg2Rad(45), 800.0/600.0, 0.1, 1000)
	vp := proj.Mul(view)

	x, y, ok := Project(math.Vec3{}, vp, 800, 600)
	require.True(t, ok)
	assert.InDelta(t, 400, x, 1e-2)
	assert.InDelta(t, 300, y, 1e-2)

	_, _, ok = Project(math.Vec3{Z: -800}, vp, 800, 600)
	assert.False(t, ok, "point behind the eye")
}

func TestIntersectPlaneY(t *testing.T) {
	r := Ray{math.Vec3{Y: 10}, math.Vec3{X: 1, Y: -1}.Normalize()}
	x, z, ok := r.IntersectPlaneY(0)
	require.True(t, ok)
	assert.InDelta(t, 10, x, 1e-4)
	assert.InDelta(t, 0, z, 1e-4)

	_, _, ok = Ray{math.Vec3{Y: 10}, math.Vec3{X: 1}}.IntersectPlaneY(0)
	assert.False(t, ok)
}
