package camera

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/raypick/internal/config"
	"github.com/Faultbox/raypick/pkg/math"
)

func assertVec(t *testing.T, want, got math.Vec3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-3, "x")
	assert.InDelta(t, want.Y, got.Y, 1e-3, "y")
	assert.InDelta(t, want.Z, got.Z, 1e-3, "z")
}

func TestEye(t *testing.T) {
	tests := []struct {
		name       string
		yaw, pitch float32
		want       math.Vec3
	}{
		{"initial", 0, 0, math.Vec3{Z: -400}},
		{"yaw 90", 90, 0, math.Vec3{X: -400}},
		{"pitch 90", 0, 90, math.Vec3{Y: 400}},
		{"pitch -90", 0, -90, math.Vec3{Y: -400}},
		{"yaw 180", 180, 0, math.Vec3{Z: 400}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewOrbitCamera()
			c.Yaw, c.Pitch = tt.yaw, tt.pitch
			assertVec(t, tt.want, c.Eye())
		})
	}
}

func TestEyeMatchesSphericalForm(t *testing.T) {
	c := NewOrbitCamera()
	c.Yaw, c.Pitch = 30, 20
	eye := c.Eye()

	th := math.Deg2Rad(c.Pitch)
	ph := math.Deg2Rad(c.Yaw)
	d := float64(c.Distance)
	assert.InDelta(t, d*cos(th)*sin(ph), eye.X, 1e-2)
	assert.InDelta(t, -d*sin(th), eye.Y, 1e-2)
	assert.InDelta(t, d*cos(th)*cos(ph), eye.Z, 1e-2)
	assert.InDelta(t, 400, eye.Length(), 1e-2)
}

func TestHandleDrag(t *testing.T) {
	c := NewOrbitCamera()
	c.HandleDrag(10, 0)
	assert.InDelta(t, -1, c.Yaw, 1e-6)
	assert.True(t, c.Updated())

	// Moving the mouse up (negative dy) pitches up
	c.HandleDrag(0, -20)
	assert.InDelta(t, 2, c.Pitch, 1e-6)
}

func TestHandleZoom(t *testing.T) {
	c := NewOrbitCamera()

	c.HandleZoom(-1)
	assert.Equal(t, float32(-410), c.Distance)
	c.HandleZoom(3)
	assert.Equal(t, float32(-400), c.Distance)

	_, changed := c.Idle()
	require.True(t, changed)
	c.HandleZoom(0)
	assert.False(t, c.Updated(), "zero delta is ignored")
	assert.Equal(t, float32(-400), c.Distance)
}

func TestHandleZoomClamps(t *testing.T) {
	c := NewOrbitCamera()
	c.Distance = -25
	for i := 0; i < 5; i++ {
		c.HandleZoom(1)
	}
	assert.Equal(t, float32(-20), c.Distance, "eye never crosses the look point")

	c.Distance = -985
	c.HandleZoom(-1)
	assert.Equal(t, float32(-990), c.Distance)
}

func TestIdle(t *testing.T) {
	c := NewOrbitCamera()

	_, changed := c.Idle()
	assert.False(t, changed)

	c.HandleDrag(-900, 0)
	eye, changed := c.Idle()
	require.True(t, changed)
	assertVec(t, math.Vec3{X: -400}, eye)

	_, changed = c.Idle()
	assert.False(t, changed, "flag is cleared")

	c.Invalidate()
	_, changed = c.Idle()
	assert.True(t, changed)
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default().Camera
	cfg.Yaw = 15
	c := FromConfig(cfg)
	assert.Equal(t, float32(15), c.Yaw)
	assert.Equal(t, float32(-400), c.Distance)
	assert.Equal(t, float32(0.1), c.DragSensitivity)
	assert.Equal(t, float32(10), c.ZoomStep)
}

func TestPerspectiveAspect(t *testing.T) {
	o := Optics{Fovy: 45, Near: 0.1, Far: 1000}
	wide := Perspective(o, 2)
	square := Perspective(o, 1)
	assert.InDelta(t, square[0]/2, wide[0], 1e-5)

	o.Aspect = 1
	assert.Equal(t, square, Perspective(o, 2), "fixed aspect overrides the viewport")
}

func sin(v float32) float64 { return gomath.Sin(float64(v)) }
func cos(v float32) float64 { return gomath.Cos(float64(v)) }
