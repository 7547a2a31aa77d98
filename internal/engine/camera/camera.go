// Package camera provides the orbit camera driven by mouse drag and wheel.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/raypick/internal/config"
	"github.com/Faultbox/raypick/pkg/math"
)

// Optics is a perspective projection.
type Optics struct {
	Fovy   float32 // degrees
	Aspect float32 // 0 follows the viewport
	Near   float32
	Far    float32
}

// OrbitCamera orbits the origin. Yaw and pitch are in degrees; Distance
// is signed and the default eye sits on -Z.
type OrbitCamera struct {
	Yaw      float32
	Pitch    float32
	Distance float32

	// Constraints on |Distance|
	MinDistance float32
	MaxDistance float32

	// Sensitivity
	DragSensitivity float32
	ZoomStep        float32

	updated bool
}

// NewOrbitCamera creates an orbit camera with the demo's settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Yaw:             0,
		Pitch:           0,
		Distance:        -400,
		MinDistance:     20,
		MaxDistance:     990,
		DragSensitivity: 0.1,
		ZoomStep:        10,
	}
}

// FromConfig creates an orbit camera from config.
func FromConfig(cfg config.CameraConfig) *OrbitCamera {
	return &OrbitCamera{
		Yaw:             cfg.Yaw,
		Pitch:           cfg.Pitch,
		Distance:        cfg.Distance,
		MinDistance:     cfg.MinDistance,
		MaxDistance:     cfg.MaxDistance,
		DragSensitivity: cfg.DragSensitivity,
		ZoomStep:        cfg.ZoomStep,
	}
}

// HandleDrag applies a mouse delta in pixels (current minus last position).
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw += deltaX * -c.DragSensitivity
	c.Pitch += -deltaY * c.DragSensitivity
	c.updated = true
}

// HandleZoom moves the eye one step per wheel notch. Negative delta
// decrements the signed distance, positive increments it.
func (c *OrbitCamera) HandleZoom(delta float32) {
	switch {
	case delta < 0:
		c.Distance -= c.ZoomStep
	case delta > 0:
		c.Distance += c.ZoomStep
	default:
		return
	}
	c.clampDistance()
	c.updated = true
}

// clampDistance keeps |Distance| within limits without flipping its sign.
func (c *OrbitCamera) clampDistance() {
	sign := float32(1)
	if c.Distance < 0 {
		sign = -1
	}
	mag := math32.Abs(c.Distance)
	if c.MinDistance > 0 && mag < c.MinDistance {
		mag = c.MinDistance
	}
	if c.MaxDistance > 0 && mag > c.MaxDistance {
		mag = c.MaxDistance
	}
	c.Distance = sign * mag
}

// Eye returns RotY(yaw) * RotX(pitch) * (0, 0, distance).
func (c *OrbitCamera) Eye() math.Vec3 {
	rot := math.RotateY(math.Deg2Rad(c.Yaw)).Mul(math.RotateX(math.Deg2Rad(c.Pitch)))
	return rot.TransformVec3(math.Vec3{Z: c.Distance})
}

// Updated reports whether the eye changed since the last Idle.
func (c *OrbitCamera) Updated() bool {
	return c.updated
}

// Invalidate forces the next Idle to report a change.
func (c *OrbitCamera) Invalidate() {
	c.updated = true
}

// Idle returns the new eye and clears the update flag, or changed=false
// when nothing moved since the last call.
func (c *OrbitCamera) Idle() (eye math.Vec3, changed bool) {
	if !c.updated {
		return math.Vec3{}, false
	}
	c.updated = false
	return c.Eye(), true
}

// Perspective returns the projection for optics. A positive optics aspect
// wins over the viewport aspect.
func Perspective(o Optics, viewportAspect float32) math.Mat4 {
	aspect := o.Aspect
	if aspect <= 0 {
		aspect = viewportAspect
	}
	if aspect <= 0 {
		aspect = 1
	}
	return math.Perspective(math.Deg2Rad(o.Fovy), aspect, o.Near, o.Far)
}
