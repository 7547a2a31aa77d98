package picking

import "github.com/Faultbox/raypick/pkg/math"

// Project maps a world-space point to canvas pixel coordinates, origin top-left.
// ok is false when the point lies behind the camera.
func Project(world math.Vec3, viewProj math.Mat4, viewportW, viewportH float32) (x, y float32, ok bool) {
	clip := viewProj.MulVec4(math.Vec4{world.X, world.Y, world.Z, 1})
	if clip[3] <= 0 {
		return 0, 0, false
	}
	ndcX := clip[0] / clip[3]
	ndcY := clip[1] / clip[3]

	x = (ndcX + 1) * 0.5 * viewportW
	y = (1 - ndcY) * 0.5 * viewportH
	return x, y, true
}
