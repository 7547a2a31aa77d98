package scene

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/raypick/internal/engine/picking"
	"github.com/Faultbox/raypick/pkg/math"
)

// Hit is the nearest surface hit by a pick ray.
type Hit struct {
	Name     string
	WorldPos math.Vec3
	Distance float32
	Instance *Instance
}

// Pick returns the nearest named instance hit by ray. The ray direction must
// be normalised so Distance is in world units.
func (s *Scene) Pick(ray picking.Ray) (Hit, bool) {
	return s.PickFiltered(ray, nil)
}

// PickFiltered is Pick restricted to instances accepted by keep.
// A nil keep accepts every pickable instance.
func (s *Scene) PickFiltered(ray picking.Ray, keep func(*Instance) bool) (Hit, bool) {
	var (
		best  Hit
		bestT = float32(math32.MaxFloat32)
		found bool
	)

	for _, inst := range s.instances {
		if !inst.Pickable() || (keep != nil && !keep(inst)) {
			continue
		}

		world := inst.World()
		local := ray.Transform(world.Inverse())

		if _, ok := local.IntersectAABB(inst.Mesh.Bounds); !ok {
			continue
		}

		mesh := inst.Mesh
		instT := float32(math32.MaxFloat32)
		instHit := false
		for i := 0; i < mesh.TriangleCount(); i++ {
			v0, v1, v2 := mesh.Triangle(i)
			if t, ok := local.IntersectTriangle(v0, v1, v2); ok && t < instT {
				instT = t
				instHit = true
			}
		}
		if !instHit || instT >= bestT {
			continue
		}

		bestT = instT
		found = true
		best = Hit{
			Name:     inst.Name,
			WorldPos: world.TransformVec3(local.At(instT)),
			Distance: instT,
			Instance: inst,
		}
	}

	return best, found
}
