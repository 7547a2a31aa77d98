// Package debug provides debug visualization and capture utilities.
package debug

import "github.com/Faultbox/raypick/internal/engine/picking"

// BBoxWireframeVertexCount is the number of vertices for a bbox wireframe (12 edges × 2).
const BBoxWireframeVertexCount = 24

// DefaultBBoxPadding is the padding around a picked object's box.
const DefaultBBoxPadding = 1.0

// GenerateBBoxWireframeVertices creates line vertices for a wireframe bounding box.
// Returns 24 vertices (12 edges × 2 endpoints), format: [x, y, z] per vertex.
func GenerateBBoxWireframeVertices(minX, minY, minZ, maxX, maxY, maxZ float32) []float32 {
	return []float32{
		// Bottom face
		minX, minY, minZ, maxX, minY, minZ,
		maxX, minY, minZ, maxX, minY, maxZ,
		maxX, minY, maxZ, minX, minY, maxZ,
		minX, minY, maxZ, minX, minY, minZ,
		// Top face
		minX, maxY, minZ, maxX, maxY, minZ,
		maxX, maxY, minZ, maxX, maxY, maxZ,
		maxX, maxY, maxZ, minX, maxY, maxZ,
		minX, maxY, maxZ, minX, maxY, minZ,
		// Vertical edges
		minX, minY, minZ, minX, maxY, minZ,
		maxX, minY, minZ, maxX, maxY, minZ,
		maxX, minY, maxZ, maxX, maxY, maxZ,
		minX, minY, maxZ, minX, maxY, maxZ,
	}
}

// WireframeFromAABB creates wireframe vertices for a world-space box grown
// by padding on every side. An empty box yields nil.
func WireframeFromAABB(box picking.AABB, padding float32) []float32 {
	if box.IsEmpty() {
		return nil
	}
	lo, hi := box.Min, box.Max
	return GenerateBBoxWireframeVertices(
		lo.X-padding, lo.Y-padding, lo.Z-padding,
		hi.X+padding, hi.Y+padding, hi.Z+padding,
	)
}
