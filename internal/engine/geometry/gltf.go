package geometry

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/Faultbox/raypick/pkg/math"
)

// ErrNoTriangles is returned when a glTF file holds no triangle primitives.
var ErrNoTriangles = errors.New("gltf: no triangle primitives")

// LoadGLTF loads every triangle primitive of the first mesh in a .gltf/.glb file.
func LoadGLTF(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if len(doc.Meshes) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoTriangles)
	}

	out := &Mesh{Name: filepath.Base(path)}
	hasNormals := true

	for _, prim := range doc.Meshes[0].Primitives {
		if prim.Mode != gltf.PrimitiveTriangles {
			continue
		}
		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
		if err != nil {
			return nil, fmt.Errorf("read positions: %w", err)
		}

		base := uint32(len(out.Positions))
		for _, p := range positions {
			out.Positions = append(out.Positions, math.V3(p))
		}

		if normIdx, ok := prim.Attributes[gltf.NORMAL]; ok && hasNormals {
			normals, err := modeler.ReadNormal(doc, doc.Accessors[normIdx], nil)
			if err != nil {
				return nil, fmt.Errorf("read normals: %w", err)
			}
			for _, n := range normals {
				out.Normals = append(out.Normals, math.V3(n))
			}
		} else {
			hasNormals = false
		}

		if prim.Indices != nil {
			indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
			if err != nil {
				return nil, fmt.Errorf("read indices: %w", err)
			}
			for _, idx := range indices {
				out.Indices = append(out.Indices, base+idx)
			}
		} else {
			for i := range positions {
				out.Indices = append(out.Indices, base+uint32(i))
			}
		}
	}

	if len(out.Indices) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoTriangles)
	}
	if !hasNormals || len(out.Normals) != len(out.Positions) {
		out.ComputeNormals()
	}
	out.ComputeBounds()
	return out, nil
}
