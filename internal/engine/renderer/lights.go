package renderer

import "github.com/Faultbox/raypick/internal/scene"

// lightUniforms is the packed form of the scene lights.
type lightUniforms struct {
	count    int
	ambient  [3]float32
	dirs     []float32
	colors   []float32
	diffuse  []int32
	specular []int32
}

// packLights flattens directional lights into uniform arrays, up to
// MaxLights. Ambient lights are summed.
func packLights(lights []scene.Light) lightUniforms {
	var lu lightUniforms
	for _, l := range lights {
		if l.Mode == "ambient" {
			for i := range lu.ambient {
				lu.ambient[i] += l.Color[i]
			}
			continue
		}
		if lu.count == MaxLights {
			continue
		}
		lu.dirs = append(lu.dirs, l.Dir.X, l.Dir.Y, l.Dir.Z)
		lu.colors = append(lu.colors, l.Color[0], l.Color[1], l.Color[2])
		lu.diffuse = append(lu.diffuse, boolInt(l.Diffuse))
		lu.specular = append(lu.specular, boolInt(l.Specular))
		lu.count++
	}
	return lu
}

func boolInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
