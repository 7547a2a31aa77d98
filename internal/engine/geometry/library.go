package geometry

import (
	"fmt"
	"sync"
)

// Primitive kinds understood by Library.Get.
const (
	KindTeapot = "teapot"
	KindSphere = "sphere"
	KindBox    = "box"
	KindMesh   = "mesh"
)

// Library caches meshes so each primitive is built and uploaded once.
type Library struct {
	mu     sync.Mutex
	meshes map[string]*Mesh
	load   func(path string) (*Mesh, error)
}

// NewLibrary creates an empty mesh library that loads files with LoadGLTF.
func NewLibrary() *Library {
	return &Library{
		meshes: make(map[string]*Mesh),
		load:   LoadGLTF,
	}
}

// Get returns the mesh for a primitive kind, building it on first use.
// src is only used by KindMesh.
func (l *Library) Get(kind, src string) (*Mesh, error) {
	key := kind
	if kind == KindMesh {
		key = kind + ":" + src
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if m, ok := l.meshes[key]; ok {
		return m, nil
	}

	var (
		m   *Mesh
		err error
	)
	switch kind {
	case KindTeapot:
		m = Teapot()
	case KindSphere:
		m = Sphere(16, 24)
	case KindBox:
		m = Box()
	case KindMesh:
		if src == "" {
			return nil, fmt.Errorf("mesh primitive requires a src path")
		}
		m, err = l.load(src)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown primitive %q", kind)
	}

	l.meshes[key] = m
	return m, nil
}

// Meshes returns every mesh built so far.
func (l *Library) Meshes() []*Mesh {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]*Mesh, 0, len(l.meshes))
	for _, m := range l.meshes {
		out = append(out, m)
	}
	return out
}
