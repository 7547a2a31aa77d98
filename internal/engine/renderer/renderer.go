// Package renderer provides OpenGL rendering of the runtime scene.
package renderer

import (
	_ "embed"
	"fmt"
	"strconv"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/raypick/internal/engine/geometry"
	"github.com/Faultbox/raypick/internal/engine/shader"
	"github.com/Faultbox/raypick/internal/logger"
	"github.com/Faultbox/raypick/internal/scene"
	"github.com/Faultbox/raypick/pkg/math"
)

// MaxLights is the number of lights the Phong program evaluates.
const MaxLights = 4

var (
	//go:embed shaders/phong.vert
	phongVert string
	//go:embed shaders/phong.frag
	phongFrag string
	//go:embed shaders/line.vert
	lineVert string
	//go:embed shaders/line.frag
	lineFrag string
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor [3]float32
}

// gpuMesh is an uploaded mesh.
type gpuMesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

// Camera is the view state for one frame.
type Camera struct {
	View       math.Mat4
	Projection math.Mat4
	Eye        math.Vec3
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	phong *shader.Program
	lines *shader.Program

	meshes map[*geometry.Mesh]*gpuMesh

	lineVAO uint32
	lineVBO uint32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		meshes: make(map[*geometry.Mesh]*gpuMesh),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.MULTISAMPLE)
	gl.ClearColor(cfg.ClearColor[0], cfg.ClearColor[1], cfg.ClearColor[2], 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	defines := map[string]string{"MAX_LIGHTS": strconv.Itoa(MaxLights)}
	if r.phong, err = shader.NewProgram(phongVert, phongFrag, defines); err != nil {
		return nil, fmt.Errorf("phong program: %w", err)
	}
	if r.lines, err = shader.NewProgram(lineVert, lineFrag, nil); err != nil {
		r.phong.Delete()
		return nil, fmt.Errorf("line program: %w", err)
	}

	gl.GenVertexArrays(1, &r.lineVAO)
	gl.GenBuffers(1, &r.lineVBO)
	gl.BindVertexArray(r.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() error {
	logger.Info("closing renderer", zap.Int("meshes", len(r.meshes)))
	r.ReleaseMeshes()
	if r.lineVAO != 0 {
		gl.DeleteVertexArrays(1, &r.lineVAO)
		gl.DeleteBuffers(1, &r.lineVBO)
		r.lineVAO, r.lineVBO = 0, 0
	}
	if r.phong != nil {
		r.phong.Delete()
	}
	if r.lines != nil {
		r.lines.Delete()
	}
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("GL error 0x%x during renderer shutdown", code)
	}
	return nil
}

// Upload sends a mesh to the GPU once.
func (r *Renderer) Upload(m *geometry.Mesh) error {
	if _, ok := r.meshes[m]; ok {
		return nil
	}
	if len(m.Indices) == 0 {
		return fmt.Errorf("mesh %q has no triangles", m.Name)
	}

	data := m.Interleaved()
	g := &gpuMesh{indexCount: int32(len(m.Indices))}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	// Position (location = 0), normal (location = 1)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 6*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 6*4, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	r.meshes[m] = g

	logger.Debug("mesh uploaded",
		zap.String("mesh", m.Name),
		zap.Int("vertices", len(m.Positions)),
		zap.Int("triangles", m.TriangleCount()),
	)
	return nil
}

// UploadScene uploads every mesh the scene draws.
func (r *Renderer) UploadScene(s *scene.Scene) error {
	for _, inst := range s.Instances() {
		if err := r.Upload(inst.Mesh); err != nil {
			return err
		}
	}
	return nil
}

// ReleaseMeshes frees all uploaded meshes.
func (r *Renderer) ReleaseMeshes() {
	for m, g := range r.meshes {
		gl.DeleteVertexArrays(1, &g.vao)
		gl.DeleteBuffers(1, &g.vbo)
		gl.DeleteBuffers(1, &g.ebo)
		delete(r.meshes, m)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the viewport size in pixels.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Enable(gl.DEPTH_TEST)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawScene draws every instance with the scene lights.
func (r *Renderer) DrawScene(s *scene.Scene, cam Camera) {
	p := r.phong
	p.Use()

	gl.UniformMatrix4fv(p.Uniform("uView"), 1, false, cam.View.Ptr())
	gl.UniformMatrix4fv(p.Uniform("uProj"), 1, false, cam.Projection.Ptr())
	gl.Uniform3f(p.Uniform("uEyePos"), cam.Eye.X, cam.Eye.Y, cam.Eye.Z)

	lu := packLights(s.Lights())
	gl.Uniform3fv(p.Uniform("uAmbient"), 1, &lu.ambient[0])
	gl.Uniform1i(p.Uniform("uLightCount"), int32(lu.count))
	if lu.count > 0 {
		gl.Uniform3fv(p.Uniform("uLightDir"), int32(lu.count), &lu.dirs[0])
		gl.Uniform3fv(p.Uniform("uLightColor"), int32(lu.count), &lu.colors[0])
		gl.Uniform1iv(p.Uniform("uLightDiffuse"), int32(lu.count), &lu.diffuse[0])
		gl.Uniform1iv(p.Uniform("uLightSpecular"), int32(lu.count), &lu.specular[0])
	}

	for _, inst := range s.Instances() {
		g, ok := r.meshes[inst.Mesh]
		if !ok {
			continue
		}

		model := inst.World()
		normal := model.NormalMatrix()
		gl.UniformMatrix4fv(p.Uniform("uModel"), 1, false, model.Ptr())
		gl.UniformMatrix4fv(p.Uniform("uNormalMatrix"), 1, false, normal.Ptr())

		mat := inst.Material
		gl.Uniform3fv(p.Uniform("uBaseColor"), 1, &mat.BaseColor[0])
		gl.Uniform3fv(p.Uniform("uSpecularColor"), 1, &mat.SpecularColor[0])
		gl.Uniform1f(p.Uniform("uSpecular"), mat.Specular)
		gl.Uniform1f(p.Uniform("uShine"), mat.Shine)

		if sh := inst.Shader; sh != nil {
			gl.Uniform1i(p.Uniform("uHighlightEnabled"), 1)
			pos := sh.HighlightWorldPos
			gl.Uniform3f(p.Uniform("uHighlightWorldPos"), pos.X, pos.Y, pos.Z)
			gl.Uniform1f(p.Uniform("uHighlightRadius"), sh.HighlightRadius)
			gl.Uniform3fv(p.Uniform("uHighlightColor"), 1, &sh.HighlightColor[0])
		} else {
			gl.Uniform1i(p.Uniform("uHighlightEnabled"), 0)
		}

		gl.BindVertexArray(g.vao)
		gl.DrawElements(gl.TRIANGLES, g.indexCount, gl.UNSIGNED_INT, nil)
	}
	gl.BindVertexArray(0)
}

// DrawLines draws a line list (x, y, z per vertex) in a flat color.
func (r *Renderer) DrawLines(vertices []float32, color [3]float32, viewProj math.Mat4) {
	if len(vertices) < 6 {
		return
	}
	r.lines.Use()
	gl.UniformMatrix4fv(r.lines.Uniform("uViewProj"), 1, false, viewProj.Ptr())
	gl.Uniform3fv(r.lines.Uniform("uColor"), 1, &color[0])

	gl.BindVertexArray(r.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STREAM_DRAW)
	gl.DrawArrays(gl.LINES, 0, int32(len(vertices)/3))
	gl.BindVertexArray(0)
}

// ReadPixels reads the current framebuffer as RGBA, bottom row first.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}
