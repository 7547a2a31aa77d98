// Package ui2d draws the screen-space overlay: panels and bitmap text.
package ui2d

import (
	_ "embed"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/raypick/internal/engine/shader"
)

var (
	//go:embed shaders/solid.vert
	solidVert string
	//go:embed shaders/solid.frag
	solidFrag string
	//go:embed shaders/text.vert
	textVert string
	//go:embed shaders/text.frag
	textFrag string
)

// Renderer flushes a Batch with two GL programs.
type Renderer struct {
	screenWidth  int
	screenHeight int

	solid *shader.Program
	text  *shader.Program

	solidVAO, solidVBO uint32
	textVAO, textVBO   uint32

	font  *Font
	batch Batch
}

// New creates the overlay renderer. Requires a current GL context.
func New(width, height int) (*Renderer, error) {
	r := &Renderer{
		screenWidth:  width,
		screenHeight: height,
		batch: Batch{
			Solid: make([]float32, 0, 1024),
			Text:  make([]float32, 0, 4096),
		},
	}

	var err error
	if r.solid, err = shader.NewProgram(solidVert, solidFrag, nil); err != nil {
		return nil, fmt.Errorf("solid shader: %w", err)
	}
	if r.text, err = shader.NewProgram(textVert, textFrag, nil); err != nil {
		r.solid.Delete()
		return nil, fmt.Errorf("text shader: %w", err)
	}

	r.solidVAO, r.solidVBO = newVertexArray(solidStride, 2, 4)
	r.textVAO, r.textVBO = newVertexArray(textStride, 2, 2, 4)
	r.font = NewFont()

	return r, nil
}

// newVertexArray creates a VAO with float attributes of the given sizes at
// consecutive locations.
func newVertexArray(stride int, sizes ...int32) (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	offset := 0
	for i, size := range sizes {
		gl.VertexAttribPointerWithOffset(uint32(i), size, gl.FLOAT, false, int32(stride*4), uintptr(offset*4))
		gl.EnableVertexAttribArray(uint32(i))
		offset += int(size)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return vao, vbo
}

// Resize updates the screen dimensions.
func (r *Renderer) Resize(width, height int) {
	r.screenWidth = width
	r.screenHeight = height
}

// ScreenSize returns the current screen dimensions.
func (r *Renderer) ScreenSize() (int, int) {
	return r.screenWidth, r.screenHeight
}

// Begin starts a new overlay frame.
func (r *Renderer) Begin() {
	r.batch.Reset()
}

// DrawRect draws a filled rectangle.
func (r *Renderer) DrawRect(x, y, w, h float32, c Color) {
	r.batch.Rect(x, y, w, h, c)
}

// DrawPanel draws a panel with border.
func (r *Renderer) DrawPanel(x, y, w, h float32, bg, border Color) {
	r.batch.Panel(x, y, w, h, bg, border)
}

// DrawText draws text with its top left corner at x, y.
func (r *Renderer) DrawText(x, y float32, text string, scale float32, c Color) {
	gw, gh := r.font.GlyphSize()
	r.batch.String(r.font, x, y, float32(gw)*scale, float32(gh)*scale, text, c)
}

// MeasureText returns the width and height of rendered text.
func (r *Renderer) MeasureText(text string, scale float32) (float32, float32) {
	return r.font.MeasureText(text, scale)
}

// End renders everything queued since Begin over the current frame.
func (r *Renderer) End() {
	if len(r.batch.Solid) == 0 && len(r.batch.Text) == 0 {
		return
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	proj := Ortho(r.screenWidth, r.screenHeight)

	if n := r.batch.SolidVertices(); n > 0 {
		r.solid.Use()
		gl.UniformMatrix4fv(r.solid.Uniform("uProjection"), 1, false, &proj[0])
		upload(r.solidVAO, r.solidVBO, r.batch.Solid)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(n))
	}

	if n := r.batch.TextVertices(); n > 0 {
		r.text.Use()
		gl.UniformMatrix4fv(r.text.Uniform("uProjection"), 1, false, &proj[0])
		gl.Uniform1i(r.text.Uniform("uTexture"), 0)
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, r.font.TextureID())
		upload(r.textVAO, r.textVBO, r.batch.Text)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(n))
	}

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.UseProgram(0)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

func upload(vao, vbo uint32, verts []float32) {
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, unsafe.Pointer(&verts[0]), gl.STREAM_DRAW)
}

// Close releases renderer resources.
func (r *Renderer) Close() {
	r.font.Close()
	gl.DeleteVertexArrays(1, &r.solidVAO)
	gl.DeleteBuffers(1, &r.solidVBO)
	gl.DeleteVertexArrays(1, &r.textVAO)
	gl.DeleteBuffers(1, &r.textVBO)
	r.solid.Delete()
	r.text.Delete()
}
