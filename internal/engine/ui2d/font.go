package ui2d

import (
	"image"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Atlas layout: printable ASCII in a 16 column grid.
const (
	firstGlyph   = ' '
	lastGlyph    = '~'
	atlasColumns = 16
)

// Atlas is a rasterised fixed-width glyph sheet.
type Atlas struct {
	Image   *image.Alpha
	GlyphW  int
	GlyphH  int
	columns int
}

// BuildAtlas rasterises basicfont's 7x13 face into an alpha image.
func BuildAtlas() *Atlas {
	face := basicfont.Face7x13
	gw, gh := face.Advance, face.Height
	count := int(lastGlyph-firstGlyph) + 1
	rows := (count + atlasColumns - 1) / atlasColumns

	img := image.NewAlpha(image.Rect(0, 0, atlasColumns*gw, rows*gh))
	d := &font.Drawer{Dst: img, Src: image.Opaque, Face: face}

	for i := 0; i < count; i++ {
		col, row := i%atlasColumns, i/atlasColumns
		d.Dot = fixed.P(col*gw, row*gh+face.Ascent)
		d.DrawString(string(rune(firstGlyph + i)))
	}

	return &Atlas{Image: img, GlyphW: gw, GlyphH: gh, columns: atlasColumns}
}

// UV returns the texture rectangle of r. Runes outside the atlas map to '?'.
func (a *Atlas) UV(r rune) (u0, v0, u1, v1 float32) {
	if r < firstGlyph || r > lastGlyph {
		r = '?'
	}
	i := int(r - firstGlyph)
	col, row := i%a.columns, i/a.columns

	b := a.Image.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	u0 = float32(col*a.GlyphW) / w
	v0 = float32(row*a.GlyphH) / h
	u1 = float32((col+1)*a.GlyphW) / w
	v1 = float32((row+1)*a.GlyphH) / h
	return u0, v0, u1, v1
}

// Measure returns the size of multi-line text at scale.
func (a *Atlas) Measure(text string, scale float32) (float32, float32) {
	if text == "" {
		return 0, 0
	}
	lines := strings.Split(text, "\n")
	longest := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > longest {
			longest = n
		}
	}
	return float32(longest*a.GlyphW) * scale, float32(len(lines)*a.GlyphH) * scale
}

// Font is an Atlas uploaded as a GL texture.
type Font struct {
	*Atlas
	texture uint32
}

// NewFont builds the atlas and uploads it. Requires a current GL context.
func NewFont() *Font {
	atlas := BuildAtlas()
	f := &Font{Atlas: atlas}

	b := atlas.Image.Bounds()
	gl.GenTextures(1, &f.texture)
	gl.BindTexture(gl.TEXTURE_2D, f.texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RED, gl.UNSIGNED_BYTE, unsafe.Pointer(&atlas.Image.Pix[0]))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return f
}

// TextureID returns the GL texture of the atlas.
func (f *Font) TextureID() uint32 {
	return f.texture
}

// GlyphSize returns the cell size of one glyph in pixels.
func (f *Font) GlyphSize() (int, int) {
	return f.GlyphW, f.GlyphH
}

// GetGlyphUV returns the texture rectangle of r.
func (f *Font) GetGlyphUV(r rune) (u0, v0, u1, v1 float32) {
	return f.UV(r)
}

// MeasureText returns the width and height of rendered text.
func (f *Font) MeasureText(text string, scale float32) (float32, float32) {
	return f.Measure(text, scale)
}

// Close deletes the texture.
func (f *Font) Close() {
	if f.texture != 0 {
		gl.DeleteTextures(1, &f.texture)
		f.texture = 0
	}
}
