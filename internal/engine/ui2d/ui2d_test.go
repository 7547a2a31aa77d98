package ui2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtlasLayout(t *testing.T) {
	a := BuildAtlas()
	assert.Equal(t, 7, a.GlyphW)
	assert.Equal(t, 13, a.GlyphH)

	b := a.Image.Bounds()
	assert.Equal(t, atlasColumns*7, b.Dx())
	assert.Equal(t, 6*13, b.Dy()) // 95 glyphs in 16 columns

	u0, v0, u1, v1 := a.UV(' ')
	assert.Equal(t, float32(0), u0)
	assert.Equal(t, float32(0), v0)
	assert.InDelta(t, 1.0/16, u1, 1e-6)
	assert.InDelta(t, 1.0/6, v1, 1e-6)

	// 'A' is glyph 33: column 1, row 2
	u0, v0, _, _ = a.UV('A')
	assert.InDelta(t, 1.0/16, u0, 1e-6)
	assert.InDelta(t, 2.0/6, v0, 1e-6)
}

func TestAtlasUnknownRune(t *testing.T) {
	a := BuildAtlas()
	q0, q1, q2, q3 := a.UV('?')
	u0, u1, u2, u3 := a.UV('é')
	assert.Equal(t, []float32{q0, q1, q2, q3}, []float32{u0, u1, u2, u3})
}

func TestAtlasHasInk(t *testing.T) {
	a := BuildAtlas()
	ink := 0
	for _, p := range a.Image.Pix {
		if p > 0 {
			ink++
		}
	}
	assert.Greater(t, ink, 0, "atlas should contain rasterised glyphs")
}

func TestMeasure(t *testing.T) {
	a := BuildAtlas()

	w, h := a.Measure("", 1)
	assert.Zero(t, w)
	assert.Zero(t, h)

	w, h = a.Measure("abc", 1)
	assert.Equal(t, float32(21), w)
	assert.Equal(t, float32(13), h)

	w, h = a.Measure("ab\nabcd", 2)
	assert.Equal(t, float32(56), w)
	assert.Equal(t, float32(52), h)
}

func TestBatchRect(t *testing.T) {
	var b Batch
	b.Rect(10, 20, 30, 40, ColorWhite)
	require.Equal(t, 6, b.SolidVertices())

	// Second vertex is the top right corner
	assert.Equal(t, []float32{40, 20, 1, 1, 1, 1}, b.Solid[solidStride:2*solidStride])

	b.Reset()
	assert.Zero(t, b.SolidVertices())
	assert.Greater(t, cap(b.Solid), 0)
}

func TestBatchPanel(t *testing.T) {
	var b Batch
	b.Panel(0, 0, 100, 50, ColorPanelBg, ColorPanelBorder)
	// Fill plus four border strips
	assert.Equal(t, 5*6, b.SolidVertices())
}

func TestBatchStringSkipsSpaces(t *testing.T) {
	a := BuildAtlas()
	var b Batch
	b.String(a, 5, 5, 7, 13, "a b\ncd", ColorText)
	assert.Equal(t, 4*6, b.TextVertices())

	// 'c' starts a new line at the original x
	third := b.Text[2*6*textStride:]
	assert.Equal(t, float32(5), third[0])
	assert.Equal(t, float32(18), third[1])
}

func TestPlaceLabel(t *testing.T) {
	tests := []struct {
		name         string
		ax, ay, w, h float32
		wantX, wantY float32
	}{
		{"lower right", 100, 100, 50, 20, 112, 112},
		{"flip left", 780, 100, 50, 20, 718, 112},
		{"flip up", 100, 590, 50, 20, 112, 558},
		{"clamp oversized", 10, 10, 900, 20, 0, 22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := PlaceLabel(tt.ax, tt.ay, tt.w, tt.h, 800, 600)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}
}

func TestOrtho(t *testing.T) {
	m := Ortho(800, 600)
	// Top left pixel maps to (-1, 1), bottom right to (1, -1)
	tx := func(x, y float32) (float32, float32) {
		return m[0]*x + m[4]*y + m[12], m[1]*x + m[5]*y + m[13]
	}
	x, y := tx(0, 0)
	assert.Equal(t, float32(-1), x)
	assert.Equal(t, float32(1), y)
	x, y = tx(800, 600)
	assert.InDelta(t, 1, x, 1e-6)
	assert.InDelta(t, -1, y, 1e-6)
}

func TestColor(t *testing.T) {
	c := RGBA(255, 0, 0, 255)
	assert.Equal(t, Color{1, 0, 0, 1}, c)
	assert.Equal(t, float32(0.5), c.WithAlpha(0.5).A)
	assert.Equal(t, float32(0.25), c.WithAlpha(0.5).Fade(0.5).A)
	assert.Equal(t, Color{1, 1, 0, 1}, RGB3([3]float32{1, 1, 0}))
}
