package ui2d

// Vertex layouts of the two batches.
const (
	solidStride = 6 // x, y, r, g, b, a
	textStride  = 8 // x, y, u, v, r, g, b, a
)

// Glyphs maps runes to atlas texture rectangles.
type Glyphs interface {
	UV(r rune) (u0, v0, u1, v1 float32)
}

// Batch collects the triangles of one overlay frame. It has no GL state so
// layout can be tested headless.
type Batch struct {
	Solid []float32
	Text  []float32
}

// Reset empties both vertex lists, keeping their capacity.
func (b *Batch) Reset() {
	b.Solid = b.Solid[:0]
	b.Text = b.Text[:0]
}

// SolidVertices returns the number of queued solid vertices.
func (b *Batch) SolidVertices() int { return len(b.Solid) / solidStride }

// TextVertices returns the number of queued text vertices.
func (b *Batch) TextVertices() int { return len(b.Text) / textStride }

// Rect queues a filled rectangle.
func (b *Batch) Rect(x, y, w, h float32, c Color) {
	b.Solid = append(b.Solid,
		x, y, c.R, c.G, c.B, c.A,
		x+w, y, c.R, c.G, c.B, c.A,
		x+w, y+h, c.R, c.G, c.B, c.A,

		x, y, c.R, c.G, c.B, c.A,
		x+w, y+h, c.R, c.G, c.B, c.A,
		x, y+h, c.R, c.G, c.B, c.A,
	)
}

// RectOutline queues four edge strips of the given thickness.
func (b *Batch) RectOutline(x, y, w, h, thickness float32, c Color) {
	b.Rect(x, y, w, thickness, c)
	b.Rect(x, y+h-thickness, w, thickness, c)
	b.Rect(x, y+thickness, thickness, h-thickness*2, c)
	b.Rect(x+w-thickness, y+thickness, thickness, h-thickness*2, c)
}

// Panel queues a filled rectangle with a 1px border.
func (b *Batch) Panel(x, y, w, h float32, bg, border Color) {
	b.Rect(x, y, w, h, bg)
	b.RectOutline(x, y, w, h, 1, border)
}

// Glyph queues one textured quad.
func (b *Batch) Glyph(x, y, w, h, u0, v0, u1, v1 float32, c Color) {
	b.Text = append(b.Text,
		x, y, u0, v0, c.R, c.G, c.B, c.A,
		x+w, y, u1, v0, c.R, c.G, c.B, c.A,
		x+w, y+h, u1, v1, c.R, c.G, c.B, c.A,

		x, y, u0, v0, c.R, c.G, c.B, c.A,
		x+w, y+h, u1, v1, c.R, c.G, c.B, c.A,
		x, y+h, u0, v1, c.R, c.G, c.B, c.A,
	)
}

// String queues text with a fixed cell size. Spaces advance without a quad.
func (b *Batch) String(g Glyphs, x, y, cellW, cellH float32, text string, c Color) {
	curX := x
	for _, ch := range text {
		switch ch {
		case '\n':
			curX = x
			y += cellH
			continue
		case ' ':
			curX += cellW
			continue
		}
		u0, v0, u1, v1 := g.UV(ch)
		b.Glyph(curX, y, cellW, cellH, u0, v0, u1, v1, c)
		curX += cellW
	}
}
