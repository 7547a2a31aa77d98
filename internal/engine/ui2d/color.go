package ui2d

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// Predefined colors for the overlay.
var (
	ColorTransparent = Color{0, 0, 0, 0}
	ColorWhite       = Color{1, 1, 1, 1}
	ColorBlack       = Color{0, 0, 0, 1}
	ColorYellow      = Color{1, 1, 0, 1}

	ColorPanelBg     = Color{0.05, 0.05, 0.08, 0.85}
	ColorPanelBorder = Color{0.45, 0.45, 0.55, 1}
	ColorText        = Color{0.95, 0.95, 0.95, 1}
	ColorTextDim     = Color{0.6, 0.6, 0.7, 1}
)

// RGBA creates a color from 8-bit RGBA values (0-255).
func RGBA(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: float32(a) / 255.0,
	}
}

// RGB3 creates an opaque color from float RGB components.
func RGB3(c [3]float32) Color {
	return Color{c[0], c[1], c[2], 1}
}

// WithAlpha returns a copy of the color with a different alpha value.
func (c Color) WithAlpha(a float32) Color {
	return Color{c.R, c.G, c.B, a}
}

// Fade scales the alpha by f.
func (c Color) Fade(f float32) Color {
	return Color{c.R, c.G, c.B, c.A * f}
}
