package ui2d

// LabelOffset is the gap between the anchor point and the label box.
const LabelOffset = 12

// PlaceLabel positions a w x h box to the lower right of the anchor,
// flipping to the other side of the anchor when it would leave the screen
// and clamping to the screen edges.
func PlaceLabel(anchorX, anchorY, w, h float32, screenW, screenH int) (x, y float32) {
	sw, sh := float32(screenW), float32(screenH)

	x = anchorX + LabelOffset
	if x+w > sw {
		x = anchorX - LabelOffset - w
	}
	y = anchorY + LabelOffset
	if y+h > sh {
		y = anchorY - LabelOffset - h
	}

	x = clampf(x, 0, sw-w)
	y = clampf(y, 0, sh-h)
	return x, y
}

func clampf(v, lo, hi float32) float32 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Ortho returns a column-major projection mapping pixels, origin top left,
// to clip space.
func Ortho(width, height int) [16]float32 {
	w, h := float32(width), float32(height)
	return [16]float32{
		2 / w, 0, 0, 0,
		0, -2 / h, 0, 0,
		0, 0, -1, 0,
		-1, 1, 0, 1,
	}
}
