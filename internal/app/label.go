package app

import (
	"fmt"
	"strconv"

	"github.com/chewxy/math32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/Faultbox/raypick/pkg/math"
)

// labelFadeSeconds is the fade-in time of a freshly shown label.
const labelFadeSeconds = 0.15

// RoundTenth rounds half up to one decimal place.
func RoundTenth(v float32) float32 {
	return math32.Floor(v*10+0.5) / 10
}

// formatNumber prints a rounded value in its shortest form.
func formatNumber(v float32) string {
	r := RoundTenth(v)
	if r == 0 {
		r = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(float64(r), 'f', -1, 32)
}

// FormatHitInfo renders the text of the hit label.
func FormatHitInfo(name string, canvasX, canvasY float32, world math.Vec3) string {
	return fmt.Sprintf("Hit info:\n\nname: \"%s\"\ncanvasPos : %s, %s\nworldPos : %s, %s, %s",
		name,
		formatNumber(canvasX), formatNumber(canvasY),
		formatNumber(world.X), formatNumber(world.Y), formatNumber(world.Z),
	)
}

// Label is the on-screen pick readout anchored at a canvas position.
type Label struct {
	Visible bool
	Text    string
	X, Y    float32

	alpha float32
	fade  *gween.Tween
}

// Show replaces the label text and restarts the fade-in.
func (l *Label) Show(text string, x, y float32) {
	l.Visible = true
	l.Text = text
	l.X, l.Y = x, y
	l.alpha = 0
	l.fade = gween.New(0, 1, labelFadeSeconds, ease.OutQuad)
}

// Hide hides the label. The text is kept.
func (l *Label) Hide() {
	l.Visible = false
	l.fade = nil
}

// Update advances the fade by dt seconds.
func (l *Label) Update(dt float32) {
	if l.fade == nil {
		return
	}
	v, done := l.fade.Update(dt)
	l.alpha = v
	if done {
		l.alpha = 1
		l.fade = nil
	}
}

// Alpha returns the current opacity, 0 when hidden.
func (l *Label) Alpha() float32 {
	if !l.Visible {
		return 0
	}
	return l.alpha
}
