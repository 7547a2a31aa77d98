package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/raypick/pkg/math"
)

func TestRoundTenth(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{1.24, 1.2},
		{1.25, 1.3},
		{-1.25, -1.2},
		{-1.26, -1.3},
		{12, 12},
		{-249.96, -250},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, RoundTenth(tt.in), 1e-4, "RoundTenth(%v)", tt.in)
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "12", formatNumber(12))
	assert.Equal(t, "-3.5", formatNumber(-3.5))
	assert.Equal(t, "0", formatNumber(-0.01))
	assert.Equal(t, "0.1", formatNumber(0.05))
}

func TestFormatHitInfo(t *testing.T) {
	got := FormatHitInfo("object_50_50_-250", 640, 435.04, math.Vec3{X: 47.26, Y: 52, Z: -0.02})
	want := "Hit info:\n\n" +
		"name: \"object_50_50_-250\"\n" +
		"canvasPos : 640, 435\n" +
		"worldPos : 47.3, 52, 0"
	assert.Equal(t, want, got)
}

func TestFormatHitInfoNameIsVerbatim(t *testing.T) {
	got := FormatHitInfo(`a"b\c`+"\t", 0, 0, math.Vec3{})
	assert.Contains(t, got, "name: \"a\"b\\c\t\"\n")
}

func TestLabelFade(t *testing.T) {
	var l Label
	assert.Zero(t, l.Alpha())

	l.Show("hello", 10, 20)
	assert.True(t, l.Visible)
	assert.Equal(t, float32(10), l.X)
	assert.Zero(t, l.Alpha())

	l.Update(labelFadeSeconds / 2)
	mid := l.Alpha()
	// OutQuad is past the linear midpoint halfway through
	assert.Greater(t, mid, float32(0.5))
	assert.Less(t, mid, float32(1))

	l.Update(labelFadeSeconds)
	assert.Equal(t, float32(1), l.Alpha())

	l.Hide()
	assert.False(t, l.Visible)
	assert.Zero(t, l.Alpha())
	assert.Equal(t, "hello", l.Text)

	// Update on a hidden label is a no-op
	l.Update(1)
	assert.Zero(t, l.Alpha())
}
