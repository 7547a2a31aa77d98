package app

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/raypick/internal/config"
	"github.com/Faultbox/raypick/internal/engine/geometry"
	"github.com/Faultbox/raypick/internal/engine/picking"
	"github.com/Faultbox/raypick/internal/scene"
	"github.com/Faultbox/raypick/pkg/math"
)

const (
	testWidth  = 800
	testHeight = 600
)

func newDemoSession(t *testing.T, indicatorPickable bool) *Session {
	t.Helper()
	desc := scene.DemoDescription(config.Default(), rand.New(rand.NewPCG(7, 7)))
	s, err := scene.Build(desc, geometry.NewLibrary())
	require.NoError(t, err)
	session, err := NewSession(s, indicatorPickable)
	require.NoError(t, err)
	return session
}

// screenOf returns the canvas position of a world point.
func screenOf(t *testing.T, v View, p math.Vec3) (int, int) {
	t.Helper()
	x, y, ok := picking.Project(p, v.ViewProj(), v.Width, v.Height)
	require.True(t, ok)
	return int(x + 0.5), int(y + 0.5)
}

func TestNewSessionMissingNodes(t *testing.T) {
	desc := (&scene.Node{Type: scene.TypeScene}).Add(&scene.Node{Type: scene.TypeBox})
	s, err := scene.Build(desc, geometry.NewLibrary())
	require.NoError(t, err)

	_, err = NewSession(s, true)
	assert.ErrorIs(t, err, ErrMissingNode)
}

func TestPickAtHitMovesIndicatorAndHighlight(t *testing.T) {
	s := newDemoSession(t, true)
	v := s.View(0, testWidth, testHeight)

	x, y := screenOf(t, v, math.Vec3{X: -50, Y: -50, Z: -250})
	hit, ok := s.PickAt(x, y, v)
	require.True(t, ok)
	assert.Equal(t, "object_-50_-50_-250", hit.Name)

	// Same values, verbatim
	assert.Equal(t, hit.WorldPos, s.Indicator.Vec())
	assert.Equal(t, hit.WorldPos, s.Highlight.HighlightWorldPos)
	assert.Same(t, hit.Instance, s.Picked())

	assert.True(t, s.Label.Visible)
	assert.Contains(t, s.Label.Text, `name: "object_-50_-50_-250"`)
	assert.Equal(t, float32(x), s.Label.X)
	assert.Equal(t, float32(y), s.Label.Y)
}

func TestPickAtMissHidesLabelOnly(t *testing.T) {
	s := newDemoSession(t, true)
	v := s.View(0, testWidth, testHeight)

	x, y := screenOf(t, v, math.Vec3{X: 50, Y: 50, Z: -250})
	_, ok := s.PickAt(x, y, v)
	require.True(t, ok)
	indicator := s.Indicator.Vec()
	highlight := s.Highlight.HighlightWorldPos

	// The grid has no cell on the view axis
	_, ok = s.PickAt(testWidth/2, testHeight/2, v)
	assert.False(t, ok)
	assert.False(t, s.Label.Visible)
	assert.Equal(t, indicator, s.Indicator.Vec())
	assert.Equal(t, highlight, s.Highlight.HighlightWorldPos)
}

func TestPickAtIndicatorPickable(t *testing.T) {
	for _, pickable := range []bool{true, false} {
		s := newDemoSession(t, pickable)
		v := s.View(0, testWidth, testHeight)

		// Park the indicator between the eye and a teapot
		s.Indicator.Set(math.Vec3{X: -25, Y: -25, Z: -325})
		x, y := screenOf(t, v, math.Vec3{X: -50, Y: -50, Z: -250})

		hit, ok := s.PickAt(x, y, v)
		require.True(t, ok)
		if pickable {
			assert.Equal(t, scene.NameIndicator, hit.Name)
		} else {
			assert.Equal(t, "object_-50_-50_-250", hit.Name)
		}
	}
}

func TestApplyEyeHidesLabel(t *testing.T) {
	s := newDemoSession(t, true)
	s.Label.Show("x", 1, 1)

	eye := math.Vec3{X: 10, Y: 20, Z: -300}
	s.ApplyEye(eye)
	assert.Equal(t, eye, s.LookAt.Eye)
	assert.False(t, s.Label.Visible)
}

func TestViewAspect(t *testing.T) {
	s := newDemoSession(t, true)

	// Wider viewport, narrower x scale
	free := s.View(0, 1600, 800)
	fixed := s.View(1, 1600, 800)
	assert.InDelta(t, fixed.Projection[0]/2, free.Projection[0], 1e-5)
	assert.Equal(t, fixed.Projection[5], free.Projection[5])
}

func TestLabelAnchorFollowsIndicator(t *testing.T) {
	s := newDemoSession(t, true)
	v := s.View(0, testWidth, testHeight)

	x, y := screenOf(t, v, math.Vec3{X: 50, Y: -50, Z: -250})
	_, ok := s.PickAt(x, y, v)
	require.True(t, ok)

	ax, ay := s.LabelAnchor(v)
	assert.InDelta(t, float32(x), ax, 2)
	assert.InDelta(t, float32(y), ay, 2)
}
