// Package app runs the ray picking demo: it owns the window, the render loop,
// input routing and the scene the user interacts with.
package app

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/raypick/internal/engine/camera"
	"github.com/Faultbox/raypick/internal/engine/picking"
	"github.com/Faultbox/raypick/internal/logger"
	"github.com/Faultbox/raypick/internal/scene"
	"github.com/Faultbox/raypick/pkg/math"
)

// ErrMissingNode is returned when a scene lacks a node the demo drives.
var ErrMissingNode = errors.New("scene is missing a required node")

// View is the camera state of one frame. Width and Height are in window
// coordinates, the space mouse events use.
type View struct {
	View       math.Mat4
	Projection math.Mat4
	Width      float32
	Height     float32
}

// ViewProj returns projection * view.
func (v View) ViewProj() math.Mat4 {
	return v.Projection.Mul(v.View)
}

// Session is a built scene plus the nodes a pick mutates.
type Session struct {
	Scene     *scene.Scene
	Indicator *scene.Transform
	LookAt    *scene.LookAt
	Highlight *scene.Shader
	Label     Label

	indicatorPickable bool
	picked            *scene.Instance
	log               *zap.Logger
}

// NewSession resolves the indicator translate, the look-at and the
// highlight shader of s.
func NewSession(s *scene.Scene, indicatorPickable bool) (*Session, error) {
	ind, ok := s.FindTransform(scene.IDIndicator)
	if !ok {
		return nil, fmt.Errorf("%w: translate %q", ErrMissingNode, scene.IDIndicator)
	}
	lookAt, ok := s.FindLookAt(scene.IDLookAt)
	if !ok {
		return nil, fmt.Errorf("%w: look_at %q", ErrMissingNode, scene.IDLookAt)
	}
	hl, ok := s.FindShader(scene.IDHighlightShader)
	if !ok {
		return nil, fmt.Errorf("%w: shader %q", ErrMissingNode, scene.IDHighlightShader)
	}

	return &Session{
		Scene:             s,
		Indicator:         ind,
		LookAt:            lookAt,
		Highlight:         hl,
		indicatorPickable: indicatorPickable,
		log:               logger.Named("pick"),
	}, nil
}

// View returns the frame's camera matrices. aspect > 0 fixes the projection
// aspect, otherwise the window's is used.
func (s *Session) View(aspect float32, width, height int) View {
	o := s.Scene.Optics()
	proj := camera.Perspective(camera.Optics{
		Fovy:   o.Fovy,
		Aspect: aspect,
		Near:   o.Near,
		Far:    o.Far,
	}, float32(width)/float32(height))

	return View{
		View:       s.LookAt.ViewMatrix(),
		Projection: proj,
		Width:      float32(width),
		Height:     float32(height),
	}
}

// PickAt runs one pick query through canvas position x, y. A hit moves the
// indicator and the highlight centre to the hit point and shows the label;
// a miss only hides the label.
func (s *Session) PickAt(x, y int, v View) (scene.Hit, bool) {
	ray := picking.ScreenToRay(float32(x), float32(y), v.Width, v.Height, v.ViewProj().Inverse())

	var (
		hit scene.Hit
		ok  bool
	)
	if s.indicatorPickable {
		hit, ok = s.Scene.Pick(ray)
	} else {
		hit, ok = s.Scene.PickFiltered(ray, notIndicator)
	}

	if !ok {
		s.log.Debug("pick missed", zap.Int("x", x), zap.Int("y", y))
		s.Label.Hide()
		return hit, false
	}

	s.Indicator.Set(hit.WorldPos)
	s.Highlight.SetHighlightWorldPos(hit.WorldPos)
	s.picked = hit.Instance

	cx, cy := float32(x), float32(y)
	s.Label.Show(FormatHitInfo(hit.Name, cx, cy, hit.WorldPos), cx, cy)

	s.log.Debug("pick hit",
		zap.String("name", hit.Name),
		zap.Float32("x", hit.WorldPos.X),
		zap.Float32("y", hit.WorldPos.Y),
		zap.Float32("z", hit.WorldPos.Z),
		zap.Float32("distance", hit.Distance),
	)
	return hit, true
}

func notIndicator(inst *scene.Instance) bool {
	return inst.Name != scene.NameIndicator
}

// ApplyEye moves the look-at eye after the camera changed and hides the
// label, whose canvas position is stale.
func (s *Session) ApplyEye(eye math.Vec3) {
	s.LookAt.SetEye(eye)
	s.Label.Hide()
}

// Picked returns the instance of the last hit, nil before the first.
func (s *Session) Picked() *scene.Instance {
	return s.picked
}

// LabelAnchor returns where the label is drawn. It follows the indicator
// while it is on screen and falls back to the click position.
func (s *Session) LabelAnchor(v View) (float32, float32) {
	if x, y, ok := picking.Project(s.Indicator.Vec(), v.ViewProj(), v.Width, v.Height); ok {
		return x, y
	}
	return s.Label.X, s.Label.Y
}
