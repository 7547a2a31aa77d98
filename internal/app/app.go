package app

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/sqweek/dialog"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/raypick/internal/config"
	"github.com/Faultbox/raypick/internal/engine/audio"
	"github.com/Faultbox/raypick/internal/engine/camera"
	"github.com/Faultbox/raypick/internal/engine/debug"
	"github.com/Faultbox/raypick/internal/engine/geometry"
	"github.com/Faultbox/raypick/internal/engine/input"
	"github.com/Faultbox/raypick/internal/engine/renderer"
	"github.com/Faultbox/raypick/internal/engine/ui2d"
	"github.com/Faultbox/raypick/internal/engine/window"
	"github.com/Faultbox/raypick/internal/logger"
	"github.com/Faultbox/raypick/internal/scene"
)

const (
	windowTitle = "RayPick"

	pickToneHz  = 880
	pickToneLen = 80 * time.Millisecond

	labelScale   = 1.5
	labelPadding = 8
)

var bboxColor = [3]float32{1, 1, 0}

// App is the running demo.
type App struct {
	cfg *config.Config
	log *zap.Logger

	window   *window.Window
	renderer *renderer.Renderer
	ui       *ui2d.Renderer
	audio    *audio.Manager
	input    *input.Input
	watcher  *Watcher

	camera      *camera.OrbitCamera
	clicks      input.ClickTracker
	screenshots *debug.ScreenshotCapture

	library   *geometry.Library
	rng       *rand.Rand
	sceneFile string
	session   *Session

	showBBox  bool
	running   bool
	lastFrame time.Time
}

// New opens the window, creates the renderers and builds the first scene.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg:       cfg,
		log:       logger.Named("app"),
		input:     input.New(),
		camera:    camera.FromConfig(cfg.Camera),
		library:   geometry.NewLibrary(),
		rng:       newRand(cfg.Scene.Seed),
		sceneFile: cfg.Scene.File,
		showBBox:  cfg.Picking.ShowBBox,
		screenshots: debug.NewScreenshotCapture(
			cfg.Screenshot.Dir, cfg.Screenshot.Prefix, cfg.Screenshot.Format),
	}

	if err := a.init(); err != nil {
		return nil, multierr.Append(err, a.Close())
	}
	return a, nil
}

func (a *App) init() error {
	var err error

	a.window, err = window.New(window.ConfigFrom(windowTitle, a.cfg.Graphics))
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	dw, dh := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      dw,
		Height:     dh,
		ClearColor: a.cfg.Graphics.ClearColor,
	})
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	ww, wh := a.window.GetSize()
	a.ui, err = ui2d.New(ww, wh)
	if err != nil {
		return fmt.Errorf("create ui: %w", err)
	}

	if a.cfg.Audio.Enabled {
		a.initAudio()
	}

	s, err := a.loadSession(a.sceneFile)
	if err != nil {
		return err
	}
	a.session = s

	if a.cfg.Scene.Watch && a.sceneFile != "" {
		if a.watcher, err = NewWatcher(a.sceneFile); err != nil {
			// Hot reload is a convenience, run without it
			a.log.Warn("scene watcher disabled", zap.Error(err))
			a.watcher = nil
		}
	}
	return nil
}

// initAudio sets up pick feedback. Failures leave audio off.
func (a *App) initAudio() {
	m := audio.New(float64(a.cfg.Audio.Volume))
	if err := m.Init(); err != nil {
		a.log.Warn("audio disabled", zap.Error(err))
		return
	}
	if path := a.cfg.Audio.PickSound; path != "" {
		if err := m.LoadSFX(path); err != nil {
			a.log.Warn("pick sound not loaded, using tone", zap.Error(err))
			a.cfg.Audio.PickSound = ""
		}
	}
	a.audio = m
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
}

// loadSession builds the scene from path, or the teapot demo when path is
// empty, and uploads its meshes.
func (a *App) loadSession(path string) (*Session, error) {
	var (
		desc *scene.Node
		err  error
	)
	if path == "" {
		desc = scene.DemoDescription(a.cfg, a.rng)
	} else if desc, err = scene.LoadFile(path); err != nil {
		return nil, fmt.Errorf("load scene: %w", err)
	}

	s, err := scene.Build(desc, a.library)
	if err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}
	session, err := NewSession(s, a.cfg.Picking.IndicatorPickable)
	if err != nil {
		return nil, err
	}
	if err := a.renderer.UploadScene(s); err != nil {
		return nil, fmt.Errorf("upload scene: %w", err)
	}

	// The camera owns the eye from now on
	a.camera.Invalidate()

	st := s.Stats()
	source := path
	if source == "" {
		source = "demo"
	}
	a.log.Info("scene loaded",
		zap.String("source", source),
		zap.Int("instances", st.Instances),
		zap.Int("pickable", st.Pickable),
		zap.Int("triangles", st.Triangles),
		zap.Int("lights", st.Lights),
		zap.Int("shaders", st.Shaders),
	)
	return session, nil
}

// reload swaps in a freshly built scene. On error the current scene stays.
func (a *App) reload(path string) {
	s, err := a.loadSession(path)
	if err != nil {
		a.log.Error("scene reload failed, keeping current scene", zap.Error(err))
		return
	}
	a.session = s
	a.sceneFile = path
}

// Run drives the main loop until the window closes.
func (a *App) Run() error {
	a.running = true
	a.lastFrame = time.Now()

	var frameBudget time.Duration
	if a.cfg.Graphics.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(a.cfg.Graphics.FPSLimit)
	}

	for a.running {
		start := time.Now()
		dt := float32(start.Sub(a.lastFrame).Seconds())
		a.lastFrame = start

		if a.input.Update() {
			a.running = false
		}
		for _, e := range a.input.Events() {
			a.handleEvent(e)
		}
		a.drainReloads()

		a.idle()
		a.session.Label.Update(dt)
		a.render()
		a.window.SwapBuffers()

		if frameBudget > 0 {
			if elapsed := time.Since(start); elapsed < frameBudget {
				time.Sleep(frameBudget - elapsed)
			}
		}
	}
	return nil
}

func (a *App) handleEvent(e input.Event) {
	switch e.Type {
	case input.EventQuit:
		a.running = false

	case input.EventWindowResize:
		dw, dh := a.window.DrawableSize()
		a.renderer.Resize(dw, dh)
		ww, wh := a.window.GetSize()
		a.ui.Resize(ww, wh)

	case input.EventMouseDown:
		if e.Button == input.ButtonLeft {
			a.clicks.Down(e.MouseX, e.MouseY)
		}

	case input.EventMouseMove:
		if dx, dy, ok := a.clicks.Move(e.MouseX, e.MouseY); ok && (dx != 0 || dy != 0) {
			a.camera.HandleDrag(float32(dx), float32(dy))
		}

	case input.EventMouseUp:
		if e.Button == input.ButtonLeft && a.clicks.Up(e.MouseX, e.MouseY) {
			a.pick(e.MouseX, e.MouseY)
		}

	case input.EventMouseWheel:
		a.camera.HandleZoom(float32(e.WheelY))

	case input.EventKeyDown:
		a.handleKey(e.Key)
	}
}

func (a *App) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		a.running = false
	case sdl.SCANCODE_F12:
		a.screenshot()
	case sdl.SCANCODE_R:
		a.reload(a.sceneFile)
	case sdl.SCANCODE_O:
		a.openScene()
	case sdl.SCANCODE_B:
		a.showBBox = !a.showBBox
		a.log.Debug("bbox overlay", zap.Bool("enabled", a.showBBox))
	}
}

func (a *App) pick(x, y int) {
	if _, ok := a.session.PickAt(x, y, a.view()); !ok {
		return
	}
	if a.audio == nil {
		return
	}

	var err error
	if path := a.cfg.Audio.PickSound; path != "" {
		err = a.audio.PlayLoaded(path)
	} else {
		err = a.audio.PlayTone(pickToneHz, pickToneLen)
	}
	if err != nil {
		a.log.Warn("pick sound failed", zap.Error(err))
	}
}

// idle applies camera changes to the scene's look-at.
func (a *App) idle() {
	if eye, changed := a.camera.Idle(); changed {
		a.session.ApplyEye(eye)
	}
}

func (a *App) view() View {
	w, h := a.window.GetSize()
	return a.session.View(a.cfg.Camera.Aspect, w, h)
}

func (a *App) drainReloads() {
	if a.watcher == nil {
		return
	}
	for {
		select {
		case path := <-a.watcher.Reloads():
			a.log.Info("scene file changed", zap.String("path", path))
			a.reload(a.sceneFile)
		default:
			return
		}
	}
}

func (a *App) openScene() {
	path, err := dialog.File().
		Title("Open scene").
		Filter("Scene description", "yaml", "yml", "json", "toml").
		Load()
	if errors.Is(err, dialog.ErrCancelled) {
		return
	}
	if err != nil {
		a.log.Error("open scene dialog failed", zap.Error(err))
		return
	}

	a.reload(path)
	if a.sceneFile != path || a.watcher == nil {
		return
	}
	if err := a.watcher.Watch(path); err != nil {
		a.log.Warn("cannot watch scene file", zap.Error(err))
	}
}

func (a *App) screenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.screenshots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

func (a *App) render() {
	v := a.view()
	s := a.session

	a.renderer.Begin()
	a.renderer.DrawScene(s.Scene, renderer.Camera{
		View:       v.View,
		Projection: v.Projection,
		Eye:        s.LookAt.Eye,
	})
	if picked := s.Picked(); a.showBBox && picked != nil {
		verts := debug.WireframeFromAABB(picked.WorldBounds(), debug.DefaultBBoxPadding)
		a.renderer.DrawLines(verts, bboxColor, v.ViewProj())
	}
	a.renderer.End()

	a.ui.Begin()
	a.drawLabel(v)
	a.ui.DrawText(8, v.Height-20, "drag: orbit   wheel: zoom   click: pick", 1, ui2d.ColorTextDim)
	a.ui.End()
}

func (a *App) drawLabel(v View) {
	l := &a.session.Label
	alpha := l.Alpha()
	if alpha <= 0 {
		return
	}

	tw, th := a.ui.MeasureText(l.Text, labelScale)
	w, h := tw+2*labelPadding, th+2*labelPadding
	ax, ay := a.session.LabelAnchor(v)
	x, y := ui2d.PlaceLabel(ax, ay, w, h, int(v.Width), int(v.Height))

	a.ui.DrawPanel(x, y, w, h, ui2d.ColorPanelBg.Fade(alpha), ui2d.ColorPanelBorder.Fade(alpha))
	a.ui.DrawText(x+labelPadding, y+labelPadding, l.Text, labelScale, ui2d.ColorText.Fade(alpha))
}

// Close releases all resources in reverse creation order.
func (a *App) Close() error {
	var err error
	if a.watcher != nil {
		err = multierr.Append(err, a.watcher.Close())
	}
	if a.audio != nil {
		err = multierr.Append(err, a.audio.Close())
	}
	if a.ui != nil {
		a.ui.Close()
	}
	if a.renderer != nil {
		err = multierr.Append(err, a.renderer.Close())
	}
	if a.window != nil {
		err = multierr.Append(err, a.window.Close())
	}
	return err
}
