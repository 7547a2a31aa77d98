// Package config handles demo configuration loading and management.
package config

// Config holds all demo settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Camera     CameraConfig     `yaml:"camera"`
	Scene      SceneConfig      `yaml:"scene"`
	Grid       GridConfig       `yaml:"grid"`
	Highlight  HighlightConfig  `yaml:"highlight"`
	Picking    PickingConfig    `yaml:"picking"`
	Audio      AudioConfig      `yaml:"audio"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int        `yaml:"width" validate:"gte=64"`
	Height     int        `yaml:"height" validate:"gte=64"`
	Fullscreen bool       `yaml:"fullscreen"`
	VSync      bool       `yaml:"vsync"`
	FPSLimit   int        `yaml:"fps_limit" validate:"gte=0"`
	ClearColor [3]float32 `yaml:"clear_color"`
}

// CameraConfig holds the orbit camera and projection settings.
// Distance is signed: the default eye sits on -Z.
type CameraConfig struct {
	Yaw             float32 `yaml:"yaw"`
	Pitch           float32 `yaml:"pitch"`
	Distance        float32 `yaml:"distance" validate:"ne=0"`
	DragSensitivity float32 `yaml:"drag_sensitivity" validate:"gt=0"`
	ZoomStep        float32 `yaml:"zoom_step" validate:"gt=0"`
	MinDistance     float32 `yaml:"min_distance" validate:"gt=0"`
	MaxDistance     float32 `yaml:"max_distance" validate:"gtfield=MinDistance"`
	Fovy            float32 `yaml:"fovy" validate:"gt=0,lt=180"`
	Near            float32 `yaml:"near" validate:"gt=0"`
	Far             float32 `yaml:"far" validate:"gtfield=Near"`
	Aspect          float32 `yaml:"aspect" validate:"gte=0"` // 0 follows the viewport
}

// SceneConfig selects the scene to show.
type SceneConfig struct {
	File  string `yaml:"file"` // empty builds the teapot grid demo
	Seed  int64  `yaml:"seed"` // 0 picks a time-based seed
	Watch bool   `yaml:"watch"`
}

// GridConfig describes the generated grid of objects.
type GridConfig struct {
	Min       float32 `yaml:"min"`
	Max       float32 `yaml:"max" validate:"gtefield=Min"`
	Step      float32 `yaml:"step" validate:"gt=0"`
	Scale     float32 `yaml:"scale" validate:"gt=0"`
	Primitive string  `yaml:"primitive" validate:"oneof=teapot sphere box mesh"`
	Src       string  `yaml:"src" validate:"required_if=Primitive mesh"`
}

// HighlightConfig holds the highlight shader parameters.
type HighlightConfig struct {
	Radius          float32    `yaml:"radius" validate:"gt=0"`
	Color           [3]float32 `yaml:"color"`
	DefaultWorldPos [3]float32 `yaml:"default_world_pos"`
}

// PickingConfig holds pick behaviour settings.
type PickingConfig struct {
	IndicatorPickable bool `yaml:"indicator_pickable"`
	ShowBBox          bool `yaml:"show_bbox"`
}

// AudioConfig holds pick feedback sound settings.
type AudioConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Volume    float32 `yaml:"volume" validate:"gte=0,lte=1"`
	PickSound string  `yaml:"pick_sound"` // optional WAV, a tone is played otherwise
}

// ScreenshotConfig holds screenshot settings.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir" validate:"required"`
	Prefix string `yaml:"prefix"`
	Format string `yaml:"format" validate:"oneof=png bmp"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" validate:"oneof=debug info warn error"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the demo's values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     870,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
			ClearColor: [3]float32{0, 0, 0},
		},
		Camera: CameraConfig{
			Yaw:             0,
			Pitch:           0,
			Distance:        -400,
			DragSensitivity: 0.1,
			ZoomStep:        10,
			MinDistance:     20,
			MaxDistance:     990,
			Fovy:            45,
			Near:            0.1,
			Far:             1000,
			Aspect:          0,
		},
		Scene: SceneConfig{
			File:  "",
			Seed:  0,
			Watch: true,
		},
		Grid: GridConfig{
			Min:       -250,
			Max:       250,
			Step:      100,
			Scale:     10,
			Primitive: "teapot",
		},
		Highlight: HighlightConfig{
			Radius:          30,
			Color:           [3]float32{1, 1, 0},
			DefaultWorldPos: [3]float32{25, 25, 20},
		},
		Picking: PickingConfig{
			IndicatorPickable: true,
			ShowBBox:          false,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Screenshot: ScreenshotConfig{
			Dir:    "screenshots",
			Prefix: "raypick",
			Format: "png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
