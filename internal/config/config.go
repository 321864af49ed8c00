// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Viewer   ViewerConfig   `yaml:"viewer"`
	Controls ControlsConfig `yaml:"controls"`
	Stereo   StereoConfig   `yaml:"stereo"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WindowConfig holds host window settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// ViewerConfig holds scene, camera and render-loop settings.
type ViewerConfig struct {
	FOV            float32 `yaml:"fov"` // degrees
	Near           float32 `yaml:"near"`
	Far            float32 `yaml:"far"`
	CameraDistance float32 `yaml:"camera_distance"`
	ClearColor     string  `yaml:"clear_color"` // #RRGGBB
	// RotationRate is the autorotation speed in radians per millisecond.
	RotationRate float64  `yaml:"rotation_rate"`
	Autorotate   string   `yaml:"autorotate"` // any of "xyz"
	Effects      []string `yaml:"effects"`
	Effect       string   `yaml:"effect"`
}

// ControlsConfig holds pointer, touch and wheel tuning.
type ControlsConfig struct {
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
	TouchSensitivity float32 `yaml:"touch_sensitivity"`
	RotateDivisor    float32 `yaml:"rotate_divisor"`
	PinchZoomRate    float32 `yaml:"pinch_zoom_rate"`
	WheelZoomRate    float32 `yaml:"wheel_zoom_rate"`
}

// StereoConfig holds the stereo rig used by the stereoscopic effects.
type StereoConfig struct {
	EyeSeparation float32 `yaml:"eye_separation"`
	Focus         float32 `yaml:"focus"`
}

// SnapshotConfig holds still-image capture settings.
type SnapshotConfig struct {
	Dir      string `yaml:"dir"`
	Prefix   string `yaml:"prefix"`
	MaxWidth int    `yaml:"max_width"` // 0 keeps full size
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "surfview",
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Viewer: ViewerConfig{
			FOV:            30,
			Near:           1,
			Far:            10000,
			CameraDistance: 500,
			ClearColor:     "#000000",
			RotationRate:   0.00015,
			Effects:        []string{"AnaglyphEffect", "StereoEffect", "ParallaxBarrierEffect"},
		},
		Controls: ControlsConfig{
			MouseSensitivity: 0.25,
			TouchSensitivity: 1.0,
			RotateDivisor:    150,
			PinchZoomRate:    0.01,
			WheelZoomRate:    0.05,
		},
		Stereo: StereoConfig{
			EyeSeparation: 6.4,
			Focus:         500,
		},
		Snapshot: SnapshotConfig{
			Dir:    "snapshots",
			Prefix: "surfview",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
