package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Window.Height)
	}
	if !cfg.Window.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Viewer.FOV != 30 {
		t.Errorf("expected fov 30, got %v", cfg.Viewer.FOV)
	}
	if cfg.Viewer.Near != 1 || cfg.Viewer.Far != 10000 {
		t.Errorf("expected clip planes 1/10000, got %v/%v", cfg.Viewer.Near, cfg.Viewer.Far)
	}
	if cfg.Viewer.CameraDistance != 500 {
		t.Errorf("expected camera distance 500, got %v", cfg.Viewer.CameraDistance)
	}
	if cfg.Viewer.RotationRate != 0.00015 {
		t.Errorf("expected rotation rate 0.00015, got %v", cfg.Viewer.RotationRate)
	}

	if cfg.Controls.MouseSensitivity != 0.25 {
		t.Errorf("expected mouse sensitivity 0.25, got %v", cfg.Controls.MouseSensitivity)
	}
	if cfg.Controls.TouchSensitivity != 1 {
		t.Errorf("expected touch sensitivity 1, got %v", cfg.Controls.TouchSensitivity)
	}
	if cfg.Controls.WheelZoomRate != 0.05 {
		t.Errorf("expected wheel zoom rate 0.05, got %v", cfg.Controls.WheelZoomRate)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
window:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

viewer:
  fov: 45
  camera_distance: 300
  clear_color: "#102030"
  autorotate: "xy"
  effects: [AnaglyphEffect]
  effect: AnaglyphEffect

controls:
  mouse_sensitivity: 0.5

stereo:
  eye_separation: 3

logging:
  level: "debug"
  log_file: "surfview.log"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Viewer.FOV != 45 {
		t.Errorf("expected fov 45, got %v", cfg.Viewer.FOV)
	}
	// Unset keys keep their defaults.
	if cfg.Viewer.Far != 10000 {
		t.Errorf("expected far to keep default 10000, got %v", cfg.Viewer.Far)
	}
	if len(cfg.Viewer.Effects) != 1 || cfg.Viewer.Effects[0] != "AnaglyphEffect" {
		t.Errorf("expected effects [AnaglyphEffect], got %v", cfg.Viewer.Effects)
	}
	if cfg.Controls.MouseSensitivity != 0.5 {
		t.Errorf("expected mouse sensitivity 0.5, got %v", cfg.Controls.MouseSensitivity)
	}
	if cfg.Controls.RotateDivisor != 150 {
		t.Errorf("expected rotate divisor to keep default 150, got %v", cfg.Controls.RotateDivisor)
	}
	if cfg.Stereo.EyeSeparation != 3 {
		t.Errorf("expected eye separation 3, got %v", cfg.Stereo.EyeSeparation)
	}

	c, err := cfg.ClearColor()
	if err != nil {
		t.Fatalf("clear color: %v", err)
	}
	if c != (color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}) {
		t.Errorf("unexpected clear color %v", c)
	}

	x, y, z, err := cfg.AutorotateAxes()
	if err != nil {
		t.Fatalf("autorotate: %v", err)
	}
	if !x || !y || z {
		t.Errorf("expected autorotate x,y only, got %v %v %v", x, y, z)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if err := loadFromFile(Default(), "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"near not positive", func(c *Config) { c.Viewer.Near = 0 }},
		{"far below near", func(c *Config) { c.Viewer.Far = 0.5 }},
		{"fov too wide", func(c *Config) { c.Viewer.FOV = 180 }},
		{"camera beyond far envelope", func(c *Config) { c.Viewer.CameraDistance = 9500 }},
		{"bad clear color", func(c *Config) { c.Viewer.ClearColor = "#12" }},
		{"bad autorotate", func(c *Config) { c.Viewer.Autorotate = "xw" }},
		{"zero window", func(c *Config) { c.Window.Width = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestClearColorFormats(t *testing.T) {
	for _, s := range []string{"#FF8000", "ff8000", "0xFF8000"} {
		cfg := Default()
		cfg.Viewer.ClearColor = s
		c, err := cfg.ClearColor()
		if err != nil {
			t.Errorf("%s: unexpected error %v", s, err)
			continue
		}
		if c != (color.RGBA{R: 0xff, G: 0x80, A: 0xff}) {
			t.Errorf("%s: got %v", s, c)
		}
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("window:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 2560 || cfg.Window.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "effect flag",
			setup: func() { *flagEffect = "StereoEffect" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Viewer.Effect != "StereoEffect" {
					t.Errorf("expected effect StereoEffect, got %s", cfg.Viewer.Effect)
				}
			},
			teardown: func() { *flagEffect = "" },
		},
		{
			name:  "autorotate flag",
			setup: func() { *flagAutorotate = "z" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Viewer.Autorotate != "z" {
					t.Errorf("expected autorotate z, got %s", cfg.Viewer.Autorotate)
				}
			},
			teardown: func() { *flagAutorotate = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
window:
  width: 1600
  height: 900
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	// Height should be from file (900) since no flag override
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Viewer.Effect = "StereoEffect"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.Viewer.Effect != "StereoEffect" {
		t.Errorf("expected saved effect StereoEffect, got %s", loaded.Viewer.Effect)
	}
}
