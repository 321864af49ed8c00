package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	path := ConfigPath()
	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the camera or controls cannot work with.
func (c *Config) Validate() error {
	v := c.Viewer
	if v.Near <= 0 || v.Far <= v.Near {
		return fmt.Errorf("invalid clip planes: near=%v far=%v", v.Near, v.Far)
	}
	if v.FOV <= 0 || v.FOV >= 180 {
		return fmt.Errorf("invalid fov: %v", v.FOV)
	}
	if v.CameraDistance <= v.Near || v.CameraDistance >= 0.9*v.Far {
		return fmt.Errorf("camera_distance %v outside (near, 0.9*far)", v.CameraDistance)
	}
	if _, err := c.ClearColor(); err != nil {
		return err
	}
	if _, _, _, err := c.AutorotateAxes(); err != nil {
		return err
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}

// ClearColor parses Viewer.ClearColor ("#RRGGBB", "RRGGBB" or "0xRRGGBB").
func (c *Config) ClearColor() (color.RGBA, error) {
	s := strings.TrimSpace(c.Viewer.ClearColor)
	if s == "" {
		return color.RGBA{A: 0xff}, nil
	}
	s = strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "#"), "0x")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid clear_color %q", c.Viewer.ClearColor)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid clear_color %q: %w", c.Viewer.ClearColor, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

var errAutorotate = errors.New("autorotate accepts only the letters x, y and z")

// AutorotateAxes parses Viewer.Autorotate.
func (c *Config) AutorotateAxes() (x, y, z bool, err error) {
	for _, r := range strings.ToLower(c.Viewer.Autorotate) {
		switch r {
		case 'x':
			x = true
		case 'y':
			y = true
		case 'z':
			z = true
		case ' ', ',':
		default:
			return false, false, false, fmt.Errorf("%w: %q", errAutorotate, c.Viewer.Autorotate)
		}
	}
	return x, y, z, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "surfview")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "surfview")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "surfview")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "surfview")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
