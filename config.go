package colors

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigEnv names the environment variable holding an optional config path.
const ConfigEnv = "COLORS_CONFIG"

// Config holds window and rendering settings.
type Config struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Resizable  bool   `yaml:"resizable"`
	Fullscreen bool   `yaml:"fullscreen"` // Primary monitor instead of a window
	VSync      bool   `yaml:"vsync"`
	ClearColor Color  `yaml:"clear_color"`
	LogLevel   string `yaml:"log_level"`
}

// DefaultConfig returns the built-in settings: a 1920x1080 fixed-size
// window titled "OpenGL", cleared to black.
func DefaultConfig() Config {
	return Config{
		Width:      1920,
		Height:     1080,
		Title:      "OpenGL",
		Resizable:  false,
		Fullscreen: false,
		VSync:      true,
		ClearColor: ColorBlack,
		LogLevel:   "info",
	}
}

// LoadConfig reads a YAML file over the defaults. Fields absent from the
// file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ConfigFromEnv loads the file named by COLORS_CONFIG, or returns the
// defaults when the variable is unset.
func ConfigFromEnv() (Config, error) {
	path := os.Getenv(ConfigEnv)
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}

// Validate checks that the settings describe a usable window.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	if !c.ClearColor.valid() {
		return errors.New("clear_color components must be within [0, 1]")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return lvl, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}
