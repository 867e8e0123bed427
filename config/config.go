// Package config handles configuration loading and validation for vecsketch.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"vecsketch/core"
	"vecsketch/logging"
)

// Config is the complete vecsketch configuration.
type Config struct {
	// Canvas is the logical drawing area.
	Canvas CanvasConfig `toml:"canvas" json:"canvas" yaml:"canvas"`

	// Style holds the initial stroke and fill.
	Style StyleConfig `toml:"style" json:"style" yaml:"style"`

	// Grid holds the overlay and snapping settings.
	Grid GridConfig `toml:"grid" json:"grid" yaml:"grid"`

	// Tool selects the shape drawn on start.
	Tool ToolConfig `toml:"tool" json:"tool" yaml:"tool"`

	// Export controls where drawings are written.
	Export ExportConfig `toml:"export" json:"export" yaml:"export"`

	// Logging holds logging configuration.
	Logging LoggingConfig `toml:"logging" json:"logging" yaml:"logging"`
}

// CanvasConfig is the logical canvas size in drawing units.
type CanvasConfig struct {
	Width  float64 `toml:"width" json:"width" yaml:"width"`
	Height float64 `toml:"height" json:"height" yaml:"height"`
}

// StyleConfig holds the paint applied to new shapes.
type StyleConfig struct {
	// StrokeColor is a #rrggbb color.
	StrokeColor string `toml:"stroke_color" json:"stroke_color" yaml:"stroke_color"`

	// StrokeWidth is the outline width in drawing units.
	StrokeWidth float64 `toml:"stroke_width" json:"stroke_width" yaml:"stroke_width"`

	// FillColor is a #rrggbb color used when FillEnabled is set.
	FillColor string `toml:"fill_color" json:"fill_color" yaml:"fill_color"`

	// FillEnabled fills closed shapes. Lines are never filled.
	FillEnabled bool `toml:"fill_enabled" json:"fill_enabled" yaml:"fill_enabled"`
}

// GridConfig holds the grid settings.
type GridConfig struct {
	// Size is the cell size in drawing units.
	Size int `toml:"size" json:"size" yaml:"size"`

	// Visible shows the overlay.
	Visible bool `toml:"visible" json:"visible" yaml:"visible"`

	// Snap rounds pointer positions to the nearest grid intersection.
	Snap bool `toml:"snap" json:"snap" yaml:"snap"`
}

// ToolConfig selects the initial tool.
type ToolConfig struct {
	// Shape is one of "bezier", "line", "rectangle", "circle".
	Shape string `toml:"shape" json:"shape" yaml:"shape"`
}

// ExportConfig controls export output.
type ExportConfig struct {
	// Dir is the directory exports are written to.
	Dir string `toml:"dir" json:"dir" yaml:"dir"`

	// BaseName is the file name without extension.
	BaseName string `toml:"base_name" json:"base_name" yaml:"base_name"`

	// Format is one of "svg", "json", "png", "pdf".
	Format string `toml:"format" json:"format" yaml:"format"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the log level: "debug", "info", "warn", "error".
	Level string `toml:"level" json:"level" yaml:"level"`

	// Format is the log format: "text" or "json".
	Format string `toml:"format" json:"format" yaml:"format"`

	// Output is the log output: "stdout", "stderr", "file" or "discard".
	Output string `toml:"output" json:"output" yaml:"output"`

	// FilePath is the path to the log file (when Output is "file").
	FilePath string `toml:"file_path" json:"file_path" yaml:"file_path"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Canvas: CanvasConfig{
			Width:  800,
			Height: 600,
		},
		Style: StyleConfig{
			StrokeColor: "#000000",
			StrokeWidth: 2,
			FillColor:   "#cccccc",
			FillEnabled: false,
		},
		Grid: GridConfig{
			Size:    20,
			Visible: true,
			Snap:    false,
		},
		Tool: ToolConfig{
			Shape: "bezier",
		},
		Export: ExportConfig{
			Dir:      ".",
			BaseName: "bezier_drawing",
			Format:   "svg",
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "text",
			Output:   "file",
			FilePath: logging.DefaultLogPath(),
		},
	}
}

// ConfigDir returns the directory holding the user configuration.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "vecsketch")
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "vecsketch")
	}
	return ".vecsketch"
}

// ConfigPath returns the default configuration file path.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads configuration from the specified path.
// If the file doesn't exist, returns default configuration.
// Supports TOML, JSON, and YAML formats based on file extension.
func Load(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}
	cfg, err := loadConfigFromFile(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for errors. Valid colors are rewritten
// to #rrggbb.
func (c *Config) Validate() error {
	return ValidateConfig(c)
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ShapeKind returns the configured initial tool.
func (c *Config) ShapeKind() core.ShapeKind {
	kind, err := core.ParseShapeKind(c.Tool.Shape)
	if err != nil {
		return core.Bezier
	}
	return kind
}

// Document returns an empty document sized to the canvas.
func (c *Config) Document(shapes []core.Shape) *core.Document {
	return &core.Document{Width: c.Canvas.Width, Height: c.Canvas.Height, Shapes: shapes}
}

// LoggerConfig converts the logging section for logging.New.
func (c *Config) LoggerConfig() (*logging.Config, error) {
	level, err := logging.ParseLevel(c.Logging.Level)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(c.Logging.Format)
	if err != nil {
		return nil, err
	}
	lc := logging.DefaultConfig()
	lc.Level = level
	lc.Format = format
	lc.Output = c.Logging.Output
	if c.Logging.FilePath != "" {
		lc.FilePath = c.Logging.FilePath
	}
	return lc, nil
}
