package config

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"vecsketch/core"
)

// Limits for values the panel can change at runtime.
const (
	MinGridSize    = 5
	MaxGridSize    = 100
	MaxStrokeWidth = 50
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// ValidateConfig checks every section and reports all problems at once.
func ValidateConfig(c *Config) error {
	var errs ValidationErrors

	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		errs = append(errs, ValidationError{
			Field:   "canvas",
			Message: fmt.Sprintf("size must be positive, got %gx%g", c.Canvas.Width, c.Canvas.Height),
		})
	}

	errs = append(errs, validateStyle(&c.Style)...)
	errs = append(errs, validateGrid(&c.Grid)...)

	if _, err := core.ParseShapeKind(c.Tool.Shape); err != nil {
		errs = append(errs, ValidationError{Field: "tool.shape", Message: err.Error()})
	}

	errs = append(errs, validateExport(&c.Export)...)
	errs = append(errs, validateLogging(&c.Logging)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateStyle(s *StyleConfig) ValidationErrors {
	var errs ValidationErrors

	if c, err := NormalizeColor(s.StrokeColor); err != nil {
		errs = append(errs, ValidationError{Field: "style.stroke_color", Message: err.Error()})
	} else {
		s.StrokeColor = c
	}
	if s.StrokeWidth <= 0 || s.StrokeWidth > MaxStrokeWidth {
		errs = append(errs, ValidationError{
			Field:   "style.stroke_width",
			Message: fmt.Sprintf("must be in (0, %d], got %g", MaxStrokeWidth, s.StrokeWidth),
		})
	}
	if c, err := NormalizeColor(s.FillColor); err != nil {
		errs = append(errs, ValidationError{Field: "style.fill_color", Message: err.Error()})
	} else {
		s.FillColor = c
	}

	return errs
}

func validateGrid(g *GridConfig) ValidationErrors {
	var errs ValidationErrors
	if g.Size < MinGridSize || g.Size > MaxGridSize {
		errs = append(errs, ValidationError{
			Field:   "grid.size",
			Message: fmt.Sprintf("must be between %d and %d, got %d", MinGridSize, MaxGridSize, g.Size),
		})
	}
	return errs
}

func validateExport(e *ExportConfig) ValidationErrors {
	var errs ValidationErrors

	switch strings.ToLower(e.Format) {
	case "svg", "json", "png", "pdf":
	default:
		errs = append(errs, ValidationError{
			Field:   "export.format",
			Message: fmt.Sprintf("invalid format: %s (valid: svg, json, png, pdf)", e.Format),
		})
	}
	if strings.ContainsAny(e.BaseName, `/\`) {
		errs = append(errs, ValidationError{
			Field:   "export.base_name",
			Message: "must be a file name, not a path",
		})
	}

	return errs
}

func validateLogging(l *LoggingConfig) ValidationErrors {
	var errs ValidationErrors

	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("invalid log level: %s (valid: debug, info, warn, error)", l.Level),
		})
	}

	switch l.Format {
	case "text", "json":
	default:
		errs = append(errs, ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("invalid log format: %s (valid: text, json)", l.Format),
		})
	}

	switch l.Output {
	case "stdout", "stderr", "discard":
	case "file":
		if l.FilePath == "" {
			errs = append(errs, ValidationError{
				Field:   "logging.file_path",
				Message: "file path is required when output is 'file'",
			})
		}
	default:
		errs = append(errs, ValidationError{
			Field:   "logging.output",
			Message: fmt.Sprintf("invalid log output: %s (valid: stdout, stderr, file, discard)", l.Output),
		})
	}

	return errs
}

// ValidateColor accepts #rrggbb and #rgb colors.
func ValidateColor(s string) error {
	_, err := ParseColor(s)
	return err
}

// ParseColor parses a #rrggbb or #rgb color.
func ParseColor(s string) (colorful.Color, error) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid color %q", s)
	}
	return c, nil
}

// NormalizeColor returns the lowercase #rrggbb form of a color. Exporters
// and the terminal palette only ever see normalized values.
func NormalizeColor(s string) (string, error) {
	c, err := ParseColor(s)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}
