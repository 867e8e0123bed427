// Package export serializes the committed shapes of a drawing to files.
package export

import (
	"errors"
	"fmt"
	"strings"

	"vecsketch/core"
)

// Format represents an export format
type Format string

const (
	// FormatSVG exports a standalone SVG document (default)
	FormatSVG Format = "svg"
	// FormatJSON exports the document model as JSON
	FormatJSON Format = "json"
	// FormatPNG exports a raster image
	FormatPNG Format = "png"
	// FormatPDF exports a single page PDF
	FormatPDF Format = "pdf"
)

// Page size used when a document does not carry one.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

var (
	// ErrUnsupported is returned for formats no exporter is registered for.
	ErrUnsupported = errors.New("unsupported export format")
	// ErrInvalidShape is returned when a shape cannot be drawn.
	ErrInvalidShape = errors.New("invalid shape")
)

// Exporter interface for different export formats
type Exporter interface {
	// Export encodes the committed shapes of a document
	Export(doc *core.Document) ([]byte, error)
	// GetFileExtension returns the recommended file extension for this format
	GetFileExtension() string
	// GetFormatName returns a human-readable name for this format
	GetFormatName() string
}

// NewExporter creates an exporter for the specified format
func NewExporter(format Format) (Exporter, error) {
	switch format {
	case FormatSVG:
		return NewSVGExporter(), nil
	case FormatJSON:
		return NewJSONExporter(), nil
	case FormatPNG:
		return NewPNGExporter(), nil
	case FormatPDF:
		return NewPDFExporter(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, format)
	}
}

// ParseFormat converts a string to a Format
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "svg", "":
		return FormatSVG, nil
	case "json":
		return FormatJSON, nil
	case "png":
		return FormatPNG, nil
	case "pdf":
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupported, s)
	}
}

// GetAvailableFormats returns a list of all available export formats
func GetAvailableFormats() []Format {
	return []Format{
		FormatSVG,
		FormatJSON,
		FormatPNG,
		FormatPDF,
	}
}

// GetFormatDescriptions returns human-readable descriptions of all formats
func GetFormatDescriptions() map[Format]string {
	return map[Format]string{
		FormatSVG:  "Scalable Vector Graphics (default)",
		FormatJSON: "Shape list with points and style",
		FormatPNG:  "Raster image on a white background",
		FormatPDF:  "Single page PDF sized to the canvas",
	}
}

// pageSize returns the document size, falling back to the defaults.
func pageSize(doc *core.Document) (w, h float64) {
	w, h = doc.Width, doc.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return w, h
}

// checkShapes rejects shapes with an unknown kind or the wrong point count.
func checkShapes(shapes []core.Shape) error {
	for i, s := range shapes {
		switch s.Kind {
		case core.Bezier, core.Line, core.Rectangle, core.Circle:
		default:
			return fmt.Errorf("shape %d: %w: unknown kind %d", i, ErrInvalidShape, int(s.Kind))
		}
		if !s.Valid() {
			return fmt.Errorf("shape %d: %w: %s needs %d points, has %d",
				i, ErrInvalidShape, s.Kind, s.Kind.PointCount(), len(s.Points))
		}
	}
	return nil
}
