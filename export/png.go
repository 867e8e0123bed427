package export

import (
	"bytes"
	"fmt"
	"math"

	"github.com/gogpu/gg"

	"vecsketch/core"
)

// PNGExporter rasterizes committed shapes onto an opaque background.
type PNGExporter struct {
	// Background is the page color.
	Background string
}

// NewPNGExporter creates a PNG exporter with a white background
func NewPNGExporter() *PNGExporter {
	return &PNGExporter{Background: "#ffffff"}
}

// Export converts a document to PNG
func (e *PNGExporter) Export(doc *core.Document) ([]byte, error) {
	if err := checkShapes(doc.Shapes); err != nil {
		return nil, err
	}
	bg, err := parseColor(e.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}

	w, h := pageSize(doc)
	dc := gg.NewContext(int(math.Ceil(w)), int(math.Ceil(h)))
	defer dc.Close()

	dc.ClearWithColor(gg.RGB(bg.R, bg.G, bg.B))

	for i, s := range doc.Shapes {
		if err := paintShape(dc, s); err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func paintShape(dc *gg.Context, s core.Shape) error {
	stroke, err := parseColor(s.Style.StrokeColor)
	if err != nil {
		return err
	}

	tracePath(dc, s)
	if fill := s.Style.Fill(s.Kind); fill != "none" {
		c, err := parseColor(fill)
		if err != nil {
			return err
		}
		dc.SetRGB(c.R, c.G, c.B)
		if err := dc.FillPreserve(); err != nil {
			return err
		}
	}

	dc.SetRGB(stroke.R, stroke.G, stroke.B)
	dc.SetLineWidth(s.Style.StrokeWidth)
	return dc.Stroke()
}

func tracePath(dc *gg.Context, s core.Shape) {
	p := s.Points
	switch s.Kind {
	case core.Bezier:
		dc.MoveTo(p[0].X, p[0].Y)
		dc.CubicTo(p[1].X, p[1].Y, p[2].X, p[2].Y, p[3].X, p[3].Y)
	case core.Line:
		dc.DrawLine(p[0].X, p[0].Y, p[1].X, p[1].Y)
	case core.Rectangle:
		r := s.Rect()
		dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	case core.Circle:
		dc.DrawCircle(p[0].X, p[0].Y, s.Radius())
	}
}

// GetFileExtension returns the file extension for PNG
func (e *PNGExporter) GetFileExtension() string {
	return ".png"
}

// GetFormatName returns the format name
func (e *PNGExporter) GetFormatName() string {
	return "PNG"
}
