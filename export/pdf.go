package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"vecsketch/core"
)

// PDFExporter writes a single page sized to the canvas, one point per
// canvas unit.
type PDFExporter struct{}

// NewPDFExporter creates a new PDF exporter
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Export converts a document to PDF
func (e *PDFExporter) Export(doc *core.Document) ([]byte, error) {
	if err := checkShapes(doc.Shapes); err != nil {
		return nil, err
	}

	// Portrait keeps Wd and Ht as given; landscape would swap them.
	w, h := pageSize(doc)
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	for i, s := range doc.Shapes {
		if err := drawPDFShape(pdf, s); err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("encode pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func drawPDFShape(pdf *gofpdf.Fpdf, s core.Shape) error {
	stroke, err := parseColor(s.Style.StrokeColor)
	if err != nil {
		return err
	}
	r, g, b := stroke.RGB255()
	pdf.SetDrawColor(int(r), int(g), int(b))
	pdf.SetLineWidth(s.Style.StrokeWidth)

	style := "D"
	if fill := s.Style.Fill(s.Kind); fill != "none" {
		c, err := parseColor(fill)
		if err != nil {
			return err
		}
		r, g, b := c.RGB255()
		pdf.SetFillColor(int(r), int(g), int(b))
		style = "FD"
	}

	p := s.Points
	switch s.Kind {
	case core.Bezier:
		pdf.CurveBezierCubic(p[0].X, p[0].Y, p[1].X, p[1].Y, p[2].X, p[2].Y, p[3].X, p[3].Y, style)
	case core.Line:
		pdf.Line(p[0].X, p[0].Y, p[1].X, p[1].Y)
	case core.Rectangle:
		rect := s.Rect()
		pdf.Rect(rect.X, rect.Y, rect.Width, rect.Height, style)
	case core.Circle:
		pdf.Circle(p[0].X, p[0].Y, s.Radius(), style)
	}
	return pdf.Error()
}

// GetFileExtension returns the file extension for PDF
func (e *PDFExporter) GetFileExtension() string {
	return ".pdf"
}

// GetFormatName returns the format name
func (e *PDFExporter) GetFormatName() string {
	return "PDF"
}
