package export

import (
	"encoding/xml"
	"fmt"
	"strconv"

	"vecsketch/core"
)

const svgNamespace = "http://www.w3.org/2000/svg"

type svgDocument struct {
	XMLName xml.Name `xml:"svg"`
	Xmlns   string   `xml:"xmlns,attr"`
	Width   string   `xml:"width,attr"`
	Height  string   `xml:"height,attr"`
	ViewBox string   `xml:"viewBox,attr"`
	Shapes  []svgShape
}

// svgShape is one of path, line, rect or circle. Geometry attributes a
// kind does not use stay empty and are omitted.
type svgShape struct {
	XMLName xml.Name

	D string `xml:"d,attr,omitempty"`

	X1 string `xml:"x1,attr,omitempty"`
	Y1 string `xml:"y1,attr,omitempty"`
	X2 string `xml:"x2,attr,omitempty"`
	Y2 string `xml:"y2,attr,omitempty"`

	X      string `xml:"x,attr,omitempty"`
	Y      string `xml:"y,attr,omitempty"`
	Width  string `xml:"width,attr,omitempty"`
	Height string `xml:"height,attr,omitempty"`

	CX string `xml:"cx,attr,omitempty"`
	CY string `xml:"cy,attr,omitempty"`
	R  string `xml:"r,attr,omitempty"`

	Stroke      string `xml:"stroke,attr"`
	StrokeWidth string `xml:"stroke-width,attr"`
	Fill        string `xml:"fill,attr,omitempty"`
	Class       string `xml:"class,attr"`
}

// SVGExporter writes committed shapes as SVG elements in drawing order.
// Control markers and the grid are never part of the output.
type SVGExporter struct{}

// NewSVGExporter creates a new SVG exporter
func NewSVGExporter() *SVGExporter {
	return &SVGExporter{}
}

// Export converts a document to SVG
func (e *SVGExporter) Export(doc *core.Document) ([]byte, error) {
	if err := checkShapes(doc.Shapes); err != nil {
		return nil, err
	}
	w, h := pageSize(doc)

	out := svgDocument{
		Xmlns:   svgNamespace,
		Width:   num(w),
		Height:  num(h),
		ViewBox: fmt.Sprintf("0 0 %s %s", num(w), num(h)),
		Shapes:  make([]svgShape, 0, len(doc.Shapes)),
	}
	for _, s := range doc.Shapes {
		out.Shapes = append(out.Shapes, svgElement(s))
	}

	data, err := xml.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode svg: %w", err)
	}
	data = append([]byte(xml.Header), data...)
	return append(data, '\n'), nil
}

func svgElement(s core.Shape) svgShape {
	el := svgShape{
		Stroke:      s.Style.StrokeColor,
		StrokeWidth: num(s.Style.StrokeWidth),
		Class:       s.Kind.String() + "-shape",
	}
	if s.Kind != core.Line {
		el.Fill = s.Style.Fill(s.Kind)
	}

	p := s.Points
	switch s.Kind {
	case core.Bezier:
		el.XMLName.Local = "path"
		el.D = fmt.Sprintf("M%s,%s C%s,%s %s,%s %s,%s",
			num(p[0].X), num(p[0].Y), num(p[1].X), num(p[1].Y),
			num(p[2].X), num(p[2].Y), num(p[3].X), num(p[3].Y))
	case core.Line:
		el.XMLName.Local = "line"
		el.X1, el.Y1 = num(p[0].X), num(p[0].Y)
		el.X2, el.Y2 = num(p[1].X), num(p[1].Y)
	case core.Rectangle:
		r := s.Rect()
		el.XMLName.Local = "rect"
		el.X, el.Y = num(r.X), num(r.Y)
		el.Width, el.Height = num(r.Width), num(r.Height)
	case core.Circle:
		el.XMLName.Local = "circle"
		el.CX, el.CY = num(p[0].X), num(p[0].Y)
		el.R = num(s.Radius())
	}
	return el
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// GetFileExtension returns the file extension for SVG
func (e *SVGExporter) GetFileExtension() string {
	return ".svg"
}

// GetFormatName returns the format name
func (e *SVGExporter) GetFormatName() string {
	return "SVG"
}
