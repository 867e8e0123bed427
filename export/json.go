package export

import (
	"encoding/json"

	"vecsketch/core"
)

// JSONExporter exports documents to JSON format
type JSONExporter struct{}

// NewJSONExporter creates a new JSON exporter
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Export converts a document to JSON
func (e *JSONExporter) Export(doc *core.Document) ([]byte, error) {
	if err := checkShapes(doc.Shapes); err != nil {
		return nil, err
	}
	out := *doc
	if out.Shapes == nil {
		out.Shapes = []core.Shape{}
	}
	out.Width, out.Height = pageSize(doc)
	return json.MarshalIndent(out, "", "  ")
}

// GetFileExtension returns the file extension for JSON
func (e *JSONExporter) GetFileExtension() string {
	return ".json"
}

// GetFormatName returns the format name
func (e *JSONExporter) GetFormatName() string {
	return "JSON"
}
