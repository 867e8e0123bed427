package export

import (
	"fmt"
	"os"
	"path/filepath"

	"vecsketch/core"
)

// DefaultBaseName is the file name, without extension, used for exports.
const DefaultBaseName = "bezier_drawing"

// FileName returns the export file name for the exporter.
func FileName(baseName string, exporter Exporter) string {
	if baseName == "" {
		baseName = DefaultBaseName
	}
	return baseName + exporter.GetFileExtension()
}

// WriteFile exports doc into dir and returns the path written. The file is
// written to a temporary name first and renamed so a failed export never
// leaves a truncated drawing behind.
func WriteFile(dir, baseName string, exporter Exporter, doc *core.Document) (string, error) {
	data, err := exporter.Export(doc)
	if err != nil {
		return "", fmt.Errorf("export %s: %w", exporter.GetFormatName(), err)
	}

	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	path := filepath.Join(dir, FileName(baseName, exporter))
	tmp, err := os.CreateTemp(dir, ".export-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("rename to %s: %w", path, err)
	}
	return path, nil
}
