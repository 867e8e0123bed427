package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vecsketch/core"
	"vecsketch/export"
	"vecsketch/geometry"
	"vecsketch/logging"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 800.0, cfg.Canvas.Width)
	assert.Equal(t, "#000000", cfg.Style.StrokeColor)
	assert.Equal(t, 2.0, cfg.Style.StrokeWidth)
	assert.False(t, cfg.Style.FillEnabled)
	assert.Equal(t, 20, cfg.Grid.Size)
	assert.True(t, cfg.Grid.Visible)
	assert.False(t, cfg.Grid.Snap)
	assert.Equal(t, core.Bezier, cfg.ShapeKind())
	assert.Equal(t, "bezier_drawing", cfg.Export.BaseName)
	assert.Equal(t, "svg", cfg.Export.Format)
}

func TestLoadNonexistent(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.toml", `
# drawing defaults
[style]
stroke_color = "#336699"
stroke_width = 4.0
fill_enabled = true

[grid]
size = 40
snap = true

[tool]
shape = "rect"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "#336699", cfg.Style.StrokeColor)
	assert.Equal(t, 4.0, cfg.Style.StrokeWidth)
	assert.True(t, cfg.Style.FillEnabled)
	assert.Equal(t, "#cccccc", cfg.Style.FillColor, "unset keys keep defaults")
	assert.Equal(t, 40, cfg.Grid.Size)
	assert.True(t, cfg.Grid.Snap)
	assert.True(t, cfg.Grid.Visible)
	assert.Equal(t, core.Rectangle, cfg.ShapeKind())
}

func TestLoadJSONAndYAML(t *testing.T) {
	dir := t.TempDir()

	jsonPath := writeFile(t, dir, "config.json", `{"grid": {"size": 25, "visible": false, "snap": true}}`)
	cfg, err := Load(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Grid.Size)
	assert.False(t, cfg.Grid.Visible)

	yamlPath := writeFile(t, dir, "config.yaml", "export:\n  format: pdf\n  dir: out\n")
	cfg, err = Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "pdf", cfg.Export.Format)
	assert.Equal(t, "out", cfg.Export.Dir)
	assert.Equal(t, "bezier_drawing", cfg.Export.BaseName)
}

func TestLoadUnknownExtensionAutoDetects(t *testing.T) {
	path := writeFile(t, t.TempDir(), "vecsketchrc", `{"tool": {"shape": "circle"}}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, core.Circle, cfg.ShapeKind())
}

func TestLoadInvalidTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.toml", "[style\nstroke_color = ")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidateCollectsErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Style.StrokeColor = "blue"
	cfg.Style.StrokeWidth = 0
	cfg.Grid.Size = 3
	cfg.Tool.Shape = "star"
	cfg.Export.Format = "bmp"
	cfg.Logging.Level = "loud"

	err := cfg.Validate()
	require.Error(t, err)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	fields := make([]string, len(verrs))
	for i, e := range verrs {
		fields[i] = e.Field
	}
	assert.ElementsMatch(t, []string{
		"style.stroke_color", "style.stroke_width", "grid.size",
		"tool.shape", "export.format", "logging.level",
	}, fields)
	assert.Contains(t, err.Error(), "config: grid.size")
}

func TestValidateRejectsPathBaseName(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Export.BaseName = "../escape"
	assert.Error(t, cfg.Validate())
}

func TestLoadReportsValidation(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.toml", "[canvas]\nwidth = -1\n")
	_, err := Load(path)
	var verrs ValidationErrors
	assert.True(t, errors.As(err, &verrs))
}

func TestParseColor(t *testing.T) {
	for _, ok := range []string{"#000000", "#FFaa00", "#abc"} {
		assert.NoError(t, ValidateColor(ok), ok)
	}
	for _, bad := range []string{"", "red", "#zzzzzz", "000000"} {
		assert.Error(t, ValidateColor(bad), bad)
	}

	for in, want := range map[string]string{" #FF0000 ": "#ff0000", "#abc": "#aabbcc", "#336699": "#336699"} {
		got, err := NormalizeColor(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	c, err := ParseColor("#ff0000")
	require.NoError(t, err)
	r, g, b := c.RGB255()
	assert.Equal(t, [3]uint8{255, 0, 0}, [3]uint8{r, g, b})
}

func TestLoggerConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "debug"
	cfg.Logging.Format = "json"
	cfg.Logging.Output = "discard"

	lc, err := cfg.LoggerConfig()
	require.NoError(t, err)
	assert.Equal(t, logging.LevelDebug, lc.Level)
	assert.Equal(t, logging.FormatJSON, lc.Format)
	assert.Equal(t, "discard", lc.Output)
}

func TestPanel(t *testing.T) {
	p := NewPanel(DefaultConfig())

	assert.Equal(t, core.Style{StrokeColor: "#000000", StrokeWidth: 2, FillColor: "#cccccc"}, p.Style())
	assert.Equal(t, geometry.Grid{Enabled: false, CellSize: 20}, p.SnapGrid())

	require.NoError(t, p.SetStrokeColor("#ff0000"))
	assert.Error(t, p.SetStrokeColor("nope"))
	assert.Equal(t, "#ff0000", p.Style().StrokeColor)

	require.NoError(t, p.SetFillColor("#00ff00"))
	assert.True(t, p.Style().FillEnabled)
	assert.False(t, p.ToggleFill())

	assert.Error(t, p.SetStrokeWidth(0))
	require.NoError(t, p.SetStrokeWidth(7.5))
	assert.Equal(t, 8.5, p.AdjustStrokeWidth(1))
	p.AdjustStrokeWidth(-100)
	assert.Equal(t, 1.0, p.Style().StrokeWidth)

	assert.True(t, p.ToggleSnap())
	assert.Equal(t, geometry.Grid{Enabled: true, CellSize: 20}, p.SnapGrid())
	assert.False(t, p.ToggleGrid())
	assert.False(t, p.GridVisible())

	assert.Equal(t, 25, p.AdjustGridSize(1))
	assert.Equal(t, MinGridSize, p.AdjustGridSize(-100))
	assert.Equal(t, MaxGridSize, p.AdjustGridSize(100))
	assert.Error(t, p.SetGridSize(1))
	require.NoError(t, p.SetGridSize(30))
	assert.Equal(t, 30, p.GridSize())

	p.Apply(DefaultConfig())
	assert.Equal(t, 20, p.GridSize())
	assert.False(t, p.Snap())
}

func TestLoaderWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", "[grid]\nsize = 20\n")

	l := NewLoader(path)
	defer l.Close()

	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Grid.Size)

	changed := make(chan *Config, 4)
	l.OnChange(func(c *Config) { changed <- c })
	require.NoError(t, l.Watch())

	writeFile(t, dir, "config.toml", "[grid]\nsize = 45\n")

	select {
	case c := <-changed:
		assert.Equal(t, 45, c.Grid.Size)
	case <-time.After(5 * time.Second):
		t.Fatal("config change not observed")
	}
}

func TestLoaderKeepsConfigOnInvalidReload(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", "[grid]\nsize = 20\n")

	l := NewLoader(path)
	defer l.Close()
	_, err := l.Load()
	require.NoError(t, err)

	changed := make(chan *Config, 4)
	l.OnChange(func(c *Config) { changed <- c })
	require.NoError(t, l.Watch())

	writeFile(t, dir, "config.toml", "[grid]\nsize = 1\n")

	select {
	case err := <-l.Errors():
		assert.Contains(t, err.Error(), "grid.size")
	case <-time.After(5 * time.Second):
		t.Fatal("validation error not reported")
	}
	assert.Empty(t, changed, "invalid file must not reach callbacks")
	assert.NoError(t, l.Close())
	assert.NoError(t, l.Close(), "close is idempotent")
}

func TestLoadWithoutExtensionGuessesFormat(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(writeFile(t, dir, "vecsketchrc", "[grid]\nsize = 35\n"))
	require.NoError(t, err)
	assert.Equal(t, 35, cfg.Grid.Size)

	cfg, err = Load(writeFile(t, dir, "other", `{"grid": {"size": 25}}`))
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Grid.Size)
}

func TestPaddedColorsAreNormalizedForExport(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.toml", `
[style]
stroke_color = " #FF0000"
fill_color = "#0F0 "
fill_enabled = true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", cfg.Style.StrokeColor)
	assert.Equal(t, "#00ff00", cfg.Style.FillColor)

	p := NewPanel(cfg)
	require.NoError(t, p.SetFillColor(" #0000FF"))
	assert.Equal(t, "#0000ff", p.Style().FillColor)

	doc := &core.Document{Width: 40, Height: 40, Shapes: []core.Shape{
		core.NewShape(core.Rectangle, []geometry.Point{geometry.Pt(5, 5), geometry.Pt(30, 30)}, p.Style()),
	}}
	for _, format := range export.GetAvailableFormats() {
		exporter, err := export.NewExporter(format)
		require.NoError(t, err)
		_, err = exporter.Export(doc)
		assert.NoError(t, err, string(format))
	}
}

func TestPanelApplyNormalizesColors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Style.StrokeColor = " #FF0000"

	p := NewPanel(cfg)
	assert.Equal(t, "#ff0000", p.Style().StrokeColor)
}
