package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"vecsketch/config"
	"vecsketch/core"
	"vecsketch/demo"
	"vecsketch/editor"
	"vecsketch/export"
	"vecsketch/geometry"
	"vecsketch/logging"
	"vecsketch/render"
	"vecsketch/tui"
)

func main() {
	var (
		configPath = flag.String("config", "", "Config file (default: "+config.ConfigPath()+")")
		shape      = flag.String("shape", "", "Initial tool: bezier, line, rectangle or circle")
		grid       = flag.Int("grid", 0, "Grid cell size")
		snap       = flag.Bool("snap", false, "Snap points to the grid")
		format     = flag.String("format", "", "Export format: svg, json, png, pdf")
		outputFile = flag.String("o", "", "Export file for -replay (default: <export dir>/bezier_drawing.<format>)")
		replay     = flag.String("replay", "", "Replay a gesture script headless and export the result")
		example    = flag.Bool("example", false, "Print an example gesture script")
		logLevel   = flag.String("log-level", "", "Log level: debug, info, warn, error")
		help       = flag.Bool("help", false, "Show help")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Draw Bezier curves, lines, rectangles and circles in the terminal.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                                  # Start the editor\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -shape line -grid 10 -snap       # Snap lines to a 10 unit grid\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -example > shapes.json\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -replay shapes.json -o out.png   # Render a script to PNG\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEditor Keys:\n")
		fmt.Fprintf(os.Stderr, "  b l r c        Bezier, line, rectangle, circle\n")
		fmt.Fprintf(os.Stderr, "  Enter          Finish the curve (or double-click)\n")
		fmt.Fprintf(os.Stderr, "  g s + -        Grid overlay, snapping, grid size\n")
		fmt.Fprintf(os.Stderr, "  f [ ]          Fill, stroke width\n")
		fmt.Fprintf(os.Stderr, "  u Ctrl+Z       Undo\n")
		fmt.Fprintf(os.Stderr, "  Del Backspace  Clear the canvas\n")
		fmt.Fprintf(os.Stderr, "  Esc            Discard the shape being drawn\n")
		fmt.Fprintf(os.Stderr, "  w              Export\n")
		fmt.Fprintf(os.Stderr, "  q Ctrl+C       Quit\n")
		fmt.Fprintf(os.Stderr, "\nCommands:\n")
		fmt.Fprintf(os.Stderr, "  :stroke #rrggbb   :fill #rrggbb|on|off   :width N   :grid N\n")
		fmt.Fprintf(os.Stderr, "  :shape KIND   :snap [on|off]   :undo   :clear   :export [format] [name]   :q\n")
	}

	flag.Parse()

	if *help {
		flag.Usage()
		os.Exit(0)
	}

	if *example {
		fmt.Println(demo.GenerateExample())
		os.Exit(0)
	}

	loader := config.NewLoader(*configPath)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Flags override the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "shape":
			cfg.Tool.Shape = *shape
		case "grid":
			cfg.Grid.Size = *grid
		case "snap":
			cfg.Grid.Snap = *snap
		case "format":
			cfg.Export.Format = *format
		case "log-level":
			cfg.Logging.Level = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg, *replay != "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *replay != "" {
		path, err := runReplay(ctx, cfg, logger, *replay, *outputFile)
		if err != nil {
			logger.Error("replay failed", "error", err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(path)
		return
	}

	if err := runInteractive(ctx, cfg, logger, loader); err != nil {
		logger.Error("editor failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the logger from the config. The editor owns the
// terminal, so stdout and stderr output only make sense when headless.
func newLogger(cfg *config.Config, headless bool) (*logging.Logger, error) {
	lc, err := cfg.LoggerConfig()
	if err != nil {
		return nil, err
	}
	if !headless && (lc.Output == "stdout" || lc.Output == "stderr") {
		lc.Output = "file"
	}
	return logging.New(lc)
}

func runInteractive(ctx context.Context, cfg *config.Config, logger *logging.Logger, loader *config.Loader) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}

	if err := loader.Watch(); err != nil {
		logger.Warn("config hot reload disabled", "path", loader.Path(), "error", err)
	}
	defer loader.Close()

	app := tui.New(screen, cfg,
		tui.WithLogger(logger.WithComponent("tui")),
		tui.WithLoader(loader),
	)
	return app.Run(ctx)
}

// runReplay plays a script into a fresh session and exports the result.
func runReplay(ctx context.Context, cfg *config.Config, logger *logging.Logger, scriptPath, output string) (string, error) {
	script, err := demo.LoadScript(scriptPath)
	if err != nil {
		return "", err
	}

	dir, base, format, err := outputTarget(cfg, output)
	if err != nil {
		return "", err
	}
	exporter, err := export.NewExporter(format)
	if err != nil {
		return "", err
	}

	panel := config.NewPanel(cfg)
	scene := render.NewScene()
	bounds := geometry.Rect{Width: cfg.Canvas.Width, Height: cfg.Canvas.Height}
	session := editor.NewSession(scene, panel, cfg.ShapeKind(),
		editor.WithLogger(logger.WithComponent("editor")))
	session.ShowGrid(panel.GridSize(), panel.GridVisible(), bounds)

	player := demo.NewPlayer(session, panel, bounds, demo.WithLogger(logger.WithComponent("replay")))
	if err := player.Play(ctx, script); err != nil {
		return "", err
	}

	doc := session.Document(cfg.Canvas.Width, cfg.Canvas.Height)
	path, err := export.WriteFile(dir, base, exporter, doc)
	if err != nil {
		return "", err
	}
	logger.Info("replay exported", "script", script.Name, "path", path, "shapes", len(doc.Shapes), "kinds", kinds(doc.Shapes))
	return path, nil
}

// outputTarget splits -o into directory, base name and format. A file
// extension overrides the configured format.
func outputTarget(cfg *config.Config, output string) (dir, base string, format export.Format, err error) {
	format, err = export.ParseFormat(cfg.Export.Format)
	if err != nil {
		return "", "", "", err
	}
	if output == "" {
		return cfg.Export.Dir, cfg.Export.BaseName, format, nil
	}

	dir, name := filepath.Split(output)
	ext := filepath.Ext(name)
	base = strings.TrimSuffix(name, ext)
	if base == "" {
		return "", "", "", errors.New("output file name is empty")
	}
	if ext != "" {
		format, err = export.ParseFormat(ext)
		if err != nil {
			return "", "", "", err
		}
	}
	return dir, base, format, nil
}

func kinds(shapes []core.Shape) []string {
	names := make([]string, len(shapes))
	for i, s := range shapes {
		names[i] = s.Kind.String()
	}
	return names
}
