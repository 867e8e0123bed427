// Package tui is the terminal front end: a tcell screen showing the canvas
// above a one-line panel, driven by mouse and keyboard.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"vecsketch/canvas"
	"vecsketch/config"
	"vecsketch/editor"
	"vecsketch/export"
	"vecsketch/geometry"
	"vecsketch/input"
	"vecsketch/render"
)

// Mode is what keyboard input currently edits.
type Mode int

const (
	ModeDraw Mode = iota
	ModeCommand
)

// String returns the mode name shown in the panel.
func (m Mode) String() string {
	if m == ModeCommand {
		return "COMMAND"
	}
	return "DRAW"
}

// quitSignal asks the event loop to stop.
type quitSignal struct{}

// App owns the screen and every piece of editor state. All state changes
// happen inside HandleEvent on the event loop goroutine; background
// producers only post events to the screen.
type App struct {
	screen  tcell.Screen
	cfg     *config.Config
	panel   *config.Panel
	scene   *render.Scene
	session *editor.Session
	raster  *canvas.Raster
	mouse   input.MouseTracker
	loader  *config.Loader
	logger  *slog.Logger
	glyphs  canvas.Glyphs
	colors  palette

	mode    Mode
	command []rune
	status  string
	quit    bool
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger used by the app and its session.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) { a.logger = l }
}

// WithGlyphs overrides the detected glyph set.
func WithGlyphs(g canvas.Glyphs) Option {
	return func(a *App) { a.glyphs = g }
}

// WithLoader hot-reloads settings from the loader's file.
func WithLoader(l *config.Loader) Option {
	return func(a *App) { a.loader = l }
}

// New creates an app drawing on screen with the settings in cfg.
func New(screen tcell.Screen, cfg *config.Config, opts ...Option) *App {
	a := &App{
		screen: screen,
		cfg:    cfg.Clone(),
		panel:  config.NewPanel(cfg),
		scene:  render.NewScene(),
		logger: slog.New(slog.DiscardHandler),
		glyphs: canvas.DetectGlyphs(),
		colors: palette{},
	}
	for _, opt := range opts {
		opt(a)
	}
	a.session = editor.NewSession(a.scene, a.panel, a.cfg.ShapeKind(), editor.WithLogger(a.logger))
	return a
}

// Session returns the editor session.
func (a *App) Session() *editor.Session {
	return a.session
}

// Panel returns the live settings.
func (a *App) Panel() *config.Panel {
	return a.panel
}

// Scene returns the retained scene being painted.
func (a *App) Scene() *render.Scene {
	return a.scene
}

// Mode returns the current input mode.
func (a *App) Mode() Mode {
	return a.mode
}

// Status returns the last status message.
func (a *App) Status() string {
	return a.status
}

// Start initializes the screen and lays out the canvas.
func (a *App) Start() error {
	if err := a.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	a.screen.EnableMouse()
	a.screen.EnableFocus()
	a.screen.HideCursor()
	a.layout()
	a.rebuildGrid()
	return nil
}

// Stop restores the terminal.
func (a *App) Stop() {
	a.screen.Fini()
}

// Run starts the screen and processes events until the user quits or ctx
// is done.
func (a *App) Run(ctx context.Context) error {
	if err := a.Start(); err != nil {
		return err
	}
	defer a.Stop()

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			a.screen.PostEvent(tcell.NewEventInterrupt(quitSignal{}))
		case <-done:
		}
	}()

	if a.loader != nil {
		a.loader.OnChange(func(cfg *config.Config) {
			a.screen.PostEvent(tcell.NewEventInterrupt(cfg))
		})
		go func() {
			for {
				select {
				case err := <-a.loader.Errors():
					a.screen.PostEvent(tcell.NewEventInterrupt(err))
				case <-done:
					return
				}
			}
		}()
	}

	a.logger.Info("editor started", "tool", a.session.Kind().String())
	for !a.quit {
		a.Draw()
		ev := a.screen.PollEvent()
		if ev == nil {
			break
		}
		a.HandleEvent(ev)
	}
	a.logger.Info("editor stopped", "shapes", a.session.History().Len())
	return nil
}

// HandleEvent applies one screen event. It reports whether the app should exit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.layout()
		a.screen.Sync()
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventFocus:
		if !ev.Focused {
			if raw, ok := a.mouse.Leave(time.Now()); ok {
				a.session.HandleRaw(raw)
			}
		}
	case *tcell.EventKey:
		if a.mode == ModeCommand {
			a.handleCommandKey(ev)
		} else {
			a.handleDrawKey(ev)
		}
	case *tcell.EventInterrupt:
		a.handleInterrupt(ev.Data())
	}
	return a.quit
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	raw := a.mouse.Translate(ev)
	// Hover without a held button never reaches the editor
	if !input.SuppressDefault(raw, a.session.Pressed()) {
		return
	}
	a.session.HandleRaw(raw)
}

func (a *App) handleInterrupt(data any) {
	switch v := data.(type) {
	case quitSignal:
		a.quit = true
	case *config.Config:
		a.ApplyConfig(v)
		a.setStatus("config reloaded")
	case error:
		a.setStatus("config: " + v.Error())
		a.logger.Warn("config reload failed", "error", v)
	}
}

// ApplyConfig replaces the live settings after a reload. An open draft is
// restyled; the tool only changes when the configured shape changed.
func (a *App) ApplyConfig(cfg *config.Config) {
	prev := a.cfg
	a.cfg = cfg.Clone()
	a.panel.Apply(cfg)

	if cfg.ShapeKind() != prev.ShapeKind() {
		a.session.SelectKind(cfg.ShapeKind())
	}
	if cfg.Canvas != prev.Canvas {
		a.layout()
	}
	a.rebuildGrid()
	a.session.Restyle()
}

// layout sizes the raster and viewport to the screen: every row but the
// last shows the canvas.
func (a *App) layout() {
	w, h := a.screen.Size()
	rows := h - 1
	if w <= 0 || rows <= 0 {
		a.raster = nil
		return
	}

	r, err := canvas.NewRaster(w, rows, a.glyphs)
	if err != nil {
		a.raster = nil
		return
	}
	r.SetView(a.cfg.Canvas.Width, a.cfg.Canvas.Height)
	a.raster = r

	a.session.SetViewport(input.Viewport{
		Width:         float64(w),
		Height:        float64(rows),
		LogicalWidth:  a.cfg.Canvas.Width,
		LogicalHeight: a.cfg.Canvas.Height,
	})
}

func (a *App) bounds() geometry.Rect {
	return geometry.Rect{Width: a.cfg.Canvas.Width, Height: a.cfg.Canvas.Height}
}

func (a *App) rebuildGrid() {
	a.session.ShowGrid(a.panel.GridSize(), a.panel.GridVisible(), a.bounds())
}

// Export writes the committed shapes in format under baseName, falling back
// to the configured format and name when either is empty.
func (a *App) Export(format, baseName string) (string, error) {
	if format == "" {
		format = a.cfg.Export.Format
	}
	if baseName == "" {
		baseName = a.cfg.Export.BaseName
	}

	f, err := export.ParseFormat(format)
	if err != nil {
		return "", err
	}
	exporter, err := export.NewExporter(f)
	if err != nil {
		return "", err
	}

	doc := a.session.Document(a.cfg.Canvas.Width, a.cfg.Canvas.Height)
	path, err := export.WriteFile(a.cfg.Export.Dir, baseName, exporter, doc)
	if err != nil {
		return "", err
	}
	a.logger.Info("exported", "path", path, "format", exporter.GetFormatName(), "shapes", len(doc.Shapes))
	return path, nil
}

func (a *App) export(format, baseName string) {
	path, err := a.Export(format, baseName)
	if err != nil {
		a.setStatus("export failed: " + err.Error())
		a.logger.Error("export failed", "error", err)
		return
	}
	a.setStatus("exported " + path)
}

func (a *App) setStatus(msg string) {
	a.status = msg
}
