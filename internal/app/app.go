package app

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/linkdraw/internal/config"
	"github.com/dshills/linkdraw/internal/diagram"
	"github.com/dshills/linkdraw/internal/drag"
	"github.com/dshills/linkdraw/internal/editor"
	"github.com/dshills/linkdraw/internal/input/mouse"
	"github.com/dshills/linkdraw/internal/renderer"
	"github.com/dshills/linkdraw/internal/renderer/backend"
	"github.com/dshills/linkdraw/internal/renderer/viewport"
	"github.com/dshills/linkdraw/internal/script"
)

// Application owns the diagram, the editor, and the terminal, and runs the
// event loop that connects them.
//
// Everything that touches the model runs on the goroutine that called Run.
// Terminal polling and config watching happen elsewhere and hand their
// results over through channels.
type Application struct {
	mu sync.RWMutex

	cfg       *config.Config
	logger    *Logger
	logCloser io.Closer
	metrics   *Metrics

	model    *diagram.Model
	hub      *mouse.Hub
	decoder  *mouse.Decoder
	mouseCfg mouse.Config
	editor   *editor.Editor

	view     *viewport.Viewport
	theme    renderer.Theme
	renderer *renderer.Renderer
	backend  backend.Backend

	watcher  *config.Watcher
	reloads  chan *config.Config
	unscroll func()

	// State
	running   atomic.Bool
	done      chan struct{}
	doneOnce  sync.Once
	closeOnce sync.Once

	// Options
	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file.
	ConfigPath string

	// Config, if set, is used instead of loading ConfigPath. ConfigPath is
	// still watched when Watch is set.
	Config *config.Config

	// ScenePath is a Lua scene to load instead of the configured one.
	ScenePath string

	// LogLevel overrides the configured log level.
	LogLevel string

	// LogFile overrides the configured log file.
	LogFile string

	// Watch reloads ConfigPath when it changes.
	Watch bool
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:    opts,
		done:    make(chan struct{}),
		reloads: make(chan *config.Config, 1),
		metrics: NewMetrics(),
	}

	if err := app.bootstrap(); err != nil {
		app.closeResources()
		return nil, err
	}

	return app, nil
}

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Config
	cfg := app.opts.Config
	if cfg == nil {
		loaded, err := config.Load(app.opts.ConfigPath)
		if err != nil {
			return &InitError{Component: "config", Err: err}
		}
		cfg = loaded
	}
	cfg = cfg.Clone()
	if app.opts.LogLevel != "" {
		cfg.Log.Level = app.opts.LogLevel
	}
	if app.opts.LogFile != "" {
		cfg.Log.File = app.opts.LogFile
	}
	if app.opts.ScenePath != "" {
		cfg.Editor.Scene = app.opts.ScenePath
	}
	if err := cfg.Validate(); err != nil {
		return &InitError{Component: "config", Err: err}
	}
	app.cfg = cfg

	// 2. Logging
	logger, closer, err := OpenLogFile(cfg.Log.File, ParseLogLevel(cfg.Log.Level))
	if err != nil {
		return &InitError{Component: "logging", Err: err}
	}
	app.logger = logger
	app.logCloser = closer

	// 3. Model, seeded from the scene
	app.model = diagram.NewModel()
	app.model.SetSpringConfig(springConfig(cfg))
	if err := app.loadScene(cfg.Editor.Scene); err != nil {
		return &InitError{Component: "scene", Err: err}
	}

	// 4. Theme
	app.theme = app.themeFor(cfg)

	// 5. Input and editor. The viewport is sized properly once the
	// backend reports its size.
	app.view = viewport.NewViewport(80, 24)
	app.hub = mouse.NewHub()
	app.mouseCfg = mouseConfig(cfg)
	app.decoder = mouse.NewDecoder(app.mouseCfg)
	app.editor = editor.New(app.model, app.hub, editorConfig(cfg),
		editor.WithLogger(logger.WithComponent("editor")),
		editor.WithSpace(app.view),
	)
	app.unscroll = app.hub.OnScroll(app.handleScroll)

	// 6. Config watcher
	if app.opts.Watch && app.opts.ConfigPath != "" {
		w, err := config.NewWatcher(app.opts.ConfigPath)
		if err != nil {
			// Non-fatal: the editor works without live reload.
			app.logComponentError("config", NewComponentError("config", "watch", err))
		} else {
			w.OnChange(app.queueReload)
			w.OnError(func(err error) {
				app.logComponentError("config", err)
			})
			app.watcher = w
		}
	}

	logger.WithComponent("app").Info("started with %d nodes and %d links",
		len(app.model.Nodes()), len(app.model.Links()))
	return nil
}

// loadScene seeds the model from path, or from the built-in scene.
func (app *Application) loadScene(path string) error {
	if path == "" {
		return script.RunDefault(context.Background(), app.model)
	}
	if err := script.RunFile(context.Background(), app.model, path); err != nil {
		return NewComponentError("scene", "load "+path, err)
	}
	return nil
}

// queueReload runs on the watcher goroutine. Only the newest config is
// kept if the loop has not picked up the previous one.
func (app *Application) queueReload(cfg *config.Config) {
	for {
		select {
		case app.reloads <- cfg:
			return
		default:
		}
		select {
		case <-app.reloads:
		default:
		}
	}
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}

	app.backend = b
	return nil
}

// Run starts the application main loop.
// Blocks until the user quits or Shutdown is called.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)
	defer app.closeResources()

	if app.backend == nil {
		// No backend - wait for shutdown
		<-app.done
		return nil
	}

	if err := app.start(); err != nil {
		return err
	}
	defer app.backend.Shutdown()

	return app.eventLoop()
}

// start initializes the backend and creates the renderer.
func (app *Application) start() error {
	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	app.backend.EnableMouse()
	app.backend.HideCursor()

	app.mu.Lock()
	app.renderer = renderer.New(app.backend, app.view, rendererOptions(app.cfg))
	app.renderer.SetTheme(app.theme)
	app.mu.Unlock()

	w, h := app.backend.Size()
	app.renderer.Resize(w, h)
	return nil
}

// Shutdown asks a running event loop to exit. It is safe to call more
// than once and from any goroutine.
func (app *Application) Shutdown() {
	app.doneOnce.Do(func() {
		close(app.done)
	})

	app.mu.RLock()
	b := app.backend
	app.mu.RUnlock()
	if b != nil {
		// Wake the poller so it can see done.
		b.PostEvent(backend.Event{Type: backend.EventInterrupt})
	}
}

// Close releases what New acquired. Run calls it on exit; call it
// directly only for an application that was never run.
func (app *Application) Close() {
	app.closeResources()
}

// closeResources releases what bootstrap acquired, once.
func (app *Application) closeResources() {
	app.closeOnce.Do(app.release)
}

func (app *Application) release() {
	if app.unscroll != nil {
		app.unscroll()
		app.unscroll = nil
	}
	if app.editor != nil {
		app.editor.Close()
	}
	if app.watcher != nil {
		if err := app.watcher.Close(); err != nil {
			app.logComponentError("config", err)
		}
		app.watcher = nil
	}
	if app.logger != nil {
		s := app.metrics.Snapshot()
		app.logger.WithComponent("app").Info("stopped after %s: %d frames (avg %.2fms), %d events",
			s.Uptime.Round(time.Millisecond), s.FrameCount, s.AvgFrameMs(), s.InputCount)
	}
	if app.logCloser != nil {
		_ = app.logCloser.Close()
		app.logCloser = nil
	}
}

// IsRunning returns true if the application is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Config returns the active configuration.
func (app *Application) Config() *config.Config {
	return app.cfg
}

// Model returns the diagram.
func (app *Application) Model() *diagram.Model {
	return app.model
}

// Editor returns the diagram editor.
func (app *Application) Editor() *editor.Editor {
	return app.editor
}

// Viewport returns the screen-to-diagram transform.
func (app *Application) Viewport() *viewport.Viewport {
	return app.view
}

// Renderer returns the renderer. It is nil until Run has started.
func (app *Application) Renderer() *renderer.Renderer {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.renderer
}

func editorConfig(cfg *config.Config) editor.Config {
	return editor.Config{
		NodeRadius:    cfg.Editor.NodeRadius,
		ArrowLength:   cfg.Editor.ArrowLength,
		LinkTolerance: cfg.Editor.LinkTolerance,
		Policy:        drag.ParsePolicy(cfg.Editor.StartPolicy),
	}
}

func rendererOptions(cfg *config.Config) renderer.Options {
	opts := renderer.DefaultOptions()
	opts.NodeRadius = cfg.Editor.NodeRadius
	opts.ArrowLength = cfg.Editor.ArrowLength
	return opts
}

func springConfig(cfg *config.Config) diagram.SpringConfig {
	return diagram.SpringConfig{
		Stiffness: cfg.Spring.Stiffness,
		Damping:   cfg.Spring.Damping,
		Precision: cfg.Spring.Precision,
	}
}

func mouseConfig(cfg *config.Config) mouse.Config {
	mc := mouse.DefaultConfig()
	mc.DoubleClickTime = cfg.Editor.DoubleClickTime()
	return mc
}

// themeFor builds the theme from the config palette, falling back to the
// default theme if a color is invalid.
func (app *Application) themeFor(cfg *config.Config) renderer.Theme {
	t := cfg.Theme
	theme, err := renderer.ThemeFromPalette(renderer.Palette{
		Node:          t.Node,
		NodeHighlight: t.NodeHighlight,
		Link:          t.Link,
		LinkMarked:    t.LinkMarked,
		LinkHover:     t.LinkHover,
		Lasso:         t.Lasso,
	})
	if err != nil {
		app.logComponentError("theme", err)
		return renderer.DefaultTheme()
	}
	return theme
}
