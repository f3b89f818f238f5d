package app

import (
	"errors"
	"runtime/debug"
	"time"

	"github.com/dshills/linkdraw/internal/config"
	"github.com/dshills/linkdraw/internal/input/mouse"
	"github.com/dshills/linkdraw/internal/renderer/backend"
)

const (
	targetFPS = 60
	frameTime = time.Second / targetFPS

	// eventBuffer is how many terminal events may queue between frames.
	eventBuffer = 64
)

// eventLoop is the main application loop. Input, config reloads and
// frames are all handled here, one at a time.
func (app *Application) eventLoop() (err error) {
	events := make(chan backend.Event, eventBuffer)
	go app.poll(events)

	defer func() {
		if r := recover(); r != nil {
			err = &RecoveredPanicError{Value: r, Stack: string(debug.Stack())}
		}
		app.Shutdown()
	}()

	frameTicker := time.NewTicker(frameTime)
	defer frameTicker.Stop()

	lastUpdate := time.Now()
	dirty := true

	for {
		select {
		case <-app.done:
			return nil

		case ev := <-events:
			start := time.Now()
			if err := app.handleBackendEvent(ev); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				return err
			}
			app.metrics.RecordInput(time.Since(start))
			dirty = true

		case cfg := <-app.reloads:
			app.applyConfig(cfg)
			dirty = true

		case now := <-frameTicker.C:
			dt := now.Sub(lastUpdate).Seconds()
			lastUpdate = now

			if app.editor.Tick(dt) {
				dirty = true
			}
			if dirty {
				app.renderFrame()
				dirty = false
			}
		}
	}
}

// poll forwards backend events until the loop is done. It runs on its own
// goroutine because PollEvent blocks.
func (app *Application) poll(out chan<- backend.Event) {
	for {
		ev := app.backend.PollEvent()

		select {
		case <-app.done:
			return
		default:
		}

		if ev.Type == backend.EventNone || ev.Type == backend.EventInterrupt {
			continue
		}

		select {
		case out <- ev:
		case <-app.done:
			return
		}
	}
}

// renderFrame draws the editor state.
func (app *Application) renderFrame() {
	r := app.Renderer()
	if r == nil {
		return
	}
	start := time.Now()
	r.Render(app.editor)
	app.metrics.RecordFrame(time.Since(start))
}

// applyConfig switches to a reloaded config. The log file and scene are
// only read at startup, and command line overrides still apply.
func (app *Application) applyConfig(cfg *config.Config) {
	if app.opts.LogLevel != "" {
		cfg.Log.Level = app.opts.LogLevel
	}
	cfg.Log.File = app.cfg.Log.File
	cfg.Editor.Scene = app.cfg.Editor.Scene
	app.cfg = cfg

	app.logger.SetLevel(ParseLogLevel(cfg.Log.Level))
	app.editor.SetConfig(editorConfig(cfg))
	app.model.SetSpringConfig(springConfig(cfg))
	app.theme = app.themeFor(cfg)

	// A fresh decoder would forget a held button.
	if app.decoder.Held() == mouse.ButtonNone {
		app.mouseCfg = mouseConfig(cfg)
		app.decoder = mouse.NewDecoder(app.mouseCfg)
	}

	if r := app.Renderer(); r != nil {
		r.SetTheme(app.theme)
		r.SetOptions(rendererOptions(cfg))
	}
	app.setMessage("config reloaded")
	app.metrics.RecordConfigReload()
	app.logger.WithComponent("config").Info("reloaded %s", cfg.Path())
}
