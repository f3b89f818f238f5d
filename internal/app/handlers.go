package app

import (
	"fmt"

	"github.com/dshills/linkdraw/internal/input/mouse"
	"github.com/dshills/linkdraw/internal/renderer/backend"
)

// Keyboard navigation steps.
const (
	panColumns = 4
	panRows    = 2
	zoomStep   = 1.25
)

// handleBackendEvent processes a backend event and routes it appropriately.
// Returns ErrQuit if the application should exit.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventResize:
		app.handleResize(ev)
	case backend.EventKey:
		return app.handleKeyEvent(ev)
	case backend.EventMouse:
		app.handleMouseEvent(ev)
	}
	return nil
}

// handleResize processes terminal resize events.
func (app *Application) handleResize(ev backend.Event) {
	if r := app.Renderer(); r != nil {
		r.Resize(ev.Width, ev.Height)
		return
	}
	app.view.Resize(ev.Width, ev.Height)
}

// handleMouseEvent decodes a raw mouse sample and dispatches the result.
func (app *Application) handleMouseEvent(ev backend.Event) {
	pos := mouse.Position{X: ev.MouseX, Y: ev.MouseY}
	for _, me := range app.decoder.Decode(pos, mouseButton(ev.MouseButton), mouseMods(ev.Mod), ev.When) {
		app.hub.Dispatch(me)
	}
}

// handleScroll pans on plain wheel ticks and zooms on Ctrl+wheel.
func (app *Application) handleScroll(ev mouse.Event) {
	se := mouse.ParseScrollEvent(ev, app.mouseCfg)
	if se == nil {
		return
	}
	if se.IsZoom {
		factor := zoomStep
		if !se.ZoomIn {
			factor = 1 / zoomStep
		}
		app.view.ZoomAt(ev.Position.Point(), factor)
		return
	}
	app.view.Pan(se.Delta())
}

// handleKeyEvent processes keyboard input events.
func (app *Application) handleKeyEvent(ev backend.Event) error {
	switch ev.Key {
	case backend.KeyCtrlC:
		return ErrQuit
	case backend.KeyEscape:
		if !app.editor.CancelAll() {
			app.editor.ClearSelection()
		}
	case backend.KeyDelete, backend.KeyBackspace:
		app.deleteMarked()
	case backend.KeyUp:
		app.view.Pan(0, -panRows)
	case backend.KeyDown:
		app.view.Pan(0, panRows)
	case backend.KeyLeft:
		app.view.Pan(-panColumns, 0)
	case backend.KeyRight:
		app.view.Pan(panColumns, 0)
	case backend.KeyHome:
		app.view.Reset()
	case backend.KeyRune:
		return app.handleRune(ev.Rune)
	}
	return nil
}

func (app *Application) handleRune(r rune) error {
	switch r {
	case 'q':
		return ErrQuit
	case '+', '=':
		app.zoomCenter(zoomStep)
	case '-':
		app.zoomCenter(1 / zoomStep)
	case '0':
		app.view.Reset()
	}
	return nil
}

func (app *Application) zoomCenter(factor float64) {
	center := mouse.Position{X: app.view.Width() / 2, Y: app.view.Height() / 2}
	app.view.ZoomAt(center.Point(), factor)
}

func (app *Application) deleteMarked() {
	n := app.editor.DeleteMarked()
	if n == 0 {
		return
	}
	app.setMessage(fmt.Sprintf("deleted %d link(s)", n))
	app.logger.WithComponent("editor").Debug("deleted %d marked links", n)
}

func (app *Application) setMessage(msg string) {
	if r := app.Renderer(); r != nil {
		r.SetMessage(msg)
	}
}

// mouseButton converts the backend button mask to the decoder's button set.
func mouseButton(b backend.MouseButton) mouse.Button {
	pairs := []struct {
		from backend.MouseButton
		to   mouse.Button
	}{
		{backend.MouseLeft, mouse.ButtonLeft},
		{backend.MouseMiddle, mouse.ButtonMiddle},
		{backend.MouseRight, mouse.ButtonRight},
		{backend.MouseWheelUp, mouse.ButtonScrollUp},
		{backend.MouseWheelDown, mouse.ButtonScrollDown},
		{backend.MouseWheelLeft, mouse.ButtonScrollLeft},
		{backend.MouseWheelRight, mouse.ButtonScrollRight},
	}

	var buttons mouse.Button
	for _, p := range pairs {
		if b.Has(p.from) {
			buttons |= p.to
		}
	}
	return buttons
}

// mouseMods converts backend modifiers to mouse modifiers.
func mouseMods(m backend.ModMask) mouse.Modifier {
	var mods mouse.Modifier
	if m.Has(backend.ModShift) {
		mods |= mouse.ModShift
	}
	if m.Has(backend.ModCtrl) {
		mods |= mouse.ModCtrl
	}
	if m.Has(backend.ModAlt) {
		mods |= mouse.ModAlt
	}
	if m.Has(backend.ModMeta) {
		mods |= mouse.ModMeta
	}
	return mods
}
