package mouse

import "github.com/dshills/linkdraw/internal/event"

// Listener receives mouse events.
type Listener func(Event)

// Hub fans decoded mouse events out to listeners, grouped by action.
// The zero value is ready to use.
type Hub struct {
	moves    event.Dispatcher[Event]
	presses  event.Dispatcher[Event]
	releases event.Dispatcher[Event]
	scrolls  event.Dispatcher[Event]
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{}
}

// OnMove registers l for move and drag events.
func (h *Hub) OnMove(l Listener) func() {
	return listen(&h.moves, l)
}

// OnPress registers l for button presses. Wheel ticks are not presses.
func (h *Hub) OnPress(l Listener) func() {
	return listen(&h.presses, l)
}

// OnRelease registers l for releases of button. ButtonNone receives
// every release.
func (h *Hub) OnRelease(button Button, l Listener) func() {
	if button == ButtonNone {
		return listen(&h.releases, l)
	}
	sub := h.releases.SubscribeFiltered(func(ev Event) bool {
		return ev.Button.Matches(button)
	}, event.Handler[Event](l))
	return sub.Cancel
}

// OnScroll registers l for wheel events.
func (h *Hub) OnScroll(l Listener) func() {
	return listen(&h.scrolls, l)
}

// Dispatch routes ev to the listeners registered for its action.
func (h *Hub) Dispatch(ev Event) {
	switch {
	case ev.Action.IsMotion():
		h.moves.Dispatch(ev)
	case ev.Action == ActionPress && ev.Button.IsScroll():
		h.scrolls.Dispatch(ev)
	case ev.Action == ActionPress:
		h.presses.Dispatch(ev)
	case ev.Action == ActionRelease:
		h.releases.Dispatch(ev)
	}
}

// ListenerCount returns the number of move and release listeners.
// A drag operation holds one of each while active.
func (h *Hub) ListenerCount() (moves, releases int) {
	return h.moves.Len(), h.releases.Len()
}

func listen(d *event.Dispatcher[Event], l Listener) func() {
	sub := d.Subscribe(event.Handler[Event](l))
	return sub.Cancel
}
