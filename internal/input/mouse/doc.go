// Package mouse turns raw terminal mouse samples into typed pointer events
// and fans them out to interested listeners.
//
// # Core Types
//
// Event represents a decoded pointer event with position, button,
// modifiers and action type:
//
//	event := mouse.Event{
//	    Position:  mouse.Position{X: 10, Y: 5},
//	    Button:    mouse.ButtonLeft,
//	    Action:    mouse.ActionPress,
//	    Timestamp: time.Now(),
//	}
//
// # Decoder
//
// Terminals report the set of held buttons with every mouse sample rather
// than discrete press and release notifications. Decoder keeps the
// previously held button and synthesizes press, release, move and drag
// events from the transitions. Presses of the left button carry a click
// count so double clicks can be recognized:
//
//	dec := mouse.NewDecoder(mouse.DefaultConfig())
//	for _, ev := range dec.Decode(pos, held, mods, time.Now()) {
//	    hub.Dispatch(ev)
//	}
//
// # Hub
//
// Hub is the process-wide pointer source. Drag operations subscribe to its
// move and release streams for their lifetime; view code subscribes to
// presses and scrolls. Every On* method returns a function that removes
// the listener.
//
// # Scroll Handling
//
// Wheel events are translated into ScrollEvent values with a configurable
// line count; Ctrl+wheel is reported as zoom.
package mouse
