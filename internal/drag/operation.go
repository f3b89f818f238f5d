package drag

import (
	"github.com/dshills/linkdraw/internal/event"
	"github.com/dshills/linkdraw/internal/geom"
	"github.com/dshills/linkdraw/internal/input/mouse"
)

// PointerSource is the host facility that reports global pointer motion
// and button releases. OnRelease with mouse.ButtonNone hears every
// release. Each method returns a function that removes the
// listener. mouse.Hub implements it.
type PointerSource interface {
	OnMove(l mouse.Listener) func()
	OnRelease(button mouse.Button, l mouse.Listener) func()
}

// State is the lifecycle state of an operation.
type State int

const (
	// StateActive means the operation is receiving pointer events.
	StateActive State = iota
	// StateEnded means the operation finished normally.
	StateEnded
	// StateCancelled means the operation was aborted.
	StateCancelled
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateEnded:
		return "ended"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// MoveEvent is published for every pointer move during an active operation.
type MoveEvent[T any] struct {
	// Position is the pointer position in screen coordinates.
	Position geom.Point
	Payload  T
}

// EndEvent is published once when the operation ends or is cancelled.
type EndEvent[T any] struct {
	// Position is the last observed pointer position.
	Position  geom.Point
	Cancelled bool
	Payload   T
}

// Operation is one in-progress pointer drag carrying a payload of type T.
type Operation[T any] struct {
	payload  T
	source   PointerSource
	state    State
	position geom.Point

	// disposers remove the pointer listeners installed by the operation.
	disposers []func()

	moved event.Dispatcher[MoveEvent[T]]
	ended event.Dispatcher[EndEvent[T]]
}

// NewOperation starts a standalone operation that immediately begins
// listening to src's move stream. Most callers use Behavior.Start instead.
func NewOperation[T any](src PointerSource, payload T) (*Operation[T], error) {
	return newOperation(src, payload, geom.Zero)
}

func newOperation[T any](src PointerSource, payload T, pos geom.Point) (*Operation[T], error) {
	if src == nil {
		return nil, ErrNilSource
	}

	op := &Operation[T]{
		payload:  payload,
		source:   src,
		state:    StateActive,
		position: pos,
	}
	op.disposers = append(op.disposers, src.OnMove(op.handleMove))
	return op, nil
}

// handleMove records the pointer position and republishes it.
func (op *Operation[T]) handleMove(ev mouse.Event) {
	if op.state != StateActive {
		return
	}
	op.position = ev.Position.Point()
	op.moved.Dispatch(MoveEvent[T]{Position: op.position, Payload: op.payload})
}

// EndOnRelease ends the operation when a pointer button matching button is
// released. mouse.ButtonNone matches any button. Triggers can be layered;
// all are removed together when the operation finishes. Calling it on a
// finished operation does nothing. It returns op for chaining.
func (op *Operation[T]) EndOnRelease(button mouse.Button) *Operation[T] {
	if op.state != StateActive {
		return op
	}

	remove := op.source.OnRelease(button, func(mouse.Event) {
		op.End()
	})
	op.disposers = append(op.disposers, remove)
	return op
}

// OnMove returns the stream of move events.
func (op *Operation[T]) OnMove() event.Event[MoveEvent[T]] {
	return op.moved.AsEvent()
}

// OnEnd returns the stream carrying the single end or cancel event.
func (op *Operation[T]) OnEnd() event.Event[EndEvent[T]] {
	return op.ended.AsEvent()
}

// End finishes the operation normally. Calls after the first End or
// Cancel are ignored.
func (op *Operation[T]) End() {
	op.finish(false)
}

// Cancel aborts the operation. Subscribers see Cancelled set on the end
// event. Calls after the first End or Cancel are ignored.
func (op *Operation[T]) Cancel() {
	op.finish(true)
}

func (op *Operation[T]) finish(cancelled bool) {
	if op.state != StateActive {
		return
	}
	if cancelled {
		op.state = StateCancelled
	} else {
		op.state = StateEnded
	}

	disposers := op.disposers
	op.disposers = nil
	for _, dispose := range disposers {
		dispose()
	}

	op.ended.Dispatch(EndEvent[T]{
		Position:  op.position,
		Cancelled: cancelled,
		Payload:   op.payload,
	})

	op.moved.Clear()
	op.ended.Clear()
}

// Payload returns the data supplied when the operation started.
func (op *Operation[T]) Payload() T {
	return op.payload
}

// Position returns the last observed pointer position.
func (op *Operation[T]) Position() geom.Point {
	return op.position
}

// State returns the lifecycle state.
func (op *Operation[T]) State() State {
	return op.state
}

// Active reports whether the operation is still receiving pointer events.
func (op *Operation[T]) Active() bool {
	return op.state == StateActive
}
