package mouse

import (
	"strings"
	"time"

	"github.com/dshills/linkdraw/internal/geom"
)

// Button represents a mouse button. Buttons are bit flags, so a value can
// also hold the set of buttons pressed together; events always carry a
// single button.
type Button uint8

const (
	// ButtonNone indicates no button. As a release filter it matches any button.
	ButtonNone Button = 0
	// ButtonLeft is the primary (left) mouse button.
	ButtonLeft Button = 1 << (iota - 1)
	// ButtonMiddle is the middle mouse button.
	ButtonMiddle
	// ButtonRight is the secondary (right) mouse button.
	ButtonRight
	// ButtonScrollUp indicates scroll wheel up.
	ButtonScrollUp
	// ButtonScrollDown indicates scroll wheel down.
	ButtonScrollDown
	// ButtonScrollLeft indicates horizontal scroll left.
	ButtonScrollLeft
	// ButtonScrollRight indicates horizontal scroll right.
	ButtonScrollRight
)

// scrollButtons is the set of wheel directions.
const scrollButtons = ButtonScrollUp | ButtonScrollDown | ButtonScrollLeft | ButtonScrollRight

// String returns a string representation of the button. Sets of buttons
// are joined with "+".
func (b Button) String() string {
	switch b {
	case ButtonNone:
		return "none"
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonScrollUp:
		return "scroll-up"
	case ButtonScrollDown:
		return "scroll-down"
	case ButtonScrollLeft:
		return "scroll-left"
	case ButtonScrollRight:
		return "scroll-right"
	}

	var names []string
	for _, single := range b.Split() {
		names = append(names, single.String())
	}
	return strings.Join(names, "+")
}

// Has reports whether the set b contains every button in other.
func (b Button) Has(other Button) bool {
	return other != ButtonNone && b&other == other
}

// Split returns the single buttons in the set b, lowest bit first.
func (b Button) Split() []Button {
	var out []Button
	for bit := ButtonLeft; bit != 0; bit <<= 1 {
		if b&bit != 0 {
			out = append(out, bit)
		}
	}
	return out
}

// IsScroll returns true if b contains a wheel direction.
func (b Button) IsScroll() bool {
	return b&scrollButtons != 0
}

// Matches reports whether b satisfies the filter. ButtonNone matches any button.
func (b Button) Matches(filter Button) bool {
	return filter == ButtonNone || b == filter
}

// Action represents the type of mouse action.
type Action uint8

const (
	// ActionNone indicates no action.
	ActionNone Action = iota
	// ActionPress indicates a button press.
	ActionPress
	// ActionRelease indicates a button release.
	ActionRelease
	// ActionMove indicates mouse movement (no button held).
	ActionMove
	// ActionDrag indicates mouse movement with a button held.
	ActionDrag
)

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionPress:
		return "press"
	case ActionRelease:
		return "release"
	case ActionMove:
		return "move"
	case ActionDrag:
		return "drag"
	default:
		return "none"
	}
}

// IsMotion returns true for move and drag actions.
func (a Action) IsMotion() bool {
	return a == ActionMove || a == ActionDrag
}

// Position represents a screen coordinate in terminal cells.
type Position struct {
	X int
	Y int
}

// Equal returns true if two positions are equal.
func (p Position) Equal(other Position) bool {
	return p.X == other.X && p.Y == other.Y
}

// Distance returns the Manhattan distance (|dx| + |dy|) between two positions.
func (p Position) Distance(other Position) int {
	dx := p.X - other.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - other.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Point converts the cell position to a geometry point.
func (p Position) Point() geom.Point {
	return geom.Pt(float64(p.X), float64(p.Y))
}

// Event represents a decoded mouse event.
type Event struct {
	// Position is the screen coordinates.
	Position Position

	// Button is the mouse button involved. For motion events it is the
	// set of buttons being held, if any.
	Button Button

	// Modifiers are any keyboard modifiers held during the event.
	Modifiers Modifier

	// Action is the type of mouse action.
	Action Action

	// Clicks is the click count for left presses (1 single, 2 double, 3 triple).
	Clicks int

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// IsDoubleClick reports whether the event is the second press of a double click.
func (e Event) IsDoubleClick() bool {
	return e.Action == ActionPress && e.Clicks == 2
}

// Config configures mouse decoding.
type Config struct {
	// DoubleClickTime is the maximum time between clicks for a double-click.
	DoubleClickTime time.Duration

	// DoubleClickDistance is the maximum distance between clicks for a double-click.
	DoubleClickDistance int

	// ScrollLines is the number of cells to scroll per wheel tick.
	ScrollLines int

	// ScrollLinesShift is the number of cells when Shift is held.
	ScrollLinesShift int

	// EnableZoom enables Ctrl+scroll zoom.
	EnableZoom bool
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		DoubleClickTime:     400 * time.Millisecond,
		DoubleClickDistance: 2,
		ScrollLines:         3,
		ScrollLinesShift:    1,
		EnableZoom:          true,
	}
}
