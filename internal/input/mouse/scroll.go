package mouse

// ScrollDirection represents the direction of a scroll event.
type ScrollDirection uint8

const (
	// ScrollNone indicates no scroll.
	ScrollNone ScrollDirection = iota
	// ScrollUp indicates scrolling up (content moves down).
	ScrollUp
	// ScrollDown indicates scrolling down (content moves up).
	ScrollDown
	// ScrollLeft indicates scrolling left.
	ScrollLeft
	// ScrollRight indicates scrolling right.
	ScrollRight
)

// String returns a string representation of the scroll direction.
func (d ScrollDirection) String() string {
	switch d {
	case ScrollUp:
		return "up"
	case ScrollDown:
		return "down"
	case ScrollLeft:
		return "left"
	case ScrollRight:
		return "right"
	default:
		return "none"
	}
}

// ScrollEvent is a wheel event resolved against the scroll configuration.
type ScrollEvent struct {
	// Direction is the scroll direction.
	Direction ScrollDirection

	// Lines is the number of cells to scroll. Zero for zoom events.
	Lines int

	// Position is where the scroll occurred.
	Position Position

	// IsZoom indicates this is a zoom operation (Ctrl+scroll).
	IsZoom bool

	// ZoomIn indicates zoom direction (true = in, false = out).
	ZoomIn bool
}

// Delta returns the pan offset in cells implied by the scroll.
func (e *ScrollEvent) Delta() (dx, dy int) {
	switch e.Direction {
	case ScrollUp:
		return 0, -e.Lines
	case ScrollDown:
		return 0, e.Lines
	case ScrollLeft:
		return -e.Lines, 0
	case ScrollRight:
		return e.Lines, 0
	}
	return 0, 0
}

// ParseScrollEvent parses a mouse event into a scroll event.
// Returns nil if the event is not a scroll event.
func ParseScrollEvent(ev Event, config Config) *ScrollEvent {
	var direction ScrollDirection
	switch ev.Button {
	case ButtonScrollUp:
		direction = ScrollUp
	case ButtonScrollDown:
		direction = ScrollDown
	case ButtonScrollLeft:
		direction = ScrollLeft
	case ButtonScrollRight:
		direction = ScrollRight
	default:
		return nil
	}

	if config.EnableZoom && ev.Modifiers.HasCtrl() &&
		(direction == ScrollUp || direction == ScrollDown) {
		return &ScrollEvent{
			Direction: direction,
			Position:  ev.Position,
			IsZoom:    true,
			ZoomIn:    direction == ScrollUp,
		}
	}

	lines := config.ScrollLines
	if ev.Modifiers.HasShift() {
		lines = config.ScrollLinesShift
	}

	return &ScrollEvent{
		Direction: direction,
		Lines:     lines,
		Position:  ev.Position,
	}
}
