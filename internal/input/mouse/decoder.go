package mouse

import "time"

// Decoder converts raw mouse samples into typed events.
//
// Decoder is not safe for concurrent use; feed it from the goroutine that
// polls the terminal.
type Decoder struct {
	config Config

	held    Button
	lastPos Position
	hasPos  bool

	click clickTracker
}

// NewDecoder creates a decoder with the given configuration.
func NewDecoder(config Config) *Decoder {
	return &Decoder{
		config: config,
		click: clickTracker{
			maxTime:     config.DoubleClickTime,
			maxDistance: config.DoubleClickDistance,
		},
	}
}

// Held returns the set of buttons currently held down, or ButtonNone.
func (d *Decoder) Held() Button {
	return d.held
}

// Decode interprets one raw sample: the pointer position and the set of
// buttons the terminal reports as held (ButtonNone when all are up). It
// returns the events implied by the transition from the previous sample,
// in the order they should be dispatched. Pressing a second button while
// one is held produces a press for the new button only.
func (d *Decoder) Decode(pos Position, buttons Button, mods Modifier, ts time.Time) []Event {
	if ts.IsZero() {
		ts = time.Now()
	}

	// Wheel ticks are one-shot and do not change the held state.
	if wheel := buttons & scrollButtons; wheel != 0 {
		return []Event{{
			Position:  pos,
			Button:    wheel.Split()[0],
			Modifiers: mods,
			Action:    ActionPress,
			Timestamp: ts,
		}}
	}

	var events []Event

	moved := !d.hasPos || !pos.Equal(d.lastPos)
	d.lastPos = pos
	d.hasPos = true

	// Report motion first so listeners see the final position before a
	// press or release at that position.
	if moved {
		action := ActionMove
		if d.held != ButtonNone {
			action = ActionDrag
		}
		events = append(events, Event{
			Position:  pos,
			Button:    d.held,
			Modifiers: mods,
			Action:    action,
			Timestamp: ts,
		})
	}

	released := d.held &^ buttons
	pressed := buttons &^ d.held
	d.held = buttons

	for _, b := range released.Split() {
		events = append(events, Event{
			Position:  pos,
			Button:    b,
			Modifiers: mods,
			Action:    ActionRelease,
			Timestamp: ts,
		})
	}

	for _, b := range pressed.Split() {
		press := Event{
			Position:  pos,
			Button:    b,
			Modifiers: mods,
			Action:    ActionPress,
			Clicks:    1,
			Timestamp: ts,
		}
		if b == ButtonLeft {
			press.Clicks = d.click.record(pos, ts)
		}
		events = append(events, press)
	}

	return events
}

// Reset clears held button and click state.
func (d *Decoder) Reset() {
	d.held = ButtonNone
	d.hasPos = false
	d.lastPos = Position{}
	d.click.reset()
}

// clickTracker tracks click patterns for double/triple click detection.
type clickTracker struct {
	maxTime     time.Duration
	maxDistance int

	lastPos   Position
	lastTime  time.Time
	lastCount int
}

// record records a click and returns the click count (1, 2, or 3).
// The count wraps back to 1 after 3.
func (t *clickTracker) record(pos Position, ts time.Time) int {
	if t.continues(pos, ts) {
		t.lastCount++
		if t.lastCount > 3 {
			t.lastCount = 1
		}
	} else {
		t.lastCount = 1
	}

	t.lastPos = pos
	t.lastTime = ts
	return t.lastCount
}

// continues checks if a click is part of the current click sequence.
func (t *clickTracker) continues(pos Position, ts time.Time) bool {
	if t.lastCount == 0 || t.lastTime.IsZero() {
		return false
	}

	// Negative elapsed time means clock skew; start over.
	elapsed := ts.Sub(t.lastTime)
	if elapsed < 0 || elapsed > t.maxTime {
		return false
	}

	return pos.Distance(t.lastPos) <= t.maxDistance
}

func (t *clickTracker) reset() {
	t.lastCount = 0
	t.lastTime = time.Time{}
	t.lastPos = Position{}
}
