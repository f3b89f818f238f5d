package drag

import (
	"fmt"

	"github.com/dshills/linkdraw/internal/geom"
)

// Policy decides what Start does while an operation is already active.
type Policy int

const (
	// Supersede cancels the active operation, then starts the new one.
	Supersede Policy = iota
	// Reject leaves the active operation alone and returns ErrAlreadyActive.
	Reject
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case Supersede:
		return "supersede"
	case Reject:
		return "reject"
	default:
		return "unknown"
	}
}

// ParsePolicy parses a policy name. Unknown names yield Supersede.
func ParsePolicy(s string) Policy {
	if s == "reject" {
		return Reject
	}
	return Supersede
}

// Option configures a Behavior.
type Option func(*options)

type options struct {
	policy Policy
}

// WithPolicy sets the re-entrant start policy.
func WithPolicy(p Policy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// Behavior tracks at most one active operation of one interaction kind.
type Behavior[T any] struct {
	name   string
	source PointerSource
	policy Policy
	active *Operation[T]
}

// NewBehavior creates a behavior whose operations listen to src.
func NewBehavior[T any](name string, src PointerSource, opts ...Option) *Behavior[T] {
	o := options{policy: Supersede}
	for _, opt := range opts {
		opt(&o)
	}
	return &Behavior[T]{
		name:   name,
		source: src,
		policy: o.policy,
	}
}

// Start begins a new operation carrying payload and stores it as the
// active operation. The caller attaches subscribers and end triggers to
// the returned operation.
func (b *Behavior[T]) Start(payload T) (*Operation[T], error) {
	return b.StartAt(payload, geom.Zero)
}

// StartAt is Start with the operation's last position seeded to pos, so
// an operation ended before any move reports where it began.
func (b *Behavior[T]) StartAt(payload T, pos geom.Point) (*Operation[T], error) {
	if b.active != nil {
		if b.policy == Reject {
			return nil, fmt.Errorf("%s: %w", b.name, ErrAlreadyActive)
		}
		b.active.Cancel()
	}

	op, err := newOperation(b.source, payload, pos)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.name, err)
	}

	op.OnEnd().SubscribeOnce(func(EndEvent[T]) {
		if b.active == op {
			b.active = nil
		}
	})
	b.active = op
	return op, nil
}

// IsActive reports whether an operation is currently stored.
func (b *Behavior[T]) IsActive() bool {
	return b.active != nil
}

// Current returns the active operation, if any.
func (b *Behavior[T]) Current() (*Operation[T], bool) {
	return b.active, b.active != nil
}

// TestPayload reports false when no operation is active; otherwise it
// returns predicate applied to the active payload.
func (b *Behavior[T]) TestPayload(predicate func(T) bool) bool {
	if b.active == nil {
		return false
	}
	return predicate(b.active.payload)
}

// Cancel cancels the active operation, if any.
func (b *Behavior[T]) Cancel() bool {
	if b.active == nil {
		return false
	}
	b.active.Cancel()
	return true
}

// Name returns the behavior name.
func (b *Behavior[T]) Name() string {
	return b.name
}

// Policy returns the re-entrant start policy.
func (b *Behavior[T]) Policy() Policy {
	return b.policy
}

// SetPolicy changes the policy for later starts. An active operation is
// left running.
func (b *Behavior[T]) SetPolicy(p Policy) {
	b.policy = p
}
