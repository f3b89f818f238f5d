package event

import "sync/atomic"

// SubscriptionState represents the state of a subscription.
type SubscriptionState int32

const (
	// SubscriptionStateActive means the subscription is receiving events.
	SubscriptionStateActive SubscriptionState = iota

	// SubscriptionStateCancelled means the subscription has been permanently cancelled.
	SubscriptionStateCancelled
)

// String returns a human-readable state name.
func (s SubscriptionState) String() string {
	switch s {
	case SubscriptionStateActive:
		return "active"
	case SubscriptionStateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Subscription represents a registered handler.
// It provides methods to control the subscription lifecycle.
type Subscription interface {
	// ID returns the subscription identifier, unique within its dispatcher.
	ID() uint64

	// State returns the current subscription state.
	State() SubscriptionState

	// IsActive returns true if the subscription can receive events.
	IsActive() bool

	// Cancel permanently removes the subscription from its dispatcher.
	// Calling Cancel more than once has no effect.
	Cancel()
}

// subscription is the internal implementation of Subscription.
type subscription[E any] struct {
	id      uint64
	handler Handler[E]
	filter  func(E) bool
	once    bool
	state   atomic.Int32
	owner   *Dispatcher[E]
}

// ID returns the subscription ID.
func (s *subscription[E]) ID() uint64 {
	return s.id
}

// State returns the current subscription state.
func (s *subscription[E]) State() SubscriptionState {
	return SubscriptionState(s.state.Load())
}

// IsActive returns true if the subscription is active.
func (s *subscription[E]) IsActive() bool {
	return s.State() == SubscriptionStateActive
}

// Cancel permanently cancels the subscription.
func (s *subscription[E]) Cancel() {
	if s.state.Swap(int32(SubscriptionStateCancelled)) == int32(SubscriptionStateCancelled) {
		return
	}
	if s.owner != nil {
		s.owner.remove(s)
	}
}

// deliver calls the handler if the subscription accepts the event.
func (s *subscription[E]) deliver(ev E) {
	if !s.IsActive() {
		return
	}
	if s.filter != nil && !s.filter(ev) {
		return
	}
	if s.once {
		s.Cancel()
	}
	s.handler(ev)
}
