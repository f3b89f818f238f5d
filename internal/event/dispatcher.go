package event

import (
	"slices"
	"sync"
)

// Handler receives events of type E.
type Handler[E any] func(E)

// Event is the subscribe-only side of a Dispatcher.
type Event[E any] interface {
	// Subscribe registers a handler. It panics if h is nil.
	Subscribe(h Handler[E]) Subscription

	// SubscribeOnce registers a handler that is cancelled after its first event.
	SubscribeOnce(h Handler[E]) Subscription

	// SubscribeFiltered registers a handler that only receives events
	// accepted by filter.
	SubscribeFiltered(filter func(E) bool, h Handler[E]) Subscription
}

// Dispatcher is an ordered, synchronous list of handlers.
// The zero value is ready to use.
type Dispatcher[E any] struct {
	mu     sync.Mutex
	subs   []*subscription[E]
	nextID uint64
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher[E any]() *Dispatcher[E] {
	return &Dispatcher[E]{}
}

// Subscribe registers a handler at the end of the list.
func (d *Dispatcher[E]) Subscribe(h Handler[E]) Subscription {
	return d.add(h, nil, false)
}

// SubscribeOnce registers a handler that runs for a single event.
func (d *Dispatcher[E]) SubscribeOnce(h Handler[E]) Subscription {
	return d.add(h, nil, true)
}

// SubscribeFiltered registers a handler guarded by filter.
func (d *Dispatcher[E]) SubscribeFiltered(filter func(E) bool, h Handler[E]) Subscription {
	return d.add(h, filter, false)
}

func (d *Dispatcher[E]) add(h Handler[E], filter func(E) bool, once bool) Subscription {
	if h == nil {
		panic(ErrNilHandler)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.nextID++
	s := &subscription[E]{
		id:      d.nextID,
		handler: h,
		filter:  filter,
		once:    once,
		owner:   d,
	}
	s.state.Store(int32(SubscriptionStateActive))
	d.subs = append(d.subs, s)
	return s
}

// Unsubscribe cancels sub. Unknown or already cancelled subscriptions are ignored.
func (d *Dispatcher[E]) Unsubscribe(sub Subscription) {
	if sub == nil {
		return
	}
	sub.Cancel()
}

// remove drops s from the handler list.
func (d *Dispatcher[E]) remove(s *subscription[E]) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if i := slices.Index(d.subs, s); i >= 0 {
		d.subs = slices.Delete(d.subs, i, i+1)
	}
}

// Dispatch delivers ev to every active handler in subscription order.
// Handlers run in the caller's goroutine.
func (d *Dispatcher[E]) Dispatch(ev E) {
	d.mu.Lock()
	snapshot := slices.Clone(d.subs)
	d.mu.Unlock()

	for _, s := range snapshot {
		s.deliver(ev)
	}
}

// Len returns the number of registered subscriptions.
func (d *Dispatcher[E]) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.subs)
}

// Clear cancels every subscription.
func (d *Dispatcher[E]) Clear() {
	d.mu.Lock()
	subs := d.subs
	d.subs = nil
	d.mu.Unlock()

	for _, s := range subs {
		s.state.Store(int32(SubscriptionStateCancelled))
	}
}

// AsEvent returns a subscribe-only view of d.
func (d *Dispatcher[E]) AsEvent() Event[E] {
	return view[E]{d: d}
}

// view hides Dispatch from holders of an Event.
type view[E any] struct {
	d *Dispatcher[E]
}

func (v view[E]) Subscribe(h Handler[E]) Subscription {
	return v.d.Subscribe(h)
}

func (v view[E]) SubscribeOnce(h Handler[E]) Subscription {
	return v.d.SubscribeOnce(h)
}

func (v view[E]) SubscribeFiltered(filter func(E) bool, h Handler[E]) Subscription {
	return v.d.SubscribeFiltered(filter, h)
}
