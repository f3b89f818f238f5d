// Package event provides typed, synchronous subscriber lists.
//
// A Dispatcher[E] holds an ordered list of handlers for events of type E.
// Dispatch calls every active handler in the caller's goroutine, in the
// order the handlers were subscribed. There is no queue and no replay: a
// handler only sees events dispatched while it is subscribed.
//
//	var moved event.Dispatcher[mouse.Event]
//	sub := moved.Subscribe(func(ev mouse.Event) { ... })
//	moved.Dispatch(ev)
//	sub.Cancel()
//
// # Re-entrancy
//
// Handlers may subscribe or cancel subscriptions while a dispatch is in
// progress. A handler cancelled mid-dispatch is not called for the rest of
// that dispatch; a handler added mid-dispatch is first called on the next
// dispatch.
//
// # Exposing Streams
//
// Owners that want callers to listen but not publish expose AsEvent, which
// returns a subscribe-only view of the dispatcher.
//
// # Thread Safety
//
// The subscriber list is guarded by a mutex, but handlers run without the
// lock held. The editor drives all dispatchers from a single goroutine.
package event
