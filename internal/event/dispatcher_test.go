package event

import (
	"errors"
	"testing"
)

func TestDispatchOrder(t *testing.T) {
	var d Dispatcher[int]
	var got []string

	d.Subscribe(func(v int) { got = append(got, "a") })
	d.Subscribe(func(v int) { got = append(got, "b") })
	d.Subscribe(func(v int) { got = append(got, "c") })

	d.Dispatch(1)

	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("handler %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNoReplayForLateSubscribers(t *testing.T) {
	d := NewDispatcher[string]()
	d.Dispatch("early")

	var got []string
	d.Subscribe(func(s string) { got = append(got, s) })
	d.Dispatch("late")

	if len(got) != 1 || got[0] != "late" {
		t.Errorf("got %v, want [late]", got)
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	var d Dispatcher[int]
	calls := 0
	sub := d.Subscribe(func(int) { calls++ })

	sub.Cancel()
	sub.Cancel()
	d.Unsubscribe(sub)
	d.Dispatch(1)

	if calls != 0 {
		t.Errorf("calls = %d, want 0", calls)
	}
	if d.Len() != 0 {
		t.Errorf("Len() = %d, want 0", d.Len())
	}
	if sub.State() != SubscriptionStateCancelled {
		t.Errorf("State() = %s, want cancelled", sub.State())
	}
}

func TestCancelDuringDispatch(t *testing.T) {
	var d Dispatcher[int]
	var second Subscription
	secondCalls := 0

	d.Subscribe(func(int) { second.Cancel() })
	second = d.Subscribe(func(int) { secondCalls++ })

	d.Dispatch(1)
	d.Dispatch(2)

	if secondCalls != 0 {
		t.Errorf("cancelled handler ran %d times", secondCalls)
	}
}

func TestSubscribeDuringDispatch(t *testing.T) {
	var d Dispatcher[int]
	var seen []int
	added := false

	d.Subscribe(func(v int) {
		if !added {
			added = true
			d.Subscribe(func(v int) { seen = append(seen, v) })
		}
	})

	d.Dispatch(1)
	d.Dispatch(2)

	if len(seen) != 1 || seen[0] != 2 {
		t.Errorf("seen = %v, want [2]", seen)
	}
}

func TestSubscribeOnce(t *testing.T) {
	var d Dispatcher[int]
	calls := 0
	d.SubscribeOnce(func(int) { calls++ })

	d.Dispatch(1)
	d.Dispatch(2)

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if d.Len() != 0 {
		t.Errorf("Len() = %d, want 0", d.Len())
	}
}

func TestSubscribeFiltered(t *testing.T) {
	var d Dispatcher[int]
	var got []int
	d.SubscribeFiltered(func(v int) bool { return v%2 == 0 }, func(v int) { got = append(got, v) })

	for i := 1; i <= 5; i++ {
		d.Dispatch(i)
	}

	if len(got) != 2 || got[0] != 2 || got[1] != 4 {
		t.Errorf("got %v, want [2 4]", got)
	}
}

func TestClear(t *testing.T) {
	var d Dispatcher[int]
	calls := 0
	sub := d.Subscribe(func(int) { calls++ })

	d.Clear()
	d.Dispatch(1)

	if calls != 0 {
		t.Errorf("calls = %d, want 0", calls)
	}
	if sub.IsActive() {
		t.Error("subscription still active after Clear")
	}
}

func TestAsEvent(t *testing.T) {
	var d Dispatcher[int]
	ev := d.AsEvent()

	if _, ok := ev.(*Dispatcher[int]); ok {
		t.Fatal("AsEvent exposes the dispatcher")
	}

	got := 0
	ev.Subscribe(func(v int) { got = v })
	d.Dispatch(7)

	if got != 7 {
		t.Errorf("got %d, want 7", got)
	}
}

func TestNilHandlerPanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrNilHandler) {
			t.Errorf("recover() = %v, want ErrNilHandler", r)
		}
	}()

	var d Dispatcher[int]
	d.Subscribe(nil)
}
