package app

import (
	"errors"
	"strings"
	"testing"
)

func TestComponentError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ComponentError
		expected string
	}{
		{"nil error", nil, ""},
		{"component only", &ComponentError{Component: "scene"}, "scene"},
		{"component and action", &ComponentError{Component: "scene", Action: "load"}, "scene: load"},
		{"component and error", &ComponentError{Component: "config", Err: errors.New("bad")}, "config: bad"},
		{"full", NewComponentError("scene", "load a.lua", errors.New("boom")), "scene: load a.lua: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestComponentError_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	err := NewComponentError("config", "watch", inner)
	if !errors.Is(err, inner) {
		t.Error("errors.Is should find the wrapped error")
	}

	var nilErr *ComponentError
	if nilErr.Unwrap() != nil {
		t.Error("expected nil from Unwrap() on nil receiver")
	}
}

func TestInitError(t *testing.T) {
	inner := errors.New("no tty")
	err := &InitError{Component: "backend", Err: inner}

	if err.Error() != "init backend: no tty" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("errors.Is should find the wrapped error")
	}
}

func TestRecoveredPanicError(t *testing.T) {
	err := &RecoveredPanicError{Value: "bad", Stack: "goroutine 1"}
	if !strings.HasPrefix(err.Error(), "panic: bad\n") {
		t.Errorf("Error() = %q", err.Error())
	}

	err = &RecoveredPanicError{Value: 42}
	if err.Error() != "panic: 42" {
		t.Errorf("Error() = %q", err.Error())
	}
}
