package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReloads(t *testing.T) {
	path := writeFile(t, "linkdraw.toml", "[editor]\nnode_radius = 10\n")

	w, err := NewWatcher(path, WithDebounce(10*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	changes := make(chan *Config, 4)
	w.OnChange(func(c *Config) { changes <- c })

	if err := os.WriteFile(path, []byte("[editor]\nnode_radius = 20\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-changes:
		if cfg.Editor.NodeRadius != 20 {
			t.Errorf("NodeRadius = %v, want 20", cfg.Editor.NodeRadius)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}
}

func TestWatcherReportsInvalidFile(t *testing.T) {
	path := writeFile(t, "linkdraw.toml", "")

	w, err := NewWatcher(path, WithDebounce(10*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	errs := make(chan error, 4)
	w.OnError(func(err error) { errs <- err })
	w.OnChange(func(*Config) { t.Error("invalid file must not be applied") })

	if err := os.WriteFile(path, []byte("[editor\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case err := <-errs:
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("error = %v, want *ParseError", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no error reported")
	}
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	path := writeFile(t, "linkdraw.toml", "")

	w, err := NewWatcher(path, WithDebounce(10*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	changes := make(chan *Config, 4)
	w.OnChange(func(c *Config) { changes <- c })

	sibling := filepath.Join(filepath.Dir(path), "other.toml")
	if err := os.WriteFile(sibling, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changes:
		t.Error("sibling write triggered a reload")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	w, err := NewWatcher(writeFile(t, "linkdraw.toml", ""))
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first Close = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close = %v", err)
	}
}
