package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dshills/linkdraw/internal/config"
	"github.com/dshills/linkdraw/internal/renderer/backend"
	"github.com/dshills/linkdraw/internal/script"
)

func TestNewApplication(t *testing.T) {
	app, err := New(Options{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer app.Close()

	if app.Config() == nil {
		t.Error("expected config to be initialized")
	}
	if app.Editor() == nil {
		t.Error("expected editor to be initialized")
	}
	if app.Viewport() == nil {
		t.Error("expected viewport to be initialized")
	}
	if app.Renderer() != nil {
		t.Error("renderer should not exist before Run")
	}

	// The built-in scene is loaded.
	m := app.Model()
	if len(m.Nodes()) != 3 || len(m.Links()) != 2 {
		t.Errorf("model = %d nodes, %d links, want 3, 2", len(m.Nodes()), len(m.Links()))
	}
}

func TestNewApplication_Overrides(t *testing.T) {
	cfg := config.Default()
	cfg.Editor.NodeRadius = 14
	cfg.Editor.StartPolicy = "reject"

	app, err := New(Options{Config: cfg, LogLevel: "debug"})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer app.Close()

	if app.Config().Log.Level != "debug" {
		t.Errorf("log level = %q, want debug", app.Config().Log.Level)
	}
	if cfg.Log.Level != "info" {
		t.Error("New must not modify the caller's config")
	}
	if got := app.Editor().Config().NodeRadius; got != 14 {
		t.Errorf("editor NodeRadius = %v, want 14", got)
	}
	if got := app.Editor().Config().Policy.String(); got != "reject" {
		t.Errorf("editor policy = %s, want reject", got)
	}
	if app.Logger().Level() != LogLevelDebug {
		t.Errorf("logger level = %v", app.Logger().Level())
	}
}

func TestNewApplication_Scene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pair.lua")
	if err := os.WriteFile(path, []byte(`node("a", 0, 0); node("b", 40, 40); link("b", "a")`), 0o644); err != nil {
		t.Fatal(err)
	}

	app, err := New(Options{ScenePath: path})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer app.Close()

	links := app.Model().Links()
	if len(links) != 1 || links[0].Source.Label != "b" || links[0].Target.Label != "a" {
		t.Errorf("unexpected links %v", links)
	}
}

func TestNewApplication_BadScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.lua")
	if err := os.WriteFile(path, []byte(`link("x", "y")`), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := New(Options{ScenePath: path})

	var initErr *InitError
	if !errors.As(err, &initErr) || initErr.Component != "scene" {
		t.Fatalf("error = %v, want scene InitError", err)
	}
	var serr *script.ScriptError
	if !errors.As(err, &serr) {
		t.Errorf("error should wrap *script.ScriptError, got %v", err)
	}
}

func TestNewApplication_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Editor.NodeRadius = -1

	_, err := New(Options{Config: cfg})

	var verrs config.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("error = %v, want ValidationErrors", err)
	}
}

func TestNewApplication_BadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linkdraw.toml")
	if err := os.WriteFile(path, []byte("[editor\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := New(Options{ConfigPath: path})

	var perr *config.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *config.ParseError", err)
	}
}

func TestNewApplication_LogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linkdraw.log")

	app, err := New(Options{LogFile: path})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	app.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, "started with 3 nodes and 2 links") {
		t.Errorf("log = %q", out)
	}
	if !strings.Contains(out, "stopped after") {
		t.Errorf("log = %q, want a stop line", out)
	}
}

func TestApplication_CloseIdempotent(t *testing.T) {
	app, err := New(Options{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	app.Close()
	app.Close()

	moves, releases := app.hub.ListenerCount()
	if moves != 0 || releases != 0 {
		t.Errorf("listeners left after Close: %d moves, %d releases", moves, releases)
	}
}

func TestApplication_ShutdownIdempotent(t *testing.T) {
	app, err := New(Options{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer app.Close()

	app.Shutdown()
	app.Shutdown()
}

func TestApplication_SetBackend(t *testing.T) {
	app, err := New(Options{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer app.Close()

	if err := app.SetBackend(backend.NewNullBackend(80, 24)); err != nil {
		t.Errorf("SetBackend() failed: %v", err)
	}
}

func TestApplication_RunWithoutBackend(t *testing.T) {
	app, err := New(Options{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	done := make(chan error, 1)
	go func() {
		done <- app.Run()
	}()

	// Give it time to start
	time.Sleep(50 * time.Millisecond)

	if !app.IsRunning() {
		t.Error("expected app to be running")
	}

	app.Shutdown()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() returned error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run() did not exit within timeout")
	}
}

func TestApplication_RunTwice(t *testing.T) {
	app, err := New(Options{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	done := make(chan error, 1)
	go func() {
		done <- app.Run()
	}()

	// Give it time to start
	time.Sleep(50 * time.Millisecond)

	err = app.Run()
	if !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("expected ErrAlreadyRunning, got %v", err)
	}

	if err := app.SetBackend(backend.NewNullBackend(10, 10)); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("SetBackend while running = %v, want ErrAlreadyRunning", err)
	}

	app.Shutdown()
	<-done
}

func TestApplication_RunQuitKey(t *testing.T) {
	app, err := New(Options{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	b := backend.NewNullBackend(80, 24)
	if err := app.SetBackend(b); err != nil {
		t.Fatal(err)
	}
	b.PostEvent(backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'q'})

	done := make(chan error, 1)
	go func() {
		done <- app.Run()
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not exit on q")
	}

	if app.IsRunning() {
		t.Error("app still running after quit")
	}
	if !b.MouseEnabled() {
		t.Error("Run should enable mouse reporting")
	}
}

func TestApplication_RunRenders(t *testing.T) {
	app, err := New(Options{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	b := backend.NewNullBackend(80, 24)
	if err := app.SetBackend(b); err != nil {
		t.Fatal(err)
	}

	done := make(chan error, 1)
	go func() {
		done <- app.Run()
	}()

	// A few frames at 60fps.
	time.Sleep(100 * time.Millisecond)
	app.Shutdown()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not exit after Shutdown")
	}

	if b.ShowCount() == 0 {
		t.Error("expected at least one frame")
	}
	if app.Metrics().Snapshot().FrameCount == 0 {
		t.Error("expected frames to be recorded")
	}
	if !strings.Contains(b.Line(6), "(1)") {
		t.Errorf("row 6 = %q, want node 1", b.Line(6))
	}
}

func TestApplication_WatchReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linkdraw.toml")
	if err := os.WriteFile(path, []byte("[editor]\nnode_radius = 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	app, err := New(Options{ConfigPath: path, Watch: true})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer app.Close()

	if app.watcher == nil {
		t.Fatal("expected a config watcher")
	}

	if err := os.WriteFile(path, []byte("[editor]\nnode_radius = 16\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-app.reloads:
		if cfg.Editor.NodeRadius != 16 {
			t.Errorf("reloaded NodeRadius = %v, want 16", cfg.Editor.NodeRadius)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload queued")
	}
}
