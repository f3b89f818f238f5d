package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/dshills/linkdraw/internal/config"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	color.NoColor = true

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestInspectDefault(t *testing.T) {
	out, _, err := execute(t, "inspect")
	if err != nil {
		t.Fatalf("inspect error = %v", err)
	}
	for _, want := range []string{"built-in scene", "3 nodes, 2 links", "NODE", "FROM", "100.0"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestInspectFile(t *testing.T) {
	path := writeTemp(t, "scene.lua", `
node("a", 0, 0)
node("b", 30, 40)
link("a", "b")
print("built")
`)
	out, errOut, err := execute(t, "inspect", path)
	if err != nil {
		t.Fatalf("inspect error = %v", err)
	}
	if !strings.Contains(out, "2 nodes, 1 links") {
		t.Errorf("output missing counts:\n%s", out)
	}
	if !strings.Contains(out, "50.0") {
		t.Errorf("output missing link length:\n%s", out)
	}
	if !strings.Contains(errOut, "built") {
		t.Errorf("script output not forwarded to stderr: %q", errOut)
	}
}

func TestInspectBadScene(t *testing.T) {
	path := writeTemp(t, "bad.lua", `link("x", "y")`)
	_, errOut, err := execute(t, "inspect", path)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(errOut, "Error:") || !strings.Contains(errOut, "unknown node") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestConfigCheck(t *testing.T) {
	good := writeTemp(t, "good.toml", "[editor]\nnode_radius = 12\n")
	out, _, err := execute(t, "config", "check", good)
	if err != nil {
		t.Fatalf("check error = %v", err)
	}
	if !strings.Contains(out, "is valid") {
		t.Errorf("output = %q", out)
	}

	bad := writeTemp(t, "bad.yaml", "editor:\n  node_radius: -1\n")
	_, errOut, err := execute(t, "config", "check", bad)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(errOut, "editor.node_radius") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestConfigDefault(t *testing.T) {
	for _, format := range []string{"toml", "yaml"} {
		t.Run(format, func(t *testing.T) {
			out, _, err := execute(t, "config", "default", "--format", format)
			if err != nil {
				t.Fatalf("default error = %v", err)
			}
			f, err := config.ParseFormat(format)
			if err != nil {
				t.Fatal(err)
			}
			cfg, err := config.Parse(f, "stdout", []byte(out))
			if err != nil {
				t.Fatalf("printed config does not parse: %v\n%s", err, out)
			}
			if *cfg != *config.Default() {
				t.Errorf("printed config = %+v", *cfg)
			}
		})
	}

	if _, _, err := execute(t, "config", "default", "--format", "json"); err == nil {
		t.Error("expected error for json")
	}
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(out, "linkdraw dev") {
		t.Errorf("output = %q", out)
	}
}
