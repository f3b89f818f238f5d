package viewport

import (
	"math"
	"testing"

	"github.com/dshills/linkdraw/internal/geom"
)

func near(a, b geom.Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestNewViewportClamps(t *testing.T) {
	v := NewViewport(0, -5)
	if v.Width() != 1 || v.Height() != 1 {
		t.Errorf("size = %dx%d, want 1x1", v.Width(), v.Height())
	}
}

func TestToLocal(t *testing.T) {
	v := NewViewport(80, 24)

	tests := []struct {
		screen, want geom.Point
	}{
		{geom.Pt(0, 0), geom.Pt(0, 0)},
		{geom.Pt(1, 0), geom.Pt(4, 0)},
		{geom.Pt(0, 1), geom.Pt(0, 8)},
		{geom.Pt(12.5, 6.25), geom.Pt(50, 50)},
	}

	for _, tt := range tests {
		if got := v.ToLocal(tt.screen); !near(got, tt.want) {
			t.Errorf("ToLocal(%v) = %v, want %v", tt.screen, got, tt.want)
		}
		if got := v.ToScreen(tt.want); !near(got, tt.screen) {
			t.Errorf("ToScreen(%v) = %v, want %v", tt.want, got, tt.screen)
		}
	}
}

func TestCell(t *testing.T) {
	v := NewViewport(80, 24)

	tests := []struct {
		local  geom.Point
		x, y   int
		onView bool
	}{
		{geom.Pt(50, 50), 12, 6, true},
		{geom.Pt(150, 50), 37, 6, true},
		{geom.Pt(-1, 0), -1, 0, false},
		{geom.Pt(320, 0), 80, 0, false},
		{geom.Pt(0, 191.9), 0, 23, true},
	}

	for _, tt := range tests {
		x, y, ok := v.Cell(tt.local)
		if x != tt.x || y != tt.y || ok != tt.onView {
			t.Errorf("Cell(%v) = (%d, %d, %v), want (%d, %d, %v)", tt.local, x, y, ok, tt.x, tt.y, tt.onView)
		}
	}
}

func TestPan(t *testing.T) {
	v := NewViewport(80, 24)
	v.Pan(2, -1)

	if got := v.Origin(); !near(got, geom.Pt(8, -8)) {
		t.Errorf("origin = %v, want (8, -8)", got)
	}
	if got := v.ToLocal(geom.Pt(0, 1)); !near(got, geom.Pt(8, 0)) {
		t.Errorf("ToLocal after pan = %v", got)
	}
}

func TestZoomAtKeepsAnchor(t *testing.T) {
	v := NewViewport(80, 24)
	anchor := geom.Pt(20, 10)
	before := v.ToLocal(anchor)

	v.ZoomAt(anchor, 2)
	if v.Zoom() != 2 {
		t.Errorf("zoom = %v, want 2", v.Zoom())
	}
	if got := v.ToLocal(anchor); !near(got, before) {
		t.Errorf("anchor moved from %v to %v", before, got)
	}
	if sx, sy := v.Scale(); sx != 2 || sy != 4 {
		t.Errorf("scale = (%v, %v), want (2, 4)", sx, sy)
	}
}

func TestZoomClamp(t *testing.T) {
	v := NewViewport(80, 24)

	v.ZoomAt(geom.Zero, 100)
	if v.Zoom() != MaxZoom {
		t.Errorf("zoom = %v, want %v", v.Zoom(), MaxZoom)
	}
	v.ZoomAt(geom.Zero, 0.0001)
	if v.Zoom() != MinZoom {
		t.Errorf("zoom = %v, want %v", v.Zoom(), MinZoom)
	}
	v.ZoomAt(geom.Zero, -1)
	if v.Zoom() != MinZoom {
		t.Error("non-positive factor should be ignored")
	}

	v.Pan(3, 3)
	v.Reset()
	if v.Zoom() != 1 || !v.Origin().Equals(geom.Zero) {
		t.Error("Reset should restore zoom and origin")
	}
}

func TestSetAspect(t *testing.T) {
	v := NewViewport(80, 24)
	v.SetAspect(1)
	v.SetAspect(-2)

	if _, sy := v.Scale(); sy != DefaultUnitsPerColumn {
		t.Errorf("row scale = %v, want %v", sy, DefaultUnitsPerColumn)
	}
}
