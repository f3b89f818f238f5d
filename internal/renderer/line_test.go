package renderer

import (
	"image"
	"testing"
)

func TestBresenhamEndpoints(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		wantLen        int
	}{
		{"point", 3, 3, 3, 3, 1},
		{"horizontal", 0, 0, 5, 0, 6},
		{"vertical up", 2, 4, 2, 0, 5},
		{"diagonal", 0, 0, 3, 3, 4},
		{"shallow", 0, 0, 6, 2, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := bresenham(tt.x0, tt.y0, tt.x1, tt.y1)
			if len(pts) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(pts), tt.wantLen)
			}
			if pts[0] != image.Pt(tt.x0, tt.y0) {
				t.Errorf("first = %v", pts[0])
			}
			if last := pts[len(pts)-1]; last != image.Pt(tt.x1, tt.y1) {
				t.Errorf("last = %v", last)
			}
			for i := 1; i < len(pts); i++ {
				d := pts[i].Sub(pts[i-1])
				if abs(d.X) > 1 || abs(d.Y) > 1 {
					t.Fatalf("gap between %v and %v", pts[i-1], pts[i])
				}
			}
		})
	}
}

func TestLineChar(t *testing.T) {
	tests := []struct {
		dx, dy float64
		want   rune
	}{
		{10, 0, '─'},
		{-10, 1, '─'},
		{0, 5, '│'},
		{1, -8, '│'},
		{4, 4, '╲'},
		{-4, -4, '╲'},
		{4, -4, '╱'},
		{-4, 4, '╱'},
	}

	for _, tt := range tests {
		if got := lineChar(tt.dx, tt.dy); got != tt.want {
			t.Errorf("lineChar(%v, %v) = %q, want %q", tt.dx, tt.dy, got, tt.want)
		}
	}
}

func TestArrowChar(t *testing.T) {
	tests := []struct {
		dx, dy float64
		want   rune
	}{
		{5, 0, '►'},
		{-5, 1, '◄'},
		{0, 3, '▼'},
		{1, -3, '▲'},
	}

	for _, tt := range tests {
		if got := arrowChar(tt.dx, tt.dy); got != tt.want {
			t.Errorf("arrowChar(%v, %v) = %q, want %q", tt.dx, tt.dy, got, tt.want)
		}
	}
}
