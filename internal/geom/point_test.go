package geom

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestPointDistance(t *testing.T) {
	tests := []struct {
		name string
		p, q Point
		want float64
	}{
		{"same point", Pt(3, 4), Pt(3, 4), 0},
		{"3-4-5", Pt(0, 0), Pt(3, 4), 5},
		{"negative", Pt(-1, -1), Pt(2, 3), 5},
		{"horizontal", Pt(1, 7), Pt(11, 7), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Distance(tt.q); !almostEqual(got, tt.want) {
				t.Errorf("Distance() = %v, want %v", got, tt.want)
			}
			if got := tt.q.Distance(tt.p); !almostEqual(got, tt.want) {
				t.Errorf("reverse Distance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDistanceDefaultsToOrigin(t *testing.T) {
	p := Pt(6, 8)
	if got := Distance(p); got != 10 {
		t.Errorf("Distance(p) = %v, want 10", got)
	}
	if got := Distance(p, Pt(6, 0)); got != 8 {
		t.Errorf("Distance(p, q) = %v, want 8", got)
	}
	if got := p.Length(); got != 10 {
		t.Errorf("Length() = %v, want 10", got)
	}
}

func TestPointArithmetic(t *testing.T) {
	p := Pt(5, 7)
	q := Pt(2, 3)

	if got := p.Minus(q); !got.Equals(Pt(3, 4)) {
		t.Errorf("Minus() = %v, want (3,4)", got)
	}
	if got := p.Plus(q); !got.Equals(Pt(7, 10)) {
		t.Errorf("Plus() = %v, want (7,10)", got)
	}
	if got := q.Scale(2); !got.Equals(Pt(4, 6)) {
		t.Errorf("Scale() = %v, want (4,6)", got)
	}

	// Receivers are values and must be untouched.
	if !p.Equals(Pt(5, 7)) || !q.Equals(Pt(2, 3)) {
		t.Errorf("operands mutated: p=%v q=%v", p, q)
	}
}

func TestPointEqualsIsExact(t *testing.T) {
	// Constant arithmetic is exact, so the sum must happen at run time.
	a, b := 0.1, 0.2
	if Pt(a+b, 0).Equals(Pt(0.3, 0)) {
		t.Error("Equals should not apply an epsilon")
	}
	if !Pt(1, 2).Equals(Pt(1, 2)) {
		t.Error("identical points should be equal")
	}
}

func TestPointCloserToDegenerate(t *testing.T) {
	p := Pt(4, -2)
	for _, d := range []float64{0, 1, -3, 1e6} {
		if got := p.PointCloserTo(p, d); !got.Equals(p) {
			t.Errorf("PointCloserTo(p, p, %v) = %v, want %v", d, got, p)
		}
	}
}

func TestPointCloserToDistance(t *testing.T) {
	cases := []struct {
		p, dest Point
		dist    float64
	}{
		{Pt(0, 0), Pt(10, 0), 3},
		{Pt(0, 0), Pt(0, 10), 3},
		{Pt(1, 1), Pt(-5, 9), 2.5},
		{Pt(50, 50), Pt(150, 50), 18},
		{Pt(3, 3), Pt(4, 7), -4},
	}

	for _, c := range cases {
		got := c.p.PointCloserTo(c.dest, c.dist)
		if d := c.p.Distance(got); !almostEqual(d, math.Abs(c.dist)) {
			t.Errorf("distance(p, PointCloserTo(%v, %v, %v)) = %v, want %v",
				c.p, c.dest, c.dist, d, math.Abs(c.dist))
		}
	}
}

func TestPointCloserToDirection(t *testing.T) {
	got := Pt(0, 0).PointCloserTo(Pt(10, 0), 4)
	if !almostEqual(got.X, 4) || !almostEqual(got.Y, 0) {
		t.Errorf("toward +X: got %v, want (4,0)", got)
	}

	got = Pt(0, 0).PointCloserTo(Pt(0, -10), 4)
	if !almostEqual(got.X, 0) || !almostEqual(got.Y, -4) {
		t.Errorf("toward -Y: got %v, want (0,-4)", got)
	}

	// Pulling a link end back toward its source.
	end := Pt(150, 50)
	got = end.PointCloserTo(Pt(50, 50), 18)
	if !almostEqual(got.X, 132) || !almostEqual(got.Y, 50) {
		t.Errorf("pull back: got %v, want (132,50)", got)
	}
}
