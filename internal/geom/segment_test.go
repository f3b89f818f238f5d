package geom

import "testing"

func TestOrientation(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c Point
		want    int
	}{
		{"collinear", Pt(0, 0), Pt(1, 1), Pt(2, 2), 0},
		{"positive turn", Pt(0, 0), Pt(10, 0), Pt(10, 10), 1},
		{"negative turn", Pt(0, 0), Pt(10, 0), Pt(10, -10), -1},
		{"noise below epsilon", Pt(0, 0), Pt(1, 0), Pt(2, 1e-12), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Orientation(tt.a, tt.b, tt.c); got != tt.want {
				t.Errorf("Orientation() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSegmentsIntersect(t *testing.T) {
	tests := []struct {
		name           string
		a1, a2, b1, b2 Point
		want           bool
	}{
		{"crossing diagonals", Pt(0, 0), Pt(10, 10), Pt(0, 10), Pt(10, 0), true},
		{"parallel", Pt(0, 0), Pt(10, 0), Pt(0, 5), Pt(10, 5), false},
		{"disjoint", Pt(0, 0), Pt(1, 1), Pt(5, 5), Pt(6, 8), false},
		{"T shape", Pt(0, 0), Pt(10, 0), Pt(5, -5), Pt(5, 5), true},
		{"short of crossing", Pt(0, 0), Pt(10, 0), Pt(5, 1), Pt(5, 5), false},
		{"collinear overlap", Pt(0, 0), Pt(10, 0), Pt(5, 0), Pt(15, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			variants := [][4]Point{
				{tt.a1, tt.a2, tt.b1, tt.b2},
				{tt.b1, tt.b2, tt.a1, tt.a2},
				{tt.a2, tt.a1, tt.b1, tt.b2},
				{tt.a1, tt.a2, tt.b2, tt.b1},
				{tt.b2, tt.b1, tt.a2, tt.a1},
			}
			for i, v := range variants {
				if got := SegmentsIntersect(v[0], v[1], v[2], v[3]); got != tt.want {
					t.Errorf("variant %d: SegmentsIntersect() = %v, want %v", i, got, tt.want)
				}
			}
		})
	}
}

func TestSegmentDistanceTo(t *testing.T) {
	s := Seg(Pt(0, 0), Pt(10, 0))

	tests := []struct {
		p    Point
		want float64
	}{
		{Pt(5, 3), 3},
		{Pt(-4, 3), 5},
		{Pt(13, -4), 5},
		{Pt(7, 0), 0},
	}

	for _, tt := range tests {
		if got := s.DistanceTo(tt.p); !almostEqual(got, tt.want) {
			t.Errorf("DistanceTo(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}

	degenerate := Seg(Pt(1, 1), Pt(1, 1))
	if got := degenerate.DistanceTo(Pt(4, 5)); !almostEqual(got, 5) {
		t.Errorf("degenerate DistanceTo = %v, want 5", got)
	}
}

func TestPolylineIntersects(t *testing.T) {
	link := Seg(Pt(0, 0), Pt(10, 0))

	if PolylineIntersects(nil, link) {
		t.Error("empty path should not intersect")
	}
	if PolylineIntersects([]Point{Pt(5, -5)}, link) {
		t.Error("single point path should not intersect")
	}

	path := []Point{Pt(-5, 5), Pt(2, 4), Pt(4, -3), Pt(8, -6)}
	if !PolylineIntersects(path, link) {
		t.Error("zig-zag path should cross the link")
	}

	above := []Point{Pt(0, 2), Pt(5, 3), Pt(10, 2)}
	if PolylineIntersects(above, link) {
		t.Error("path above the link should not cross it")
	}
}
