package geom

import "math"

// Epsilon absorbs floating point noise in Orientation so nearly collinear
// triples are reported as collinear rather than as a turn.
const Epsilon = 1e-9

// Orientation returns the turn direction of the ordered triple (a, b, c):
// 1 or -1 for the two rotation senses and 0 when the points are collinear.
func Orientation(a, b, c Point) int {
	v := (c.Y-a.Y)*(b.X-a.X) - (b.Y-a.Y)*(c.X-a.X)
	switch {
	case v > Epsilon:
		return 1
	case v < -Epsilon:
		return -1
	default:
		return 0
	}
}

// SegmentsIntersect reports whether segment a1-a2 properly crosses
// segment b1-b2. Collinear overlap returns false.
func SegmentsIntersect(a1, a2, b1, b2 Point) bool {
	return Orientation(a1, b1, b2) != Orientation(a2, b1, b2) &&
		Orientation(a1, a2, b1) != Orientation(a1, a2, b2)
}

// Segment is a line segment between two points.
type Segment struct {
	A Point
	B Point
}

// Seg is shorthand for Segment{A: a, B: b}.
func Seg(a, b Point) Segment {
	return Segment{A: a, B: b}
}

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return s.A.Distance(s.B)
}

// Intersects reports whether s properly crosses other.
func (s Segment) Intersects(other Segment) bool {
	return SegmentsIntersect(s.A, s.B, other.A, other.B)
}

// DistanceTo returns the shortest distance from p to any point on s.
func (s Segment) DistanceTo(p Point) float64 {
	d := s.B.Minus(s.A)
	lenSq := sqr(d.X) + sqr(d.Y)
	if lenSq == 0 {
		return p.Distance(s.A)
	}

	t := ((p.X-s.A.X)*d.X + (p.Y-s.A.Y)*d.Y) / lenSq
	t = math.Max(0, math.Min(1, t))

	proj := Point{X: s.A.X + t*d.X, Y: s.A.Y + t*d.Y}
	return p.Distance(proj)
}

// PolylineIntersects reports whether any segment of the open polyline
// path crosses s. Paths with fewer than two points never intersect.
func PolylineIntersects(path []Point, s Segment) bool {
	for i := 1; i < len(path); i++ {
		if SegmentsIntersect(path[i-1], path[i], s.A, s.B) {
			return true
		}
	}
	return false
}
