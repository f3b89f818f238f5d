package diagram

import "github.com/dshills/linkdraw/internal/geom"

// Lasso is a freehand selection path in diagram space.
type Lasso struct {
	points []geom.Point
}

// NewLasso starts a path at p.
func NewLasso(p geom.Point) *Lasso {
	return &Lasso{points: []geom.Point{p}}
}

// Extend appends p to the path. Repeated points are dropped.
func (l *Lasso) Extend(p geom.Point) {
	if n := len(l.points); n > 0 && l.points[n-1].Equals(p) {
		return
	}
	l.points = append(l.points, p)
}

// Points returns the path. The slice must not be modified.
func (l *Lasso) Points() []geom.Point {
	if l == nil {
		return nil
	}
	return l.points
}

// Len returns the number of points in the path.
func (l *Lasso) Len() int {
	if l == nil {
		return 0
	}
	return len(l.points)
}

// Crosses reports whether the path intersects seg.
func (l *Lasso) Crosses(seg geom.Segment) bool {
	return geom.PolylineIntersects(l.Points(), seg)
}

// RecomputeMarks marks exactly the links whose segment the lasso crosses
// and returns how many are marked. A nil lasso leaves every mark untouched.
func (m *Model) RecomputeMarks(lasso *Lasso) int {
	if lasso == nil {
		return m.MarkedCount()
	}

	count := 0
	for _, l := range m.links {
		l.Marked = lasso.Crosses(l.Segment())
		if l.Marked {
			count++
		}
	}
	return count
}

// ClearMarks unmarks every link.
func (m *Model) ClearMarks() {
	for _, l := range m.links {
		l.Marked = false
	}
}

// MarkedCount returns the number of marked links.
func (m *Model) MarkedCount() int {
	count := 0
	for _, l := range m.links {
		if l.Marked {
			count++
		}
	}
	return count
}
