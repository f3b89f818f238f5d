package diagram

import "github.com/dshills/linkdraw/internal/geom"

// LinkGeometry returns the drawn segment of a link. The end is pulled back
// toward the source by nodeRadius+arrowLength so the arrowhead stops at
// the target node's rim.
func LinkGeometry(l *Link, nodeRadius, arrowLength float64) geom.Segment {
	start := l.Source.Pos
	end := l.Target.Pos.PointCloserTo(start, arrowLength+nodeRadius)
	return geom.Seg(start, end)
}

// HighlightSegment returns the part of the link covered by the hover
// indicator, where progress runs from 0 (nothing) to 100 (full length).
func HighlightSegment(l *Link, progress float64) geom.Segment {
	start := l.Source.Pos
	end := l.Target.Pos
	return geom.Seg(start, start.PointCloserTo(end, start.Distance(end)*progress/100))
}
