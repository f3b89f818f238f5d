package diagram

import "github.com/dshills/linkdraw/internal/geom"

// NodeAt returns the node whose center lies within radius of p. When
// nodes overlap the most recently added one wins, matching draw order.
func (m *Model) NodeAt(p geom.Point, radius float64) *Node {
	for i := len(m.nodes) - 1; i >= 0; i-- {
		n := m.nodes[i]
		if n.Pos.Distance(p) <= radius {
			return n
		}
	}
	return nil
}

// LinkAt returns the link closest to p among those within tolerance.
func (m *Model) LinkAt(p geom.Point, tolerance float64) *Link {
	var best *Link
	bestDist := tolerance
	for _, l := range m.links {
		if d := l.Segment().DistanceTo(p); d <= bestDist {
			best, bestDist = l, d
		}
	}
	return best
}
