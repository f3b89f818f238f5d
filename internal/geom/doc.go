// Package geom provides the 2D primitives used for hit testing and
// selection: an immutable Point type with arithmetic, distance and
// directional offset, and an orientation-based segment intersection test.
//
// # Coordinate Convention
//
// PointCloserTo derives its direction from atan2(dx, dy) rather than the
// conventional atan2(dy, dx), then applies sin to X and cos to Y. The two
// swaps cancel, so the resulting point lies on the ray toward the
// destination as expected; the angle itself is measured from the +Y axis.
//
// # Known Limitations
//
// SegmentsIntersect reports proper crossings only. Collinear segments that
// overlap are reported as not intersecting, because every orientation in
// the test evaluates to zero.
package geom
