package geom

import (
	"fmt"
	"math"
)

// Point is an immutable 2D coordinate. Methods never modify the receiver;
// every transformation returns a new Point.
type Point struct {
	X float64
	Y float64
}

// Zero is the origin.
var Zero = Point{}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Distance returns the Euclidean distance between p and other.
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(sqr(dx) + sqr(dy))
}

// Length returns the distance from p to the origin.
func (p Point) Length() float64 {
	return p.Distance(Zero)
}

// Distance returns the distance between p and q, or between p and the
// origin when q is omitted.
func Distance(p Point, q ...Point) float64 {
	if len(q) == 0 {
		return p.Length()
	}
	return p.Distance(q[0])
}

// Minus returns the component-wise difference p - other.
func (p Point) Minus(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Plus returns the component-wise sum p + other.
func (p Point) Plus(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Scale returns p with both components multiplied by f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Equals reports exact component equality. No epsilon is applied.
func (p Point) Equals(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// PointCloserTo returns the point reached by moving dist units from p
// toward dest. A negative dist moves away from dest. If p equals dest the
// direction is undefined and p is returned unchanged.
func (p Point) PointCloserTo(dest Point, dist float64) Point {
	if p.Equals(dest) {
		return p
	}

	d := dest.Minus(p)
	angle := math.Atan2(d.X, d.Y)

	return Point{
		X: p.X + math.Sin(angle)*dist,
		Y: p.Y + math.Cos(angle)*dist,
	}
}

func sqr(a float64) float64 {
	return a * a
}
