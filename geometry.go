package penrose

import (
	"fmt"
	"math"

	"github.com/jbeda/geom"
)

const (
	// Phi is the golden ratio, the long:short side ratio of every Robinson
	// triangle.
	Phi = math.Phi

	// InteriorAngle is the apex angle of a seed triangle, the rotation
	// between neighbours in a seed ring.
	InteriorAngle = math.Pi / 5
)

// Point is a position in the plane.
type Point = geom.Coord

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Project returns the point at distance size from p1 along the ray p1->p2.
// It panics if p1 and p2 coincide, there is no direction to follow.
func Project(p1, p2 Point, size float64) Point {
	d := p2.Minus(p1)
	m := d.Magnitude()
	if m == 0 {
		panic(fmt.Sprintf("penrose: project along a zero-length direction at (%g, %g)", p1.X, p1.Y))
	}
	return p1.Plus(d.Times(size / m))
}

// Distance is the euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return a.DistanceFrom(b)
}

// Polar returns the point at radius r and angle theta (radians) from the origin.
func Polar(r, theta float64) Point {
	s, c := math.Sincos(theta)
	return Point{X: r * c, Y: r * s}
}

// Edge is a segment between two points.
type Edge struct {
	P1, P2 Point
}

// Length of the edge.
func (e Edge) Length() float64 {
	return Distance(e.P1, e.P2)
}

// almostEqual compares a and b with an absolute tolerance.
func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// relEqual compares a and b relative to the larger magnitude.
func relEqual(a, b, rel float64) bool {
	return math.Abs(a-b) <= rel*math.Max(math.Abs(a), math.Abs(b))
}
