package sweepline

import (
	"fmt"
	"math"
)

// Point is a coordinate in the plane.
type Point struct {
	X, Y float64
}

// Add adds q to p.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts q from p.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul multiplies x and y by f.
func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

// Dot returns the dot product of p and q, treated as vectors from the
// origin.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// PerpDot returns the perp dot product of p and q: zero when aligned,
// |p|*|q| when perpendicular. Its sign gives the orientation of q relative
// to p (positive when q is CCW from p).
func (p Point) PerpDot(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the Euclidean length of p treated as a vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Angle returns the angle of p treated as a vector from the origin.
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// Interpolate returns the point on the segment p-q at parameter t: t=0
// returns p, t=1 returns q.
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{(1-t)*p.X + t*q.X, (1-t)*p.Y + t*q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("[%g; %g]", p.X, p.Y)
}

// Equals reports exact coordinate identity, used where the spec requires an
// endpoint to equal an event key by identity rather than by tolerance (eg.
// spec's Snap consistency property for left/right incidences).
func (p Point) Equals(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}
