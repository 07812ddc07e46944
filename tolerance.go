package sweepline

import "math"

// DefaultTolerance is used when a Run is not given WithTolerance.
const DefaultTolerance = 1e-6

// equal reports whether a and b differ by no more than tol.
func equal(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// equalPoint reports whether p and q lie within a Chebyshev ball of radius
// tol of each other.
func equalPoint(p, q Point, tol float64) bool {
	return math.Abs(p.X-q.X) <= tol && math.Abs(p.Y-q.Y) <= tol
}

// lessPoint orders points lexicographically by (x, y), the order the event
// set and the output event sequence are both required to honor.
func lessPoint(p, q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// comparePoint returns -1, 0, or +1 for lexicographic (x, y) order.
func comparePoint(p, q Point) int {
	if p.X < q.X {
		return -1
	} else if p.X > q.X {
		return 1
	}
	if p.Y < q.Y {
		return -1
	} else if p.Y > q.Y {
		return 1
	}
	return 0
}
