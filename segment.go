package sweepline

import "math"

// Segment is an unordered pair of endpoints carrying a stable identity
// across a run. Endpoints are mutable: preprocessing and glomming rewrite
// them in place.
type Segment struct {
	A, B Point
	id   int
}

// NewSegment returns a segment with the given endpoints. Its identity is
// assigned by the slice position it is passed to Run in, not here.
func NewSegment(a, b Point) Segment {
	return Segment{A: a, B: b}
}

// ID returns the segment's stable integer identity.
func (s *Segment) ID() int {
	return s.id
}

// vertical reports whether the segment's endpoints share an x coordinate
// exactly. Preprocessing's near-vertical nudge (preprocess.go) is what
// makes this exact equality meaningful instead of a near-miss.
func (s *Segment) vertical() bool {
	return s.A.X == s.B.X
}

// normalize enforces the post-preprocessing orientation invariant: for a
// non-vertical segment, A is the endpoint with the smaller x (ties broken
// by smaller y); for a vertical segment, A is the endpoint with the
// smaller y.
func (s *Segment) normalize() {
	if s.vertical() {
		if s.A.Y > s.B.Y {
			s.A, s.B = s.B, s.A
		}
		return
	}
	if s.A.X > s.B.X || (s.A.X == s.B.X && s.A.Y > s.B.Y) {
		s.A, s.B = s.B, s.A
	}
}

// Left returns the segment's left endpoint under the orientation invariant.
func (s *Segment) Left() Point {
	return s.A
}

// Right returns the segment's right endpoint under the orientation
// invariant.
func (s *Segment) Right() Point {
	return s.B
}

// zeroLength reports whether the segment's endpoints are within tol of one
// another.
func (s *Segment) zeroLength(tol float64) bool {
	return equalPoint(s.A, s.B, tol)
}

// direction returns the vector from A to B.
func (s *Segment) direction() Point {
	return s.B.Sub(s.A)
}

// yAt returns the segment's y coordinate at the given x, by linear
// interpolation along its (non-vertical) direction. Callers must not call
// this on a vertical segment.
func (s *Segment) yAt(x float64) float64 {
	dx := s.B.X - s.A.X
	if dx == 0 {
		return s.A.Y
	}
	t := (x - s.A.X) / dx
	return s.A.Y + t*(s.B.Y-s.A.Y)
}

// finite reports whether both endpoints have finite coordinates.
func (s *Segment) finite() bool {
	return isFinite(s.A.X) && isFinite(s.A.Y) && isFinite(s.B.X) && isFinite(s.B.Y)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
