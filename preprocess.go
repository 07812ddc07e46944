package sweepline

import "sort"

// preprocess validates and normalizes the input segment list, assigning
// stable ids, nudging near-vertical segments to exactly vertical, and
// ordering verticals first so they reach the event tree before any
// segment that merely passes near their stem.
func preprocess(in []Segment, tol float64) ([]Segment, error) {
	segs := make([]Segment, len(in))
	copy(segs, in)

	for i := range segs {
		segs[i].id = i
		if !segs[i].finite() {
			return nil, ErrInvalidInput
		}
		if segs[i].zeroLength(tol) {
			return nil, ErrInvalidInput
		}
		nudgeVertical(&segs[i], tol)
		segs[i].normalize()
	}

	if err := checkVerticalCollisions(segs, tol); err != nil {
		return nil, err
	}

	sort.SliceStable(segs, func(i, j int) bool {
		vi, vj := segs[i].vertical(), segs[j].vertical()
		if vi != vj {
			return vi
		}
		return segs[i].id < segs[j].id
	})
	return segs, nil
}

// nudgeVertical snaps a segment whose endpoints' x coordinates are within
// tol of one another to exactly vertical, so later exact-equality checks
// (Segment.vertical) see it consistently.
func nudgeVertical(s *Segment, tol float64) {
	if s.A.X != s.B.X && equal(s.A.X, s.B.X, tol) {
		s.B.X = s.A.X
	}
}

// checkVerticalCollisions rejects input where two distinct vertical
// segments lie within tol in x and overlap in y by more than tol: their
// stems would glom into a single event key with no principled way to
// order them against each other.
func checkVerticalCollisions(segs []Segment, tol float64) error {
	var verticals []*Segment
	for i := range segs {
		if segs[i].vertical() {
			verticals = append(verticals, &segs[i])
		}
	}
	for i := 0; i < len(verticals); i++ {
		for j := i + 1; j < len(verticals); j++ {
			a, b := verticals[i], verticals[j]
			if !equal(a.A.X, b.A.X, tol) {
				continue
			}
			lo := maxF(a.A.Y, b.A.Y)
			hi := minF(a.B.Y, b.B.Y)
			if hi-lo > tol {
				return ErrVerticalCollision
			}
		}
	}
	return nil
}

// glomToSeg snaps any event whose point lies within tol of an exactly
// vertical segment's stem, and within its y-extent, onto that segment's x
// coordinate: a vertical-projection snap distinct from the event tree's
// own proximity glomming, since the point may be well outside tol of the
// vertical's own endpoints while still sitting on its stem.
func glomToSeg(p Point, vert *Segment, tol float64) (Point, bool) {
	if !equal(p.X, vert.A.X, tol) {
		return p, false
	}
	if p.Y < vert.A.Y-tol || p.Y > vert.B.Y+tol {
		return p, false
	}
	return Point{vert.A.X, p.Y}, true
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
