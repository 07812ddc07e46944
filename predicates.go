package sweepline

import "math"

// pointEq reports whether the Chebyshev distance between p and q is at
// most tol.
func pointEq(p, q Point, tol float64) bool {
	return equalPoint(p, q, tol)
}

// onSegment reports whether p's perpendicular distance to the infinite
// line through s is at most tol, and p falls within s's parametric
// extent, extended by tol on each end.
func onSegment(p Point, s *Segment, tol float64) bool {
	d := s.direction()
	length := d.Length()
	if length == 0 {
		return equalPoint(p, s.A, tol)
	}
	u := Point{d.X / length, d.Y / length}
	rel := p.Sub(s.A)
	perp := math.Abs(u.PerpDot(rel))
	if perp > tol {
		return false
	}
	t := u.Dot(rel) // distance along the segment, in [0,length] when on it
	return -tol <= t && t <= length+tol
}

type intersectKind int

const (
	noIntersect intersectKind = iota
	pointIntersect
	overlapIntersect
)

// intersection is the result of segmentIntersect: none, a single point,
// or a collinear overlap bounded by p1 and p2.
type intersection struct {
	kind   intersectKind
	p1, p2 Point
}

// segmentIntersect finds where a and b meet within tolerance, if at all.
// An endpoint that falls inside the other segment's tube is snapped onto
// that segment's line, via the parametric clamp below, before being
// reported.
func segmentIntersect(a, b *Segment, tol float64) intersection {
	da, db := a.direction(), b.direction()
	la, lb := da.Length(), db.Length()
	if la == 0 || lb == 0 {
		return intersection{kind: noIntersect}
	}
	ua := Point{da.X / la, da.Y / la}
	ub := Point{db.X / lb, db.Y / lb}

	cross := ua.PerpDot(ub)
	if math.Abs(cross) <= tol {
		return collinearOverlap(a, b, ua, la, lb, tol)
	}

	// standard line-line intersection: a.A + ta*da == b.A + tb*db
	div := da.PerpDot(db)
	w := b.A.Sub(a.A)
	ta := w.PerpDot(db) / div
	tb := w.PerpDot(da) / div

	dta, dtb := tol/la, tol/lb
	if ta < -dta || ta > 1+dta || tb < -dtb || tb > 1+dtb {
		return intersection{kind: noIntersect}
	}

	ta = math.Max(0, math.Min(1, ta))
	return intersection{kind: pointIntersect, p1: a.A.Interpolate(a.B, ta)}
}

// collinearOverlap handles the near-parallel branch of segmentIntersect:
// segments whose direction vectors are within tol of aligned. It tests
// whether their tubes overlap along a's line and, if so, whether that
// overlap spans more than a point (an overlap) or just touches (a point).
func collinearOverlap(a, b *Segment, ua Point, la, lb, tol float64) intersection {
	perp := math.Abs(ua.PerpDot(b.A.Sub(a.A)))
	if perp > tol {
		return intersection{kind: noIntersect}
	}

	// project every endpoint onto a's unit direction, as a signed
	// distance from a.A
	ta0, ta1 := 0.0, la
	tb0 := ua.Dot(b.A.Sub(a.A))
	tb1 := ua.Dot(b.B.Sub(a.A))
	if tb0 > tb1 {
		tb0, tb1 = tb1, tb0
	}

	lo := math.Max(ta0, tb0)
	hi := math.Min(ta1, tb1)
	if hi < lo-tol {
		return intersection{kind: noIntersect}
	}
	if hi-lo <= tol {
		// tubes touch at (about) a single point
		t := math.Max(0, math.Min(la, (lo+hi)/2))
		return intersection{kind: pointIntersect, p1: a.A.Add(ua.Mul(t))}
	}
	return intersection{
		kind: overlapIntersect,
		p1:   a.A.Add(ua.Mul(lo)),
		p2:   a.A.Add(ua.Mul(hi)),
	}
}

// orderAt returns -1 when a is above b at sweep position x and +1 when a
// is below b. Two non-vertical segments whose y values at x agree within
// tol are ordered by compareSlopes; 0 is returned when a non-vertical
// segment's y at x falls within a vertical's span, or when a segment is
// compared with itself.
func orderAt(a, b *Segment, x, tol float64) int {
	av, bv := a.vertical(), b.vertical()
	switch {
	case av && bv:
		return compareVerticals(a, b)
	case av: // a vertical, b non-vertical
		return -compareVertNonvert(a, b, x, tol)
	case bv: // a non-vertical, b vertical
		return compareVertNonvert(b, a, x, tol)
	default:
		ya, yb := a.yAt(x), b.yAt(x)
		if !equal(ya, yb, tol) {
			if ya > yb {
				return -1
			}
			return 1
		}
		return compareSlopes(a, b)
	}
}

// compareVerticals orders two vertical segments by their lower endpoint,
// then by id for determinism; two verticals this close in x and y would
// already have been rejected as an ErrVerticalCollision during
// preprocessing, so any remaining tie here is cosmetic.
func compareVerticals(a, b *Segment) int {
	if a.A.Y != b.A.Y {
		if a.A.Y > b.A.Y {
			return -1
		}
		return 1
	}
	if a.id < b.id {
		return -1
	} else if a.id > b.id {
		return 1
	}
	return 0
}

// compareVertNonvert orders a vertical segment against a non-vertical one
// at sweep position x: the non-vertical's y at x either falls above,
// below, or inside the vertical's y-extent.
func compareVertNonvert(vert, nonvert *Segment, x, tol float64) int {
	y := nonvert.yAt(x)
	if y > vert.B.Y+tol {
		return -1 // nonvert above vert
	}
	if y < vert.A.Y-tol {
		return 1 // nonvert below vert
	}
	return 0 // nonvert's y falls within the vertical's span: a T-junction
}

// compareSlopes breaks a tie between two segments that coincide at the
// current sweep x by comparing their slopes, so that a bundle about to
// cross is ordered consistently with the stacking order it will have just
// after the crossing.
func compareSlopes(a, b *Segment) int {
	cross := a.direction().PerpDot(b.direction())
	if cross < 0 {
		return -1 // a rotates above b past the crossing
	} else if cross > 0 {
		return 1
	}
	if a.id < b.id {
		return -1
	} else if a.id > b.id {
		return 1
	}
	return 0
}
