package sweepline

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

const tol = 1e-6

func TestOnSegment(t *testing.T) {
	s := NewSegment(Point{0, 0}, Point{10, 0})
	var tts = []struct {
		p    Point
		want bool
	}{
		{Point{5, 0}, true},
		{Point{5, tol / 2}, true},
		{Point{5, 1}, false},
		{Point{-tol / 2, 0}, true},
		{Point{-1, 0}, false},
		{Point{11, 0}, false},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, onSegment(tt.p, &s, tol), tt.want)
		})
	}
}

func TestSegmentIntersectCrossing(t *testing.T) {
	a := NewSegment(Point{0, 0}, Point{10, 10})
	b := NewSegment(Point{0, 10}, Point{10, 0})
	res := segmentIntersect(&a, &b, tol)
	test.T(t, res.kind, pointIntersect)
	test.T(t, res.p1, Point{5, 5})
}

func TestSegmentIntersectDisjoint(t *testing.T) {
	a := NewSegment(Point{0, 0}, Point{1, 0})
	b := NewSegment(Point{0, 5}, Point{1, 5})
	res := segmentIntersect(&a, &b, tol)
	test.T(t, res.kind, noIntersect)
}

func TestSegmentIntersectTJunction(t *testing.T) {
	a := NewSegment(Point{0, 0}, Point{10, 0})
	b := NewSegment(Point{5, 0}, Point{5, 5})
	res := segmentIntersect(&a, &b, tol)
	test.T(t, res.kind, pointIntersect)
	test.T(t, res.p1, Point{5, 0})
}

func TestSegmentIntersectOverlap(t *testing.T) {
	a := NewSegment(Point{0, 0}, Point{10, 0})
	b := NewSegment(Point{5, 0}, Point{15, 0})
	res := segmentIntersect(&a, &b, tol)
	test.T(t, res.kind, overlapIntersect)
	test.T(t, res.p1, Point{5, 0})
	test.T(t, res.p2, Point{10, 0})
}

func TestSegmentIntersectCollinearDisjoint(t *testing.T) {
	a := NewSegment(Point{0, 0}, Point{1, 0})
	b := NewSegment(Point{5, 0}, Point{6, 0})
	res := segmentIntersect(&a, &b, tol)
	test.T(t, res.kind, noIntersect)
}

func TestOrderAtSlopeTieBreak(t *testing.T) {
	// both pass through (5,5); a has the steeper slope, so a ends up
	// above b just to the right of the crossing
	a := NewSegment(Point{0, 0}, Point{10, 10})
	b := NewSegment(Point{0, 2}, Point{10, 8})
	test.T(t, orderAt(&a, &b, 5, tol), -1)
	test.T(t, orderAt(&b, &a, 5, tol), 1)
}

func TestOrderAtVerticalVsNonvertical(t *testing.T) {
	v := NewSegment(Point{5, 0}, Point{5, 10})
	above := NewSegment(Point{0, 20}, Point{10, 20})
	below := NewSegment(Point{0, -5}, Point{10, -5})
	test.T(t, orderAt(&above, &v, 5, tol), -1)
	test.T(t, orderAt(&below, &v, 5, tol), 1)
}
