package sweepline

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestPreprocessRejectsZeroLength(t *testing.T) {
	_, err := preprocess([]Segment{NewSegment(Point{0, 0}, Point{0, 0})}, 1e-6)
	test.That(t, err == ErrInvalidInput)
}

func TestPreprocessRejectsNonFinite(t *testing.T) {
	_, err := preprocess([]Segment{NewSegment(Point{0, 0}, Point{math.NaN(), 1})}, 1e-6)
	test.That(t, err == ErrInvalidInput)
}

func TestPreprocessNudgesNearVertical(t *testing.T) {
	segs, err := preprocess([]Segment{NewSegment(Point{0, 0}, Point{1e-8, 10})}, 1e-6)
	test.That(t, err == nil)
	test.That(t, segs[0].vertical())
}

func TestPreprocessOrdersVerticalsFirst(t *testing.T) {
	segs, err := preprocess([]Segment{
		NewSegment(Point{0, 0}, Point{10, 10}),
		NewSegment(Point{5, 0}, Point{5, 10}),
	}, 1e-6)
	test.That(t, err == nil)
	test.That(t, segs[0].vertical())
	test.That(t, !segs[1].vertical())
}

func TestPreprocessRejectsCollidingVerticals(t *testing.T) {
	_, err := preprocess([]Segment{
		NewSegment(Point{5, 0}, Point{5, 10}),
		NewSegment(Point{5, 5}, Point{5, 15}),
	}, 1e-6)
	test.That(t, err == ErrVerticalCollision)
}

func TestGlomToSeg(t *testing.T) {
	v := NewSegment(Point{5, 0}, Point{5, 10})
	p, ok := glomToSeg(Point{5 + 1e-8, 4}, &v, 1e-6)
	test.That(t, ok)
	test.T(t, p, Point{5, 4})

	_, ok = glomToSeg(Point{5 + 1e-8, 20}, &v, 1e-6)
	test.That(t, !ok)
}
