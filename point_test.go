package sweepline

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestPointAddSub(t *testing.T) {
	test.T(t, Point{1, 2}.Add(Point{3, 4}), Point{4, 6})
	test.T(t, Point{1, 2}.Sub(Point{3, 4}), Point{-2, -2})
}

func TestPointDotPerpDot(t *testing.T) {
	test.T(t, Point{1, 0}.Dot(Point{0, 1}), 0.0)
	test.T(t, Point{1, 0}.PerpDot(Point{0, 1}), 1.0)
}

func TestPointInterpolate(t *testing.T) {
	test.T(t, Point{0, 0}.Interpolate(Point{10, 0}, 0.5), Point{5, 0})
}

func TestPointEquals(t *testing.T) {
	test.That(t, Point{1, 2}.Equals(Point{1, 2}))
	test.That(t, !Point{1, 2}.Equals(Point{1, 2.0000001}))
}

func TestToleranceHelpers(t *testing.T) {
	var tts = []struct {
		p, q Point
		tol  float64
		want bool
	}{
		{Point{0, 0}, Point{0, 0}, 1e-6, true},
		{Point{0, 0}, Point{1e-7, 1e-7}, 1e-6, true},
		{Point{0, 0}, Point{1e-3, 0}, 1e-6, false},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, equalPoint(tt.p, tt.q, tt.tol), tt.want)
		})
	}
}
