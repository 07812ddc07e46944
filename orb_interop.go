package sweepline

import "github.com/paulmach/orb"

// ToOrbPoint converts p to an orb.Point, for callers bridging into the
// wider paulmach/orb ecosystem (geojson, osm, projections).
func ToOrbPoint(p Point) orb.Point {
	return orb.Point{p.X, p.Y}
}

// FromOrbPoint converts an orb.Point to a Point.
func FromOrbPoint(p orb.Point) Point {
	return Point{X: p[0], Y: p[1]}
}

// ToOrbLineStrings converts segments to one orb.LineString each, in the
// order given, for rendering or export with paulmach/orb-based tooling.
func ToOrbLineStrings(segs []Segment) orb.MultiLineString {
	mls := make(orb.MultiLineString, len(segs))
	for i, s := range segs {
		mls[i] = orb.LineString{ToOrbPoint(s.A), ToOrbPoint(s.B)}
	}
	return mls
}

// SegmentsFromOrb flattens an orb.MultiLineString into Segments, one per
// consecutive point pair of each line string.
func SegmentsFromOrb(mls orb.MultiLineString) []Segment {
	var out []Segment
	for _, ls := range mls {
		for i := 0; i+1 < len(ls); i++ {
			out = append(out, NewSegment(FromOrbPoint(ls[i]), FromOrbPoint(ls[i+1])))
		}
	}
	return out
}
