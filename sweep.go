package sweepline

import "fmt"

// EventKind distinguishes the event an Observer is being shown: the event
// the driver is currently settling, or a future event the driver has just
// discovered and queued.
type EventKind int

const (
	CurrentEvent EventKind = iota
	DiscoveredEvent
)

// EventSnapshot is a point passed to an Observer, tagged with why the
// driver is showing it.
type EventSnapshot struct {
	Kind  EventKind
	Point Point
}

// StatusSnapshot is a read-only, top-to-bottom copy of the status tree's
// contents at the moment an Observer is notified.
type StatusSnapshot struct {
	Segments []Segment
}

// Observer is notified as the sweep settles events and discovers future
// ones. It has no influence over the algorithm; it exists purely for
// visualization and diagnostics.
type Observer interface {
	Step(x float64, status StatusSnapshot, event EventSnapshot)
}

// noopObserver is the default Observer: it does nothing.
type noopObserver struct{}

func (noopObserver) Step(float64, StatusSnapshot, EventSnapshot) {}

// Run sweeps the given segments left to right and returns every point at
// which two or more of them meet or an endpoint falls, within the
// configured tolerance.
func Run(segments []Segment, opts ...Option) (result Result, err error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	defer func() {
		if r := recover(); r != nil {
			result, err = Result{}, fmt.Errorf("%w: %v", ErrStatusInvariant, r)
		}
	}()

	segs, perr := preprocess(segments, cfg.tolerance)
	if perr != nil {
		return Result{}, perr
	}
	byID := make([]int, len(segs))
	for i := range segs {
		byID[segs[i].id] = i
	}

	events := newEventTree(cfg.tolerance)
	for i := range segs {
		events.insert(segs[i].Left(), &segs[i], Left)
		events.insert(segs[i].Right(), &segs[i], Right)
	}
	glomVerticals(events, segs, byID, cfg.tolerance)

	status := newStatusTree(cfg.tolerance)
	var resultEvents []Event
	processed := 0

	for !events.empty() {
		node, _ := events.popMin()
		processed++
		if cfg.maxEvents > 0 && processed > cfg.maxEvents {
			return Result{}, ErrRunaway
		}

		x := node.point.X
		leftSegs, rightSegs, interiorSegs := classify(node.incidences, segs, byID)
		applyEndpoint(node.point, leftSegs, rightSegs)

		var above, below *Segment
		if len(leftSegs)+len(interiorSegs) == 0 && len(rightSegs) > 0 {
			ordered := status.sortByRank(rightSegs)
			above = status.above(ordered[0])
			below = status.below(ordered[len(ordered)-1])
		}

		for _, s := range rightSegs {
			status.remove(s)
		}

		if len(interiorSegs) > 1 {
			ordered := status.sortByRank(interiorSegs)
			status.swapRange(ordered)
		}

		for _, s := range leftSegs {
			status.insert(s, x)
		}

		bundle := append(append([]*Segment{}, leftSegs...), interiorSegs...)
		switch {
		case len(bundle) == 0:
			probe(events, above, below, x, node.point, cfg.tolerance, cfg.observer, status, &node.incidences)
		default:
			ordered := status.sortByRank(bundle)
			top, bottom := ordered[0], ordered[len(ordered)-1]
			probe(events, status.above(top), top, x, node.point, cfg.tolerance, cfg.observer, status, &node.incidences)
			probe(events, bottom, status.below(bottom), x, node.point, cfg.tolerance, cfg.observer, status, &node.incidences)
		}

		resultEvents = append(resultEvents, Event{Point: node.point, Incidences: dedupeIncidences(node.incidences)})
		cfg.observer.Step(x, snapshot(status), EventSnapshot{Kind: CurrentEvent, Point: node.point})
	}

	if !status.empty() {
		return Result{}, ErrStatusInvariant
	}

	out := make([]Segment, len(segs))
	for i := range segs {
		out[segs[i].id] = segs[i]
	}
	return Result{Segments: out, Events: resultEvents}, nil
}

// classify splits an event's incidences into the three role buckets the
// driver reasons about, resolving segment indexes through byID.
func classify(incidences []Incidence, segs []Segment, byID []int) (left, right, interior []*Segment) {
	for _, inc := range incidences {
		s := &segs[byID[inc.Segment]]
		switch inc.Role {
		case Left:
			left = append(left, s)
		case Right:
			right = append(right, s)
		case Interior:
			interior = append(interior, s)
		}
	}
	return
}

// applyEndpoint rewrites left/right segment endpoints to the event's
// canonical (possibly glommed) point, so Result.Segments reflects any
// snapping the sweep performed.
func applyEndpoint(p Point, left, right []*Segment) {
	for _, s := range left {
		s.A = p
	}
	for _, s := range right {
		s.B = p
	}
}

// glomVerticals snaps every event whose point lies on a vertical
// segment's stem onto that segment's x coordinate, folding T-intersections
// against verticals into the event tree before the main loop runs.
func glomVerticals(events *eventTree, segs []Segment, byID []int, tol float64) {
	for i := range segs {
		v := &segs[i]
		if !v.vertical() {
			continue
		}
		for _, n := range nodesNear(events, v.A.X, tol) {
			snapped, ok := glomToSeg(n.point, v, tol)
			if !ok || snapped.Equals(n.point) {
				continue
			}
			incidences := n.incidences
			events.remove(n)
			for _, inc := range incidences {
				events.insert(snapped, &segs[byID[inc.Segment]], inc.Role)
			}
		}
	}
}

// nodesNear collects every event node currently within tol of x, snapshot
// first since glomVerticals mutates the tree while iterating.
func nodesNear(events *eventTree, x, tol float64) []*eventNode {
	var out []*eventNode
	n := events.min()
	for ; n != nil; n = n.Next() {
		if n.point.X > x+tol {
			break
		}
		if n.point.X >= x-tol {
			out = append(out, n)
		}
	}
	return out
}

// probe tests a and b for an intersection that does not lie before the
// current event in (x, y) order and, if found, records it for both
// segments: at the current event when it coincides with it, otherwise as a
// future event.
func probe(events *eventTree, a, b *Segment, x float64, current Point, tol float64, obs Observer, status *statusTree, currentIncidences *[]Incidence) {
	if a == nil || b == nil || a == b {
		return
	}
	res := segmentIntersect(a, b, tol)
	switch res.kind {
	case pointIntersect:
		insertFuture(events, res.p1, a, b, x, current, tol, obs, status, currentIncidences)
	case overlapIntersect:
		insertFuture(events, res.p1, a, b, x, current, tol, obs, status, currentIncidences)
		insertFuture(events, res.p2, a, b, x, current, tol, obs, status, currentIncidences)
	}
}

// insertFuture records a discovered intersection point for a and b. A point
// that coincides with the event currently being processed is merged
// straight into that event's own incidence list rather than reinserted
// into the event tree: the node being processed has already been popped,
// so reinserting it would hand back a point that pops again on the very
// next iteration, rediscovers the same pair, and reinserts it forever.
func insertFuture(events *eventTree, p Point, a, b *Segment, x float64, current Point, tol float64, obs Observer, status *statusTree, currentIncidences *[]Incidence) {
	behind := p.X < x-tol || (equal(p.X, x, tol) && p.Y < current.Y-tol)
	if behind {
		return
	}
	if pointEq(p, current, tol) {
		mergeCurrent(currentIncidences, p, a, tol)
		mergeCurrent(currentIncidences, p, b, tol)
		return
	}
	inserted := false
	if insertInterior(events, p, a, tol) {
		inserted = true
	}
	if insertInterior(events, p, b, tol) {
		inserted = true
	}
	if inserted {
		obs.Step(p.X, snapshot(status), EventSnapshot{Kind: DiscoveredEvent, Point: p})
	}
}

// insertInterior records s as Interior at p, unless p coincides with one
// of s's own endpoints: that endpoint already carries a Left/Right role
// at the event its own construction inserted, so tagging it Interior too
// would only produce a redundant, self-contradictory incidence.
func insertInterior(events *eventTree, p Point, s *Segment, tol float64) bool {
	if pointEq(p, s.A, tol) || pointEq(p, s.B, tol) {
		return false
	}
	events.insert(p, s, Interior)
	return true
}

// mergeCurrent is insertInterior's counterpart for a point that is the
// event currently being processed: it appends directly to that event's
// incidence slice instead of touching the event tree.
func mergeCurrent(currentIncidences *[]Incidence, p Point, s *Segment, tol float64) bool {
	if pointEq(p, s.A, tol) || pointEq(p, s.B, tol) {
		return false
	}
	*currentIncidences = append(*currentIncidences, Incidence{Segment: s.id, Role: Interior})
	return true
}

// dedupeIncidences drops exact (Segment, Role) repeats that can arise when
// an overlap's far endpoint coincides with an endpoint already recorded at
// the same event.
func dedupeIncidences(incidences []Incidence) []Incidence {
	out := make([]Incidence, 0, len(incidences))
	seen := make(map[Incidence]bool, len(incidences))
	for _, inc := range incidences {
		if seen[inc] {
			continue
		}
		seen[inc] = true
		out = append(out, inc)
	}
	return out
}

// snapshot copies the status tree's current top-to-bottom contents for an
// Observer. It is built for every notification, including those sent to
// the default no-op Observer.
func snapshot(status *statusTree) StatusSnapshot {
	var segs []Segment
	for n := status.min(); n != nil; n = n.Next() {
		segs = append(segs, *n.seg)
	}
	return StatusSnapshot{Segments: segs}
}
