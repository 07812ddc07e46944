package sweepline

import "fmt"

// Role is a segment's relation to an event point: it starts there, ends
// there, or passes through its interior.
type Role int

const (
	Left Role = iota
	Right
	Interior
)

func (r Role) String() string {
	switch r {
	case Left:
		return "left"
	case Right:
		return "right"
	case Interior:
		return "interior"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Incidence is a (segment index, role) pair attached to an event point.
type Incidence struct {
	Segment int
	Role    Role
}

// Event is a coordinate together with every segment incident on it.
type Event struct {
	Point      Point
	Incidences []Incidence
}

// Result is the output of a Run: the input segments with endpoints
// possibly rewritten by glomming and vertical nudging (in original order,
// index-preserving), and the ordered sequence of events the sweep
// produced.
type Result struct {
	Segments []Segment
	Events   []Event
}

// Intersections filters Events down to those with more than one incidence,
// ie. points where two or more segments actually meet rather than a lone
// endpoint.
func (r Result) Intersections() []Event {
	out := make([]Event, 0, len(r.Events))
	for _, ev := range r.Events {
		if len(ev.Incidences) > 1 {
			out = append(out, ev)
		}
	}
	return out
}

// config holds the resolved settings of a Run, built up by Option values.
type config struct {
	tolerance float64
	observer  Observer
	maxEvents int
}

// Option configures a Run. Options are plain functions over an unexported
// config rather than a struct literal, so new settings can be added
// without breaking callers.
type Option func(*config)

// WithTolerance overrides DefaultTolerance for this run. A negative tol is
// treated as zero.
func WithTolerance(tol float64) Option {
	return func(c *config) {
		if tol < 0 {
			tol = 0
		}
		c.tolerance = tol
	}
}

// WithObserver attaches a debug-visualization hook that is notified after
// every event the sweep settles. It has no effect on the run's output.
func WithObserver(obs Observer) Option {
	return func(c *config) {
		c.observer = obs
	}
}

// WithMaxEvents bounds the number of events a run may pop from the event
// set before failing with ErrRunaway. Zero or negative means unbounded.
func WithMaxEvents(n int) Option {
	return func(c *config) {
		c.maxEvents = n
	}
}

func defaultConfig() config {
	return config{
		tolerance: DefaultTolerance,
		observer:  noopObserver{},
		maxEvents: 0,
	}
}
