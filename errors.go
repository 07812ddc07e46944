package sweepline

import "errors"

// All four are fatal: there is no local recovery path once the sweep's
// numeric or structural assumptions break.
var (
	// ErrInvalidInput is returned for a zero-length segment or a
	// non-finite coordinate in the input.
	ErrInvalidInput = errors.New("sweepline: invalid input")

	// ErrVerticalCollision is returned when two distinct vertical
	// segments lie within tolerance in x and overlap in y-extent by more
	// than tolerance: they would glom to the same event key with no
	// principled way to order them against each other.
	ErrVerticalCollision = errors.New("sweepline: vertical segments collide within tolerance")

	// ErrStatusInvariant is returned when the sweep's own bookkeeping is
	// inconsistent: the status tree is non-empty at termination, or a
	// removal targeted a segment absent from it. This indicates an
	// internal defect in the driver, not a problem with the caller's
	// input.
	ErrStatusInvariant = errors.New("sweepline: status tree invariant violated")

	// ErrRunaway is returned when a run pops more events than
	// WithMaxEvents allows, guarding against a pathological tolerance
	// configuration that would otherwise spin forever.
	ErrRunaway = errors.New("sweepline: exceeded maximum event count")
)
