package sunmao

import "errors"

// Validation failures raised by layout, legend, and alignment calls.
// Every failure is synchronous and leaves the tree and legend registry
// unchanged; none are retried or recovered automatically. Wrap sites add
// context with fmt.Errorf("%w", ...), so callers match with errors.Is.
var (
	// ErrInvalidSize reports a non-positive size, or a size that would
	// leave a degenerate or inverted remainder.
	ErrInvalidSize = errors.New("invalid size")

	// ErrInvalidDirection reports a direction outside top/bottom/left/right.
	ErrInvalidDirection = errors.New("invalid direction")

	// ErrDirectionOccupied reports a tenon request for a direction that
	// already holds a child.
	ErrDirectionOccupied = errors.New("direction occupied")

	// ErrNoSuchChild reports a lookup in an empty direction slot.
	ErrNoSuchChild = errors.New("no such child")

	// ErrNoLegendRendered reports a reposition request for a legend that
	// was never created.
	ErrNoLegendRendered = errors.New("no legend rendered")

	// ErrEmptyGroup reports an alignment request over an explicitly empty
	// panel group.
	ErrEmptyGroup = errors.New("empty alignment group")
)
