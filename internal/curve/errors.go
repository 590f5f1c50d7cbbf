package curve

import (
	"errors"
	"fmt"
)

// ErrPrecondition is wrapped by every error caused by invalid arguments.
var ErrPrecondition = errors.New("curve: precondition violation")

var (
	// ErrOrderRange reports an order outside the supported range.
	ErrOrderRange = fmt.Errorf("%w: order out of range", ErrPrecondition)

	// ErrMooreOrder reports a Moore curve requested with order <= 1.
	ErrMooreOrder = fmt.Errorf("%w: moore curve requires order >= 2", ErrPrecondition)

	// ErrFieldLength reports a field whose length differs from Size().
	ErrFieldLength = fmt.Errorf("%w: field length does not match curve size", ErrPrecondition)

	// ErrGridShape reports a grid that is not Side() x Side().
	ErrGridShape = fmt.Errorf("%w: grid shape does not match curve side", ErrPrecondition)
)

// ErrIncomplete means a builder failed to visit every cell exactly once.
// No curve is returned alongside it.
var ErrIncomplete = errors.New("curve: construction incomplete")

// ErrInvariant is returned by Verify for a curve whose tables disagree.
var ErrInvariant = errors.New("curve: invariant violated")
