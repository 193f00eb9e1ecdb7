package orbit

import "errors"

// Domain errors for orbital parameters.
var (
	// ErrDistance indicates a non-positive orbital radius.
	ErrDistance = errors.New("orbit: distance must be positive")

	// ErrPeriod indicates a non-positive orbital period.
	ErrPeriod = errors.New("orbit: orbital period must be positive")

	// ErrRadius indicates a non-positive body radius.
	ErrRadius = errors.New("orbit: body radius must be positive")
)
