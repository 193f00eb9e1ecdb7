package solar

import "errors"

var (
	// ErrTimeFactor indicates a time factor that is zero or negative.
	ErrTimeFactor = errors.New("solar: time factor must be positive")

	// ErrZoom indicates a zoom level that is zero or negative.
	ErrZoom = errors.New("solar: zoom must be positive")
)
