package orbit

import "math"

// TwoPi is one full revolution in radians.
const TwoPi = 2 * math.Pi

// Elements are the orbital parameters of a body around its parent.
type Elements struct {
	Distance    float64 // orbital radius in scene units
	Period      float64 // simulated-time units per revolution
	Inclination float64 // radians
}

// NewElements builds orbital elements from an inclination given in degrees.
func NewElements(distance, period, inclinationDeg float64) Elements {
	return Elements{
		Distance:    distance,
		Period:      period,
		Inclination: DegToRad(inclinationDeg),
	}
}

// Validate reports whether the elements describe a usable orbit.
func (e Elements) Validate() error {
	if e.Distance <= 0 {
		return ErrDistance
	}
	if e.Period <= 0 {
		return ErrPeriod
	}
	return nil
}

// At returns the offset from the parent for the given phase.
func (e Elements) At(theta float64) Vec3 {
	return Offset(theta, e.Distance, e.Inclination)
}

// Offset returns (r·cos θ, r·sin θ·cos ι, r·sin θ·sin ι).
func Offset(theta, r, incl float64) Vec3 {
	s, c := math.Sincos(theta)
	si, ci := math.Sincos(incl)
	return Vec3{
		X: r * c,
		Y: r * s * ci,
		Z: r * s * si,
	}
}

// AngularStep returns the phase increment for one update at timeFactor.
func AngularStep(period, timeFactor float64) float64 {
	return TwoPi / period * timeFactor
}

// Advance steps a phase by one update and wraps it into [0, 2π).
func Advance(angle, period, timeFactor float64) float64 {
	return Wrap(angle + AngularStep(period, timeFactor))
}

// Wrap folds a non-negative phase into [0, 2π). Increments larger than a
// full revolution are folded with a modulo instead of a single subtraction.
func Wrap(angle float64) float64 {
	if angle < TwoPi {
		return angle
	}
	angle -= TwoPi
	if angle >= TwoPi {
		angle = math.Mod(angle, TwoPi)
	}
	return angle
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 { return deg * math.Pi / 180 }
