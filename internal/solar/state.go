package solar

import (
	"math"

	"github.com/san-kum/orrery/internal/orbit"
)

const (
	DefaultTimeFactor = 1.0
	DefaultZoom       = 1.0

	// RotationSensitivity converts mouse pixels to degrees.
	RotationSensitivity = 0.5
	MaxPitch            = 90.0

	MinZoom = 0.1
	MaxZoom = 20.0

	// Camera eye at zoom 1, looking at the origin from below the XY plane.
	CameraDistance = 500.0
	CameraHeight   = 200.0
)

// SimulationState is the mutable, user-controlled part of the simulation.
type SimulationState struct {
	TimeFactor float64
	RotationX  float64 // pitch in degrees, clamped to [-90, 90]
	RotationY  float64 // yaw in degrees, unbounded
	Zoom       float64
}

func DefaultState() SimulationState {
	return SimulationState{
		TimeFactor: DefaultTimeFactor,
		Zoom:       DefaultZoom,
	}
}

// SetTimeFactor replaces the time factor. Non-positive values are rejected
// and leave the state unchanged.
func (s *SimulationState) SetTimeFactor(tf float64) error {
	if tf <= 0 || math.IsNaN(tf) || math.IsInf(tf, 0) {
		return ErrTimeFactor
	}
	s.TimeFactor = tf
	return nil
}

// ScaleTimeFactor multiplies the time factor by a positive factor.
func (s *SimulationState) ScaleTimeFactor(f float64) {
	if f <= 0 {
		return
	}
	next := s.TimeFactor * f
	if next <= 0 || math.IsInf(next, 0) {
		return
	}
	s.TimeFactor = next
}

// Rotate accumulates a drag of (dx, dy) pixels into the view angles.
func (s *SimulationState) Rotate(dx, dy float64) {
	s.RotationY += dx * RotationSensitivity
	s.RotationX += dy * RotationSensitivity
	s.RotationX = clamp(s.RotationX, -MaxPitch, MaxPitch)
}

func (s *SimulationState) ResetRotation() {
	s.RotationX = 0
	s.RotationY = 0
}

// SetZoom replaces the zoom level, clamped to [MinZoom, MaxZoom].
func (s *SimulationState) SetZoom(z float64) error {
	if z <= 0 || math.IsNaN(z) {
		return ErrZoom
	}
	s.Zoom = clamp(z, MinZoom, MaxZoom)
	return nil
}

// ZoomBy multiplies the zoom level by f.
func (s *SimulationState) ZoomBy(f float64) {
	if f <= 0 {
		return
	}
	s.Zoom = clamp(s.Zoom*f, MinZoom, MaxZoom)
}

// CameraPose returns the eye position for the current zoom. The camera
// always looks at the origin with +Z up.
func (s *SimulationState) CameraPose() (eye, target, up orbit.Vec3) {
	z := s.Zoom
	if z <= 0 {
		z = DefaultZoom
	}
	eye = orbit.Vec3{Y: -CameraDistance / z, Z: CameraHeight / z}
	up = orbit.Vec3{Z: 1}
	return eye, orbit.Vec3{}, up
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
