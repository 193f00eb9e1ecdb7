package celestial

import "github.com/san-kum/orrery/internal/orbit"

// Defaults for moons added interactively.
const (
	MoonRadius  = 2.0
	MoonPeriod  = 30.0
	MoonSpacing = 5.0
)

var MoonColor = Color{200, 200, 200}

// Moon orbits its parent planet. Its position is always the parent's
// position of the same frame plus its own orbital offset.
type Moon struct {
	body
	orbit  orbit.Elements
	angle  float64
	offset orbit.Vec3
}

// NewMoon creates a moon; inclinationDeg is converted to radians.
func NewMoon(r Renderer, distance, radius float64, color Color, period, inclinationDeg float64) *Moon {
	return &Moon{
		body:  newBody(r, "Moon", radius, color),
		orbit: orbit.NewElements(distance, period, inclinationDeg),
	}
}

// Update advances the phase and places the moon relative to parent, which
// must be the parent's position computed for this frame.
func (m *Moon) Update(timeFactor float64, parent orbit.Vec3) {
	m.angle = orbit.Advance(m.angle, m.orbit.Period, timeFactor)
	m.offset = m.orbit.At(m.angle)
	m.pos = parent.Add(m.offset)
}

func (m *Moon) Angle() float64           { return m.angle }
func (m *Moon) Elements() orbit.Elements { return m.orbit }

// Offset returns the position relative to the parent from the last update.
func (m *Moon) Offset() orbit.Vec3 { return m.offset }
