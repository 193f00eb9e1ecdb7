package celestial

import "github.com/san-kum/orrery/internal/orbit"

// RingColor is the color of orbit rings.
var RingColor = Color{51, 51, 51}

// Planet orbits the sun and owns an ordered set of moons.
type Planet struct {
	body
	orbit     orbit.Elements
	angle     float64
	moons     []*Moon
	moonCount int
	ring      []orbit.Vec3
}

// NewPlanet creates a planet at phase zero; inclinationDeg is converted to
// radians.
func NewPlanet(r Renderer, name string, distance, radius float64, color Color, period, inclinationDeg float64) *Planet {
	p := &Planet{
		body:  newBody(r, name, radius, color),
		orbit: orbit.NewElements(distance, period, inclinationDeg),
	}
	p.pos = p.orbit.At(0)
	p.ring = orbit.Ring(p.orbit.Distance, p.orbit.Inclination)
	return p
}

func (p *Planet) Angle() float64           { return p.angle }
func (p *Planet) Elements() orbit.Elements { return p.orbit }
func (p *Planet) MoonCount() int           { return p.moonCount }

// Moons returns the moons in insertion order. The slice must not be
// modified.
func (p *Planet) Moons() []*Moon { return p.moons }

// Update advances the planet, then every moon against the planet's new
// position.
func (p *Planet) Update(timeFactor float64) {
	p.angle = orbit.Advance(p.angle, p.orbit.Period, timeFactor)
	p.pos = p.orbit.At(p.angle)

	for _, m := range p.moons {
		m.Update(timeFactor, p.pos)
	}
}

// Render draws the orbit ring, the planet, then its moons in order.
func (p *Planet) Render() {
	p.r.DrawLineLoop(p.ring, RingColor)
	p.body.Render()
	for _, m := range p.moons {
		m.Render()
	}
}

// AddMoon appends a moon spaced outward from the previous ones. The new
// moon sits at phase zero relative to the planet until the next update.
func (p *Planet) AddMoon() *Moon {
	dist := p.radius*2 + float64(len(p.moons))*MoonSpacing
	m := NewMoon(p.r, dist, MoonRadius, MoonColor, MoonPeriod, 0)
	m.offset = m.orbit.At(0)
	m.pos = p.pos.Add(m.offset)
	p.moons = append(p.moons, m)
	p.moonCount++
	return m
}

// RemoveMoon removes the most recently added moon. It reports whether a
// moon was removed.
func (p *Planet) RemoveMoon() bool {
	if len(p.moons) == 0 {
		return false
	}
	last := len(p.moons) - 1
	p.moons[last].Cleanup()
	p.moons[last] = nil
	p.moons = p.moons[:last]
	p.moonCount--
	return true
}

// SetNumberOfMoons adds or removes moons until there are n. Negative n
// removes every moon.
func (p *Planet) SetNumberOfMoons(n int) {
	current := len(p.moons)
	if n > current {
		for i := 0; i < n-current; i++ {
			p.AddMoon()
		}
	} else if n < current {
		for i := 0; i < current-n; i++ {
			p.RemoveMoon()
		}
	}
}

// Cleanup releases every moon, then the planet's own mesh.
func (p *Planet) Cleanup() {
	for _, m := range p.moons {
		m.Cleanup()
	}
	p.body.Cleanup()
}
