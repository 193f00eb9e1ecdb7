package metrics

import (
	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/solar"
)

// Revolutions counts the orbits completed by one planet. It sums the phase
// advanced per frame rather than watching the wrapped angle, so a single
// large step spanning several turns is still counted.
type Revolutions struct {
	name   string
	planet string
	phase  float64
}

func NewRevolutions(planet string) *Revolutions {
	return &Revolutions{
		name:   "revolutions_" + planet,
		planet: planet,
	}
}

func (r *Revolutions) Name() string { return r.name }

func (r *Revolutions) Observe(_ int, sys *solar.SolarSystem) {
	p := sys.Planet(r.planet)
	if p == nil {
		return
	}
	r.phase += orbit.AngularStep(p.Elements().Period, sys.TimeFactor())
}

func (r *Revolutions) Value() float64 { return r.phase / orbit.TwoPi }

func (r *Revolutions) Reset() { r.phase = 0 }

// AllRevolutions returns one Revolutions metric per planet of sys.
func AllRevolutions(sys *solar.SolarSystem) []*Revolutions {
	out := make([]*Revolutions, 0, sys.PlanetCount())
	for _, p := range sys.Planets() {
		out = append(out, NewRevolutions(p.Name()))
	}
	return out
}
