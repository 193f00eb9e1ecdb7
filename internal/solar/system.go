package solar

import (
	"github.com/rs/zerolog"

	"github.com/san-kum/orrery/internal/celestial"
	"github.com/san-kum/orrery/internal/orbit"
)

// PlanetSpec holds the construction parameters of a planet.
type PlanetSpec struct {
	Name           string
	Distance       float64
	Radius         float64
	Color          celestial.Color
	Period         float64
	InclinationDeg float64
}

// Validate checks the orbit and the body radius.
func (p PlanetSpec) Validate() error {
	if p.Radius <= 0 {
		return orbit.ErrRadius
	}
	return orbit.NewElements(p.Distance, p.Period, p.InclinationDeg).Validate()
}

// DefaultPlanets are the eight planets, innermost first. Distances, radii
// and periods are display values with approximate real inclinations.
var DefaultPlanets = [8]PlanetSpec{
	{"Mercury", 70, 5, celestial.Color{R: 200, G: 200, B: 200}, 88, 7},
	{"Venus", 100, 8, celestial.Color{R: 255, G: 190, B: 0}, 225, 3.4},
	{"Earth", 130, 10, celestial.Color{R: 0, G: 100, B: 255}, 365, 0},
	{"Mars", 170, 7, celestial.Color{R: 255, G: 50, B: 0}, 687, 1.9},
	{"Jupiter", 230, 20, celestial.Color{R: 255, G: 200, B: 100}, 4333, 1.3},
	{"Saturn", 290, 17, celestial.Color{R: 255, G: 220, B: 150}, 10759, 2.5},
	{"Uranus", 340, 14, celestial.Color{R: 180, G: 220, B: 255}, 30687, 0.8},
	{"Neptune", 380, 14, celestial.Color{R: 50, G: 50, B: 255}, 60190, 1.8},
}

// SolarSystem is the root aggregate. It exclusively owns the sun and the
// planets, and through them every moon.
type SolarSystem struct {
	r         celestial.Renderer
	sunRadius float64
	sun       *celestial.Sun
	specs     [8]PlanetSpec
	planets   []*celestial.Planet
	state     SimulationState
	elapsed   float64
	frames    int
	log       zerolog.Logger
}

// Option configures a SolarSystem at construction.
type Option func(*SolarSystem)

func WithLogger(l zerolog.Logger) Option {
	return func(s *SolarSystem) { s.log = l }
}

// WithPlanets replaces the planet table. An entry that fails Validate is
// replaced by the built-in planet in the same slot.
func WithPlanets(specs [8]PlanetSpec) Option {
	return func(s *SolarSystem) { s.specs = specs }
}

// WithState replaces the initial simulation state.
func WithState(st SimulationState) Option {
	return func(s *SolarSystem) { s.state = st }
}

// New builds the system and allocates every body's mesh on r.
func New(r celestial.Renderer, opts ...Option) *SolarSystem {
	s := &SolarSystem{
		r:         r,
		sunRadius: celestial.SunRadius,
		specs:     DefaultPlanets,
		state:     DefaultState(),
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.sun = celestial.NewSun(r, s.sunRadius)
	s.planets = make([]*celestial.Planet, 0, len(s.specs))
	for i, spec := range s.specs {
		if err := spec.Validate(); err != nil {
			s.log.Warn().Err(err).Str("planet", spec.Name).Msg("invalid planet, using built-in values")
			spec = DefaultPlanets[i]
		}
		s.planets = append(s.planets, celestial.NewPlanet(
			r, spec.Name, spec.Distance, spec.Radius, spec.Color, spec.Period, spec.InclinationDeg,
		))
	}

	s.log.Debug().Int("planets", len(s.planets)).Float64("time_factor", s.state.TimeFactor).Msg("solar system built")
	return s
}

// Update advances every planet, and through them their moons, by one frame.
func (s *SolarSystem) Update() {
	tf := s.state.TimeFactor
	for _, p := range s.planets {
		p.Update(tf)
	}
	s.elapsed += tf
	s.frames++
}

// Render draws the sun first, which also places the light, then every
// planet with its ring and moons, all under the current view rotation.
func (s *SolarSystem) Render() {
	s.r.PushRotation(s.state.RotationX, s.state.RotationY)
	s.sun.Render()
	for _, p := range s.planets {
		p.Render()
	}
	s.r.PopRotation()
}

// AddMoon adds a moon to the planet at index. Out-of-range indices are
// ignored.
func (s *SolarSystem) AddMoon(index int) {
	p := s.PlanetAt(index)
	if p == nil {
		return
	}
	p.AddMoon()
	s.log.Debug().Str("planet", p.Name()).Int("moons", p.MoonCount()).Msg("moon added")
}

// RemoveMoon removes the newest moon of the planet at index. Out-of-range
// indices and planets without moons are ignored.
func (s *SolarSystem) RemoveMoon(index int) {
	p := s.PlanetAt(index)
	if p == nil {
		return
	}
	if p.RemoveMoon() {
		s.log.Debug().Str("planet", p.Name()).Int("moons", p.MoonCount()).Msg("moon removed")
	}
}

// RotateView applies a mouse drag to the view rotation.
func (s *SolarSystem) RotateView(dx, dy float64) {
	s.state.Rotate(dx, dy)
}

func (s *SolarSystem) PlanetCount() int { return len(s.planets) }

// PlanetAt returns the planet at index, or nil when out of range.
func (s *SolarSystem) PlanetAt(index int) *celestial.Planet {
	if index < 0 || index >= len(s.planets) {
		return nil
	}
	return s.planets[index]
}

// PlanetName returns the name at index, or "" when out of range.
func (s *SolarSystem) PlanetName(index int) string {
	if p := s.PlanetAt(index); p != nil {
		return p.Name()
	}
	return ""
}

// MoonCount returns the moons of the planet at index, or 0 when out of
// range.
func (s *SolarSystem) MoonCount(index int) int {
	if p := s.PlanetAt(index); p != nil {
		return p.MoonCount()
	}
	return 0
}

// Planet looks a planet up by name, returning nil when there is none.
func (s *SolarSystem) Planet(name string) *celestial.Planet {
	for _, p := range s.planets {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

// Planets returns the planets in order. The slice must not be modified.
func (s *SolarSystem) Planets() []*celestial.Planet { return s.planets }

func (s *SolarSystem) Sun() *celestial.Sun { return s.sun }
func (s *SolarSystem) SunRadius() float64  { return s.sunRadius }

// State exposes the simulation state for input handlers and renderers.
func (s *SolarSystem) State() *SimulationState { return &s.state }

func (s *SolarSystem) TimeFactor() float64 { return s.state.TimeFactor }

// SetTimeFactor replaces the time factor; see SimulationState.SetTimeFactor.
func (s *SolarSystem) SetTimeFactor(tf float64) error {
	if err := s.state.SetTimeFactor(tf); err != nil {
		return err
	}
	s.log.Debug().Float64("time_factor", tf).Msg("time factor set")
	return nil
}

// Elapsed returns the simulated time accumulated over all updates.
func (s *SolarSystem) Elapsed() float64 { return s.elapsed }

// Frames returns the number of updates performed.
func (s *SolarSystem) Frames() int { return s.frames }

// Bodies returns every body in render order: sun, then each planet
// followed by its moons.
func (s *SolarSystem) Bodies() []celestial.Body {
	out := []celestial.Body{s.sun}
	for _, p := range s.planets {
		out = append(out, p)
		for _, m := range p.Moons() {
			out = append(out, m)
		}
	}
	return out
}

// Cleanup releases the sun's mesh, then every planet and its moons. It
// must run before the rendering context is torn down.
func (s *SolarSystem) Cleanup() {
	s.sun.Cleanup()
	for _, p := range s.planets {
		p.Cleanup()
	}
	s.log.Debug().Msg("solar system released")
}
