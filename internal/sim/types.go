package sim

import (
	"errors"
	"fmt"

	"github.com/san-kum/orrery/internal/celestial"
	"github.com/san-kum/orrery/internal/solar"
)

var (
	ErrFrames = errors.New("sim: frame count must be positive")
	ErrEvery  = errors.New("sim: sample interval must not be negative")
)

// Observer is notified after every rendered frame.
type Observer interface {
	OnFrame(frame int, sys *solar.SolarSystem)
}

// Metric accumulates a scalar over a run.
type Metric interface {
	Name() string
	Observe(frame int, sys *solar.SolarSystem)
	Value() float64
	Reset()
}

type Config struct {
	Frames int // number of update/render cycles
	Every  int // sample every n frames; 0 means every frame
}

// Sample is the position of one body at one frame.
type Sample struct {
	Frame int
	Time  float64
	Body  string
	X     float64
	Y     float64
	Z     float64
}

type Result struct {
	Samples    []Sample
	Metrics    map[string]float64
	Frames     int
	Elapsed    float64
	TimeFactor float64
}

// BodyLabel names a planet's moon uniquely: "Earth" for the planet itself,
// "Earth/2" for its second moon.
func BodyLabel(planet string, moon int) string {
	if moon == 0 {
		return planet
	}
	return fmt.Sprintf("%s/%d", planet, moon)
}

// Snapshot samples every planet and moon of sys at the current frame.
func Snapshot(sys *solar.SolarSystem) []Sample {
	samples := make([]Sample, 0, sys.PlanetCount())
	add := func(label string, b celestial.Body) {
		p := b.Position()
		samples = append(samples, Sample{
			Frame: sys.Frames(),
			Time:  sys.Elapsed(),
			Body:  label,
			X:     p.X,
			Y:     p.Y,
			Z:     p.Z,
		})
	}
	for _, p := range sys.Planets() {
		add(BodyLabel(p.Name(), 0), p)
		for i, m := range p.Moons() {
			add(BodyLabel(p.Name(), i+1), m)
		}
	}
	return samples
}
