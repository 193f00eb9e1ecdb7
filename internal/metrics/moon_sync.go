package metrics

import (
	"math"

	"github.com/san-kum/orrery/internal/solar"
)

// MoonSync tracks the worst disagreement between a moon's distance from its
// planet and its orbital radius. A moon that lags a frame behind its parent
// shows up here as a nonzero value.
type MoonSync struct {
	name     string
	maxError float64
	samples  int
}

func NewMoonSync() *MoonSync {
	return &MoonSync{name: "moon_sync"}
}

func (m *MoonSync) Name() string { return m.name }

func (m *MoonSync) Observe(_ int, sys *solar.SolarSystem) {
	for _, p := range sys.Planets() {
		parent := p.Position()
		for _, moon := range p.Moons() {
			d := moon.Position().Dist(parent)
			if err := math.Abs(d - moon.Elements().Distance); err > m.maxError {
				m.maxError = err
			}
			m.samples++
		}
	}
}

func (m *MoonSync) Value() float64 { return m.maxError }

func (m *MoonSync) Reset() {
	m.maxError = 0
	m.samples = 0
}
