package metrics

import (
	"math"

	"github.com/san-kum/orrery/internal/solar"
)

// PlaneStability is the fraction of frames in which every planet lies
// within threshold of its inclined orbital plane.
type PlaneStability struct {
	name       string
	threshold  float64
	violations int
	samples    int
}

func NewPlaneStability(threshold float64) *PlaneStability {
	return &PlaneStability{
		name:      "plane_stability",
		threshold: threshold,
	}
}

func (s *PlaneStability) Name() string { return s.name }

func (s *PlaneStability) Observe(_ int, sys *solar.SolarSystem) {
	s.samples++
	for _, p := range sys.Planets() {
		pos := p.Position()
		si, ci := math.Sincos(p.Elements().Inclination)
		if math.Abs(pos.Y*si-pos.Z*ci) > s.threshold {
			s.violations++
			break
		}
	}
}

func (s *PlaneStability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *PlaneStability) Reset() {
	s.violations = 0
	s.samples = 0
}
