package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/orrery/internal/celestial"
	"github.com/san-kum/orrery/internal/solar"
)

func newSystem(t *testing.T) *solar.SolarSystem {
	t.Helper()
	sys := solar.New(celestial.NewNopRenderer())
	t.Cleanup(sys.Cleanup)
	return sys
}

func TestRevolutions(t *testing.T) {
	sys := newSystem(t)
	if err := sys.SetTimeFactor(8.8); err != nil {
		t.Fatal(err)
	}
	m := NewRevolutions("Mercury")

	// Mercury has period 88, so 25 frames at 8.8 is 2.5 orbits.
	for i := 0; i < 25; i++ {
		sys.Update()
		m.Observe(sys.Frames(), sys)
	}

	if math.Abs(m.Value()-2.5) > 1e-9 {
		t.Errorf("expected 2.5 revolutions, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestRevolutionsUnknownPlanet(t *testing.T) {
	sys := newSystem(t)
	m := NewRevolutions("Pluto")
	sys.Update()
	m.Observe(1, sys)
	if m.Value() != 0 {
		t.Errorf("expected 0 for unknown planet, got %f", m.Value())
	}
}

func TestAllRevolutions(t *testing.T) {
	sys := newSystem(t)
	all := AllRevolutions(sys)
	if len(all) != 8 {
		t.Fatalf("expected 8 metrics, got %d", len(all))
	}
	if all[2].Name() != "revolutions_Earth" {
		t.Errorf("unexpected name %q", all[2].Name())
	}
}

func TestMoonSync(t *testing.T) {
	sys := newSystem(t)
	sys.AddMoon(2)
	sys.AddMoon(2)
	sys.AddMoon(5)
	m := NewMoonSync()

	for i := 0; i < 100; i++ {
		sys.Update()
		m.Observe(sys.Frames(), sys)
	}

	if m.Value() > 1e-9 {
		t.Errorf("moons drifted from their parents by %g", m.Value())
	}
	if m.samples != 300 {
		t.Errorf("expected 300 moon samples, got %d", m.samples)
	}
}

func TestPlaneStability(t *testing.T) {
	sys := newSystem(t)
	m := NewPlaneStability(1e-9)

	if m.Value() != 1.0 {
		t.Error("expected full stability before any samples")
	}

	for i := 0; i < 50; i++ {
		sys.Update()
		m.Observe(sys.Frames(), sys)
	}

	if m.Value() != 1.0 {
		t.Errorf("expected every planet in its plane, got %f", m.Value())
	}
}
