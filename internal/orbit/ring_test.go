package orbit

import (
	"math"
	"testing"
)

func TestRingMatchesOffset(t *testing.T) {
	incl := DegToRad(3.4)
	pts := Ring(100, incl)
	if len(pts) != RingSamples {
		t.Fatalf("expected %d points, got %d", RingSamples, len(pts))
	}
	for i, p := range pts {
		want := Offset(TwoPi*float64(i)/RingSamples, 100, incl)
		if p.Dist(want) > 1e-9 {
			t.Errorf("sample %d: expected %+v, got %+v", i, want, p)
		}
	}
}

func TestRingIsOpenLoop(t *testing.T) {
	pts := NewRingTable(8).Ring(1, 0)
	if pts[0].Dist(pts[len(pts)-1]) < 1e-6 {
		t.Error("last sample should not repeat the first")
	}
	if math.Abs(pts[2].Y-1) > 1e-9 {
		t.Errorf("expected quarter sample at y=1, got %f", pts[2].Y)
	}
}
