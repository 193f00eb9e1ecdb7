package orbit

import "math"

// RingSamples is the number of vertices in an orbit ring.
const RingSamples = 100

// RingTable holds precomputed unit-circle samples. Every orbit ring in a
// frame shares the same angles, so the trig is done once.
type RingTable struct {
	sin []float64
	cos []float64
	n   int
}

// DefaultRingTable is shared by all renderers.
var DefaultRingTable = NewRingTable(RingSamples)

// NewRingTable precomputes n uniformly spaced samples of the unit circle.
func NewRingTable(n int) *RingTable {
	t := &RingTable{
		sin: make([]float64, n),
		cos: make([]float64, n),
		n:   n,
	}
	for i := 0; i < n; i++ {
		angle := TwoPi * float64(i) / float64(n)
		t.sin[i] = math.Sin(angle)
		t.cos[i] = math.Cos(angle)
	}
	return t
}

// Len returns the number of samples.
func (t *RingTable) Len() int { return t.n }

// Ring returns a closed loop of points on a circle of radius r tilted into
// the inclined plane. The tilt is a rotation about the X axis, which yields
// the same points as Offset at the sampled phases. The last point does not
// repeat the first; callers draw it as a loop.
func (t *RingTable) Ring(r, incl float64) []Vec3 {
	si, ci := math.Sincos(incl)
	pts := make([]Vec3, t.n)
	for i := 0; i < t.n; i++ {
		x := r * t.cos[i]
		y := r * t.sin[i]
		pts[i] = Vec3{X: x, Y: y * ci, Z: y * si}
	}
	return pts
}

// Ring samples an orbit ring from the default table.
func Ring(r, incl float64) []Vec3 {
	return DefaultRingTable.Ring(r, incl)
}
