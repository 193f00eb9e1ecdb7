package orbit

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestOffsetZeroInclinationStaysInPlane(t *testing.T) {
	for i := 0; i < 360; i += 15 {
		theta := DegToRad(float64(i))
		p := Offset(theta, 130, 0)
		if p.Z != 0 {
			t.Errorf("theta=%d: expected z=0, got %f", i, p.Z)
		}
		if math.Abs(p.Length()-130) > 1e-9 {
			t.Errorf("theta=%d: expected radius 130, got %f", i, p.Length())
		}
	}
}

func TestOffsetProjectsToEllipse(t *testing.T) {
	r, incl := 100.0, DegToRad(30)
	minor := r * math.Cos(incl)
	for i := 0; i < 100; i++ {
		p := Offset(TwoPi*float64(i)/100, r, incl)
		// (x/a)^2 + (y/b)^2 == 1 on the XY projection.
		v := (p.X*p.X)/(r*r) + (p.Y*p.Y)/(minor*minor)
		if math.Abs(v-1) > 1e-9 {
			t.Fatalf("sample %d off the ellipse: %f", i, v)
		}
	}
}

func TestAdvanceModuloProperty(t *testing.T) {
	tests := []struct {
		name       string
		theta0     float64
		period     float64
		timeFactor float64
		steps      int
	}{
		{"mercury", 0, 88, 1, 500},
		{"neptune", 1.2, 60190, 3, 1000},
		{"fast moon", 0.3, 30, 2.5, 77},
		{"slow", 6.2, 365, 0.05, 10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			angle := tt.theta0
			for i := 0; i < tt.steps; i++ {
				angle = Advance(angle, tt.period, tt.timeFactor)
				if angle < 0 || angle >= TwoPi {
					t.Fatalf("step %d: angle %f out of [0, 2pi)", i, angle)
				}
			}
			want := math.Mod(tt.theta0+float64(tt.steps)*tt.timeFactor*TwoPi/tt.period, TwoPi)
			diff := math.Abs(angle - want)
			if diff > 1e-6 && math.Abs(diff-TwoPi) > 1e-6 {
				t.Errorf("expected angle %f, got %f", want, angle)
			}
		})
	}
}

func TestAdvanceLargeStepStillWraps(t *testing.T) {
	angle := Advance(0, 1, 3.25)
	if angle < 0 || angle >= TwoPi {
		t.Fatalf("angle %f out of range", angle)
	}
	if math.Abs(angle-0.25*TwoPi) > 1e-9 {
		t.Errorf("expected quarter turn, got %f", angle)
	}
}

func TestMercuryFirstStep(t *testing.T) {
	el := NewElements(70, 88, 7)

	p := el.At(0)
	if p != (Vec3{X: 70}) {
		t.Errorf("expected (70,0,0), got %+v", p)
	}

	angle := Advance(0, el.Period, 1)
	if math.Abs(angle-0.0714) > 1e-4 {
		t.Errorf("expected angle ~0.0714, got %f", angle)
	}
	p = el.At(angle)
	if math.Abs(p.X-69.82) > 0.01 {
		t.Errorf("expected x ~69.82, got %f", p.X)
	}
	if math.Abs(p.Y-4.96) > 0.01 {
		t.Errorf("expected y ~4.96, got %f", p.Y)
	}
	if math.Abs(p.Z-0.61) > 0.01 {
		t.Errorf("expected z ~0.61, got %f", p.Z)
	}
}

func TestElementsValidate(t *testing.T) {
	tests := []struct {
		name string
		el   Elements
		want error
	}{
		{"ok", NewElements(70, 88, 7), nil},
		{"zero distance", NewElements(0, 88, 0), ErrDistance},
		{"negative period", NewElements(10, -1, 0), ErrPeriod},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.el.Validate(); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestDegToRad(t *testing.T) {
	if math.Abs(DegToRad(180)-math.Pi) > eps {
		t.Errorf("expected pi, got %v", DegToRad(180))
	}
}
