package orbit

import (
	"math"
	"testing"
)

func near(a, b Vec3) bool {
	return a.Dist(b) < 1e-9
}

func TestVecRotate(t *testing.T) {
	cases := []struct {
		name string
		got  Vec3
		want Vec3
	}{
		{"x90 y->z", Vec3{0, 1, 0}.RotateX(90), Vec3{0, 0, 1}},
		{"y90 z->x", Vec3{0, 0, 1}.RotateY(90), Vec3{1, 0, 0}},
		{"y90 x->-z", Vec3{1, 0, 0}.RotateY(90), Vec3{0, 0, -1}},
		{"x0 identity", Vec3{3, 4, 5}.RotateX(0), Vec3{3, 4, 5}},
		{"view yaw first", ViewRotate(Vec3{1, 0, 0}, 90, 90), Vec3{0, 1, 0}},
	}
	for _, tc := range cases {
		if !near(tc.got, tc.want) {
			t.Errorf("%s: got %+v, want %+v", tc.name, tc.got, tc.want)
		}
	}
}

func TestVecRotatePreservesLength(t *testing.T) {
	v := Vec3{130, -4, 7}
	r := ViewRotate(v, 33, -217)
	if math.Abs(r.Length()-v.Length()) > 1e-9 {
		t.Errorf("rotation changed length: %v -> %v", v.Length(), r.Length())
	}
}

func TestVecCrossNormalize(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	if !near(x.Cross(y), Vec3{0, 0, 1}) {
		t.Errorf("x cross y = %+v", x.Cross(y))
	}
	if x.Dot(y) != 0 {
		t.Error("expected orthogonal")
	}
	if n := (Vec3{0, 3, 4}).Normalize(); math.Abs(n.Length()-1) > 1e-12 {
		t.Errorf("normalize length %v", n.Length())
	}
	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Error("zero vector should normalize to zero")
	}
}
