package orbit

import "math"

// Vec3 is a point or offset in scene-space units.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Length() float64      { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Dist returns the euclidean distance between two points.
func (v Vec3) Dist(o Vec3) float64 { return v.Sub(o).Length() }

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{v.Y*o.Z - v.Z*o.Y, v.Z*o.X - v.X*o.Z, v.X*o.Y - v.Y*o.X}
}

func (v Vec3) Normalize() Vec3 {
	if l := v.Length(); l != 0 {
		return v.Scale(1 / l)
	}
	return Vec3{}
}

// RotateX rotates v about the X axis by deg degrees, counter-clockwise
// looking down the axis toward the origin.
func (v Vec3) RotateX(deg float64) Vec3 {
	s, c := math.Sincos(DegToRad(deg))
	return Vec3{v.X, v.Y*c - v.Z*s, v.Y*s + v.Z*c}
}

// RotateY rotates v about the Y axis by deg degrees.
func (v Vec3) RotateY(deg float64) Vec3 {
	s, c := math.Sincos(DegToRad(deg))
	return Vec3{v.X*c + v.Z*s, v.Y, -v.X*s + v.Z*c}
}

// ViewRotate applies a pitch about X after a yaw about Y, matching a
// rotate-X-then-rotate-Y matrix stack.
func ViewRotate(v Vec3, pitchDeg, yawDeg float64) Vec3 {
	return v.RotateY(yawDeg).RotateX(pitchDeg)
}
