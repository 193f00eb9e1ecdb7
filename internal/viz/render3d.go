package viz

import (
	"math"

	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/solar"
)

const (
	DefaultFOV = math.Pi / 4
	nearPlane  = 0.1
)

// Camera is a look-at perspective camera projecting scene space onto a dot
// grid.
type Camera struct {
	Eye, Target, Up orbit.Vec3
	FOV             float64

	right, up, forward orbit.Vec3
}

func NewCamera(eye, target, up orbit.Vec3) *Camera {
	c := &Camera{Eye: eye, Target: target, Up: up, FOV: DefaultFOV}
	c.basis()
	return c
}

// CameraFor builds the camera implied by a simulation state's zoom.
func CameraFor(st solar.SimulationState) *Camera {
	return NewCamera(st.CameraPose())
}

func (c *Camera) basis() {
	c.forward = c.Target.Sub(c.Eye).Normalize()
	c.right = c.forward.Cross(c.Up).Normalize()
	c.up = c.right.Cross(c.forward)
}

// focal returns dots per unit at unit depth for a screen sh dots tall.
func (c *Camera) focal(sh int) float64 {
	return float64(sh) / 2 / math.Tan(c.FOV/2)
}

// Project converts a scene point to screen dots. It returns x, y, depth
// along the view axis and whether the point lies in front of the camera.
func (c *Camera) Project(p orbit.Vec3, sw, sh int) (int, int, float64, bool) {
	rel := p.Sub(c.Eye)
	depth := rel.Dot(c.forward)
	if depth <= nearPlane {
		return 0, 0, depth, false
	}
	f := c.focal(sh) / depth
	sx := int(math.Round(rel.Dot(c.right)*f)) + sw/2
	sy := int(math.Round(-rel.Dot(c.up)*f)) + sh/2
	return sx, sy, depth, true
}

// ScreenRadius returns the projected radius in dots of a sphere at depth.
func (c *Camera) ScreenRadius(radius, depth float64, sh int) float64 {
	if depth <= nearPlane {
		return 0
	}
	return radius * c.focal(sh) / depth
}
