package celestial

import "github.com/san-kum/orrery/internal/orbit"

// Mesh is an opaque handle to sphere geometry owned by a Renderer.
type Mesh uint32

// NoMesh is the zero handle; it marks a released or never-allocated mesh.
const NoMesh Mesh = 0

// Color is an RGB triple with channels in [0, 255].
type Color struct {
	R, G, B uint8
}

// Unit returns the channels scaled to [0, 1].
func (c Color) Unit() (r, g, b float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}

// Scale multiplies every channel by f, saturating at 255.
func (c Color) Scale(f float64) Color {
	ch := func(v uint8) uint8 {
		s := float64(v) * f
		if s > 255 {
			return 255
		}
		if s < 0 {
			return 0
		}
		return uint8(s)
	}
	return Color{ch(c.R), ch(c.G), ch(c.B)}
}

// Material describes how a sphere is shaded.
type Material struct {
	Color     Color
	Ambient   float64 // fraction of Color reflected under ambient light
	Specular  float64
	Shininess float64
	Emissive  bool // self-luminous; ignores the scene light
}

// Light is a point light.
type Light struct {
	Position orbit.Vec3
	Ambient  float64
	Diffuse  Color
	Specular float64
}

// Renderer is the rendering surface the scene graph draws onto. The caller
// owns projection and camera setup; the scene only applies its own view
// rotation and per-body translation on top.
type Renderer interface {
	// LoadSphere allocates geometry for a sphere of the given radius.
	LoadSphere(radius float64) Mesh
	// UnloadSphere releases geometry returned by LoadSphere.
	UnloadSphere(m Mesh)
	DrawSphere(m Mesh, pos orbit.Vec3, mat Material)
	DrawLineLoop(pts []orbit.Vec3, c Color)
	SetLight(l Light)
	// PushRotation applies a view rotation in degrees: pitch about X, then
	// yaw about Y. It stays active until the matching PopRotation.
	PushRotation(pitchDeg, yawDeg float64)
	PopRotation()
}

// NopRenderer draws nothing but keeps mesh bookkeeping, which makes it
// suitable for headless runs.
type NopRenderer struct {
	next Mesh
	live map[Mesh]struct{}
}

func NewNopRenderer() *NopRenderer {
	return &NopRenderer{live: make(map[Mesh]struct{})}
}

func (n *NopRenderer) LoadSphere(radius float64) Mesh {
	n.next++
	n.live[n.next] = struct{}{}
	return n.next
}

func (n *NopRenderer) UnloadSphere(m Mesh) { delete(n.live, m) }

// Live returns the number of allocated meshes not yet released.
func (n *NopRenderer) Live() int { return len(n.live) }

func (n *NopRenderer) DrawSphere(Mesh, orbit.Vec3, Material) {}
func (n *NopRenderer) DrawLineLoop([]orbit.Vec3, Color)      {}
func (n *NopRenderer) SetLight(Light)                        {}
func (n *NopRenderer) PushRotation(float64, float64)         {}
func (n *NopRenderer) PopRotation()                          {}
