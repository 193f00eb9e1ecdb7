package celestial

import "github.com/san-kum/orrery/internal/orbit"

const SunRadius = 30.0

var (
	SunColor = Color{255, 255, 0}

	// SunLight is the scene's only light, placed at the sun's center.
	SunLight = Light{
		Ambient:  0.2,
		Diffuse:  Color{255, 255, 204},
		Specular: 1.0,
	}
)

// Sun is the fixed, self-luminous center of the system.
type Sun struct {
	body
}

func NewSun(r Renderer, radius float64) *Sun {
	return &Sun{body: newBody(r, "Sun", radius, SunColor)}
}

// Update is a no-op: the sun never moves.
func (s *Sun) Update(timeFactor float64) {}

// Render registers the light at the origin and draws the sun unlit.
func (s *Sun) Render() {
	light := SunLight
	light.Position = orbit.Vec3{}
	s.r.SetLight(light)
	if s.mesh == NoMesh {
		return
	}
	s.r.DrawSphere(s.mesh, s.pos, Material{
		Color:     s.color,
		Ambient:   1.0,
		Specular:  1.0,
		Shininess: 100,
		Emissive:  true,
	})
}
