package celestial

import "github.com/san-kum/orrery/internal/orbit"

// Body is the capability set shared by every celestial body.
type Body interface {
	Name() string
	Position() orbit.Vec3
	Render()
	Cleanup()
}

// body is the record embedded by Sun, Planet and Moon.
type body struct {
	name   string
	radius float64
	color  Color
	pos    orbit.Vec3
	mesh   Mesh
	r      Renderer
}

func newBody(r Renderer, name string, radius float64, color Color) body {
	return body{
		name:   name,
		radius: radius,
		color:  color,
		mesh:   r.LoadSphere(radius),
		r:      r,
	}
}

func (b *body) Name() string         { return b.name }
func (b *body) Radius() float64      { return b.radius }
func (b *body) Color() Color         { return b.color }
func (b *body) Position() orbit.Vec3 { return b.pos }

// Mesh returns the body's geometry handle, NoMesh once cleaned up.
func (b *body) Mesh() Mesh { return b.mesh }

func (b *body) material() Material {
	return Material{
		Color:     b.color,
		Ambient:   0.2,
		Specular:  1.0,
		Shininess: 50,
	}
}

// Render draws the body as a shaded sphere at its current position.
func (b *body) Render() {
	if b.mesh == NoMesh {
		return
	}
	b.r.DrawSphere(b.mesh, b.pos, b.material())
}

// Cleanup releases the mesh. Further calls are no-ops.
func (b *body) Cleanup() {
	if b.mesh == NoMesh {
		return
	}
	b.r.UnloadSphere(b.mesh)
	b.mesh = NoMesh
}
