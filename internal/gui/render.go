package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/orrery/internal/celestial"
	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/viz"
)

// SphereSlices is the ring and slice count of generated sphere meshes.
const SphereSlices = 32

type rotation struct{ pitch, yaw float64 }

// Renderer draws the scene with raylib. It must be created after the
// window, and every mesh must be unloaded before the window closes.
//
// raylib's default shader is unlit, so sphere colors are shaded on the CPU
// from the light position and the camera eye.
type Renderer struct {
	models map[celestial.Mesh]rl.Model
	next   celestial.Mesh

	rot      []rotation
	eye      orbit.Vec3
	light    celestial.Light
	hasLight bool
}

func NewRenderer() *Renderer {
	return &Renderer{models: make(map[celestial.Mesh]rl.Model)}
}

// SetEye records the camera position used for shading.
func (r *Renderer) SetEye(eye orbit.Vec3) { r.eye = eye }

func (r *Renderer) Live() int { return len(r.models) }

func (r *Renderer) LoadSphere(radius float64) celestial.Mesh {
	mesh := rl.GenMeshSphere(float32(radius), SphereSlices, SphereSlices)
	r.next++
	r.models[r.next] = rl.LoadModelFromMesh(mesh)
	return r.next
}

func (r *Renderer) UnloadSphere(m celestial.Mesh) {
	model, ok := r.models[m]
	if !ok {
		return
	}
	rl.UnloadModel(model)
	delete(r.models, m)
}

func (r *Renderer) SetLight(l celestial.Light) {
	r.light = l
	r.light.Position = r.transform(l.Position)
	r.hasLight = true
}

func (r *Renderer) PushRotation(pitchDeg, yawDeg float64) {
	r.rot = append(r.rot, rotation{pitchDeg, yawDeg})
	rl.PushMatrix()
	rl.Rotatef(float32(pitchDeg), 1, 0, 0)
	rl.Rotatef(float32(yawDeg), 0, 1, 0)
}

func (r *Renderer) PopRotation() {
	if len(r.rot) == 0 {
		return
	}
	r.rot = r.rot[:len(r.rot)-1]
	rl.PopMatrix()
}

// transform mirrors the rlgl matrix stack for shading.
func (r *Renderer) transform(p orbit.Vec3) orbit.Vec3 {
	for i := len(r.rot) - 1; i >= 0; i-- {
		p = orbit.ViewRotate(p, r.rot[i].pitch, r.rot[i].yaw)
	}
	return p
}

func (r *Renderer) DrawSphere(m celestial.Mesh, pos orbit.Vec3, mat celestial.Material) {
	model, ok := r.models[m]
	if !ok {
		return
	}
	c := viz.ShadeColor(mat, r.transform(pos), r.eye, r.light, r.hasLight)
	rl.DrawModel(model, vec(pos), 1, colorfulToRL(c.RGB255()))
}

func (r *Renderer) DrawLineLoop(pts []orbit.Vec3, c celestial.Color) {
	if len(pts) < 2 {
		return
	}
	col := toRL(c)
	for i := range pts {
		rl.DrawLine3D(vec(pts[i]), vec(pts[(i+1)%len(pts)]), col)
	}
}

func vec(p orbit.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(p.X), float32(p.Y), float32(p.Z))
}

func toRL(c celestial.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}

func colorfulToRL(r, g, b uint8) rl.Color {
	return rl.NewColor(r, g, b, 255)
}
