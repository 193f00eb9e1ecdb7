package viz

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/orrery/internal/celestial"
	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/solar"
)

type rotation struct{ pitch, yaw float64 }

// TermRenderer draws the scene onto a braille Canvas. Spheres become shaded
// discs and line loops become Bresenham polylines. A per-dot depth buffer
// keeps nearer bodies in front regardless of draw order.
type TermRenderer struct {
	canvas *Canvas
	cam    *Camera
	depth  []float64

	rot    []rotation
	meshes map[celestial.Mesh]float64
	next   celestial.Mesh

	light    celestial.Light
	hasLight bool
}

func NewTermRenderer(w, h int) *TermRenderer {
	t := &TermRenderer{
		canvas: NewCanvas(w, h),
		cam:    CameraFor(solar.DefaultState()),
		meshes: make(map[celestial.Mesh]float64),
	}
	t.depth = make([]float64, t.canvas.PixelWidth()*t.canvas.PixelHeight())
	t.clearDepth()
	return t
}

func (t *TermRenderer) Canvas() *Canvas { return t.canvas }
func (t *TermRenderer) Camera() *Camera { return t.cam }

// Resize replaces the canvas. Loaded meshes are kept.
func (t *TermRenderer) Resize(w, h int) {
	if w == t.canvas.Width && h == t.canvas.Height {
		return
	}
	t.canvas = NewCanvas(w, h)
	t.depth = make([]float64, t.canvas.PixelWidth()*t.canvas.PixelHeight())
	t.clearDepth()
}

// BeginFrame clears the canvas and points the camera for st.
func (t *TermRenderer) BeginFrame(st solar.SimulationState) {
	t.canvas.Clear()
	t.clearDepth()
	t.cam = CameraFor(st)
	t.rot = t.rot[:0]
	t.hasLight = false
}

func (t *TermRenderer) clearDepth() {
	for i := range t.depth {
		t.depth[i] = math.Inf(1)
	}
}

// Live returns the number of loaded meshes.
func (t *TermRenderer) Live() int { return len(t.meshes) }

func (t *TermRenderer) LoadSphere(radius float64) celestial.Mesh {
	t.next++
	t.meshes[t.next] = radius
	return t.next
}

func (t *TermRenderer) UnloadSphere(m celestial.Mesh) { delete(t.meshes, m) }

func (t *TermRenderer) SetLight(l celestial.Light) {
	t.light = l
	t.light.Position = t.transform(l.Position)
	t.hasLight = true
}

func (t *TermRenderer) PushRotation(pitchDeg, yawDeg float64) {
	t.rot = append(t.rot, rotation{pitchDeg, yawDeg})
}

func (t *TermRenderer) PopRotation() {
	if len(t.rot) > 0 {
		t.rot = t.rot[:len(t.rot)-1]
	}
}

// transform applies the rotation stack, innermost first.
func (t *TermRenderer) transform(p orbit.Vec3) orbit.Vec3 {
	for i := len(t.rot) - 1; i >= 0; i-- {
		p = orbit.ViewRotate(p, t.rot[i].pitch, t.rot[i].yaw)
	}
	return p
}

func (t *TermRenderer) plot(x, y int, d float64, hex string) {
	w, h := t.canvas.PixelWidth(), t.canvas.PixelHeight()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	idx := y*w + x
	if d >= t.depth[idx] {
		return
	}
	t.depth[idx] = d
	t.canvas.SetColor(x, y, hex)
}

func (t *TermRenderer) DrawSphere(m celestial.Mesh, pos orbit.Vec3, mat celestial.Material) {
	radius, ok := t.meshes[m]
	if !ok {
		return
	}
	p := t.transform(pos)
	w, h := t.canvas.PixelWidth(), t.canvas.PixelHeight()
	cx, cy, d, visible := t.cam.Project(p, w, h)
	if !visible {
		return
	}

	hex := Shade(mat, p, t.cam.Eye, t.light, t.hasLight)
	r := int(math.Round(t.cam.ScreenRadius(radius, d, h)))
	disc(cx, cy, r, func(x, y int) { t.plot(x, y, d, hex) })
}

func (t *TermRenderer) DrawLineLoop(pts []orbit.Vec3, c celestial.Color) {
	if len(pts) < 2 {
		return
	}
	hex := ColorHex(c)
	w, h := t.canvas.PixelWidth(), t.canvas.PixelHeight()

	type dot struct {
		x, y int
		d    float64
		ok   bool
	}
	proj := make([]dot, len(pts))
	for i, p := range pts {
		x, y, d, ok := t.cam.Project(t.transform(p), w, h)
		proj[i] = dot{x, y, d, ok}
	}

	for i := range proj {
		a, b := proj[i], proj[(i+1)%len(proj)]
		if !a.ok || !b.ok {
			continue
		}
		d := (a.d + b.d) / 2
		line(a.x, a.y, b.x, b.y, func(x, y int) { t.plot(x, y, d, hex) })
	}
}

// ColorHex converts a scene color to a "#rrggbb" string.
func ColorHex(c celestial.Color) string {
	r, g, b := c.Unit()
	return colorful.Color{R: r, G: g, B: b}.Hex()
}

// Shade returns the hex color of a sphere at pos as seen from eye.
func Shade(mat celestial.Material, pos, eye orbit.Vec3, light celestial.Light, lit bool) string {
	return ShadeColor(mat, pos, eye, light, lit).Hex()
}

// ShadeColor darkens a material toward black by how much of the hemisphere
// visible from eye faces away from the light. Emissive materials keep their
// full color; without a light only the ambient term remains.
func ShadeColor(mat celestial.Material, pos, eye orbit.Vec3, light celestial.Light, lit bool) colorful.Color {
	r, g, b := mat.Color.Unit()
	base := colorful.Color{R: r, G: g, B: b}
	if mat.Emissive {
		return base
	}
	if !lit {
		return base.BlendLab(colorful.Color{}, 1-mat.Ambient).Clamped()
	}

	toLight := light.Position.Sub(pos).Normalize()
	toEye := eye.Sub(pos).Normalize()
	diffuse := (toLight.Dot(toEye) + 1) / 2
	intensity := mat.Ambient + (1-mat.Ambient)*diffuse
	if intensity > 1 {
		intensity = 1
	}
	return base.BlendLab(colorful.Color{}, 1-intensity).Clamped()
}
