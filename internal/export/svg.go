package export

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/orrery/internal/celestial"
	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/sim"
	"github.com/san-kum/orrery/internal/viz"
)

const background = "#0a0a0a"

type shape struct {
	z    float64
	body string
}

type rotation struct{ pitch, yaw float64 }

// SVGRenderer records the scene as an SVG document seen from above, looking
// down the Z axis with an orthographic projection. Shapes are emitted lowest
// first so higher bodies overlap lower ones.
type SVGRenderer struct {
	width, height int
	scale         float64

	rot    []rotation
	meshes map[celestial.Mesh]float64
	next   celestial.Mesh
	shapes []shape
}

// NewSVGRenderer fits a square of half-width extent scene units into the
// image.
func NewSVGRenderer(width, height int, extent float64) *SVGRenderer {
	if extent <= 0 {
		extent = 1
	}
	return &SVGRenderer{
		width:  width,
		height: height,
		scale:  float64(min(width, height)) / 2 / extent,
		meshes: make(map[celestial.Mesh]float64),
	}
}

func (s *SVGRenderer) Live() int { return len(s.meshes) }

func (s *SVGRenderer) LoadSphere(radius float64) celestial.Mesh {
	s.next++
	s.meshes[s.next] = radius
	return s.next
}

func (s *SVGRenderer) UnloadSphere(m celestial.Mesh) { delete(s.meshes, m) }

func (s *SVGRenderer) PushRotation(pitchDeg, yawDeg float64) {
	s.rot = append(s.rot, rotation{pitchDeg, yawDeg})
}

func (s *SVGRenderer) PopRotation() {
	if len(s.rot) > 0 {
		s.rot = s.rot[:len(s.rot)-1]
	}
}

// SetLight is a no-op: the top-down view is flat shaded.
func (s *SVGRenderer) SetLight(celestial.Light) {}

func (s *SVGRenderer) transform(p orbit.Vec3) orbit.Vec3 {
	for i := len(s.rot) - 1; i >= 0; i-- {
		p = orbit.ViewRotate(p, s.rot[i].pitch, s.rot[i].yaw)
	}
	return p
}

func (s *SVGRenderer) project(p orbit.Vec3) (float64, float64) {
	return p.X*s.scale + float64(s.width)/2, -p.Y*s.scale + float64(s.height)/2
}

func (s *SVGRenderer) DrawSphere(m celestial.Mesh, pos orbit.Vec3, mat celestial.Material) {
	radius, ok := s.meshes[m]
	if !ok {
		return
	}
	p := s.transform(pos)
	cx, cy := s.project(p)
	fill := viz.ColorHex(mat.Color)

	var body string
	if mat.Emissive {
		body = fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" filter="url(#glow)"/>`,
			cx, cy, radius*s.scale, fill)
	} else {
		body = fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>`,
			cx, cy, radius*s.scale, fill)
	}
	s.shapes = append(s.shapes, shape{z: p.Z, body: body})
}

func (s *SVGRenderer) DrawLineLoop(pts []orbit.Vec3, c celestial.Color) {
	if len(pts) < 2 {
		return
	}
	var sb strings.Builder
	sumZ := 0.0
	for i, pt := range pts {
		p := s.transform(pt)
		sumZ += p.Z
		x, y := s.project(p)
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
	}
	body := fmt.Sprintf(`<polygon fill="none" stroke="%s" stroke-width="1" points="%s"/>`,
		viz.ColorHex(c), sb.String())
	// rings sit beneath every sphere at the same height
	s.shapes = append(s.shapes, shape{z: sumZ/float64(len(pts)) - 1e-6, body: body})
}

// String returns the recorded scene as a standalone SVG document.
func (s *SVGRenderer) String() string {
	ordered := make([]shape, len(s.shapes))
	copy(ordered, s.shapes)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].z < ordered[j].z })

	var sb strings.Builder
	writeHeader(&sb, s.width, s.height)
	sb.WriteString(`<defs><filter id="glow"><feGaussianBlur stdDeviation="3" result="b"/>` +
		`<feMerge><feMergeNode in="b"/><feMergeNode in="SourceGraphic"/></feMerge></filter></defs>` + "\n")
	for _, sh := range ordered {
		sb.WriteString(sh.body)
		sb.WriteByte('\n')
	}
	sb.WriteString("</svg>\n")
	return sb.String()
}

func (s *SVGRenderer) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

func writeHeader(sb *strings.Builder, width, height int) {
	fmt.Fprintf(sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background)
}

// CanvasToSVG converts a braille canvas to SVG, one circle per lit dot in
// its cell's color.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := int(float64(canvas.PixelWidth()) * scale)
	height := int(float64(canvas.PixelHeight()) * scale)

	var sb strings.Builder
	writeHeader(&sb, width, height)

	dotRadius := scale * 0.4
	for y := 0; y < canvas.PixelHeight(); y++ {
		for x := 0; x < canvas.PixelWidth(); x++ {
			if !canvas.IsSet(x, y) {
				continue
			}
			fill := canvas.Colors[y/4][x/2]
			if fill == "" {
				fill = "#ffffff"
			}
			fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>`+"\n",
				float64(x)*scale+scale/2, float64(y)*scale+scale/2, dotRadius, fill)
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// TracksToSVG draws each body's sampled path projected onto the XY plane.
// Bodies get evenly spaced hues in sample order.
func TracksToSVG(samples []sim.Sample, width, height int) string {
	if len(samples) == 0 {
		return ""
	}

	order := make([]string, 0)
	tracks := make(map[string][]sim.Sample)
	extent := 0.0
	for _, smp := range samples {
		if _, ok := tracks[smp.Body]; !ok {
			order = append(order, smp.Body)
		}
		tracks[smp.Body] = append(tracks[smp.Body], smp)
		extent = math.Max(extent, math.Max(math.Abs(smp.X), math.Abs(smp.Y)))
	}
	if extent == 0 {
		extent = 1
	}
	scale := float64(min(width, height)) / 2 / (extent * 1.1)

	var sb strings.Builder
	writeHeader(&sb, width, height)

	for i, body := range order {
		pts := tracks[body]
		hue := 360 * float64(i) / float64(len(order))
		stroke := colorful.Hcl(hue, 0.6, 0.7).Clamped().Hex()

		fmt.Fprintf(&sb, `<path fill="none" stroke="%s" stroke-width="1.5" data-body="%s" d="`, stroke, body)
		for j, p := range pts {
			x := p.X*scale + float64(width)/2
			y := -p.Y*scale + float64(height)/2
			if j == 0 {
				fmt.Fprintf(&sb, "M%.1f,%.1f", x, y)
			} else {
				fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
			}
		}
		sb.WriteString(`"/>` + "\n")
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}
