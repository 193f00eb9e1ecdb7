package tui

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/solar"
)

const (
	liveWidth   = 70
	liveHeight  = 24
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer prints a top-down character map of the system while a
// headless run progresses. It implements sim.Observer.
type LiveRenderer struct {
	out       io.Writer
	frameRate int
	lastFrame time.Time
	extent    float64
	canvas    [][]rune
}

// NewLiveRenderer writes at most frameRate frames per second to out; a
// frameRate of zero or less draws every frame.
func NewLiveRenderer(out io.Writer, frameRate int, extent float64) *LiveRenderer {
	canvas := make([][]rune, liveHeight)
	for i := range canvas {
		canvas[i] = make([]rune, liveWidth)
	}
	if extent <= 0 {
		extent = 400
	}
	return &LiveRenderer{
		out:       out,
		frameRate: frameRate,
		extent:    extent,
		canvas:    canvas,
	}
}

func (r *LiveRenderer) OnFrame(frame int, sys *solar.SolarSystem) {
	if r.frameRate > 0 {
		if time.Since(r.lastFrame) < time.Second/time.Duration(r.frameRate) {
			return
		}
		r.lastFrame = time.Now()
	}

	r.draw(sys)
	r.render(frame, sys)
}

// project maps scene XY onto the grid. Cells are about twice as tall as
// wide, so y is halved.
func (r *LiveRenderer) project(p orbit.Vec3) (int, int) {
	x := int(math.Round(p.X/r.extent*float64(liveWidth/2))) + liveWidth/2
	y := int(math.Round(-p.Y/r.extent*float64(liveHeight/2))) + liveHeight/2
	return x, y
}

func (r *LiveRenderer) clear() {
	for y := range r.canvas {
		for x := range r.canvas[y] {
			r.canvas[y][x] = ' '
		}
	}
}

func (r *LiveRenderer) set(x, y int, c rune) {
	if x >= 0 && x < liveWidth && y >= 0 && y < liveHeight {
		r.canvas[y][x] = c
	}
}

func (r *LiveRenderer) draw(sys *solar.SolarSystem) {
	r.clear()

	for _, p := range sys.Planets() {
		e := p.Elements()
		for _, pt := range orbit.Ring(e.Distance, e.Inclination) {
			x, y := r.project(pt)
			r.set(x, y, '·')
		}
	}

	x, y := r.project(orbit.Vec3{})
	r.set(x, y, '@')

	for _, p := range sys.Planets() {
		for _, m := range p.Moons() {
			mx, my := r.project(m.Position())
			r.set(mx, my, '.')
		}
		px, py := r.project(p.Position())
		r.set(px, py, []rune(p.Name())[0])
	}
}

func (r *LiveRenderer) render(frame int, sys *solar.SolarSystem) {
	var b strings.Builder
	b.WriteString(clearScreen)
	fmt.Fprintf(&b, "  frame %d  t=%.1f  speed=%.2fx\n", frame, sys.Elapsed(), sys.TimeFactor())
	b.WriteString("  " + strings.Repeat("-", liveWidth) + "\n")

	for _, row := range r.canvas {
		b.WriteString("  ")
		b.WriteString(string(row))
		b.WriteString("\n")
	}

	b.WriteString("  " + strings.Repeat("-", liveWidth) + "\n")
	fmt.Fprint(r.out, b.String())
}

func (r *LiveRenderer) Start() { fmt.Fprint(r.out, hideCursor) }
func (r *LiveRenderer) Stop()  { fmt.Fprint(r.out, showCursor) }
