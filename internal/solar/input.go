package solar

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Key identifies a key the orrery reacts to, independent of the input
// backend.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPlus
	KeyMinus
	KeyBracketLeft
	KeyBracketRight
	KeyZ
	KeyX
	KeyR
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyPlus:
		return "+"
	case KeyMinus:
		return "-"
	case KeyBracketLeft:
		return "["
	case KeyBracketRight:
		return "]"
	case KeyZ:
		return "z"
	case KeyX:
		return "x"
	case KeyR:
		return "r"
	default:
		return "none"
	}
}

// MouseButton identifies a mouse button.
type MouseButton int

const (
	ButtonLeft MouseButton = iota
	ButtonRight
	ButtonMiddle
)

// EventKind categorizes discrete input events.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventMouseDown
	EventMouseUp
	EventMouseMotion
	EventMouseWheel
)

// Event is a discrete input event delivered by the dispatch backend.
type Event struct {
	Kind   EventKind
	Key    Key
	Button MouseButton
	X, Y   float64 // pointer position for mouse events
	Wheel  float64 // positive scrolls up
}

// KeyState reports which keys are currently held.
type KeyState interface {
	IsKeyDown(k Key) bool
}

// KeySet is a KeyState backed by a set.
type KeySet map[Key]bool

func (ks KeySet) IsKeyDown(k Key) bool { return ks[k] }

// Per-frame and per-event control rates.
const (
	SpeedUpRate   = 1.05
	SlowDownRate  = 0.95
	WheelZoomIn   = 1.1
	WheelZoomOut  = 0.9
	HeldZoomRate  = 1.02
	SpeedStepRate = 2.0
)

// ControlPanel translates input into mutations of a SolarSystem. It keeps
// the planet selection and the drag state between events.
type ControlPanel struct {
	sys          *SolarSystem
	selected     int
	dragging     bool
	lastX, lastY float64
	needsRefresh bool
	log          zerolog.Logger
}

func NewControlPanel(sys *SolarSystem, log zerolog.Logger) *ControlPanel {
	return &ControlPanel{sys: sys, log: log}
}

func (c *ControlPanel) Selected() int        { return c.selected }
func (c *ControlPanel) SelectedName() string { return c.sys.PlanetName(c.selected) }
func (c *ControlPanel) Dragging() bool       { return c.dragging }

// Select moves the selection to index, wrapping around the planet count.
func (c *ControlPanel) Select(index int) {
	n := c.sys.PlanetCount()
	if n == 0 {
		return
	}
	c.selected = ((index % n) + n) % n
}

// HandleEvent reacts to one discrete event.
func (c *ControlPanel) HandleEvent(e Event) {
	switch e.Kind {
	case EventKeyDown:
		switch e.Key {
		case KeyLeft:
			c.Select(c.selected - 1)
		case KeyRight:
			c.Select(c.selected + 1)
		case KeyUp:
			c.sys.AddMoon(c.selected)
		case KeyDown:
			c.sys.RemoveMoon(c.selected)
		case KeyBracketRight:
			c.sys.State().ScaleTimeFactor(SpeedStepRate)
			c.log.Debug().Float64("time_factor", c.sys.TimeFactor()).Msg("speed doubled")
		case KeyBracketLeft:
			c.sys.State().ScaleTimeFactor(1 / SpeedStepRate)
			c.log.Debug().Float64("time_factor", c.sys.TimeFactor()).Msg("speed halved")
		}
	case EventMouseDown:
		if e.Button == ButtonLeft {
			c.dragging = true
			c.lastX, c.lastY = e.X, e.Y
		}
	case EventMouseUp:
		if e.Button == ButtonLeft {
			c.dragging = false
		}
	case EventMouseMotion:
		if !c.dragging {
			return
		}
		c.sys.RotateView(e.X-c.lastX, e.Y-c.lastY)
		c.lastX, c.lastY = e.X, e.Y
	case EventMouseWheel:
		switch {
		case e.Wheel > 0:
			c.sys.State().ZoomBy(WheelZoomIn)
		case e.Wheel < 0:
			c.sys.State().ZoomBy(WheelZoomOut)
		}
	}
}

// HandleUserInput applies held keys; it is called once per frame.
func (c *ControlPanel) HandleUserInput(keys KeyState) {
	st := c.sys.State()
	if keys.IsKeyDown(KeyPlus) {
		st.ScaleTimeFactor(SpeedUpRate)
	}
	if keys.IsKeyDown(KeyMinus) {
		st.ScaleTimeFactor(SlowDownRate)
	}
	if keys.IsKeyDown(KeyZ) {
		st.ZoomBy(HeldZoomRate)
	}
	if keys.IsKeyDown(KeyX) {
		st.ZoomBy(1 / HeldZoomRate)
	}
	if keys.IsKeyDown(KeyR) {
		st.ResetRotation()
	}
}

// UpdateMoons sets the moon count of the named planet. It reports false
// when no planet has that name.
func (c *ControlPanel) UpdateMoons(name string, n int) bool {
	p := c.sys.Planet(name)
	if p == nil {
		return false
	}
	p.SetNumberOfMoons(n)
	c.RefreshDisplay()
	return true
}

// RefreshDisplay flags the HUD for redraw and logs the selected planet.
func (c *ControlPanel) RefreshDisplay() {
	c.needsRefresh = true
	if c.selected >= 0 && c.selected < c.sys.PlanetCount() {
		c.log.Info().
			Str("planet", c.SelectedName()).
			Int("moons", c.sys.MoonCount(c.selected)).
			Msg("planet updated")
	}
}

// ConsumeRefresh reports whether a refresh was requested and clears the
// flag.
func (c *ControlPanel) ConsumeRefresh() bool {
	r := c.needsRefresh
	c.needsRefresh = false
	return r
}

// Instructions returns the HUD lines for the current state.
func (c *ControlPanel) Instructions() []string {
	lines := []string{
		"left/right: select planet",
		"up: add moon",
		"down: remove moon",
		"drag: rotate view   wheel, z/x: zoom   r: reset view",
		"+/-: speed   [ ]: halve/double speed",
		fmt.Sprintf("selected planet: %s", c.SelectedName()),
		fmt.Sprintf("moons: %d", c.sys.MoonCount(c.selected)),
	}
	if e, ok := LookupCatalog(c.SelectedName()); ok {
		lines = append(lines, fmt.Sprintf("known moons: %d   size: %.3f earth", e.Moons, e.Size))
	}
	st := c.sys.State()
	lines = append(lines,
		fmt.Sprintf("speed: %.2fx", st.TimeFactor),
		fmt.Sprintf("zoom: %.1fx", st.Zoom),
	)
	return lines
}
