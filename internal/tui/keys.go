package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/orrery/internal/solar"
)

// Terminals report key presses, not key state, so the held-key controls
// are applied for one frame per press and rely on the terminal's repeat.
var heldKeys = map[string]solar.Key{
	"+": solar.KeyPlus,
	"=": solar.KeyPlus,
	"-": solar.KeyMinus,
	"_": solar.KeyMinus,
	"z": solar.KeyZ,
	"x": solar.KeyX,
	"r": solar.KeyR,
}

var eventKeys = map[string]solar.Key{
	"left":  solar.KeyLeft,
	"h":     solar.KeyLeft,
	"right": solar.KeyRight,
	"l":     solar.KeyRight,
	"up":    solar.KeyUp,
	"k":     solar.KeyUp,
	"down":  solar.KeyDown,
	"j":     solar.KeyDown,
	"[":     solar.KeyBracketLeft,
	"]":     solar.KeyBracketRight,
}

// dragScale converts cell motion into the pointer units the control panel
// expects; a cell is much coarser than a pixel.
const dragScale = 4.0

// keyRotateStep is the view rotation in pointer units for w/a/s/d.
const keyRotateStep = 10.0

func mouseEvent(msg tea.MouseMsg) (solar.Event, bool) {
	x, y := float64(msg.X)*dragScale, float64(msg.Y)*dragScale

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return solar.Event{Kind: solar.EventMouseWheel, Wheel: 1}, true
	case tea.MouseButtonWheelDown:
		return solar.Event{Kind: solar.EventMouseWheel, Wheel: -1}, true
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			return solar.Event{Kind: solar.EventMouseDown, Button: solar.ButtonLeft, X: x, Y: y}, true
		}
	case tea.MouseActionRelease:
		return solar.Event{Kind: solar.EventMouseUp, Button: solar.ButtonLeft, X: x, Y: y}, true
	case tea.MouseActionMotion:
		return solar.Event{Kind: solar.EventMouseMotion, X: x, Y: y}, true
	}
	return solar.Event{}, false
}
