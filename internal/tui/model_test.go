package tui

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/orrery/internal/celestial"
	"github.com/san-kum/orrery/internal/solar"
	"github.com/san-kum/orrery/internal/viz"
)

func newModel(t *testing.T) (Model, *solar.SolarSystem) {
	t.Helper()
	r := viz.NewTermRenderer(60, 24)
	sys := solar.New(r)
	t.Cleanup(sys.Cleanup)
	return New(sys, r, Options{FPS: 60}), sys
}

func press(m Model, key string) Model {
	var msg tea.KeyMsg
	switch key {
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelSelectAndMoons(t *testing.T) {
	m, sys := newModel(t)

	m = press(m, "right")
	m = press(m, "right")
	if m.Panel().Selected() != 2 {
		t.Fatalf("expected Earth selected, got %d", m.Panel().Selected())
	}

	m = press(m, "up")
	m = press(m, "up")
	if sys.MoonCount(2) != 2 {
		t.Errorf("expected 2 moons, got %d", sys.MoonCount(2))
	}

	m = press(m, "down")
	if sys.MoonCount(2) != 1 {
		t.Errorf("expected 1 moon, got %d", sys.MoonCount(2))
	}

	m = press(m, "left")
	m = press(m, "left")
	m = press(m, "left")
	if m.Panel().Selected() != 7 {
		t.Errorf("expected selection to wrap to Neptune, got %d", m.Panel().Selected())
	}
}

func TestModelSpeedKeys(t *testing.T) {
	m, sys := newModel(t)
	tf := sys.TimeFactor()

	m = press(m, "]")
	if sys.TimeFactor() != tf*2 {
		t.Errorf("expected doubled speed, got %v", sys.TimeFactor())
	}
	m = press(m, "[")
	if sys.TimeFactor() != tf {
		t.Errorf("expected speed restored, got %v", sys.TimeFactor())
	}

	// held keys apply on the next tick only
	m = press(m, "+")
	if sys.TimeFactor() != tf {
		t.Error("held key should not apply before a tick")
	}
	next, _ := m.Update(tickMsg(time.Now()))
	m = next.(Model)
	if math.Abs(sys.TimeFactor()-tf*solar.SpeedUpRate) > 1e-12 {
		t.Errorf("expected speed x%.2f, got %v", solar.SpeedUpRate, sys.TimeFactor())
	}

	next, _ = m.Update(tickMsg(time.Now().Add(time.Second / 60)))
	m = next.(Model)
	if math.Abs(sys.TimeFactor()-tf*solar.SpeedUpRate) > 1e-12 {
		t.Error("held key should be released after one frame")
	}
}

func TestModelTickAdvances(t *testing.T) {
	m, sys := newModel(t)

	next, cmd := m.Update(tickMsg(time.Now()))
	m = next.(Model)
	if cmd == nil {
		t.Fatal("expected another tick to be scheduled")
	}
	if sys.Frames() != 1 {
		t.Errorf("expected one update on first tick, got %d", sys.Frames())
	}

}

func TestModelNeverSuspends(t *testing.T) {
	m, sys := newModel(t)
	start := time.Now()

	m = press(m, " ")
	m = press(m, "p")
	for i := 0; i < 30; i++ {
		next, _ := m.Update(tickMsg(start.Add(time.Duration(i) * 100 * time.Millisecond)))
		m = next.(Model)
	}

	if sys.Frames() == 0 {
		t.Fatal("expected the system to keep updating")
	}
	if sys.PlanetAt(0).Angle() == 0 {
		t.Error("expected Mercury to have moved")
	}
	if sys.TimeFactor() != 1 {
		t.Errorf("expected speed unchanged, got %v", sys.TimeFactor())
	}
}

func TestModelZoomAndRotate(t *testing.T) {
	m, sys := newModel(t)

	next, _ := m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	m = next.(Model)
	if math.Abs(sys.State().Zoom-solar.WheelZoomIn) > 1e-12 {
		t.Errorf("expected wheel zoom, got %v", sys.State().Zoom)
	}

	m = press(m, "s")
	if sys.State().RotationX <= 0 {
		t.Errorf("expected positive pitch, got %v", sys.State().RotationX)
	}
	m = press(m, "r")
	next, _ = m.Update(tickMsg(time.Now()))
	m = next.(Model)
	if sys.State().RotationX != 0 || sys.State().RotationY != 0 {
		t.Error("expected rotation reset")
	}
}

func TestModelMouseDrag(t *testing.T) {
	m, sys := newModel(t)

	msgs := []tea.MouseMsg{
		{X: 10, Y: 10, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress},
		{X: 12, Y: 10, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion},
		{X: 12, Y: 10, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease},
	}
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}

	want := 2 * dragScale * solar.RotationSensitivity
	if math.Abs(sys.State().RotationY-want) > 1e-12 {
		t.Errorf("expected yaw %v, got %v", want, sys.State().RotationY)
	}
	if m.Panel().Dragging() {
		t.Error("expected drag to end on release")
	}
}

func TestModelThemeAndQuit(t *testing.T) {
	m, _ := newModel(t)
	first := m.Theme().Name

	m = press(m, "t")
	if m.Theme().Name == first {
		t.Error("expected theme to change")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestModelView(t *testing.T) {
	m, _ := newModel(t)
	m = press(m, "right")

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	out := m.View()
	if !strings.Contains(out, "Venus") {
		t.Error("expected the selected planet in the HUD")
	}
	if !strings.Contains(out, "speed") {
		t.Error("expected speed in the HUD")
	}
}

func TestLiveRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewLiveRenderer(&buf, 0, 400)
	sys := solar.New(celestial.NewNopRenderer())
	t.Cleanup(sys.Cleanup)

	r.Start()
	sys.Update()
	r.OnFrame(1, sys)
	r.Stop()

	out := buf.String()
	if !strings.Contains(out, "frame 1") {
		t.Error("expected frame header")
	}
	if !strings.Contains(out, "@") || !strings.Contains(out, "E") {
		t.Error("expected sun and Earth on the map")
	}
	if !strings.HasSuffix(out, showCursor) {
		t.Error("expected cursor restored")
	}
}
