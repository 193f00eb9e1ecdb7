package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"

	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/sim"
	"github.com/san-kum/orrery/internal/solar"
	"github.com/san-kum/orrery/internal/viz"
)

const (
	panelWidth  = 34
	historySize = 60
	minCanvasW  = 20
	minCanvasH  = 8
)

type tickMsg time.Time

func tick(step time.Duration) tea.Cmd {
	return tea.Tick(step, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type Options struct {
	FPS    int
	Theme  string
	Logger zerolog.Logger
}

// Model is the bubbletea model for the terminal orrery. The solar system
// renders through r, which must be the renderer the system was built with.
type Model struct {
	sys   *solar.SolarSystem
	panel *solar.ControlPanel
	r     *viz.TermRenderer
	clock *sim.FixedStep
	held  solar.KeySet

	theme  viz.Theme
	styles viz.Styles

	width, height int
	showHelp      bool
	lastTick      time.Time
	speedHist     []float64
	log           zerolog.Logger
}

func New(sys *solar.SolarSystem, r *viz.TermRenderer, opts Options) Model {
	theme := viz.GetTheme(opts.Theme)
	return Model{
		sys:       sys,
		panel:     solar.NewControlPanel(sys, opts.Logger),
		r:         r,
		clock:     sim.NewFixedStep(opts.FPS),
		held:      make(solar.KeySet),
		theme:     theme,
		styles:    viz.NewStyles(theme),
		width:     r.Canvas().Width + panelWidth,
		height:    r.Canvas().Height + 2,
		showHelp:  true,
		speedHist: make([]float64, 0, historySize),
		log:       opts.Logger,
	}
}

func (m Model) Panel() *solar.ControlPanel { return m.panel }
func (m Model) Theme() viz.Theme           { return m.theme }

func (m Model) Init() tea.Cmd { return tick(m.clock.Step) }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if e, ok := mouseEvent(msg); ok {
			m.panel.HandleEvent(e)
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.r.Resize(max(msg.Width-panelWidth-2, minCanvasW), max(msg.Height-2, minCanvasH))
		return m, nil
	case tickMsg:
		m.frame(time.Time(msg))
		return m, tick(m.clock.Step)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	s := msg.String()
	switch s {
	case "q", "ctrl+c", "esc":
		m.log.Debug().Int("frames", m.sys.Frames()).Msg("quit")
		return m, tea.Quit
	case "?":
		m.showHelp = !m.showHelp
		return m, nil
	case "t":
		m.theme = viz.NextTheme(m.theme.Name)
		m.styles = viz.NewStyles(m.theme)
		m.log.Debug().Str("theme", m.theme.Name).Msg("theme changed")
		return m, nil
	case "a":
		m.sys.RotateView(-keyRotateStep, 0)
		return m, nil
	case "d":
		m.sys.RotateView(keyRotateStep, 0)
		return m, nil
	case "w":
		m.sys.RotateView(0, -keyRotateStep)
		return m, nil
	case "s":
		m.sys.RotateView(0, keyRotateStep)
		return m, nil
	}

	if k, ok := eventKeys[s]; ok {
		m.panel.HandleEvent(solar.Event{Kind: solar.EventKeyDown, Key: k})
		if k == solar.KeyUp || k == solar.KeyDown || k == solar.KeyLeft || k == solar.KeyRight {
			m.panel.RefreshDisplay()
		}
		return m, nil
	}
	if k, ok := heldKeys[s]; ok {
		m.held[k] = true
	}
	return m, nil
}

// frame runs the fixed-step updates due at now. Held keys apply once.
func (m *Model) frame(now time.Time) {
	elapsed := m.clock.Step
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	m.panel.HandleUserInput(m.held)
	clear(m.held)

	steps := m.clock.Advance(elapsed)
	for i := 0; i < steps; i++ {
		m.sys.Update()
	}

	m.speedHist = append(m.speedHist, m.sys.TimeFactor())
	if len(m.speedHist) > historySize {
		m.speedHist = m.speedHist[1:]
	}
}

func (m Model) View() string {
	m.r.BeginFrame(*m.sys.State())
	m.sys.Render()

	scene := m.r.Canvas().Render()
	return lipgloss.JoinHorizontal(lipgloss.Top, scene, m.hud())
}

func (m Model) hud() string {
	st := m.styles
	var b strings.Builder

	b.WriteString(viz.GradientText("o r r e r y", m.theme.Title, m.theme.Accent))
	b.WriteString("\n")
	b.WriteString(viz.Separator(panelWidth-4, st.Subtle))
	b.WriteString("\n")

	b.WriteString(st.Label.Render("speed  ") + st.Value.Render(fmt.Sprintf("%.2fx", m.sys.TimeFactor())) + "\n")
	if m.panel.Dragging() {
		b.WriteString(st.Warning.Render("rotating") + "\n")
	}
	b.WriteString(st.Label.Render("time   ") + st.Value.Render(fmt.Sprintf("%.1f", m.sys.Elapsed())) + "\n\n")

	if p := m.sys.PlanetAt(m.panel.Selected()); p != nil {
		b.WriteString(st.Selected.Render("▸ "+p.Name()) + "\n")
		b.WriteString(viz.ProgressBar(p.Angle()/orbit.TwoPi, panelWidth-8, m.theme.Selected) + "\n")
	}

	for _, line := range m.panel.Instructions() {
		b.WriteString(st.Label.Render(line) + "\n")
	}

	if len(m.speedHist) > 1 {
		b.WriteString("\n")
		b.WriteString(asciigraph.Plot(m.speedHist,
			asciigraph.Height(4),
			asciigraph.Width(panelWidth-10),
			asciigraph.Caption("speed")))
		b.WriteString("\n")
	}

	if m.showHelp {
		b.WriteString("\n" + st.KeyHint.Render("wasd rotate  [ ] speed  t theme  ? help  q quit"))
	}

	return st.Panel.Width(panelWidth).Render(b.String())
}

// Run starts the terminal orrery on sys and blocks until the user quits.
func Run(sys *solar.SolarSystem, r *viz.TermRenderer, opts Options) error {
	p := tea.NewProgram(New(sys, r, opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
