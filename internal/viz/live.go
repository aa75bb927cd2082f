// Package viz provides the interactive terminal explorer for map
// trajectories.
package viz

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/kyle-brindley/chaos/internal/dynmap"
	"github.com/kyle-brindley/chaos/internal/stability"
)

const (
	graphWidth      = 76
	graphHeight     = 16
	historyCapacity = 600
	stepsPerTick    = 2
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(11)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model steps one trajectory of the selected map and shows a rolling
// chart with a live period readout.
type Model struct {
	mapName   string
	fn        dynmap.Func
	r         float64
	x0        float64
	x         float64
	iteration int
	history   []float64
	running   bool
	maxPeriod int
	relTol    float64
}

// NewModel starts a live trajectory at x0 under parameter r.
func NewModel(mapName string, r, x0 float64, maxPeriod int, relTol float64) (Model, error) {
	fn, err := dynmap.Get(mapName)
	if err != nil {
		return Model{}, err
	}
	return Model{
		mapName:   mapName,
		fn:        fn,
		r:         r,
		x0:        x0,
		x:         x0,
		history:   append(make([]float64, 0, historyCapacity), x0),
		running:   true,
		maxPeriod: maxPeriod,
		relTol:    relTol,
	}, nil
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "up", "k":
			m.r += 0.01
			m.reset()
		case "down", "j":
			m.r -= 0.01
			m.reset()
		case "right", "l":
			m.r += 0.001
			m.reset()
		case "left", "h":
			m.r -= 0.001
			m.reset()
		case "m":
			m.cycleMap()
		}
	case TickMsg:
		if m.running {
			for i := 0; i < stepsPerTick; i++ {
				m.step()
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) reset() {
	m.x = m.x0
	m.iteration = 0
	m.history = m.history[:0]
	m.history = append(m.history, m.x0)
}

func (m *Model) cycleMap() {
	names := dynmap.Names()
	for i, name := range names {
		if name == m.mapName {
			m.mapName = names[(i+1)%len(names)]
			break
		}
	}
	m.fn, _ = dynmap.Get(m.mapName)
	m.reset()
}

func (m *Model) step() {
	m.x = m.fn(m.x, m.r)
	m.iteration++
	m.history = append(m.history, m.x)
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

// periodReadout classifies the rolling window with the same detector the
// batch engine uses.
func (m Model) periodReadout() string {
	p, ok := stability.FindStablePeriod(m.history, m.maxPeriod, m.relTol)
	if !ok {
		return "undetermined"
	}
	return fmt.Sprintf("%d", p)
}

func (m Model) View() string {
	header := headerStyle.Render(fmt.Sprintf("chaos live: %s map", m.mapName))

	window := m.history
	if len(window) > graphWidth {
		window = window[len(window)-graphWidth:]
	}
	graph := graphStyle.Render(asciigraph.Plot(window,
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
	))

	status := "paused"
	if m.running {
		status = "running"
	}
	stats := statsStyle.Render(
		statLine("r", fmt.Sprintf("%.4f", m.r)) + "\n" +
			statLine("x_0", fmt.Sprintf("%.4f", m.x0)) + "\n" +
			statLine("x", fmt.Sprintf("%.6f", m.x)) + "\n" +
			statLine("iteration", fmt.Sprintf("%d", m.iteration)) + "\n" +
			statLine("period", m.periodReadout()) + "\n" +
			statLine("status", status),
	)

	help := helpStyle.Render("space pause · r reset · up/down r ±0.01 · left/right r ±0.001 · m map · q quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, graph, stats, help)
}

func statLine(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}
