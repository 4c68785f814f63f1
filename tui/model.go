package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/zappabad/scrollchart/internal/app"
	"github.com/zappabad/scrollchart/internal/chart"
	"github.com/zappabad/scrollchart/internal/render"
	"github.com/zappabad/scrollchart/internal/view"
	"github.com/zappabad/scrollchart/tui/panels"
	"github.com/zappabad/scrollchart/tui/styles"
)

// PanelFocus represents which panel is currently focused.
type PanelFocus int

const (
	FocusChart     PanelFocus = 0
	FocusInspector PanelFocus = 1
	focusCount                = 2
)

const activitySize = 32

// Model is the main TUI application model.
type Model struct {
	cfg Config

	app      *app.App
	chart    *chart.Chart
	renderer *render.Renderer

	// Panels
	chartPanel     *panels.ChartPanel
	inspectorPanel *panels.InspectorPanel

	help help.Model

	focusedPanel PanelFocus
	paused       bool
	cursor       int

	// Window dimensions
	width  int
	height int

	// Status
	statusMsg string
	activity  *view.Tape[string]
	ready     bool

	log logrus.FieldLogger
}

// NewModel creates a new TUI model.
func NewModel(cfg Config) (*Model, error) {
	a, err := app.New(cfg.App)
	if err != nil {
		return nil, err
	}

	h := help.New()
	h.Styles.ShortKey = styles.StatusBarKeyStyle
	h.Styles.ShortDesc = styles.StatusBarDescStyle
	h.Styles.FullKey = styles.StatusBarKeyStyle
	h.Styles.FullDesc = styles.StatusBarDescStyle

	activity := view.NewTape[string](activitySize)
	return &Model{
		cfg:            cfg,
		activity:       activity,
		app:            a,
		chart:          a.Chart,
		renderer:       a.Renderer,
		chartPanel:     panels.NewChartPanel(a.Chart, a.Renderer),
		inspectorPanel: panels.NewInspectorPanel(a.Chart, a.Renderer, activity),
		help:           h,
		focusedPanel:   FocusChart,
		log:            logrus.WithField("tag", "TUI"),
	}, nil
}

// Chart exposes the driven chart.
func (m *Model) Chart() *chart.Chart { return m.chart }

// Close detaches the renderer and disposes the chart.
func (m *Model) Close() {
	m.app.Close()
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.chartPanel.Init(),
		m.inspectorPanel.Init(),
		m.tickRefresh(),
	)
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			return m, cmd
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updatePanelSizes()
		m.ready = true

	case tickMsg:
		if !m.paused {
			m.step()
		}
		cmds = append(cmds, m.tickRefresh())
	}

	m.updateFocusedPanel(msg, &cmds)

	return m, tea.Batch(cmds...)
}

func (m *Model) step() {
	if _, err := m.app.Step(); err != nil {
		m.note("tick failed: " + err.Error())
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		return tea.Quit
	case key.Matches(msg, keys.Pause):
		m.paused = !m.paused
		m.chartPanel.SetPaused(m.paused)
	case key.Matches(msg, keys.Clear):
		m.app.Reset()
		m.note("cleared")
	case key.Matches(msg, keys.CursorLeft):
		m.moveCursor(-1)
	case key.Matches(msg, keys.CursorRight):
		m.moveCursor(1)
	case key.Matches(msg, keys.HideCursor):
		m.renderer.HideCursor()
	case key.Matches(msg, keys.PanBack):
		m.chart.Pan(-m.cfg.PanStep)
	case key.Matches(msg, keys.PanForward):
		m.chart.Pan(m.cfg.PanStep)
	case key.Matches(msg, keys.ZoomIn):
		m.zoom(m.cfg.ZoomStep)
	case key.Matches(msg, keys.ZoomOut):
		m.zoom(1 / m.cfg.ZoomStep)
	case key.Matches(msg, keys.Reset):
		m.chart.ResetView()
		m.statusMsg = ""
		m.activity.Append(styles.FormatTime(m.chart.Time()) + " view reset")
	case key.Matches(msg, keys.Focus):
		m.focusedPanel = (m.focusedPanel + 1) % focusCount
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.updatePanelSizes()
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.zoom(m.cfg.ZoomStep)
		return
	case tea.MouseButtonWheelDown:
		m.zoom(1 / m.cfg.ZoomStep)
		return
	}
	if msg.Action != tea.MouseActionPress && msg.Action != tea.MouseActionMotion {
		return
	}
	if col, ok := m.chartPanel.PlotColumn(msg.X, msg.Y); ok {
		m.cursor = col
		m.renderer.SetCursor(col)
	}
}

func (m *Model) moveCursor(delta int) {
	if _, on := m.renderer.Cursor(); !on {
		m.cursor = m.chart.Config().Width - 1
	} else {
		m.cursor += delta
	}
	m.cursor = max(0, min(m.cursor, m.chart.Config().Width-1))
	m.renderer.SetCursor(m.cursor)
}

func (m *Model) zoom(factor float64) {
	if err := m.chart.Zoom(factor); err != nil {
		m.note(err.Error())
	}
}

// note shows msg in the status bar and records it in the activity tape.
func (m *Model) note(msg string) {
	m.statusMsg = msg
	m.activity.Append(styles.FormatTime(m.chart.Time()) + " " + msg)
}

func (m *Model) updateFocusedPanel(msg tea.Msg, cmds *[]tea.Cmd) {
	var cmd tea.Cmd

	switch m.focusedPanel {
	case FocusChart:
		m.chartPanel, cmd = m.chartPanel.Update(msg)
	case FocusInspector:
		m.inspectorPanel, cmd = m.inspectorPanel.Update(msg)
	}

	if cmd != nil {
		*cmds = append(*cmds, cmd)
	}
}

// View renders the UI.
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	m.chartPanel.SetFocus(m.focusedPanel == FocusChart)
	m.inspectorPanel.SetFocus(m.focusedPanel == FocusInspector)

	// Layout:
	// ┌──────────────────────────────┬─────────────┐
	// │            Chart             │  Inspector  │
	// └──────────────────────────────┴─────────────┘
	//  status / help
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		m.chartPanel.View(),
		m.inspectorPanel.View(),
	)

	return lipgloss.JoinVertical(lipgloss.Left, row, m.renderStatusBar())
}

func (m *Model) renderStatusBar() string {
	state := lipgloss.NewStyle().Foreground(styles.OKColor).Render("● running")
	if m.paused {
		state = styles.PausedStyle.Render("⏸ paused")
	}

	status := ""
	if m.statusMsg != "" {
		status = " │ " + styles.ErrorStyle.Render(m.statusMsg)
	}

	bar := styles.StatusBarStyle.Width(m.width).Render(state + " │ " + m.help.View(keys) + status)
	return bar
}

func (m *Model) updatePanelSizes() {
	statusHeight := lipgloss.Height(m.renderStatusBar())
	height := max(m.height-statusHeight, 6)

	inspectorWidth := max(m.width/4, 28)
	chartWidth := max(m.width-inspectorWidth, 20)

	if err := m.chartPanel.SetSize(chartWidth, height); err != nil {
		m.log.WithError(err).Warn("resize failed")
	}
	m.inspectorPanel.SetSize(m.width-chartWidth, height)
	m.cursor = min(m.cursor, m.chart.Config().Width-1)
}

// tickMsg is sent periodically to advance the simulation.
type tickMsg struct{}

func (m *Model) tickRefresh() tea.Cmd {
	return tea.Tick(m.app.Sim.Config().TickInterval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}
