package panels

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/scrollchart/internal/chart"
	"github.com/zappabad/scrollchart/internal/render"
	"github.com/zappabad/scrollchart/internal/view"
	"github.com/zappabad/scrollchart/tui/styles"
)

// InspectorPanel shows the samples under the cursor and chart counters.
type InspectorPanel struct {
	chart    *chart.Chart
	renderer *render.Renderer
	activity *view.Tape[string]

	focused bool
	width   int
	height  int
}

// NewInspectorPanel creates a new inspector panel. activity may be nil.
func NewInspectorPanel(c *chart.Chart, r *render.Renderer, activity *view.Tape[string]) *InspectorPanel {
	return &InspectorPanel{chart: c, renderer: r, activity: activity}
}

// Init initializes the panel.
func (p *InspectorPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *InspectorPanel) Update(msg tea.Msg) (*InspectorPanel, tea.Cmd) {
	return p, nil
}

func (p *InspectorPanel) SetFocus(focused bool) { p.focused = focused }

func (p *InspectorPanel) SetSize(width, height int) {
	p.width, p.height = width, height
}

// View renders the panel.
func (p *InspectorPanel) View() string {
	var content strings.Builder

	col, on := p.renderer.Cursor()
	if !on {
		content.WriteString(styles.MutedStyle.Render("Move the cursor with ←/→ or the mouse"))
		content.WriteString("\n\n")
	} else {
		x, readings := p.chart.InspectColumn(col)
		content.WriteString(styles.HeaderStyle.Render("Cursor " + styles.FormatTime(x)))
		content.WriteString("\n")
		for _, r := range readings {
			value := styles.MutedStyle.Render("no data")
			if r.OK {
				value = styles.ValueStyle.Render(styles.FormatValue(r.Point.Y)) +
					styles.MutedStyle.Render(" @ "+styles.FormatTime(r.Point.X))
			}
			content.WriteString(fmt.Sprintf("%s %-8s %s\n", styles.Swatch(r.Color), r.Series, value))
		}
		content.WriteString("\n")
	}

	content.WriteString(styles.HeaderStyle.Render("Chart"))
	content.WriteString("\n")
	content.WriteString(p.row("time", styles.FormatTime(p.chart.Time())))
	content.WriteString(p.row("ticks", fmt.Sprint(p.chart.Ticks())))
	content.WriteString(p.row("evicted", fmt.Sprint(p.chart.Evicted())))
	for _, s := range p.chart.Series() {
		content.WriteString(p.row(s.Name(), fmt.Sprintf("%d pts", s.Length())))
	}
	st := p.renderer.Stats()
	content.WriteString(p.row("segments", fmt.Sprint(st.Segments)))
	content.WriteString(p.row("redraws", fmt.Sprint(st.Redraws)))

	if p.activity != nil && p.activity.Len() > 0 {
		content.WriteString("\n")
		content.WriteString(styles.HeaderStyle.Render("Activity"))
		content.WriteString("\n")
		for _, line := range p.activity.Last(max(p.height-len(p.chart.Series())-16, 1)) {
			content.WriteString(styles.MutedStyle.Render(line) + "\n")
		}
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}
	title := styles.RenderTitle("🔍 Inspector", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())
	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

func (p *InspectorPanel) row(label, value string) string {
	return styles.LabelStyle.Render(fmt.Sprintf("%-9s", label)) + " " + styles.RowStyle.Render(value) + "\n"
}
