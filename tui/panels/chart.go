package panels

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/scrollchart/internal/chart"
	"github.com/zappabad/scrollchart/internal/render"
	"github.com/zappabad/scrollchart/tui/styles"
)

// Plot area offsets inside the panel: border and padding on the left, border
// and title on top, plus the value axis column.
const (
	axisWidth  = 7
	plotLeft   = 2 + axisWidth
	plotTop    = 2
	chromeW    = 4 + axisWidth
	chromeH    = 4
	minPlotDim = 2
)

// ChartPanel displays the scrolling chart.
type ChartPanel struct {
	chart    *chart.Chart
	renderer *render.Renderer

	focused bool
	paused  bool
	width   int
	height  int
}

// NewChartPanel creates a chart panel drawing c with r.
func NewChartPanel(c *chart.Chart, r *render.Renderer) *ChartPanel {
	return &ChartPanel{chart: c, renderer: r}
}

// Init initializes the panel.
func (p *ChartPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *ChartPanel) Update(msg tea.Msg) (*ChartPanel, tea.Cmd) {
	return p, nil
}

func (p *ChartPanel) SetFocus(focused bool) { p.focused = focused }
func (p *ChartPanel) SetPaused(paused bool) { p.paused = paused }

// SetSize sets the outer panel size and resizes the plot to fit inside it.
func (p *ChartPanel) SetSize(width, height int) error {
	p.width, p.height = width, height
	return p.chart.Resize(max(width-chromeW, minPlotDim), max(height-chromeH, minPlotDim))
}

// PlotColumn converts a screen x inside the panel to a plot column. ok is
// false when x falls outside the plot.
func (p *ChartPanel) PlotColumn(x, y int) (int, bool) {
	cc := p.chart.Config()
	col, row := x-plotLeft, y-plotTop
	if col < 0 || col >= cc.Width || row < 0 || row >= cc.Height {
		return 0, false
	}
	return col, true
}

// View renders the panel.
func (p *ChartPanel) View() string {
	w := p.chart.Window()
	src := w.Source()

	title := fmt.Sprintf("📈 %s … %s", styles.FormatTime(src.MinX), styles.FormatTime(src.MaxX))
	if p.paused {
		title += " " + styles.PausedStyle.Render("⏸ paused")
	}
	if w.PanOffset() > 0 {
		title += " " + styles.MutedStyle.Render(fmt.Sprintf("(-%s)", styles.FormatTime(w.PanOffset())))
	}

	plot := lipgloss.JoinHorizontal(lipgloss.Top, p.axis(), p.renderer.View())
	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.RenderTitle(title, p.focused),
		plot,
		p.legend(),
	)

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}
	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(content)
}

// axis labels the top, middle and bottom rows with their values.
func (p *ChartPanel) axis() string {
	cc := p.chart.Config()
	rows := make([]string, cc.Height)
	label := func(row int, v float64) {
		if row >= 0 && row < len(rows) {
			rows[row] = styles.FormatValue(v)
		}
	}
	label(0, cc.RangeMax)
	label(cc.Height/2, (cc.RangeMin+cc.RangeMax)/2)
	label(cc.Height-1, cc.RangeMin)
	return styles.AxisLabelStyle.Width(axisWidth).Render(strings.Join(rows, "\n"))
}

func (p *ChartPanel) legend() string {
	var parts []string
	for _, s := range p.chart.Series() {
		parts = append(parts, styles.Swatch(s.Style().Color)+" "+styles.LabelStyle.Render(s.Name()))
	}
	return strings.Join(parts, "  ")
}
