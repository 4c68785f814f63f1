package render

import (
	"math"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/canvas/graph"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/zappabad/scrollchart/internal/chart"
	"github.com/zappabad/scrollchart/internal/series"
	"github.com/zappabad/scrollchart/internal/series/core"
	"github.com/zappabad/scrollchart/internal/transform"
)

// Stats counts renderer work since creation.
type Stats struct {
	// Segments drawn incrementally from PointAdded notifications.
	Segments int
	// Redraws of the full visible subset.
	Redraws int
}

// Renderer draws a chart's series onto an ntcharts canvas.
//
// New samples are drawn as single segments as they arrive. Anything that
// invalidates the frame (a clear, a visible eviction, a window change or a
// resize) marks it dirty and the next View redraws only the visible samples.
type Renderer struct {
	cfg    Config
	chart  *chart.Chart
	canvas canvas.Model
	traces []*trace

	gridStyle   lipgloss.Style
	cursorStyle lipgloss.Style

	cursor   int
	cursorOn bool
	dirty    bool
	stats    Stats

	log logrus.FieldLogger
}

// New creates a renderer sized to the chart and attaches it to every series
// currently in the chart.
func New(c *chart.Chart, cfg Config) *Renderer {
	cc := c.Config()
	r := &Renderer{
		cfg:         cfg,
		chart:       c,
		canvas:      canvas.New(cc.Width, cc.Height),
		gridStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.GridColor)),
		cursorStyle: lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.CursorColor)),
		dirty:       true,
		log:         logrus.WithField("tag", "Renderer"),
	}
	for _, s := range c.Series() {
		r.Attach(s)
	}
	c.AddWindowListener(r)
	return r
}

// Attach starts drawing s. Attaching a series twice is a no-op.
func (r *Renderer) Attach(s *series.Series) {
	for _, tr := range r.traces {
		if tr.s == s {
			return
		}
	}
	tr := &trace{
		r:     r,
		s:     s,
		style: lipgloss.NewStyle().Foreground(lipgloss.Color(s.Style().Color)),
	}
	r.traces = append(r.traces, tr)
	s.AddListener(tr)
	r.dirty = true
}

// Detach stops drawing s and removes its listener.
func (r *Renderer) Detach(s *series.Series) {
	for i, tr := range r.traces {
		if tr.s == s {
			s.RemoveListener(tr)
			r.traces = append(r.traces[:i:i], r.traces[i+1:]...)
			r.dirty = true
			return
		}
	}
}

// Close detaches every series and unregisters from the chart.
func (r *Renderer) Close() {
	for _, tr := range r.traces {
		tr.s.RemoveListener(tr)
	}
	r.traces = nil
	r.chart.RemoveWindowListener(r)
}

// WindowChanged implements chart.WindowListener.
func (r *Renderer) WindowChanged(*transform.View) {
	cc := r.chart.Config()
	if cc.Width != r.canvas.Width() || cc.Height != r.canvas.Height() {
		r.canvas.Resize(cc.Width, cc.Height)
		r.canvas.ViewWidth = cc.Width
		r.canvas.ViewHeight = cc.Height
	}
	r.dirty = true
}

// SetCursor shows a vertical cursor at column col.
func (r *Renderer) SetCursor(col int) {
	if r.cursorOn && r.cursor == col {
		return
	}
	r.cursor, r.cursorOn = col, true
	r.dirty = true
}

// HideCursor removes the cursor overlay.
func (r *Renderer) HideCursor() {
	if r.cursorOn {
		r.cursorOn = false
		r.dirty = true
	}
}

// Cursor returns the cursor column and whether it is shown.
func (r *Renderer) Cursor() (int, bool) { return r.cursor, r.cursorOn }

func (r *Renderer) Stats() Stats { return r.stats }

// View returns the rendered frame, redrawing first if it is dirty.
func (r *Renderer) View() string {
	if r.dirty {
		r.redraw()
	}
	return r.canvas.View()
}

func (r *Renderer) redraw() {
	r.canvas.Clear()
	r.drawGrid()

	src := r.chart.Window().Source()
	for _, tr := range r.traces {
		r.drawVisible(tr, src)
	}
	if r.cursorOn {
		graph.DrawVerticalLineUp(&r.canvas, canvas.Point{X: r.cursor, Y: r.canvas.Height() - 1}, r.cursorStyle)
	}

	r.dirty = false
	r.stats.Redraws++
	r.log.WithField("redraws", r.stats.Redraws).Debug("frame redrawn")
}

// drawVisible draws the samples inside src plus one on either side so lines
// reach the edges.
func (r *Renderer) drawVisible(tr *trace, src transform.Rect) {
	start := tr.s.Search(src.MinX) - 1
	var (
		prev    core.Point
		hasPrev bool
	)
	for _, p := range tr.s.PointsFrom(start) {
		if hasPrev {
			r.segment(prev, p, tr.style)
		} else {
			r.dot(p, tr.style)
		}
		prev, hasPrev = p, true
		if p.X > src.MaxX {
			break
		}
	}
}

func (r *Renderer) drawGrid() {
	step := r.cfg.GridStep
	cc := r.chart.Config()
	if step <= 0 || math.IsInf(step, 0) || (cc.RangeMax-cc.RangeMin)/step > float64(r.canvas.Height()) {
		return
	}
	v := r.chart.Window().View()
	for y := math.Ceil(cc.RangeMin/step) * step; y <= cc.RangeMax; y += step {
		_, py := v.MapPoint(0, y)
		graph.DrawHorizonalLineRight(&r.canvas, canvas.Point{X: 0, Y: transform.Round(py)}, r.gridStyle)
	}
}

func (r *Renderer) toCell(p core.Point) canvas.Point {
	px, py := r.chart.Window().View().MapPoint(p.X, p.Y)
	// Keep far off-screen values from producing huge line rasterizations.
	w, h := float64(r.canvas.Width()), float64(r.canvas.Height())
	return canvas.Point{
		X: transform.Round(math.Max(-1, math.Min(w, px))),
		Y: transform.Round(math.Max(-1, math.Min(h, py))),
	}
}

func (r *Renderer) segment(from, to core.Point, style lipgloss.Style) {
	points := graph.GetLinePoints(r.toCell(from), r.toCell(to))
	graph.DrawLinePoints(&r.canvas, points, r.cfg.LineStyle, style)
}

func (r *Renderer) dot(p core.Point, style lipgloss.Style) {
	r.canvas.SetCell(r.toCell(p), canvas.NewCellWithStyle('•', style))
}

// trace is the per-series listener. It only draws when the frame is clean;
// a dirty frame is fully redrawn on the next View anyway.
type trace struct {
	r     *Renderer
	s     *series.Series
	style lipgloss.Style
}

func (t *trace) PointAdded(pt, prev core.Point, hasPrev bool) {
	if t.r.dirty {
		return
	}
	if hasPrev {
		t.r.segment(prev, pt, t.style)
	} else {
		t.r.dot(pt, t.style)
	}
	t.r.stats.Segments++
}

func (t *trace) Cleared() { t.r.dirty = true }

func (t *trace) Shifted(evicted core.Point) {
	if t.r.chart.Window().Source().ContainsX(evicted.X) {
		t.r.dirty = true
	}
}
