package render

import (
	"testing"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/canvas/runes"

	"github.com/zappabad/scrollchart/internal/chart"
	"github.com/zappabad/scrollchart/internal/series"
)

func newRenderer(t *testing.T) (*chart.Chart, *series.Series, *Renderer) {
	t.Helper()
	cfg := chart.DefaultConfig()
	cfg.Width, cfg.Height = 11, 5
	cfg.RangeMin, cfg.RangeMax = -1, 1
	c, err := chart.New(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := c.AddSeries(series.Config{Name: "a", InitialSize: 16})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rc := DefaultConfig()
	rc.GridStep = 0
	return c, s, New(c, rc)
}

func tick(t *testing.T, c *chart.Chart, from, to int, v float64) {
	t.Helper()
	for i := from; i <= to; i++ {
		if err := c.Tick(float64(i), v); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
	}
}

func TestIncrementalDrawBeforeWindowSlides(t *testing.T) {
	c, _, r := newRenderer(t)
	r.View()

	tick(t, c, 0, 4, 0)
	r.View()

	st := r.Stats()
	if st.Redraws != 1 {
		t.Errorf("expected only the initial redraw, got %d", st.Redraws)
	}
	if st.Segments != 5 {
		t.Errorf("expected 5 incremental draws, got %d", st.Segments)
	}
	for x := 0; x <= 4; x++ {
		if cell := r.canvas.Cell(canvas.Point{X: x, Y: 2}); cell.Rune == runes.Null {
			t.Errorf("expected trace at column %d on the middle row", x)
		}
	}
	if cell := r.canvas.Cell(canvas.Point{X: 8, Y: 2}); cell.Rune != runes.Null {
		t.Errorf("expected column 8 to be empty, got %q", cell.Rune)
	}
}

func TestWindowSlideTriggersRedraw(t *testing.T) {
	c, _, r := newRenderer(t)
	tick(t, c, 0, 10, 0)
	r.View()
	before := r.Stats().Redraws

	tick(t, c, 11, 11, 0)
	if !r.dirty {
		t.Fatal("expected window slide to mark the frame dirty")
	}
	r.View()

	if got := r.Stats().Redraws - before; got != 1 {
		t.Errorf("expected 1 redraw, got %d", got)
	}
	if r.dirty {
		t.Error("expected clean frame after View")
	}
}

func TestClearMarksDirty(t *testing.T) {
	c, s, r := newRenderer(t)
	tick(t, c, 0, 3, 0.5)
	r.View()

	s.Clear()
	if !r.dirty {
		t.Fatal("expected clear to mark the frame dirty")
	}
	r.View()
	for y := 0; y < 5; y++ {
		for x := 0; x < 11; x++ {
			if cell := r.canvas.Cell(canvas.Point{X: x, Y: y}); cell.Rune != runes.Null {
				t.Fatalf("expected blank frame after clear, found %q at (%d, %d)", cell.Rune, x, y)
			}
		}
	}
}

func TestCursorOverlay(t *testing.T) {
	_, _, r := newRenderer(t)
	r.SetCursor(3)
	r.View()

	for y := 0; y < 5; y++ {
		if cell := r.canvas.Cell(canvas.Point{X: 3, Y: y}); cell.Rune == runes.Null {
			t.Errorf("expected cursor cell at row %d", y)
		}
	}
	if col, on := r.Cursor(); !on || col != 3 {
		t.Errorf("Cursor() = %d, %v", col, on)
	}

	r.HideCursor()
	r.View()
	if cell := r.canvas.Cell(canvas.Point{X: 3, Y: 0}); cell.Rune != runes.Null {
		t.Error("expected cursor to be gone")
	}
}

func TestResizeFollowsChart(t *testing.T) {
	c, _, r := newRenderer(t)
	if err := c.Resize(20, 8); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r.View()
	if r.canvas.Width() != 20 || r.canvas.Height() != 8 {
		t.Errorf("expected 20x8 canvas, got %dx%d", r.canvas.Width(), r.canvas.Height())
	}
}

func TestCloseDetaches(t *testing.T) {
	c, s, r := newRenderer(t)
	if s.ListenerCount() != 1 {
		t.Fatalf("expected renderer listener, got %d", s.ListenerCount())
	}
	r.Attach(s)
	if s.ListenerCount() != 1 {
		t.Errorf("double attach added a listener")
	}

	r.View()
	r.Close()
	if s.ListenerCount() != 0 {
		t.Errorf("expected no listeners after close, got %d", s.ListenerCount())
	}
	tick(t, c, 0, 2, 0)
	if r.Stats().Segments != 0 {
		t.Errorf("closed renderer still drew %d segments", r.Stats().Segments)
	}
}
