package transform

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"
)

func TestNewAffineMapsCorners(t *testing.T) {
	src := Rect{MinX: 2, MinY: -1, MaxX: 12, MaxY: 1}
	dst := ScreenRect(101, 21)

	a, err := NewAffine(src, dst)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name   string
		x, y   float64
		px, py float64
	}{
		{name: "bottom-left", x: 2, y: -1, px: 0, py: 20},
		{name: "top-right", x: 12, y: 1, px: 100, py: 0},
		{name: "center", x: 7, y: 0, px: 50, py: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			px, py := a.Apply(tt.x, tt.y)
			if px != tt.px || py != tt.py {
				t.Errorf("Apply(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, px, py, tt.px, tt.py)
			}
		})
	}
}

func TestNewAffineRejectsDegenerateSource(t *testing.T) {
	dst := ScreenRect(10, 10)
	for _, src := range []Rect{
		{MinX: 1, MinY: 0, MaxX: 1, MaxY: 1},
		{MinX: 0, MinY: 3, MaxX: 1, MaxY: 3},
		{MinX: 0, MinY: 0, MaxX: math.NaN(), MaxY: 1},
	} {
		if _, err := NewAffine(src, dst); !errors.Is(err, ErrDegenerateRect) {
			t.Errorf("source %v: expected ErrDegenerateRect, got %v", src, err)
		}
	}
}

func TestViewRecomputeReplacesMapping(t *testing.T) {
	var v View
	if err := v.Recompute(Rect{MaxX: 10, MaxY: 1}, Rect{MaxX: 100, MaxY: 10}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stale := v.Mapping()

	if err := v.Recompute(Rect{MinX: 10, MaxX: 20, MaxY: 1}, Rect{MaxX: 100, MaxY: 10}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if px, _ := stale.Apply(5, 0); px != 50 {
		t.Errorf("stale mapping changed: got %v, want 50", px)
	}
	if px, _ := v.MapPoint(15, 0); px != 50 {
		t.Errorf("current mapping: got %v, want 50", px)
	}
	if v.Version() != 2 {
		t.Errorf("expected version 2, got %d", v.Version())
	}

	if err := v.Recompute(Rect{}, Rect{MaxX: 1, MaxY: 1}); err == nil {
		t.Fatal("expected error for degenerate source")
	}
	if v.Source().MinX != 10 {
		t.Errorf("failed recompute must keep previous source, got %v", v.Source())
	}
}

func TestNewTimeWindowValidates(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
		want error
	}{
		{name: "zero span", mod: func(c *Config) { c.Span = 0 }, want: ErrInvalidSpan},
		{name: "negative span", mod: func(c *Config) { c.Span = -3 }, want: ErrInvalidSpan},
		{name: "nan span", mod: func(c *Config) { c.Span = math.NaN() }, want: ErrInvalidSpan},
		{name: "inverted range", mod: func(c *Config) { c.RangeMin, c.RangeMax = 1, -1 }, want: ErrInvalidRange},
		{name: "empty range", mod: func(c *Config) { c.RangeMin, c.RangeMax = 0, 0 }, want: ErrInvalidRange},
		{name: "negative history", mod: func(c *Config) { c.History = -1 }, want: ErrInvalidHistory},
		{name: "history shorter than span", mod: func(c *Config) { c.History = 5 }, want: ErrInvalidHistory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mod(&cfg)
			if _, err := NewTimeWindow(cfg); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func newWindow(t *testing.T, span float64) *TimeWindow {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Span = span
	w, err := NewTimeWindow(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return w
}

func TestSlidingWindow(t *testing.T) {
	w := newWindow(t, 10)

	for tick := 0; tick <= 15; tick++ {
		now := float64(tick)
		recomputed := w.Advance(now)
		src := w.Source()

		wantMin, wantMax := 0.0, 10.0
		if now > 10 {
			wantMin, wantMax = now-10, now
		}
		if src.MinX != wantMin || src.MaxX != wantMax {
			t.Errorf("t=%v: source x = [%v, %v], want [%v, %v]", now, src.MinX, src.MaxX, wantMin, wantMax)
		}
		if wantRecompute := now > 10; recomputed != wantRecompute {
			t.Errorf("t=%v: recomputed = %v, want %v", now, recomputed, wantRecompute)
		}
	}

	w.Advance(12)
	if diff := cmp.Diff(Rect{MinX: 2, MinY: -1, MaxX: 12, MaxY: 1}, w.Source()); diff != "" {
		t.Errorf("source at t=12 mismatch (-want +got):\n%s", diff)
	}
}

func TestPanClampsAndResets(t *testing.T) {
	w := newWindow(t, 10)
	w.Advance(30)

	w.Pan(-5)
	if src := w.Source(); src.MinX != 15 || src.MaxX != 25 {
		t.Errorf("after pan -5: got %v", src)
	}

	w.Advance(31)
	if src := w.Source(); src.MaxX != 26 {
		t.Errorf("panned window should keep its offset while time moves, got %v", src)
	}

	w.Pan(-1000)
	if src := w.Source(); src.MinX != 0 {
		t.Errorf("pan must not go before 0, got %v", src)
	}

	w.Pan(1000)
	if w.PanOffset() != 0 {
		t.Errorf("pan must not pass the trailing edge, got offset %v", w.PanOffset())
	}

	w.Pan(-3)
	w.ResetPan()
	if src := w.Source(); src.MaxX != 31 {
		t.Errorf("expected reset to trailing edge, got %v", src)
	}
}

func TestZoom(t *testing.T) {
	w := newWindow(t, 10)
	w.Advance(40)

	if err := w.Zoom(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src := w.Source(); src.MinX != 35 || src.MaxX != 40 {
		t.Errorf("after zoom 2: got %v", src)
	}

	for _, f := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if err := w.Zoom(f); !errors.Is(err, ErrInvalidZoom) {
			t.Errorf("zoom %v: expected ErrInvalidZoom, got %v", f, err)
		}
	}
	if w.Span() != 5 {
		t.Errorf("failed zoom changed span to %v", w.Span())
	}
}

func TestHistoryBoundsSpanAndPan(t *testing.T) {
	cfg := DefaultConfig()
	cfg.History = 30
	w, err := NewTimeWindow(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w.Advance(100)

	w.Pan(-1000)
	if src := w.Source(); src.MinX != 70 || src.MaxX != 80 {
		t.Errorf("pan must stop at the history horizon, got %v", src)
	}

	if err := w.Zoom(0.1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Span() != 30 {
		t.Errorf("expected span capped at history 30, got %v", w.Span())
	}
	if src := w.Source(); src.MinX != 70 || src.MaxX != 100 {
		t.Errorf("expected full history [70, 100], got %v", src)
	}
	if w.PanOffset() != 0 {
		t.Errorf("expected no room left to pan, got offset %v", w.PanOffset())
	}
}

func TestSetRangeAndDest(t *testing.T) {
	w := newWindow(t, 10)
	if err := w.SetRange(0, 100); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.SetRange(5, 5); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
	if err := w.SetDest(ScreenRect(11, 11)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	px, py := w.View().MapPoint(5, 50)
	if px != 5 || py != 5 {
		t.Errorf("MapPoint(5, 50) = (%v, %v), want (5, 5)", px, py)
	}
}

func TestMapUnmapRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		span := rapid.Float64Range(0.1, 1000).Draw(rt, "span")
		now := rapid.Float64Range(0, 1e5).Draw(rt, "t")
		w, err := NewTimeWindow(Config{Span: span, RangeMin: -10, RangeMax: 10, Dest: ScreenRect(120, 40)})
		if err != nil {
			rt.Fatalf("unexpected error: %v", err)
		}
		w.Advance(now)

		src := w.Source()
		if d := src.Width() - span; math.Abs(d) > 1e-9*math.Max(1, now) {
			rt.Fatalf("source width %v, want span %v", src.Width(), span)
		}
		if src.MinX < 0 {
			rt.Fatalf("source starts before 0: %v", src)
		}

		x := src.MinX + rapid.Float64Range(0, 1).Draw(rt, "fx")*span
		y := rapid.Float64Range(-10, 10).Draw(rt, "y")
		px, py := w.View().MapPoint(x, y)
		gx, gy, ok := w.View().Unmap(px, py)
		if !ok {
			rt.Fatalf("unmap failed")
		}
		if math.Abs(gx-x) > 1e-6*math.Max(1, now) || math.Abs(gy-y) > 1e-6 {
			rt.Fatalf("round trip (%v, %v) -> (%v, %v) -> (%v, %v)", x, y, px, py, gx, gy)
		}
	})
}
