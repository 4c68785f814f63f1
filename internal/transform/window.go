package transform

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// TimeWindow keeps a View tracking the most recent Span units of time.
//
// While the tracked time t is <= Span the source rectangle stays at [0, Span].
// Once t > Span it becomes [t-Span, t] and slides with every Advance. A pan
// offset shifts the window back from the trailing edge without stopping time.
type TimeWindow struct {
	span       float64
	history    float64
	t          float64
	pan        float64
	yMin, yMax float64
	dest       Rect

	view View
	log  logrus.FieldLogger
}

// NewTimeWindow validates cfg and computes the initial mapping for t = 0.
func NewTimeWindow(cfg Config) (*TimeWindow, error) {
	if !(cfg.Span > 0) || math.IsInf(cfg.Span, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidSpan, cfg.Span)
	}
	if !(cfg.RangeMin < cfg.RangeMax) || !finite(cfg.RangeMin, cfg.RangeMax) {
		return nil, fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, cfg.RangeMin, cfg.RangeMax)
	}
	if cfg.History < 0 || math.IsNaN(cfg.History) || (cfg.History > 0 && cfg.History < cfg.Span) {
		return nil, fmt.Errorf("%w: history %v, span %v", ErrInvalidHistory, cfg.History, cfg.Span)
	}

	w := &TimeWindow{
		span:    cfg.Span,
		history: cfg.History,
		yMin:    cfg.RangeMin,
		yMax:    cfg.RangeMax,
		dest:    cfg.Dest,
		log:     logrus.WithField("tag", "TimeWindow"),
	}
	if err := w.view.Recompute(w.source(), w.dest); err != nil {
		return nil, err
	}
	return w, nil
}

// Advance moves the tracked time to t and reports whether the mapping was
// recomputed. Before the window has filled the source rectangle is fixed, so
// no recompute happens.
func (w *TimeWindow) Advance(t float64) bool {
	w.t = t
	return w.refresh()
}

// Pan moves the window by dx model units; negative dx looks back in time.
// The window never starts before 0 or before the history horizon, and never
// passes the trailing edge.
func (w *TimeWindow) Pan(dx float64) bool {
	w.pan = clamp(w.pan-dx, 0, w.maxPan())
	return w.refresh()
}

// ResetPan snaps the window back to the trailing edge.
func (w *TimeWindow) ResetPan() bool {
	w.pan = 0
	return w.refresh()
}

// Zoom divides the span by factor; factor > 1 zooms in.
func (w *TimeWindow) Zoom(factor float64) error {
	if !(factor > 0) || math.IsInf(factor, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidZoom, factor)
	}
	return w.SetSpan(w.span / factor)
}

// SetSpan replaces the visible width, capped at the history length. Any pan
// offset is clamped to the new span.
func (w *TimeWindow) SetSpan(span float64) error {
	if !(span > 0) || math.IsInf(span, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidSpan, span)
	}
	if w.history > 0 && span > w.history {
		span = w.history
	}
	w.span = span
	w.pan = clamp(w.pan, 0, w.maxPan())
	w.refresh()
	return nil
}

// SetRange replaces the visible value range.
func (w *TimeWindow) SetRange(min, max float64) error {
	if !(min < max) || !finite(min, max) {
		return fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, min, max)
	}
	w.yMin, w.yMax = min, max
	w.refresh()
	return nil
}

// SetDest replaces the view rectangle, typically after a resize.
func (w *TimeWindow) SetDest(dst Rect) error {
	if err := w.view.Recompute(w.source(), dst); err != nil {
		return err
	}
	w.dest = dst
	return nil
}

func (w *TimeWindow) Span() float64    { return w.span }
func (w *TimeWindow) Time() float64    { return w.t }
func (w *TimeWindow) History() float64 { return w.history }

// PanOffset is how far the window sits behind the trailing edge.
func (w *TimeWindow) PanOffset() float64 { return w.pan }

// Source returns the model rectangle currently mapped onto the view.
func (w *TimeWindow) Source() Rect { return w.view.Source() }

// View exposes the held mapping. The pointer stays valid; its Affine does not.
func (w *TimeWindow) View() *View { return &w.view }

func (w *TimeWindow) source() Rect {
	end := math.Max(w.t, w.span) - w.pan
	start := end - w.span
	if start < 0 {
		start, end = 0, w.span
	}
	return Rect{MinX: start, MinY: w.yMin, MaxX: end, MaxY: w.yMax}
}

func (w *TimeWindow) maxPan() float64 {
	m := math.Max(w.t, w.span) - w.span
	if w.history > 0 {
		m = math.Min(m, w.history-w.span)
	}
	return m
}

func (w *TimeWindow) refresh() bool {
	src := w.source()
	if src == w.view.Source() && w.dest == w.view.Dest() {
		return false
	}
	if err := w.view.Recompute(src, w.dest); err != nil {
		// Only reachable with a non-finite time; keep the last good mapping.
		w.log.WithError(err).WithField("t", w.t).Warn("window recompute failed")
		return false
	}
	w.log.WithFields(logrus.Fields{"t": w.t, "source": src}).Debug("window recomputed")
	return true
}
