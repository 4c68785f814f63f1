package chart

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/zappabad/scrollchart/internal/series"
	"github.com/zappabad/scrollchart/internal/transform"
)

var (
	ErrValueCount     = errors.New("value count does not match series count")
	ErrTimeWentBack   = errors.New("tick time is older than the previous tick")
	ErrInvalidSize    = errors.New("chart size must be positive")
	ErrInvalidHistory = errors.New("max time must not be shorter than the window span")
	ErrInvalidTime    = errors.New("tick time must be finite")
)

// WindowListener is told whenever the window mapping is replaced. It must
// re-fetch the mapping from the view instead of caching an Affine.
type WindowListener interface {
	WindowChanged(v *transform.View)
}

// Chart drives a set of series and one sliding time window at tick cadence.
//
// Each Tick runs one batch of appends, at most one window recompute and then
// any evictions, in that order. Chart is not safe for concurrent use.
type Chart struct {
	cfg     Config
	window  *transform.TimeWindow
	series  []*series.Series
	watches []WindowListener

	t       float64
	ticks   int
	started bool
	evicted int

	log logrus.FieldLogger
}

// New creates an empty chart.
func New(cfg Config) (*Chart, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, cfg.Width, cfg.Height)
	}
	if cfg.MaxTime == 0 {
		cfg.MaxTime = cfg.WindowSpan
	}
	if cfg.MaxTime < cfg.WindowSpan {
		return nil, fmt.Errorf("%w: max time %v, span %v", ErrInvalidHistory, cfg.MaxTime, cfg.WindowSpan)
	}

	w, err := transform.NewTimeWindow(transform.Config{
		Span:     cfg.WindowSpan,
		RangeMin: cfg.RangeMin,
		RangeMax: cfg.RangeMax,
		Dest:     transform.ScreenRect(cfg.Width, cfg.Height),
		History:  cfg.MaxTime,
	})
	if err != nil {
		return nil, fmt.Errorf("chart window: %w", err)
	}

	return &Chart{
		cfg:    cfg,
		window: w,
		log:    logrus.WithField("tag", "Chart"),
	}, nil
}

// AddSeries creates a series and appends it to the chart. Values passed to
// Tick are matched to series in the order they were added.
func (c *Chart) AddSeries(cfg series.Config) (*series.Series, error) {
	s, err := series.NewSeries(cfg)
	if err != nil {
		return nil, err
	}
	c.series = append(c.series, s)
	c.log.WithField("series", s.Name()).Debug("series added")
	return s, nil
}

func (c *Chart) Series() []*series.Series      { return c.series }
func (c *Chart) Window() *transform.TimeWindow { return c.window }
func (c *Chart) Config() Config                { return c.cfg }

// Time returns the time of the last tick.
func (c *Chart) Time() float64 { return c.t }

// Ticks returns the number of ticks since creation or the last Clear.
func (c *Chart) Ticks() int { return c.ticks }

// Evicted returns the total number of samples aged out so far.
func (c *Chart) Evicted() int { return c.evicted }

// AddWindowListener registers l for window changes.
func (c *Chart) AddWindowListener(l WindowListener) {
	c.watches = append(c.watches, l)
}

// RemoveWindowListener unregisters l. Unknown listeners are ignored.
func (c *Chart) RemoveWindowListener(l WindowListener) {
	for i, cur := range c.watches {
		if cur == l {
			c.watches = append(c.watches[:i:i], c.watches[i+1:]...)
			return
		}
	}
}

// Tick appends values[i] at time t to series i, advances the window and then
// evicts samples older than MaxTime behind t.
func (c *Chart) Tick(t float64, values ...float64) error {
	if len(values) != len(c.series) {
		return fmt.Errorf("%w: got %d values for %d series", ErrValueCount, len(values), len(c.series))
	}
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidTime, t)
	}
	if c.started && t < c.t {
		return fmt.Errorf("%w: %v < %v", ErrTimeWentBack, t, c.t)
	}
	c.t = t
	c.ticks++
	c.started = true

	for i, s := range c.series {
		s.AddPoint(t, values[i])
	}

	if c.window.Advance(t) {
		c.notifyWindow()
	}

	minX := t - c.cfg.MaxTime
	for _, s := range c.series {
		c.evicted += s.EvictOlderThan(minX)
	}
	return nil
}

// Pan shifts the visible window by dx seconds; negative looks back.
func (c *Chart) Pan(dx float64) {
	if c.window.Pan(dx) {
		c.notifyWindow()
	}
}

// Zoom divides the window span by factor. Zooming out stops at MaxTime.
func (c *Chart) Zoom(factor float64) error {
	if err := c.window.Zoom(factor); err != nil {
		return err
	}
	c.notifyWindow()
	return nil
}

// ResetView drops any pan and restores the configured span.
func (c *Chart) ResetView() {
	if err := c.window.SetSpan(c.cfg.WindowSpan); err != nil {
		c.log.WithError(err).Warn("reset span failed")
	}
	c.window.ResetPan()
	c.notifyWindow()
}

// SetRange replaces the plotted value range.
func (c *Chart) SetRange(min, max float64) error {
	if err := c.window.SetRange(min, max); err != nil {
		return err
	}
	c.cfg.RangeMin, c.cfg.RangeMax = min, max
	c.notifyWindow()
	return nil
}

// Resize changes the plot size in cells.
func (c *Chart) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if width == c.cfg.Width && height == c.cfg.Height {
		return nil
	}
	if err := c.window.SetDest(transform.ScreenRect(width, height)); err != nil {
		return err
	}
	c.cfg.Width, c.cfg.Height = width, height
	c.notifyWindow()
	return nil
}

// Clear empties every series and rewinds time to zero.
func (c *Chart) Clear() {
	for _, s := range c.series {
		s.Clear()
	}
	c.t, c.ticks, c.started = 0, 0, false
	c.window.ResetPan()
	c.window.Advance(0)
	c.notifyWindow()
	c.log.Debug("chart cleared")
}

// Dispose detaches every series listener and window listener.
func (c *Chart) Dispose() {
	for _, s := range c.series {
		s.Dispose()
	}
	c.watches = nil
}

func (c *Chart) notifyWindow() {
	v := c.window.View()
	for _, l := range c.watches {
		l.WindowChanged(v)
	}
}
