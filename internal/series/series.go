package series

import (
	"errors"
	"fmt"
	"iter"

	"github.com/sirupsen/logrus"

	"github.com/zappabad/scrollchart/internal/series/core"
)

var ErrInvalidConfig = errors.New("invalid series config")

// Series is one named stream of (x, y) samples plus its display style and
// listeners. It is not safe for concurrent use; one producer drives it per tick.
type Series struct {
	name      string
	style     Style
	buf       *core.PointBuffer
	listeners []Listener

	notifying  bool
	underflows int

	log logrus.FieldLogger
}

// NewSeries creates an empty series. Empty display fields fall back to
// DefaultConfig; a non-positive InitialSize is rejected.
func NewSeries(cfg Config) (*Series, error) {
	if cfg.InitialSize <= 0 {
		return nil, fmt.Errorf("%w: initial size %d", ErrInvalidConfig, cfg.InitialSize)
	}
	def := DefaultConfig()
	if cfg.Name == "" {
		cfg.Name = def.Name
	}
	if cfg.Color == "" {
		cfg.Color = def.Color
	}
	if cfg.LineWidth <= 0 {
		cfg.LineWidth = def.LineWidth
	}

	buf, err := core.NewPointBuffer(cfg.InitialSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &Series{
		name:  cfg.Name,
		style: Style{Color: cfg.Color, LineWidth: cfg.LineWidth},
		buf:   buf,
		log:   logrus.WithFields(logrus.Fields{"tag": "Series", "series": cfg.Name}),
	}, nil
}

func (s *Series) Name() string { return s.name }
func (s *Series) Style() Style { return s.style }

// Length returns the number of stored samples.
func (s *Series) Length() int { return s.buf.Len() }

// Underflows counts ShiftData calls that found the series empty.
func (s *Series) Underflows() int { return s.underflows }

// AddPoint appends (x, y) and notifies every listener in registration order.
func (s *Series) AddPoint(x, y float64) {
	s.checkReentrant("AddPoint")

	prev, hasPrev := s.buf.Last()
	s.buf.Append(x, y)
	pt := core.Point{X: x, Y: y}

	s.notify(func(l Listener) { l.PointAdded(pt, prev, hasPrev) })
}

// AddXYDataPoint is an alias for AddPoint.
func (s *Series) AddXYDataPoint(x, y float64) { s.AddPoint(x, y) }

// Clear drops every sample and fires exactly one Cleared notification.
func (s *Series) Clear() {
	s.checkReentrant("Clear")

	s.buf.Clear()
	s.notify(func(l Listener) { l.Cleared() })
}

// ShiftData evicts the oldest sample. Plain listeners are not notified;
// ShiftListeners get Shifted. On an empty series it does nothing, records an
// underflow and returns false.
func (s *Series) ShiftData() bool {
	s.checkReentrant("ShiftData")

	p, ok := s.buf.EvictOldest()
	if !ok {
		s.underflows++
		s.log.WithField("underflows", s.underflows).Debug("shift on empty series ignored")
		return false
	}
	s.notifyShift(p)
	return true
}

// EvictOlderThan shifts samples while the oldest x is below minX and returns
// how many were evicted. It assumes ascending x.
func (s *Series) EvictOlderThan(minX float64) int {
	n := 0
	for s.buf.Len() > 0 && s.buf.X(0) < minX {
		s.ShiftData()
		n++
	}
	if n > 0 {
		s.log.WithFields(logrus.Fields{"evicted": n, "min_x": minX}).Debug("evicted aged-out samples")
	}
	return n
}

// GetDataPoint returns the i-th sample or an error wrapping core.ErrOutOfRange.
func (s *Series) GetDataPoint(i int) (core.Point, error) {
	return s.buf.At(i)
}

// Last returns the newest sample.
func (s *Series) Last() (core.Point, bool) { return s.buf.Last() }

// Search returns the first index whose x is >= x, or Length() if none.
func (s *Series) Search(x float64) int { return s.buf.Search(x) }

// Points iterates over all samples in index order.
func (s *Series) Points() iter.Seq2[int, core.Point] {
	return s.PointsFrom(0)
}

// PointsFrom iterates over samples starting at index from.
func (s *Series) PointsFrom(from int) iter.Seq2[int, core.Point] {
	return func(yield func(int, core.Point) bool) {
		if from < 0 {
			from = 0
		}
		for i := from; i < s.buf.Len(); i++ {
			if !yield(i, core.Point{X: s.buf.X(i), Y: s.buf.Y(i)}) {
				return
			}
		}
	}
}

// AddListener registers l. Adding the same listener twice delivers every
// notification twice.
func (s *Series) AddListener(l Listener) {
	if l == nil {
		return
	}
	s.listeners = append(s.listeners, l)
}

// RemoveListener unregisters the first registration of l. Removing a listener
// that is not registered is a no-op.
func (s *Series) RemoveListener(l Listener) {
	for i, cur := range s.listeners {
		if cur == l {
			// Copy so an in-flight notify keeps iterating its own snapshot.
			next := make([]Listener, 0, len(s.listeners)-1)
			next = append(next, s.listeners[:i]...)
			s.listeners = append(next, s.listeners[i+1:]...)
			return
		}
	}
}

// ListenerCount returns the number of registered listeners.
func (s *Series) ListenerCount() int { return len(s.listeners) }

// Dispose detaches every listener. The samples are kept.
func (s *Series) Dispose() {
	s.listeners = nil
	s.log.Debug("disposed")
}

func (s *Series) notify(fn func(Listener)) {
	was := s.notifying
	s.notifying = true
	defer func() { s.notifying = was }()
	for _, l := range s.listeners {
		fn(l)
	}
}

func (s *Series) notifyShift(p core.Point) {
	was := s.notifying
	s.notifying = true
	defer func() { s.notifying = was }()
	for _, l := range s.listeners {
		if sl, ok := l.(ShiftListener); ok {
			sl.Shifted(p)
		}
	}
}

func (s *Series) checkReentrant(op string) {
	if s.notifying {
		s.log.WithField("op", op).Warn("series mutated from inside a listener callback")
	}
}
