package series

import "github.com/zappabad/scrollchart/internal/series/core"

// Listener receives synchronous notifications from a Series.
//
// Implementations must be comparable (usually a pointer) because RemoveListener
// matches by identity. A listener must not mutate the series it listens to.
type Listener interface {
	// PointAdded is called after pt was appended. prev is the sample at the slot
	// immediately before pt and is only meaningful when hasPrev is true.
	PointAdded(pt, prev core.Point, hasPrev bool)
	// Cleared is called once per Clear, regardless of how many samples were dropped.
	Cleared()
}

// ShiftListener is an optional extension of Listener. Series calls Shifted once
// per evicted sample; plain listeners are not told about shifts.
type ShiftListener interface {
	Listener
	Shifted(evicted core.Point)
}

// ListenerFuncs adapts plain functions to Listener and ShiftListener.
// Use a pointer so that it can be removed again.
type ListenerFuncs struct {
	OnPointAdded func(pt, prev core.Point, hasPrev bool)
	OnCleared    func()
	OnShifted    func(evicted core.Point)
}

func (f *ListenerFuncs) PointAdded(pt, prev core.Point, hasPrev bool) {
	if f.OnPointAdded != nil {
		f.OnPointAdded(pt, prev, hasPrev)
	}
}

func (f *ListenerFuncs) Cleared() {
	if f.OnCleared != nil {
		f.OnCleared()
	}
}

func (f *ListenerFuncs) Shifted(evicted core.Point) {
	if f.OnShifted != nil {
		f.OnShifted(evicted)
	}
}
