package core

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrOutOfRange      = errors.New("index out of range")
	ErrInvalidCapacity = errors.New("invalid capacity hint")
)

// compactThreshold is the smallest dead prefix worth copying away.
const compactThreshold = 64

// PointBuffer is dense, index-aligned storage of (x, y) samples.
// It has no goroutines, mutexes, or notifications; Series layers those on top.
//
// Evicting the oldest sample advances a start offset instead of copying, and the
// dead prefix is compacted once it reaches half of the backing slices. Callers
// always observe indices renumbered from 0.
type PointBuffer struct {
	xs    []float64
	ys    []float64
	start int
}

// NewPointBuffer creates an empty buffer preallocated for hint samples.
func NewPointBuffer(hint int) (*PointBuffer, error) {
	if hint <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, hint)
	}
	return &PointBuffer{
		xs: make([]float64, 0, hint),
		ys: make([]float64, 0, hint),
	}, nil
}

// Len returns the number of valid samples.
func (b *PointBuffer) Len() int { return len(b.xs) - b.start }

// Cap returns the number of samples the buffer can hold before it has to grow.
func (b *PointBuffer) Cap() int { return cap(b.xs) - b.start }

// Append stores (x, y) at the next logical index.
func (b *PointBuffer) Append(x, y float64) {
	b.xs = append(b.xs, x)
	b.ys = append(b.ys, y)
}

// At returns the i-th sample, or an error wrapping ErrOutOfRange.
func (b *PointBuffer) At(i int) (Point, error) {
	if i < 0 || i >= b.Len() {
		return Point{}, fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, b.Len())
	}
	return Point{X: b.xs[b.start+i], Y: b.ys[b.start+i]}, nil
}

// X returns the x value at i without a range check.
func (b *PointBuffer) X(i int) float64 { return b.xs[b.start+i] }

// Y returns the y value at i without a range check.
func (b *PointBuffer) Y(i int) float64 { return b.ys[b.start+i] }

// Last returns the newest sample. ok is false when the buffer is empty.
func (b *PointBuffer) Last() (p Point, ok bool) {
	if b.Len() == 0 {
		return Point{}, false
	}
	n := len(b.xs) - 1
	return Point{X: b.xs[n], Y: b.ys[n]}, true
}

// Clear drops every sample but keeps the allocated capacity.
func (b *PointBuffer) Clear() {
	b.xs = b.xs[:0]
	b.ys = b.ys[:0]
	b.start = 0
}

// EvictOldest removes index 0 and renumbers the rest. On an empty buffer it is
// a no-op and returns false.
func (b *PointBuffer) EvictOldest() (Point, bool) {
	if b.Len() == 0 {
		return Point{}, false
	}
	p := Point{X: b.xs[b.start], Y: b.ys[b.start]}
	b.start++
	if b.start == len(b.xs) {
		b.Clear()
	} else if b.start >= compactThreshold && b.start*2 >= len(b.xs) {
		b.compact()
	}
	return p, true
}

func (b *PointBuffer) compact() {
	n := copy(b.xs, b.xs[b.start:])
	copy(b.ys, b.ys[b.start:])
	b.xs = b.xs[:n]
	b.ys = b.ys[:n]
	b.start = 0
}

// Search returns the first index whose x is >= x, or Len() if there is none.
// It assumes ascending x, which holds for time series.
func (b *PointBuffer) Search(x float64) int {
	xs := b.xs[b.start:]
	return sort.Search(len(xs), func(i int) bool { return xs[i] >= x })
}
