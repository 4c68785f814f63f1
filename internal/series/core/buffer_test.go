package core

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"
)

type fataler interface {
	Fatalf(format string, args ...any)
}

func mustBuffer(t fataler, hint int) *PointBuffer {
	b, err := NewPointBuffer(hint)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return b
}

func contents(b *PointBuffer) []Point {
	out := make([]Point, 0, b.Len())
	for i := 0; i < b.Len(); i++ {
		p, err := b.At(i)
		if err != nil {
			panic(err)
		}
		out = append(out, p)
	}
	return out
}

func TestNewPointBufferRejectsBadHint(t *testing.T) {
	for _, hint := range []int{0, -1, -100} {
		_, err := NewPointBuffer(hint)
		if !errors.Is(err, ErrInvalidCapacity) {
			t.Errorf("hint %d: expected ErrInvalidCapacity, got %v", hint, err)
		}
	}
}

func TestAppendAndAt(t *testing.T) {
	b := mustBuffer(t, 4)

	b.Append(0, 10)
	b.Append(1, 11)
	b.Append(2, 12)

	if b.Len() != 3 {
		t.Fatalf("expected length 3, got %d", b.Len())
	}
	p, err := b.At(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != (Point{X: 1, Y: 11}) {
		t.Errorf("expected (1, 11), got %v", p)
	}
	if b.X(2) != 2 || b.Y(2) != 12 {
		t.Errorf("expected unchecked accessors to return (2, 12), got (%v, %v)", b.X(2), b.Y(2))
	}
}

func TestAtOutOfRange(t *testing.T) {
	b := mustBuffer(t, 2)
	if _, err := b.At(0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange on empty buffer, got %v", err)
	}

	b.Append(1, 1)
	b.Append(2, 2)

	if _, err := b.At(b.Len()); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange for At(length), got %v", err)
	}
	if _, err := b.At(-1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange for At(-1), got %v", err)
	}
	if _, err := b.At(b.Len() - 1); err != nil {
		t.Errorf("expected At(length-1) to succeed, got %v", err)
	}
}

func TestClearKeepsCapacity(t *testing.T) {
	b := mustBuffer(t, 8)
	for i := 0; i < 8; i++ {
		b.Append(float64(i), 0)
	}
	capBefore := b.Cap()

	b.Clear()

	if b.Len() != 0 {
		t.Errorf("expected empty buffer, got length %d", b.Len())
	}
	if b.Cap() != capBefore {
		t.Errorf("expected capacity %d to be kept, got %d", capBefore, b.Cap())
	}
	if _, ok := b.Last(); ok {
		t.Error("expected no last point after clear")
	}
}

func TestEvictOldest(t *testing.T) {
	b := mustBuffer(t, 4)

	if _, ok := b.EvictOldest(); ok {
		t.Fatal("expected eviction on empty buffer to be a no-op")
	}

	b.Append(0, 0)
	b.Append(1, 1)
	b.Append(2, 2)

	p, ok := b.EvictOldest()
	if !ok {
		t.Fatal("expected eviction to succeed")
	}
	if p != (Point{X: 0, Y: 0}) {
		t.Errorf("expected evicted (0, 0), got %v", p)
	}
	if b.Len() != 2 {
		t.Fatalf("expected length 2, got %d", b.Len())
	}
	first, _ := b.At(0)
	if first != (Point{X: 1, Y: 1}) {
		t.Errorf("expected indices renumbered from 0, got %v at index 0", first)
	}
}

func TestEvictOldestCompacts(t *testing.T) {
	b := mustBuffer(t, 16)
	const n = 1000
	for i := 0; i < n; i++ {
		b.Append(float64(i), float64(-i))
	}
	for i := 0; i < n-10; i++ {
		if _, ok := b.EvictOldest(); !ok {
			t.Fatalf("eviction %d failed", i)
		}
	}
	if b.start >= compactThreshold && b.start*2 >= len(b.xs) {
		t.Errorf("expected dead prefix to be compacted, start=%d len=%d", b.start, len(b.xs))
	}
	want := make([]Point, 0, 10)
	for i := n - 10; i < n; i++ {
		want = append(want, Point{X: float64(i), Y: float64(-i)})
	}
	if diff := cmp.Diff(want, contents(b)); diff != "" {
		t.Errorf("unexpected contents after compaction (-want +got):\n%s", diff)
	}
}

func TestSearch(t *testing.T) {
	b := mustBuffer(t, 8)
	for i := 0; i < 8; i++ {
		b.Append(float64(i*2), 0)
	}
	b.EvictOldest()

	tests := []struct {
		x    float64
		want int
	}{
		{x: -5, want: 0},
		{x: 2, want: 0},
		{x: 3, want: 1},
		{x: 14, want: 6},
		{x: 15, want: 7},
	}
	for _, tt := range tests {
		if got := b.Search(tt.x); got != tt.want {
			t.Errorf("Search(%v) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestAppendReadRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		hint := rapid.IntRange(1, 8).Draw(rt, "hint")
		xs := rapid.SliceOf(rapid.Float64Range(-1e9, 1e9)).Draw(rt, "xs")

		b := mustBuffer(rt, hint)
		want := make([]Point, 0, len(xs))
		for i, x := range xs {
			b.Append(x, float64(i))
			want = append(want, Point{X: x, Y: float64(i)})
		}

		if b.Len() != len(want) {
			rt.Fatalf("expected length %d, got %d", len(want), b.Len())
		}
		for i, w := range want {
			got, err := b.At(i)
			if err != nil {
				rt.Fatalf("At(%d): %v", i, err)
			}
			if got != w {
				rt.Fatalf("At(%d) = %v, want %v", i, got, w)
			}
		}
	})
}

func TestLengthMonotonicityProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		b := mustBuffer(rt, rapid.IntRange(1, 4).Draw(rt, "hint"))
		ops := rapid.SliceOf(rapid.IntRange(0, 2)).Draw(rt, "ops")
		for i, op := range ops {
			before := b.Len()
			switch op {
			case 0:
				b.Append(float64(i), 0)
				if b.Len() != before+1 {
					rt.Fatalf("append: expected length %d, got %d", before+1, b.Len())
				}
			case 1:
				_, ok := b.EvictOldest()
				want := before - 1
				if !ok {
					want = before
					if before != 0 {
						rt.Fatalf("evict failed on non-empty buffer of length %d", before)
					}
				}
				if b.Len() != want {
					rt.Fatalf("evict: expected length %d, got %d", want, b.Len())
				}
			case 2:
				b.Clear()
				if b.Len() != 0 {
					rt.Fatalf("clear: expected length 0, got %d", b.Len())
				}
			}
			if b.Len() < 0 || b.Len() > b.Cap() {
				rt.Fatalf("invariant violated: length %d, capacity %d", b.Len(), b.Cap())
			}
		}
	})
}
