package view

// Tape is a fixed-size ring of the most recent entries. Appending to a full
// tape overwrites the oldest entry.
type Tape[T any] struct {
	buf   []T
	start int
	count int
}

// NewTape creates a tape holding up to capacity entries. A non-positive
// capacity is treated as 1.
func NewTape[T any](capacity int) *Tape[T] {
	return &Tape[T]{buf: make([]T, max(capacity, 1))}
}

// Append adds v as the newest entry.
func (t *Tape[T]) Append(v T) {
	size := len(t.buf)
	if t.count < size {
		t.buf[(t.start+t.count)%size] = v
		t.count++
		return
	}
	t.buf[t.start] = v
	t.start = (t.start + 1) % size
}

// Last returns up to n newest entries, oldest first, as a copy.
func (t *Tape[T]) Last(n int) []T {
	if n <= 0 || t.count == 0 {
		return nil
	}
	n = min(n, t.count)
	size := len(t.buf)
	out := make([]T, n)
	first := t.start + t.count - n
	for i := range out {
		out[i] = t.buf[(first+i)%size]
	}
	return out
}

func (t *Tape[T]) Len() int { return t.count }

// Reset drops every entry.
func (t *Tape[T]) Reset() {
	clear(t.buf)
	t.start, t.count = 0, 0
}
