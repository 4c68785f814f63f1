package view

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTapeKeepsNewest(t *testing.T) {
	tape := NewTape[int](3)
	if got := tape.Last(5); got != nil {
		t.Errorf("expected nil from empty tape, got %v", got)
	}

	for i := 1; i <= 5; i++ {
		tape.Append(i)
	}

	if tape.Len() != 3 {
		t.Errorf("expected 3 entries, got %d", tape.Len())
	}
	if diff := cmp.Diff([]int{3, 4, 5}, tape.Last(10)); diff != "" {
		t.Errorf("Last(10) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{4, 5}, tape.Last(2)); diff != "" {
		t.Errorf("Last(2) mismatch (-want +got):\n%s", diff)
	}
}

func TestTapeLastIsACopy(t *testing.T) {
	tape := NewTape[string](2)
	tape.Append("a")
	got := tape.Last(1)
	got[0] = "changed"

	if tape.Last(1)[0] != "a" {
		t.Error("Last must not expose internal storage")
	}
}

func TestTapeReset(t *testing.T) {
	tape := NewTape[int](0)
	tape.Append(1)
	tape.Append(2)
	if diff := cmp.Diff([]int{2}, tape.Last(1)); diff != "" {
		t.Errorf("capacity clamp mismatch (-want +got):\n%s", diff)
	}

	tape.Reset()
	if tape.Len() != 0 || tape.Last(1) != nil {
		t.Errorf("expected empty tape after reset, got %d entries", tape.Len())
	}
}
