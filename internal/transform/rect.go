package transform

import "fmt"

// Rect is an axis-aligned rectangle given by two corners. In view space a
// rectangle may be inverted on an axis (MinY > MaxY) to flip that axis.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

func (r Rect) Width() float64  { return r.MaxX - r.MinX }
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// ContainsX reports whether x lies within the closed horizontal extent of r.
func (r Rect) ContainsX(x float64) bool {
	lo, hi := r.MinX, r.MaxX
	if lo > hi {
		lo, hi = hi, lo
	}
	return x >= lo && x <= hi
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g,%g]x[%g,%g]", r.MinX, r.MaxX, r.MinY, r.MaxY)
}

// ScreenRect is the destination for a w x h cell grid with y growing downward,
// so larger values are drawn nearer the top.
func ScreenRect(w, h int) Rect {
	return Rect{
		MinX: 0,
		MinY: float64(h - 1),
		MaxX: float64(w - 1),
		MaxY: 0,
	}
}
