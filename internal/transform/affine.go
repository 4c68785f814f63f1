package transform

import (
	"errors"
	"fmt"
)

var (
	ErrDegenerateRect = errors.New("degenerate rectangle")
	ErrInvalidSpan    = errors.New("window span must be > 0")
	ErrInvalidRange   = errors.New("value range must satisfy min < max")
	ErrInvalidZoom    = errors.New("zoom factor must be > 0")
	ErrInvalidHistory = errors.New("history must not be shorter than the window span")
)

// Affine is an axis-aligned model-to-view mapping: view = model*Scale + Offset.
// It has no rotation or skew terms. Values are immutable snapshots; a View
// replaces its Affine on every recompute.
type Affine struct {
	ScaleX, OffsetX float64
	ScaleY, OffsetY float64
}

// NewAffine derives the mapping that sends src onto dst corner to corner.
// It is a pure function of its arguments.
func NewAffine(src, dst Rect) (Affine, error) {
	if !finite(src.MinX, src.MinY, src.MaxX, src.MaxY, dst.MinX, dst.MinY, dst.MaxX, dst.MaxY) {
		return Affine{}, fmt.Errorf("%w: non-finite corner in %v -> %v", ErrDegenerateRect, src, dst)
	}
	if src.Width() == 0 || src.Height() == 0 {
		return Affine{}, fmt.Errorf("%w: source %v", ErrDegenerateRect, src)
	}
	sx := dst.Width() / src.Width()
	sy := dst.Height() / src.Height()
	return Affine{
		ScaleX:  sx,
		OffsetX: dst.MinX - src.MinX*sx,
		ScaleY:  sy,
		OffsetY: dst.MinY - src.MinY*sy,
	}, nil
}

// Apply maps a model point to view space.
func (a Affine) Apply(x, y float64) (float64, float64) {
	return x*a.ScaleX + a.OffsetX, y*a.ScaleY + a.OffsetY
}

// Invert maps a view point back to model space. ok is false when an axis
// collapses to zero scale.
func (a Affine) Invert(px, py float64) (x, y float64, ok bool) {
	if a.ScaleX == 0 || a.ScaleY == 0 {
		return 0, 0, false
	}
	return (px - a.OffsetX) / a.ScaleX, (py - a.OffsetY) / a.ScaleY, true
}
