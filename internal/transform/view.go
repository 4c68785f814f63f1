package transform

// View holds the current source and destination rectangles and the Affine
// derived from them. The zero View maps nothing until the first Recompute.
type View struct {
	src, dst Rect
	m        Affine
	version  uint64
}

// Recompute replaces the held mapping with one derived from src and dst.
// On error the previous mapping is kept.
func (v *View) Recompute(src, dst Rect) error {
	m, err := NewAffine(src, dst)
	if err != nil {
		return err
	}
	v.src, v.dst, v.m = src, dst, m
	v.version++
	return nil
}

// Mapping returns the current mapping. Re-fetch it after every recompute.
func (v *View) Mapping() Affine { return v.m }

func (v *View) Source() Rect { return v.src }
func (v *View) Dest() Rect   { return v.dst }

// Version increases by one on every successful Recompute.
func (v *View) Version() uint64 { return v.version }

// MapPoint applies the current mapping.
func (v *View) MapPoint(x, y float64) (float64, float64) {
	return v.m.Apply(x, y)
}

// Unmap applies the inverse of the current mapping.
func (v *View) Unmap(px, py float64) (float64, float64, bool) {
	return v.m.Invert(px, py)
}
