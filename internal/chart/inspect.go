package chart

import (
	"math"

	"github.com/zappabad/scrollchart/internal/series/core"
)

// Reading is the sample of one series nearest to an inspected x.
type Reading struct {
	Series string
	Color  string
	Point  core.Point
	// OK is false when the series has no samples or the column cannot be mapped.
	OK bool
}

// Inspect returns, for every series in order, the sample whose x is nearest
// to x. Ties go to the older sample.
func (c *Chart) Inspect(x float64) []Reading {
	out := make([]Reading, 0, len(c.series))
	for _, s := range c.series {
		r := Reading{Series: s.Name(), Color: s.Style().Color}
		if p, ok := nearest(s.Length(), s.Search(x), x, s.GetDataPoint); ok {
			r.Point, r.OK = p, true
		}
		out = append(out, r)
	}
	return out
}

// InspectColumn maps a plot column back to model time and inspects it.
func (c *Chart) InspectColumn(col int) (float64, []Reading) {
	x, _, ok := c.window.View().Unmap(float64(col), 0)
	if !ok {
		out := make([]Reading, 0, len(c.series))
		for _, s := range c.series {
			out = append(out, Reading{Series: s.Name(), Color: s.Style().Color})
		}
		return 0, out
	}
	return x, c.Inspect(x)
}

func nearest(n, i int, x float64, at func(int) (core.Point, error)) (core.Point, bool) {
	if n == 0 {
		return core.Point{}, false
	}
	if i >= n {
		i = n - 1
	}
	best, err := at(i)
	if err != nil {
		return core.Point{}, false
	}
	if i > 0 {
		if prev, err := at(i - 1); err == nil && math.Abs(x-prev.X) <= math.Abs(best.X-x) {
			best = prev
		}
	}
	return best, true
}
