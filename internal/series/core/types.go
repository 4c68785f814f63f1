package core

import "strconv"

// Point is a single (x, y) sample. X is usually simulation time.
type Point struct {
	X float64
	Y float64
}

func (p Point) String() string {
	return "(" + strconv.FormatFloat(p.X, 'g', -1, 64) + ", " + strconv.FormatFloat(p.Y, 'g', -1, 64) + ")"
}
