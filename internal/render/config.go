package render

import "github.com/NimbleMarkets/ntcharts/canvas/runes"

// Config holds renderer options.
type Config struct {
	// GridStep is the value distance between horizontal grid rows. Zero disables the grid.
	GridStep float64
	// GridColor and CursorColor are lipgloss color strings.
	GridColor   string
	CursorColor string
	// LineStyle selects the box-drawing runes used for traces.
	LineStyle runes.LineStyle
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		GridStep:    0.5,
		GridColor:   "#374151",
		CursorColor: "#F59E0B",
		LineStyle:   runes.ArcLineStyle,
	}
}
