package transform

// Config holds the sliding window settings.
type Config struct {
	// Span is the visible width in model x units (usually seconds). Must be > 0.
	Span float64
	// RangeMin and RangeMax bound the visible values. RangeMin must be < RangeMax.
	RangeMin float64
	RangeMax float64
	// Dest is the view rectangle the window is mapped onto.
	Dest Rect
	// History is how far back from the newest time samples are kept. The span
	// never grows past it and panning never reaches behind it. Zero means no limit.
	History float64
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Span:     10,
		RangeMin: -1,
		RangeMax: 1,
		Dest:     ScreenRect(80, 20),
	}
}
