package chart

// Config holds configuration for a scrolling chart.
type Config struct {
	// WindowSpan is the visible width in seconds of simulation time.
	WindowSpan float64
	// MaxTime is how much history each series keeps behind the newest sample.
	// Zero means WindowSpan. Larger values leave room to pan back.
	MaxTime float64
	// RangeMin and RangeMax bound the plotted values.
	RangeMin float64
	RangeMax float64
	// Width and Height are the plot size in terminal cells.
	Width  int
	Height int
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		WindowSpan: 10,
		MaxTime:    10,
		RangeMin:   -1.5,
		RangeMax:   1.5,
		Width:      80,
		Height:     20,
	}
}
