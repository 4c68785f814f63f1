package series

// Config holds construction options for a Series.
type Config struct {
	// Name labels the series in legends and inspector readouts.
	Name string
	// Color is a display tag (a lipgloss color string). The series never interprets it.
	Color string
	// LineWidth is a display hint for renderers.
	LineWidth float64
	// InitialSize is the expected maximum number of samples. Must be > 0.
	InitialSize int
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Name:        "series",
		Color:       "#10B981",
		LineWidth:   1,
		InitialSize: 1024,
	}
}

// Style is the opaque display identity of a series.
type Style struct {
	Color     string
	LineWidth float64
}
