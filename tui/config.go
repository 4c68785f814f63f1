package tui

import (
	"github.com/zappabad/scrollchart/internal/app"
	"github.com/zappabad/scrollchart/tui/styles"
)

// Config holds configuration for the TUI application.
type Config struct {
	// App configures the data pipeline. Chart Width and Height are replaced
	// by the terminal size once it is known.
	App app.Config
	// PanStep is how far one pan key press moves the window, in seconds.
	PanStep float64
	// ZoomStep is the factor applied by one zoom key press.
	ZoomStep float64
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	ac := app.DefaultConfig()
	ac.Chart.MaxTime = 60
	ac.Render.GridColor = styles.GridColor
	ac.Render.CursorColor = styles.CursorColor

	return Config{
		App:      ac,
		PanStep:  1,
		ZoomStep: 1.25,
	}
}
