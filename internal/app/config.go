package app

import (
	"github.com/zappabad/scrollchart/internal/chart"
	"github.com/zappabad/scrollchart/internal/render"
	"github.com/zappabad/scrollchart/internal/sim"
)

// Config holds configuration for the whole pipeline.
type Config struct {
	// Chart is the window and history configuration.
	Chart chart.Config
	// Render configures grid and cursor drawing.
	Render render.Config
	// Sim is the data source. Each signal becomes one series.
	Sim sim.Config
	// SeriesSize is the initial capacity hint for every series.
	SeriesSize int
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Chart:      chart.DefaultConfig(),
		Render:     render.DefaultConfig(),
		Sim:        sim.DefaultConfig(),
		SeriesSize: 1024,
	}
}
