package app

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/zappabad/scrollchart/internal/chart"
	"github.com/zappabad/scrollchart/internal/render"
	"github.com/zappabad/scrollchart/internal/series"
	"github.com/zappabad/scrollchart/internal/sim"
)

// App owns the simulation, the chart it feeds and the renderer drawing it.
type App struct {
	Sim      *sim.Simulation
	Chart    *chart.Chart
	Renderer *render.Renderer

	cfg Config
	log logrus.FieldLogger
}

// New wires one series per simulated signal into a chart.
func New(cfg Config) (*App, error) {
	if cfg.SeriesSize <= 0 {
		cfg.SeriesSize = DefaultConfig().SeriesSize
	}

	s, err := sim.NewSimulation(cfg.Sim)
	if err != nil {
		return nil, fmt.Errorf("simulation: %w", err)
	}
	c, err := chart.New(cfg.Chart)
	if err != nil {
		return nil, fmt.Errorf("chart: %w", err)
	}
	for _, sc := range s.Config().Signals {
		if _, err := c.AddSeries(series.Config{
			Name:        sc.Name,
			Color:       sc.Color,
			LineWidth:   1,
			InitialSize: cfg.SeriesSize,
		}); err != nil {
			return nil, fmt.Errorf("series %q: %w", sc.Name, err)
		}
	}

	return &App{
		Sim:      s,
		Chart:    c,
		Renderer: render.New(c, cfg.Render),
		cfg:      cfg,
		log:      logrus.WithField("tag", "App"),
	}, nil
}

// Step runs one simulation tick and feeds it to the chart.
func (a *App) Step() (sim.Sample, error) {
	sample := a.Sim.Step()
	if err := a.Chart.Tick(sample.Time, sample.Values...); err != nil {
		a.log.WithError(err).WithField("tick", sample.Tick).Warn("chart tick failed")
		return sample, err
	}
	return sample, nil
}

// Reset clears the chart and rewinds the simulation.
func (a *App) Reset() {
	a.Chart.Clear()
	a.Sim.Reset()
}

// Close detaches the renderer and disposes the chart.
func (a *App) Close() {
	a.Renderer.Close()
	a.Chart.Dispose()
}
