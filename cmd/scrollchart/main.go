package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/zappabad/scrollchart/tui"
)

func main() {
	cfg := tui.DefaultConfig()

	flag.Float64Var(&cfg.App.Chart.WindowSpan, "span", cfg.App.Chart.WindowSpan, "visible window in seconds")
	flag.Float64Var(&cfg.App.Chart.MaxTime, "history", cfg.App.Chart.MaxTime, "seconds of history kept for panning")
	flag.Float64Var(&cfg.App.Chart.RangeMin, "min", cfg.App.Chart.RangeMin, "lowest plotted value")
	flag.Float64Var(&cfg.App.Chart.RangeMax, "max", cfg.App.Chart.RangeMax, "highest plotted value")
	flag.Float64Var(&cfg.App.Render.GridStep, "grid", cfg.App.Render.GridStep, "value step between grid rows, 0 disables")
	flag.Float64Var(&cfg.App.Sim.Dt, "dt", cfg.App.Sim.Dt, "simulated seconds per tick")
	flag.DurationVar(&cfg.App.Sim.TickInterval, "interval", cfg.App.Sim.TickInterval, "wall-clock time between ticks")
	flag.Int64Var(&cfg.App.Sim.Seed, "seed", time.Now().UnixNano(), "random seed")
	logFile := flag.String("log", "", "write logs to this file")
	logLevel := flag.String("log-level", "info", "log level")
	flag.Parse()

	// The alt screen owns stdout, so logs go to a file or nowhere.
	logrus.SetOutput(io.Discard)
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logrus.SetOutput(f)
	}
	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing log level: %v\n", err)
		os.Exit(1)
	}
	logrus.SetLevel(level)

	model, err := tui.NewModel(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating chart: %v\n", err)
		os.Exit(1)
	}
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
