package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/zappabad/scrollchart/internal/app"
	"github.com/zappabad/scrollchart/internal/sim"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run executes the headless chart and returns the process exit code. It
// returns instead of exiting so the app is always closed.
func run(args []string, out io.Writer) int {
	cfg := app.DefaultConfig()
	fs := flag.NewFlagSet("headless", flag.ContinueOnError)

	ticks := fs.Int("ticks", 200, "number of ticks to run")
	realtime := fs.Bool("realtime", false, "pace ticks by -interval instead of running flat out")
	fs.IntVar(&cfg.Chart.Width, "width", cfg.Chart.Width, "plot width in cells")
	fs.IntVar(&cfg.Chart.Height, "height", cfg.Chart.Height, "plot height in cells")
	fs.Float64Var(&cfg.Chart.WindowSpan, "span", cfg.Chart.WindowSpan, "visible window in seconds")
	fs.Float64Var(&cfg.Chart.MaxTime, "history", cfg.Chart.MaxTime, "seconds of history kept per series")
	fs.Float64Var(&cfg.Render.GridStep, "grid", cfg.Render.GridStep, "value step between grid rows, 0 disables")
	fs.Float64Var(&cfg.Sim.Dt, "dt", cfg.Sim.Dt, "simulated seconds per tick")
	fs.DurationVar(&cfg.Sim.TickInterval, "interval", cfg.Sim.TickInterval, "wall-clock time between ticks with -realtime")
	fs.Int64Var(&cfg.Sim.Seed, "seed", cfg.Sim.Seed, "random seed")
	cursor := fs.Int("cursor", -1, "inspect this plot column after the run")
	logLevel := fs.String("log-level", "warn", "log level")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		logrus.WithError(err).Error("invalid log level")
		return 2
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stderr)

	a, err := app.New(cfg)
	if err != nil {
		logrus.WithError(err).Error("failed to build chart")
		return 1
	}
	defer a.Close()

	if *realtime {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		err = a.Sim.Run(ctx, *ticks, func(s sim.Sample) {
			if err := a.Chart.Tick(s.Time, s.Values...); err != nil {
				logrus.WithError(err).Warn("tick failed")
			}
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			logrus.WithError(err).Error("run failed")
			return 1
		}
	} else {
		for i := 0; i < *ticks; i++ {
			if _, err := a.Step(); err != nil {
				logrus.WithError(err).Error("tick failed")
				return 1
			}
		}
	}

	if *cursor >= 0 {
		a.Renderer.SetCursor(*cursor)
	}
	fmt.Fprintln(out, a.Renderer.View())

	src := a.Chart.Window().Source()
	fmt.Fprintf(out, "t=%.2f ticks=%d window=[%.2f, %.2f] evicted=%d\n",
		a.Chart.Time(), a.Chart.Ticks(), src.MinX, src.MaxX, a.Chart.Evicted())
	for _, s := range a.Chart.Series() {
		fmt.Fprintf(out, "  %-8s %5d points, %d underflows\n", s.Name(), s.Length(), s.Underflows())
	}
	if *cursor >= 0 {
		x, readings := a.Chart.InspectColumn(*cursor)
		fmt.Fprintf(out, "cursor column %d -> t=%.2f\n", *cursor, x)
		for _, r := range readings {
			if r.OK {
				fmt.Fprintf(out, "  %-8s %v\n", r.Series, r.Point)
			}
		}
	}
	return 0
}
