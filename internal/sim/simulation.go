package sim

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

// Sample is the output of one tick.
type Sample struct {
	Tick   int
	Time   float64
	Values []float64
}

// Simulation is the game loop that feeds the chart. It is deterministic for a
// given Config and has no goroutines of its own.
type Simulation struct {
	cfg     Config
	signals []Signal
	tick    int

	log logrus.FieldLogger
}

// NewSimulation wires up a new Simulation.
func NewSimulation(cfg Config) (*Simulation, error) {
	if cfg.Dt <= 0 {
		cfg.Dt = DefaultConfig().Dt
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultConfig().TickInterval
	}

	s := &Simulation{
		cfg: cfg,
		log: logrus.WithField("tag", "Simulation"),
	}
	if err := s.build(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Simulation) build() error {
	rng := rand.New(rand.NewSource(s.cfg.Seed))
	signals := make([]Signal, 0, len(s.cfg.Signals))
	for i, sc := range s.cfg.Signals {
		sig, err := NewSignal(sc, rng)
		if err != nil {
			return fmt.Errorf("signal %d: %w", i, err)
		}
		signals = append(signals, sig)
	}
	s.signals = signals
	s.tick = 0
	return nil
}

// Config returns the effective configuration.
func (s *Simulation) Config() Config { return s.cfg }

// Time returns the simulated time the next Step will run at.
func (s *Simulation) Time() float64 { return float64(s.tick) * s.cfg.Dt }

// Step runs a single tick and returns one value per signal. The first step is
// at time 0.
func (s *Simulation) Step() Sample {
	t := float64(s.tick) * s.cfg.Dt
	out := Sample{
		Tick:   s.tick,
		Time:   t,
		Values: make([]float64, len(s.signals)),
	}
	for i, sig := range s.signals {
		out.Values[i] = sig.Next(t, s.cfg.Dt)
	}
	s.tick++

	s.log.WithFields(logrus.Fields{"tick": out.Tick, "t": t}).Debug("step")
	return out
}

// Reset rewinds to tick 0 with freshly seeded signals.
func (s *Simulation) Reset() {
	if err := s.build(); err != nil {
		// Signals were valid at construction, so this cannot fail.
		s.log.WithError(err).Error("reset failed")
	}
}

// Run steps the simulation every TickInterval and hands each sample to fn.
// ticks <= 0 runs until ctx is done. It returns ctx.Err() when cancelled.
func (s *Simulation) Run(ctx context.Context, ticks int, fn func(Sample)) error {
	ticker := time.NewTicker(s.cfg.TickInterval)
	defer ticker.Stop()

	for n := 0; ticks <= 0 || n < ticks; n++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			fn(s.Step())
		}
	}
	return nil
}
