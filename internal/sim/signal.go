package sim

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

var ErrUnknownKind = errors.New("unknown signal kind")

// Signal produces one value per tick.
type Signal interface {
	Name() string
	// Next advances the signal to time t, dt seconds after the previous call.
	Next(t, dt float64) float64
}

// NewSignal builds the generator described by cfg. rng is only used by
// random signals.
func NewSignal(cfg SignalConfig, rng *rand.Rand) (Signal, error) {
	switch cfg.Kind {
	case KindSine:
		return &sine{cfg: cfg}, nil
	case KindRandomWalk:
		return &walk{cfg: cfg, rng: rng}, nil
	case KindSpring:
		return &spring{cfg: cfg, x: cfg.Amplitude}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, cfg.Kind)
	}
}

type sine struct {
	cfg SignalConfig
}

func (s *sine) Name() string { return s.cfg.Name }

func (s *sine) Next(t, _ float64) float64 {
	return s.cfg.Amplitude * math.Sin(2*math.Pi*s.cfg.Frequency*t+s.cfg.Phase)
}

// walk is a Gaussian random walk reflected at ±Amplitude.
type walk struct {
	cfg SignalConfig
	rng *rand.Rand
	v   float64
}

func (w *walk) Name() string { return w.cfg.Name }

func (w *walk) Next(_, dt float64) float64 {
	w.v += w.rng.NormFloat64() * w.cfg.Volatility * math.Sqrt(dt)
	a := w.cfg.Amplitude
	if a > 0 {
		for w.v > a || w.v < -a {
			if w.v > a {
				w.v = 2*a - w.v
			} else {
				w.v = -2*a - w.v
			}
		}
	}
	return w.v
}

// spring is a damped harmonic oscillator integrated with semi-implicit Euler.
type spring struct {
	cfg      SignalConfig
	x, v     float64
	lastKick float64
}

func (s *spring) Name() string { return s.cfg.Name }

func (s *spring) Next(t, dt float64) float64 {
	if s.cfg.KickEvery > 0 && t-s.lastKick >= s.cfg.KickEvery {
		s.x, s.v = s.cfg.Amplitude, 0
		s.lastKick = t
	}
	a := -s.cfg.Stiffness*s.x - s.cfg.Damping*s.v
	s.v += a * dt
	s.x += s.v * dt
	return s.x
}
