package sim

import "time"

// Kind selects a signal generator.
type Kind string

const (
	KindSine       Kind = "sine"
	KindRandomWalk Kind = "walk"
	KindSpring     Kind = "spring"
)

// SignalConfig describes one generated quantity.
type SignalConfig struct {
	// Name labels the series the signal feeds.
	Name string
	// Kind selects the generator.
	Kind Kind
	// Color is the display color of the series.
	Color string
	// Amplitude bounds the output to [-Amplitude, Amplitude] for sine and walk,
	// and is the initial displacement for spring.
	Amplitude float64
	// Frequency in Hz, used by sine.
	Frequency float64
	// Phase in radians, used by sine.
	Phase float64
	// Volatility is the per-sqrt-second step deviation of a random walk.
	Volatility float64
	// Stiffness and Damping parameterize the spring.
	Stiffness float64
	Damping   float64
	// KickEvery re-excites a spring every so many seconds. Zero never kicks.
	KickEvery float64
}

// Config holds configuration for the simulation.
type Config struct {
	// Dt is the simulated time per tick, in seconds.
	Dt float64
	// Seed makes random signals reproducible.
	Seed int64
	// TickInterval is the wall-clock time between ticks in Run.
	TickInterval time.Duration
	// Signals lists the generated quantities in series order.
	Signals []SignalConfig
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Dt:           0.1,
		Seed:         1,
		TickInterval: 100 * time.Millisecond,
		Signals: []SignalConfig{
			{Name: "sine", Kind: KindSine, Color: "#10B981", Amplitude: 1, Frequency: 0.25},
			{Name: "walk", Kind: KindRandomWalk, Color: "#3B82F6", Amplitude: 1, Volatility: 0.6},
			{Name: "spring", Kind: KindSpring, Color: "#EF4444", Amplitude: 1, Stiffness: 6, Damping: 0.4, KickEvery: 8},
		},
	}
}
