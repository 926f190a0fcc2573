package core

import "math"

// SamplingConfig defines the rates and duration shared by the signal
// generator and both samplers.
type SamplingConfig struct {
	// Duration is the simulated time span in seconds.
	Duration float64
	// SimulationRate is the dense rate in Hz standing in for continuous time.
	SimulationRate float64
	// BaseRate is the rate in Hz of one physical sampler.
	BaseRate float64
	// InterleaveFactor is the number of phase-offset branches.
	InterleaveFactor int
}

// SamplingOption mutates a SamplingConfig.
type SamplingOption func(*SamplingConfig)

// DefaultSamplingConfig returns the reference scenario: 10 s simulated at
// 1 kHz, a 10 Hz sampler and ten interleaved branches.
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Duration:         10,
		SimulationRate:   1000,
		BaseRate:         10,
		InterleaveFactor: 10,
	}
}

// WithDuration sets the simulated duration in seconds.
func WithDuration(seconds float64) SamplingOption {
	return func(cfg *SamplingConfig) {
		if seconds > 0 {
			cfg.Duration = seconds
		}
	}
}

// WithSimulationRate sets the dense simulation rate.
func WithSimulationRate(rate float64) SamplingOption {
	return func(cfg *SamplingConfig) {
		if rate > 0 {
			cfg.SimulationRate = rate
		}
	}
}

// WithBaseRate sets the rate of a single physical sampler.
func WithBaseRate(rate float64) SamplingOption {
	return func(cfg *SamplingConfig) {
		if rate > 0 {
			cfg.BaseRate = rate
		}
	}
}

// WithInterleaveFactor sets the number of interleaved branches.
func WithInterleaveFactor(n int) SamplingOption {
	return func(cfg *SamplingConfig) {
		if n > 0 {
			cfg.InterleaveFactor = n
		}
	}
}

// ApplySamplingOptions applies zero or more options to the default config.
func ApplySamplingOptions(opts ...SamplingOption) SamplingConfig {
	cfg := DefaultSamplingConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Validate reports the first configuration problem, if any. Checks run in
// the order: positive parameters, integral sample count, base rate
// divisibility, interleave alignment.
func (c SamplingConfig) Validate() error {
	if err := c.ValidateBaseRate(); err != nil {
		return err
	}
	if c.InterleaveFactor < 1 {
		return invalidConfig("%d branches", c.InterleaveFactor)
	}
	if c.Stride()%c.InterleaveFactor != 0 {
		return &RateMismatchError{
			SimulationRate: c.SimulationRate,
			Rate:           c.ReconstructedRate(),
			Reason:         "base rate times interleave factor does not divide simulation rate",
		}
	}
	return nil
}

// ValidateBaseRate checks the time axis and that the base rate decimates
// the simulation rate evenly. The interleave factor is not inspected.
func (c SamplingConfig) ValidateBaseRate() error {
	if err := c.validateAxis(); err != nil {
		return err
	}
	if c.BaseRate <= 0 {
		return invalidConfig("base rate %g Hz", c.BaseRate)
	}

	ratio := c.SimulationRate / c.BaseRate
	if ratio < 1 || !IsIntegral(ratio, integralEpsilon) {
		return &RateMismatchError{
			SimulationRate: c.SimulationRate,
			Rate:           c.BaseRate,
			Reason:         "base rate does not divide simulation rate",
		}
	}
	return nil
}

// validateAxis checks only what the time axis needs.
func (c SamplingConfig) validateAxis() error {
	if c.Duration <= 0 || c.SimulationRate <= 0 {
		return invalidConfig("duration %g s at %g Hz", c.Duration, c.SimulationRate)
	}
	samples := c.Duration * c.SimulationRate
	if samples < 1 || !IsIntegral(samples, integralEpsilon) {
		return invalidConfig("duration %g s is not a whole number of samples at %g Hz", c.Duration, c.SimulationRate)
	}
	return nil
}

// ValidateAxis reports whether the config describes a usable time axis,
// ignoring the sampler rates.
func (c SamplingConfig) ValidateAxis() error {
	return c.validateAxis()
}

// SimulationLength returns the number of samples of the dense time axis.
func (c SamplingConfig) SimulationLength() int {
	return int(math.Round(c.Duration*c.SimulationRate)) + 1
}

// Stride returns the decimation stride in simulation samples.
// Only meaningful on a validated config.
func (c SamplingConfig) Stride() int {
	return int(math.Round(c.SimulationRate / c.BaseRate))
}

// PhaseStride returns the phase offset between neighbouring branches in
// simulation samples.
func (c SamplingConfig) PhaseStride() int {
	return c.Stride() / c.InterleaveFactor
}

// ReconstructedRate returns the effective rate of the interleaved output.
func (c SamplingConfig) ReconstructedRate() float64 {
	return float64(c.InterleaveFactor) * c.BaseRate
}

// ReconstructedLength returns the number of samples of the interleaved output.
// A trailing partial period is dropped.
func (c SamplingConfig) ReconstructedLength() int {
	return int(math.Floor(c.Duration*c.ReconstructedRate()+integralEpsilon)) + 1
}
