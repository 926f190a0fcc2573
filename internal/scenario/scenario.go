// Package scenario loads simulation parameters from YAML files.
package scenario

import (
	"fmt"
	"os"

	"github.com/cwbudde/algo-tisample/dsp/core"
	"gopkg.in/yaml.v3"
)

// PlotConfig controls the optional figure.
type PlotConfig struct {
	Output   string  `yaml:"output"`
	WidthCM  float64 `yaml:"width_cm"`
	HeightCM float64 `yaml:"height_cm"`
}

// SweepConfig controls the optional multi-trial run.
type SweepConfig struct {
	Trials  int `yaml:"trials"`
	Workers int `yaml:"workers"`
}

// Scenario is the top-level structure of a scenario file.
type Scenario struct {
	ImpulseTime      float64     `yaml:"impulse_time"`
	Duration         float64     `yaml:"duration"`
	SimulationRate   float64     `yaml:"simulation_rate"`
	BaseRate         float64     `yaml:"base_rate"`
	InterleaveFactor int         `yaml:"interleave_factor"`
	Plot             PlotConfig  `yaml:"plot"`
	Sweep            SweepConfig `yaml:"sweep"`
}

// Default returns the reference scenario: an impulse at 1.23 s.
func Default() Scenario {
	cfg := core.DefaultSamplingConfig()
	return Scenario{
		ImpulseTime:      1.23,
		Duration:         cfg.Duration,
		SimulationRate:   cfg.SimulationRate,
		BaseRate:         cfg.BaseRate,
		InterleaveFactor: cfg.InterleaveFactor,
		Plot:             PlotConfig{WidthCM: 25, HeightCM: 25},
		Sweep:            SweepConfig{Workers: 4},
	}
}

// Load reads path and overlays it on Default. Keys absent from the file
// keep their default values.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML scenario data over Default.
func Parse(data []byte) (Scenario, error) {
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scenario{}, fmt.Errorf("parse scenario: %w", err)
	}
	return s, nil
}

// SamplingOptions converts the scenario rates into sampler options.
func (s Scenario) SamplingOptions() []core.SamplingOption {
	return []core.SamplingOption{
		core.WithDuration(s.Duration),
		core.WithSimulationRate(s.SimulationRate),
		core.WithBaseRate(s.BaseRate),
		core.WithInterleaveFactor(s.InterleaveFactor),
	}
}

// SamplingConfig returns the effective sampling configuration.
func (s Scenario) SamplingConfig() core.SamplingConfig {
	return core.ApplySamplingOptions(s.SamplingOptions()...)
}
