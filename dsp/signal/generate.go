package signal

import (
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-tisample/dsp/core"
	"gonum.org/v1/gonum/floats"
)

// Continuous is a dense reference sequence aligned 1:1 with its time axis.
type Continuous struct {
	Time   []float64
	Values []float64
	// Index is the position of the impulse in Values.
	Index int
	// ImpulseTime is the instant that was requested, before snapping to
	// the time axis.
	ImpulseTime float64
}

// Generator creates impulse reference sequences from a shared configuration.
type Generator struct {
	cfg core.SamplingConfig
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.SamplingOption) *Generator {
	return &Generator{cfg: core.ApplySamplingOptions(opts...)}
}

// Config returns the generator sampling configuration.
func (g *Generator) Config() core.SamplingConfig {
	return g.cfg
}

// TimeAxis returns duration*rate+1 evenly spaced instants from 0 to
// duration inclusive.
func TimeAxis(duration, rate float64) ([]float64, error) {
	cfg := core.SamplingConfig{Duration: duration, SimulationRate: rate}
	if err := cfg.ValidateAxis(); err != nil {
		return nil, err
	}
	return floats.Span(make([]float64, cfg.SimulationLength()), 0, duration), nil
}

// ImpulseAt returns a unit impulse on the time-axis sample nearest to t.
// Equidistant samples resolve to the lower index.
func (g *Generator) ImpulseAt(t float64) (Continuous, error) {
	if err := g.cfg.ValidateAxis(); err != nil {
		return Continuous{}, err
	}
	if math.IsNaN(t) || t < 0 || t > g.cfg.Duration {
		return Continuous{}, &core.OutOfRangeError{Time: t, Duration: g.cfg.Duration}
	}

	axis, err := TimeAxis(g.cfg.Duration, g.cfg.SimulationRate)
	if err != nil {
		return Continuous{}, err
	}

	idx := Nearest(axis, t)
	values, err := Impulse(1, len(axis), idx)
	if err != nil {
		return Continuous{}, err
	}

	return Continuous{
		Time:        axis,
		Values:      values,
		Index:       idx,
		ImpulseTime: t,
	}, nil
}

// Nearest returns argmin |axis[i] - t| for an increasing axis, preferring
// the lower index on a tie. It returns -1 for an empty axis.
func Nearest(axis []float64, t float64) int {
	if len(axis) == 0 {
		return -1
	}
	i := sort.SearchFloat64s(axis, t)
	if i == len(axis) {
		return i - 1
	}
	if i > 0 && t-axis[i-1] <= axis[i]-t {
		return i - 1
	}
	return i
}

// Impulse generates a sequence of the given length that is zero except for
// amplitude at pos.
func Impulse(amplitude float64, samples, pos int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("impulse samples must be > 0: %d", samples)
	}
	if pos < 0 || pos >= samples {
		return nil, fmt.Errorf("impulse position %d outside [0, %d)", pos, samples)
	}
	out := make([]float64, samples)
	out[pos] = amplitude
	return out, nil
}
