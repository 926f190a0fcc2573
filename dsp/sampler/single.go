package sampler

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-tisample/dsp/core"
)

// ErrLengthMismatch indicates a time axis and value sequence that are not
// aligned sample for sample.
var ErrLengthMismatch = errors.New("sampler: time and value lengths differ")

// SingleRateResult is the output of a SingleRate sampler.
type SingleRateResult struct {
	Time   []float64
	Values []float64
	// Stride is the decimation stride in simulation samples.
	Stride    int
	Detection Detection
}

// SingleRate models one sampler running at the base rate with zero phase.
// An impulse strictly between two of its instants is invisible to it.
type SingleRate struct {
	cfg core.SamplingConfig
}

// NewSingleRate creates a single-rate sampler. Only the duration,
// simulation rate and base rate of the config are used.
func NewSingleRate(opts ...core.SamplingOption) *SingleRate {
	return &SingleRate{cfg: core.ApplySamplingOptions(opts...)}
}

// Config returns the sampler configuration.
func (s *SingleRate) Config() core.SamplingConfig {
	return s.cfg
}

// Sample decimates the aligned time axis t and reference x by the base-rate
// stride and runs detection on the result.
func (s *SingleRate) Sample(t, x []float64) (SingleRateResult, error) {
	if err := s.cfg.ValidateBaseRate(); err != nil {
		return SingleRateResult{}, err
	}
	if len(t) != len(x) {
		return SingleRateResult{}, fmt.Errorf("%w: %d instants, %d values", ErrLengthMismatch, len(t), len(x))
	}

	stride := s.cfg.Stride()
	ts := Decimate(t, 0, stride)
	xs := Decimate(x, 0, stride)

	return SingleRateResult{
		Time:      ts,
		Values:    xs,
		Stride:    stride,
		Detection: Detect(ts, xs),
	}, nil
}
