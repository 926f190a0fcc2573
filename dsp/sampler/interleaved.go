package sampler

import "github.com/cwbudde/algo-tisample/dsp/core"

// InterleavedResult is the output of an Interleaved sampler.
type InterleavedResult struct {
	// Time is the reconstructed axis at spacing 1/(N*BaseRate).
	Time   []float64
	Values []float64
	// Branches is the interleave factor N.
	Branches int
	// PhaseStride is the offset between neighbouring branches in
	// simulation samples.
	PhaseStride int
	Detection   Detection
}

// Interleaved models N base-rate samplers with staggered phases whose
// outputs are merged into one sequence at N times the base rate.
type Interleaved struct {
	cfg core.SamplingConfig
}

// NewInterleaved creates an interleaved multi-branch sampler.
func NewInterleaved(opts ...core.SamplingOption) *Interleaved {
	return &Interleaved{cfg: core.ApplySamplingOptions(opts...)}
}

// Config returns the sampler configuration.
func (s *Interleaved) Config() core.SamplingConfig {
	return s.cfg
}

// Branches returns the N decimated branch sequences of x. Branch k starts
// at k*PhaseStride and steps by Stride.
func (s *Interleaved) Branches(x []float64) ([][]float64, error) {
	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}
	stride := s.cfg.Stride()
	phase := s.cfg.PhaseStride()

	branches := make([][]float64, s.cfg.InterleaveFactor)
	for k := range branches {
		branches[k] = Decimate(x, k*phase, stride)
	}
	return branches, nil
}

// Sample splits x into branches, merges them into the reconstructed
// sequence and runs detection on it. The branch slices are not retained.
func (s *Interleaved) Sample(x []float64) (InterleavedResult, error) {
	branches, err := s.Branches(x)
	if err != nil {
		return InterleavedResult{}, err
	}

	n := s.cfg.ReconstructedLength()
	values := Merge(branches, s.cfg.InterleaveFactor, n)
	t := ReconstructedAxis(n, s.cfg.ReconstructedRate())

	return InterleavedResult{
		Time:        t,
		Values:      values,
		Branches:    s.cfg.InterleaveFactor,
		PhaseStride: s.cfg.PhaseStride(),
		Detection:   Detect(t, values),
	}, nil
}

// ReconstructedAxis returns n instants i/rate.
func ReconstructedAxis(n int, rate float64) []float64 {
	if n <= 0 || rate <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) / rate
	}
	return out
}
