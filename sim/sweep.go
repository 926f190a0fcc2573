package sim

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// Sweep runs one simulation per impulse time with at most workers running
// concurrently (workers < 1 means one per time). Results are returned in
// input order. Reporters are not invoked. The first error cancels the
// remaining trials.
func Sweep(ctx context.Context, times []float64, workers int, opts ...Option) ([]*Result, error) {
	c := applyOptions(opts)
	c.reporter = nil

	results := make([]*Result, len(times))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, ti := range times {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := run(ti, c)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c.logger.Debug("sweep complete", "trials", len(times))
	return results, nil
}

// UniformTimes returns n impulse times evenly spaced over [0, duration].
func UniformTimes(duration float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{0}
	}
	out := floats.Span(make([]float64, n), 0, duration)
	// Span may overshoot the end by an ulp, which the generator rejects.
	out[n-1] = duration
	return out
}

// SweepSummary aggregates detection outcomes over many runs.
type SweepSummary struct {
	Trials          int
	SingleHits      int
	InterleavedHits int
	// MaxQuantizationError is the worst interleaved timing error over
	// the trials it detected, or NaN when it detected none.
	MaxQuantizationError float64
	// SingleEnergy and InterleavedEnergy total the sampled energy each
	// sampler captured across all trials.
	SingleEnergy      float64
	InterleavedEnergy float64
}

// Summarize counts hits across results. Nil entries are skipped.
func Summarize(results []*Result) SweepSummary {
	s := SweepSummary{MaxQuantizationError: math.NaN()}
	for _, r := range results {
		if r == nil {
			continue
		}
		s.Trials++
		s.SingleEnergy += r.Single.Detection.Energy
		s.InterleavedEnergy += r.Interleaved.Detection.Energy
		if r.Single.Detection.Hit {
			s.SingleHits++
		}
		if r.Interleaved.Detection.Hit {
			s.InterleavedHits++
			q := r.QuantizationError()
			if math.IsNaN(s.MaxQuantizationError) || q > s.MaxQuantizationError {
				s.MaxQuantizationError = q
			}
		}
	}
	return s
}
