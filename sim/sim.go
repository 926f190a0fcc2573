package sim

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/cwbudde/algo-tisample/dsp/core"
	"github.com/cwbudde/algo-tisample/dsp/sampler"
	"github.com/cwbudde/algo-tisample/dsp/signal"
)

// Result bundles every sequence and detection produced by one run.
type Result struct {
	Config      core.SamplingConfig
	ImpulseTime float64
	Continuous  signal.Continuous
	Single      sampler.SingleRateResult
	Interleaved sampler.InterleavedResult
}

// QuantizationError returns the distance between the interleaved detection
// and the requested impulse time, or NaN when the interleaved sampler missed.
func (r *Result) QuantizationError() float64 {
	if !r.Interleaved.Detection.Hit {
		return math.NaN()
	}
	return math.Abs(r.Interleaved.Detection.Time - r.ImpulseTime)
}

// Reporter consumes a finished Result.
type Reporter interface {
	Report(res *Result) error
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(res *Result) error

// Report calls f(res).
func (f ReporterFunc) Report(res *Result) error {
	return f(res)
}

type config struct {
	sampling []core.SamplingOption
	reporter Reporter
	logger   *slog.Logger
}

// Option configures Run and Sweep.
type Option func(*config)

// WithSampling sets the rates and duration. Unset fields keep the
// defaults of core.DefaultSamplingConfig.
func WithSampling(opts ...core.SamplingOption) Option {
	return func(c *config) {
		c.sampling = append(c.sampling, opts...)
	}
}

// WithReporter installs a reporter invoked once the run has completed.
func WithReporter(r Reporter) Option {
	return func(c *config) {
		c.reporter = r
	}
}

// WithLogger sets the logger used for debug events.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func applyOptions(opts []Option) config {
	c := config{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}

// Run simulates one impulse at impulseTime seconds.
//
// Configuration and range errors are returned before any sampling and
// yield a nil Result. A reporter error is returned wrapped together with
// the complete Result.
func Run(impulseTime float64, opts ...Option) (*Result, error) {
	c := applyOptions(opts)
	res, err := run(impulseTime, c)
	if err != nil {
		return nil, err
	}
	if c.reporter != nil {
		if err := c.reporter.Report(res); err != nil {
			return res, fmt.Errorf("sim: report: %w", err)
		}
	}
	return res, nil
}

func run(impulseTime float64, c config) (*Result, error) {
	cfg := core.ApplySamplingOptions(c.sampling...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ref, err := signal.NewGenerator(c.sampling...).ImpulseAt(impulseTime)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("reference generated",
		"impulse_time", impulseTime,
		"index", ref.Index,
		"samples", len(ref.Values))

	single, err := sampler.NewSingleRate(c.sampling...).Sample(ref.Time, ref.Values)
	if err != nil {
		return nil, err
	}
	multi, err := sampler.NewInterleaved(c.sampling...).Sample(ref.Values)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("sampling complete",
		"impulse_time", impulseTime,
		"single_hit", single.Detection.Hit,
		"interleaved_hit", multi.Detection.Hit,
		"interleaved_time", multi.Detection.Time)

	return &Result{
		Config:      cfg,
		ImpulseTime: impulseTime,
		Continuous:  ref,
		Single:      single,
		Interleaved: multi,
	}, nil
}
