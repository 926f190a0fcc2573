package report

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/cwbudde/algo-tisample/dsp/sampler"
	"github.com/cwbudde/algo-tisample/sim"
)

// Text writes a console summary of each result.
type Text struct {
	w io.Writer
}

// NewText creates a text reporter writing to w.
func NewText(w io.Writer) *Text {
	return &Text{w: w}
}

// Report writes the narration and the per-sampler table for res.
func (r *Text) Report(res *sim.Result) error {
	p := &printer{w: r.w}
	cfg := res.Config

	p.printf("Target Impulse Location: %.2f seconds\n", res.ImpulseTime)
	if onGrid(res.ImpulseTime, cfg.BaseRate) {
		p.printf("Note: this IS a %s sampling instant (multiple of %g s)\n", hz(cfg.BaseRate), 1/cfg.BaseRate)
	} else {
		p.printf("Note: this is NOT a %s sampling instant\n", hz(cfg.BaseRate))
	}
	p.printf("\n")

	single := res.Single.Detection
	if single.Hit {
		p.printf("Standard %s Sampler Result: SUCCESS (Signal detected)\n", hz(cfg.BaseRate))
		p.printf("  Impulse captured at sample #%d, time=%.2fs\n", single.Index, single.Time)
	} else {
		p.printf("Standard %s Sampler Result: FAILED (Signal missed)\n", hz(cfg.BaseRate))
	}

	p.printf("\nSimulating %d Parallel Branches...\n", res.Interleaved.Branches)
	multi := res.Interleaved.Detection
	if multi.Hit {
		p.printf("Designed System Result: SUCCESS. Detected at t=%.2fs\n", multi.Time)
	} else {
		p.printf("Designed System Result: FAILED.\n")
	}
	p.printf("\n")
	if p.err != nil {
		return p.err
	}

	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	tp := &printer{w: tw}
	tp.printf("Sampler\tRate [Hz]\tSamples\tResult\tIndex\tTime [s]\tError [s]\tEnergy\n")
	tp.printf("-------\t---------\t-------\t------\t-----\t--------\t---------\t------\n")
	tp.row("single-rate", cfg.BaseRate, len(res.Single.Values), single, res.ImpulseTime)
	tp.row("interleaved", cfg.ReconstructedRate(), len(res.Interleaved.Values), multi, res.ImpulseTime)
	if tp.err != nil {
		return tp.err
	}
	return tw.Flush()
}

// SweepTable writes one line per result followed by the aggregate summary.
func SweepTable(w io.Writer, results []*sim.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	p := &printer{w: tw}
	p.printf("Impulse [s]\tSingle\tInterleaved\tDetected [s]\tEnergy\n")
	p.printf("-----------\t------\t-----------\t------------\t------\n")
	for _, res := range results {
		if res == nil {
			continue
		}
		p.printf("%.4f\t%s\t%s\t%s\t%g\n",
			res.ImpulseTime,
			outcome(res.Single.Detection.Hit),
			outcome(res.Interleaved.Detection.Hit),
			detectedTime(res.Interleaved.Detection.Time),
			res.Interleaved.Detection.Energy)
	}
	if p.err != nil {
		return p.err
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	s := sim.Summarize(results)
	p = &printer{w: w}
	p.printf("\ntrials=%d single_hits=%d interleaved_hits=%d max_error=%s single_energy=%g interleaved_energy=%g\n",
		s.Trials, s.SingleHits, s.InterleavedHits, detectedTime(s.MaxQuantizationError),
		s.SingleEnergy, s.InterleavedEnergy)
	return p.err
}

// printer keeps the first write error so call sites stay linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) row(name string, rate float64, samples int, d sampler.Detection, impulse float64) {
	if !d.Hit {
		p.printf("%s\t%g\t%d\t%s\t-\t-\t-\t%g\n", name, rate, samples, outcome(false), d.Energy)
		return
	}
	p.printf("%s\t%g\t%d\t%s\t%d\t%.3f\t%.1e\t%g\n",
		name, rate, samples, outcome(true), d.Index, d.Time, math.Abs(d.Time-impulse), d.Energy)
}

func outcome(hit bool) string {
	if hit {
		return "SUCCESS"
	}
	return "FAILED"
}

func detectedTime(t float64) string {
	if math.IsNaN(t) {
		return "-"
	}
	return fmt.Sprintf("%.4f", t)
}

func hz(rate float64) string {
	return fmt.Sprintf("%gHz", rate)
}

// onGrid reports whether t is a multiple of 1/rate.
func onGrid(t, rate float64) bool {
	n := t * rate
	return math.Abs(n-math.Round(n)) < 1e-9
}
