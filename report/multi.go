package report

import (
	"errors"

	"github.com/cwbudde/algo-tisample/sim"
)

// Multi returns a reporter that runs each non-nil reporter in order and
// joins their errors.
func Multi(reporters ...sim.Reporter) sim.Reporter {
	return sim.ReporterFunc(func(res *sim.Result) error {
		var errs []error
		for _, r := range reporters {
			if r == nil {
				continue
			}
			if err := r.Report(res); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})
}
