// Package sim runs the impulse-detection experiment end to end: generate the
// reference, sample it with a single base-rate sampler and with the
// interleaved multi-branch sampler, and hand the bundle to an optional
// Reporter.
//
//	res, err := sim.Run(1.23, sim.WithReporter(report.NewText(os.Stdout)))
//
// Every run allocates its own sequences, so runs are independent and Sweep
// executes many of them concurrently.
package sim
