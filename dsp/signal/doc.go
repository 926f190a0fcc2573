// Package signal generates the dense reference sequences that stand in for
// continuous time in the sampling simulations.
//
// A Generator is configured with core.SamplingOption values. ImpulseAt
// places a single unit impulse on the time-axis sample nearest to the
// requested instant:
//
//	g := signal.NewGenerator(core.WithDuration(10), core.WithSimulationRate(1000))
//	ref, err := g.ImpulseAt(1.23)
//
// The returned slices are freshly allocated on every call, so generators may
// be shared between goroutines.
package signal
