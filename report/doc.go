// Package report renders sim.Result values for people: a console summary
// and a three-panel figure comparing the reference, the single-rate
// samples and the interleaved reconstruction.
package report
