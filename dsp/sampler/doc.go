// Package sampler decimates a dense reference sequence the way physical
// samplers would observe it, and reports whether an impulse was seen.
//
// Two samplers are provided:
//   - SingleRate: one sampler at the base rate, phase zero
//   - Interleaved: N samplers at the base rate, each delayed by
//     Stride/N simulation samples, merged into one sequence at N times
//     the base rate
//
// Phase layout for the reference scenario (1 kHz simulation, 10 Hz base
// rate, N = 10):
//
//	branch   offset   samples taken
//	0        0        0, 100, 200, ...
//	1        10       10, 110, 210, ...
//	...
//	9        90       90, 190, 290, ...
//
// Branch k sample j lands at reconstructed index k + N*j. Merge performs that
// write-back and clamps silently at the end of the sequence, where branches
// and destination slots may disagree in length by one.
//
// Common workflows:
//   - NewSingleRate(opts...).Sample(time, values)
//   - NewInterleaved(opts...).Sample(values)
//   - Decimate / Merge / Detect as standalone building blocks
package sampler
