// Package lfo provides a wavetable low-frequency oscillator.
//
// The [Oscillator] table holds sampleRate entries of sin(i·f·2π/sampleRate),
// so the table itself already encodes the requested frequency f. Reading
// advances a fractional index by f per output sample. The frequency therefore
// enters twice, and the perceived oscillation rate grows with f². Modulation
// ranges downstream are tuned for this curve.
package lfo
