// Package buffer provides the allocation-free storage used on the real-time
// path.
//
// [Ring] is a generic fixed-capacity circular buffer with separate read and
// write cursors and linear fractional reads ([Ring.Interpolate]). It backs
// wavetable oscillators and delay-style readers.
//
// [Arena] is a contiguous scratch space sliced into one fixed-stride slot per
// channel. Block processors size it once at construction so the steady state
// performs no heap allocation.
package buffer
