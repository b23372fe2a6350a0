// Package fir provides a streaming block FIR runtime.
//
// A [BlockFilter] applies a coefficient set that may change on every block
// while carrying numTaps-1 samples of input history between calls, so that
// a stream filtered in arbitrary block partitions produces the same output
// as one call over the whole signal:
//
//	y[i] = sum_{j=0}^{N-1} combined[i+j] * h[j],  combined = history ++ block
//
// The inner sum is a valid-mode correlation computed with tphakala/simd. A
// [Bank] holds one filter per channel with history and scratch carved out of
// shared arenas.
//
// Coefficient design is a separate concern (see dsp/filter/design/sinc).
package fir
