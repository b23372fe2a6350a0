// Package wah implements an LFO-swept FIR band-pass effect.
//
// Each block the oscillator emits one modulation value per frame; the first
// value shifts both edges of the base pass-band by
// lfo[0]*intensity*(high-low), the designer produces a windowed-sinc
// band-pass for the shifted band, and a per-channel block filter applies it
// with carried history. The output is the filtered signal scaled by gain, or,
// with onset detection enabled, a cross-fade between wet and dry driven by
// the envelope follower:
//
//	g = gain * env
//	out = wet*g + dry*(1-g)
//
// All scratch is allocated by [New]; ProcessBlock does not allocate for
// blocks up to the configured maximum size.
package wah
