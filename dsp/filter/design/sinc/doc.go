// Package sinc designs windowed-sinc FIR band-pass filters.
//
// A band-pass set is the difference of two ideal low-pass responses at the
// upper and lower band edges, tapered by a window (Hamming by default):
//
//	h[i] = (2*fh*sinc(2*pi*fh*n) - 2*fl*sinc(2*pi*fl*n)) * w[i],  n = i - N/2
//
// with fl and fh normalized to cycles per sample. [Bandpass] is a pure
// function; [Designer] keeps pre-sized buffers and the last valid taps so
// that a real-time caller can redesign once per block without allocating.
package sinc
