// Package interp provides the fractional-index interpolation primitive used
// by the ring buffer and wavetable reads.
//
//   - [Linear2]: 2-point linear interpolation, exact at integer positions
//
// It is generic over float32 and float64 samples.
package interp
