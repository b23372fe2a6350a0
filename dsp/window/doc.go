// Package window generates the tapering windows used by FIR design.
//
// Windows come in symmetric form (filter design, the default) and periodic
// form ([WithPeriodic], FFT framing). Multiplication into a buffer goes
// through algo-vecmath.
package window
