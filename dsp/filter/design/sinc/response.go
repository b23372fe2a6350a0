package sinc

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// MagnitudeResponse returns |H| at the fftSize/2+1 bins k*sampleRate/fftSize
// of the zero-padded taps. fftSize must be at least len(taps).
func MagnitudeResponse(taps []float64, fftSize int) ([]float64, error) {
	if fftSize <= 0 || fftSize < len(taps) {
		return nil, fmt.Errorf("sinc: fft size %d must be >= tap count %d", fftSize, len(taps))
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("sinc: fft plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, h := range taps {
		in[i] = complex(h, 0)
	}

	spectrum := make([]complex128, fftSize)
	if err := plan.Forward(spectrum, in); err != nil {
		return nil, fmt.Errorf("sinc: fft forward: %w", err)
	}

	mag := make([]float64, fftSize/2+1)
	for k := range mag {
		mag[k] = cmplx.Abs(spectrum[k])
	}

	return mag, nil
}

// MagnitudeDBAt evaluates the magnitude response in dB at freqHz.
func MagnitudeDBAt(taps []float64, freqHz, sampleRate float64) float64 {
	w := 2 * math.Pi * freqHz / sampleRate

	var h complex128
	for k, c := range taps {
		h += complex(c, 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}

	return 20 * math.Log10(cmplx.Abs(h))
}
