package sinc

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-wah/dsp/window"
)

// Errors returned by the designer.
var (
	ErrInvalidFilterRange = errors.New("sinc: invalid filter range")
	ErrInvalidTapCount    = errors.New("sinc: tap count must be odd and >= 3")
)

// Bandpass returns a Hamming-windowed band-pass coefficient set of numTaps
// taps passing [fLow, fHigh] Hz at sampleRate.
func Bandpass(numTaps int, fLow, fHigh, sampleRate float64) ([]float64, error) {
	if err := validateTapCount(numTaps); err != nil {
		return nil, err
	}

	taps := make([]float64, numTaps)
	if err := BandpassTo(taps, fLow, fHigh, sampleRate); err != nil {
		return nil, err
	}

	return taps, nil
}

// BandpassTo is Bandpass writing len(dst) taps into dst without allocating.
// dst is left untouched on error.
func BandpassTo(dst []float64, fLow, fHigh, sampleRate float64) error {
	if err := validateTapCount(len(dst)); err != nil {
		return err
	}

	if err := validateBand(fLow, fHigh, sampleRate); err != nil {
		return err
	}

	writeSinc(dst, fLow/sampleRate, fHigh/sampleRate)

	for i := range dst {
		dst[i] *= window.At(window.TypeHamming, i, len(dst))
	}

	return nil
}

// writeSinc fills dst with the unwindowed band-pass impulse response for
// normalized edges fl < fh.
func writeSinc(dst []float64, fl, fh float64) {
	center := len(dst) / 2
	for i := range dst {
		n := i - center
		if n == 0 {
			dst[i] = 2 * (fh - fl)
			continue
		}

		nf := float64(n)
		dst[i] = 2*fh*sinc(2*math.Pi*fh*nf) - 2*fl*sinc(2*math.Pi*fl*nf)
	}
}

func sinc(x float64) float64 {
	return math.Sin(x) / x
}

func validateTapCount(numTaps int) error {
	if numTaps < 3 || numTaps%2 == 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTapCount, numTaps)
	}

	return nil
}

func validateBand(fLow, fHigh, sampleRate float64) error {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("%w: sample rate must be > 0 and finite: %f", ErrInvalidFilterRange, sampleRate)
	}

	if math.IsNaN(fLow) || math.IsNaN(fHigh) || math.IsInf(fLow, 0) || math.IsInf(fHigh, 0) {
		return fmt.Errorf("%w: edges must be finite: low=%f high=%f", ErrInvalidFilterRange, fLow, fHigh)
	}

	nyquist := sampleRate / 2
	if fLow <= 0 || fHigh >= nyquist {
		return fmt.Errorf("%w: edges must lie in (0, %f): low=%f high=%f", ErrInvalidFilterRange, nyquist, fLow, fHigh)
	}

	if fHigh <= fLow {
		return fmt.Errorf("%w: high edge must be above low edge: low=%f high=%f", ErrInvalidFilterRange, fLow, fHigh)
	}

	return nil
}
