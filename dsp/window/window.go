package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
)

// String returns the window name.
func (t Type) String() string {
	switch t {
	case TypeRectangular:
		return "rectangular"
	case TypeHann:
		return "hann"
	case TypeHamming:
		return "hamming"
	case TypeBlackman:
		return "blackman"
	default:
		return "unknown"
	}
}

var (
	hannCoeffs     = []float64{0.5, 0.5}
	hammingCoeffs  = []float64{0.54, 0.46}
	blackmanCoeffs = []float64{0.42, 0.5, 0.08}
)

// Option configures window generation.
type Option func(*config)

type config struct {
	periodic bool
}

// WithPeriodic configures periodic form (FFT framing) instead of symmetric form.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Generate returns window coefficients of the given length.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	out := make([]float64, length)
	GenerateTo(out, t, opts...)

	return out
}

// GenerateTo fills dst with window coefficients of length len(dst) without
// allocating.
//
// The symmetric form evaluates w[n] = sum_k (-1)^k a_k cos(2*pi*k*n/(N-1)),
// so TypeHamming is 0.54 - 0.46*cos(2*pi*n/(N-1)).
func GenerateTo(dst []float64, t Type, opts ...Option) {
	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	size := len(dst)
	if size == 1 {
		dst[0] = 1
		return
	}

	den := float64(size - 1)
	if cfg.periodic {
		den = float64(size)
	}

	for n := range dst {
		dst[n] = evalWindow(t, 2*math.Pi*float64(n)/den)
	}
}

// At returns the symmetric-form coefficient n of a window of the given size.
func At(t Type, n, size int) float64 {
	if size <= 1 {
		return 1
	}

	return evalWindow(t, 2*math.Pi*float64(n)/float64(size-1))
}

// Apply multiplies buf in-place by the selected window.
func Apply(t Type, buf []float64, opts ...Option) {
	if len(buf) == 0 {
		return
	}

	vecmath.MulBlockInPlace(buf, Generate(t, len(buf), opts...))
}

// Hann returns Hann window coefficients.
func Hann(size int, opts ...Option) ([]float64, error) {
	return Generate(TypeHann, size, opts...), validateLength(size)
}

// Hamming returns Hamming window coefficients.
func Hamming(size int, opts ...Option) ([]float64, error) {
	return Generate(TypeHamming, size, opts...), validateLength(size)
}

// Blackman returns Blackman window coefficients.
func Blackman(size int, opts ...Option) ([]float64, error) {
	return Generate(TypeBlackman, size, opts...), validateLength(size)
}

// ApplyCoefficients writes samples*coeffs into out.
func ApplyCoefficients(out, samples, coeffs []float64) error {
	if len(samples) != len(coeffs) || len(out) != len(samples) {
		return errMismatchedLength
	}

	vecmath.MulBlock(out, samples, coeffs)

	return nil
}

// ApplyCoefficientsInPlace multiplies samples with precomputed coefficients
// in place.
func ApplyCoefficientsInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}

func evalWindow(t Type, phase float64) float64 {
	switch t {
	case TypeHann:
		return cosineFromCoeffs(phase, hannCoeffs)
	case TypeHamming:
		return cosineFromCoeffs(phase, hammingCoeffs)
	case TypeBlackman:
		return cosineFromCoeffs(phase, blackmanCoeffs)
	default:
		return 1
	}
}

// cosineFromCoeffs evaluates an alternating-sign cosine sum.
func cosineFromCoeffs(phase float64, coeffs []float64) float64 {
	sum := coeffs[0]
	for k := 1; k < len(coeffs); k++ {
		term := coeffs[k] * math.Cos(float64(k)*phase)
		if k%2 == 1 {
			sum -= term
		} else {
			sum += term
		}
	}

	return sum
}
