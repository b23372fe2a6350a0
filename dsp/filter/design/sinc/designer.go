package sinc

import (
	"fmt"

	"github.com/cwbudde/algo-wah/dsp/window"
)

// Option configures a Designer.
type Option func(*config) error

type config struct {
	window window.Type
}

// WithWindow selects the taper applied to the sinc response.
func WithWindow(t window.Type) Option {
	return func(cfg *config) error {
		if t < window.TypeRectangular || t > window.TypeBlackman {
			return fmt.Errorf("sinc: unknown window type %d", t)
		}

		cfg.window = t

		return nil
	}
}

// Designer redesigns a fixed-length band-pass set on demand. All buffers are
// sized at construction.
type Designer struct {
	numTaps    int
	sampleRate float64
	windowType window.Type

	window []float64
	raw    []float64
	taps   []float64

	fLow     float64
	fHigh    float64
	designed bool
}

// NewDesigner returns a designer producing numTaps taps at sampleRate.
// The taps are all zero until the first valid Design call.
func NewDesigner(numTaps int, sampleRate float64, opts ...Option) (*Designer, error) {
	if err := validateTapCount(numTaps); err != nil {
		return nil, err
	}

	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate must be > 0: %f", ErrInvalidFilterRange, sampleRate)
	}

	cfg := config{window: window.TypeHamming}
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Designer{
		numTaps:    numTaps,
		sampleRate: sampleRate,
		windowType: cfg.window,
		window:     window.Generate(cfg.window, numTaps),
		raw:        make([]float64, numTaps),
		taps:       make([]float64, numTaps),
	}, nil
}

// Design returns taps for the band [fLow, fHigh] Hz. Taps are recomputed only
// when the band differs from the last valid one. On an invalid band the
// previous taps are returned together with an ErrInvalidFilterRange error.
//
// The returned slice is owned by the designer and is overwritten by the next
// successful Design call.
func (d *Designer) Design(fLow, fHigh float64) ([]float64, error) {
	if d.designed && fLow == d.fLow && fHigh == d.fHigh {
		return d.taps, nil
	}

	if err := validateBand(fLow, fHigh, d.sampleRate); err != nil {
		return d.taps, err
	}

	writeSinc(d.raw, fLow/d.sampleRate, fHigh/d.sampleRate)

	if err := window.ApplyCoefficients(d.taps, d.raw, d.window); err != nil {
		return d.taps, err
	}

	d.fLow = fLow
	d.fHigh = fHigh
	d.designed = true

	return d.taps, nil
}

// Taps returns the current taps.
func (d *Designer) Taps() []float64 { return d.taps }

// NumTaps returns the tap count.
func (d *Designer) NumTaps() int { return d.numTaps }

// SampleRate returns the design sample rate in Hz.
func (d *Designer) SampleRate() float64 { return d.sampleRate }

// Window returns the configured window type.
func (d *Designer) Window() window.Type { return d.windowType }

// Band returns the last valid band edges in Hz and whether any band has been
// designed yet.
func (d *Designer) Band() (fLow, fHigh float64, ok bool) {
	return d.fLow, d.fHigh, d.designed
}
