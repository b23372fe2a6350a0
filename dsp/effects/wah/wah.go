package wah

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/simd/f64"

	"github.com/cwbudde/algo-wah/dsp/buffer"
	"github.com/cwbudde/algo-wah/dsp/core"
	"github.com/cwbudde/algo-wah/dsp/envelope"
	"github.com/cwbudde/algo-wah/dsp/filter/design/sinc"
	"github.com/cwbudde/algo-wah/dsp/filter/fir"
	"github.com/cwbudde/algo-wah/dsp/lfo"
)

const defaultNumTaps = 101

// Errors returned for malformed blocks. The block is left untouched.
var (
	ErrChannelCount   = errors.New("wah: channel count mismatch")
	ErrLengthMismatch = errors.New("wah: channel lengths differ")
)

// Option mutates construction parameters.
type Option func(*config) error

type config struct {
	processor core.ProcessorConfig
	numTaps   int
	params    Params
}

// WithNumTaps sets the FIR length (odd, >= 3).
func WithNumTaps(numTaps int) Option {
	return func(cfg *config) error {
		if numTaps < 3 || numTaps%2 == 0 {
			return fmt.Errorf("%w: %d", sinc.ErrInvalidTapCount, numTaps)
		}

		cfg.numTaps = numTaps

		return nil
	}
}

// WithMaxBlockSize sets the block size all scratch is pre-sized for (> 0).
func WithMaxBlockSize(blockSize int) Option {
	return func(cfg *config) error {
		if blockSize <= 0 {
			return fmt.Errorf("wah: max block size must be > 0: %d", blockSize)
		}

		core.WithMaxBlockSize(blockSize)(&cfg.processor)

		return nil
	}
}

// WithChannels sets the channel count (> 0).
func WithChannels(channels int) Option {
	return func(cfg *config) error {
		if channels <= 0 {
			return fmt.Errorf("wah: channel count must be > 0: %d", channels)
		}

		core.WithChannels(channels)(&cfg.processor)

		return nil
	}
}

// WithParams sets the initial parameters. Clamps are applied silently at
// construction; non-finite values fail.
func WithParams(p Params) Option {
	return func(cfg *config) error {
		if err := p.validate(); err != nil {
			return err
		}

		cfg.params = p

		return nil
	}
}

// Wah is the swept band-pass effect.
type Wah struct {
	cfg     core.ProcessorConfig
	numTaps int
	params  Params

	follower *envelope.Follower
	osc      *lfo.Oscillator
	designer *sinc.Designer
	bank     *fir.Bank

	mod []float32
	dry *buffer.Arena
	wet *buffer.Arena

	lowHz  float64
	highHz float64
}

// New returns an effect for sampleRate with defaults of 101 taps, 1024-sample
// blocks and two channels. The oscillator table holds sampleRate rounded to
// the nearest integer entries.
func New(sampleRate float64, opts ...Option) (*Wah, error) {
	if sampleRate < 1 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("wah: sample rate must be >= 1 and finite: %f", sampleRate)
	}

	cfg := config{
		processor: core.ApplyProcessorOptions(core.WithSampleRate(sampleRate)),
		numTaps:   defaultNumTaps,
		params:    DefaultParams(),
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	params, _ := cfg.params.clamp(float32(sampleRate))

	follower, err := envelope.New(params.EnvelopeParams())
	if follower == nil {
		return nil, fmt.Errorf("wah: envelope: %w", err)
	}

	osc, err := lfo.New(params.LFOFrequency, int(math.Round(sampleRate)))
	if err != nil {
		return nil, fmt.Errorf("wah: lfo: %w", err)
	}

	designer, err := sinc.NewDesigner(cfg.numTaps, sampleRate)
	if err != nil {
		return nil, fmt.Errorf("wah: designer: %w", err)
	}

	proc := cfg.processor

	bank, err := fir.NewBank(proc.Channels, cfg.numTaps, proc.MaxBlockSize)
	if err != nil {
		return nil, fmt.Errorf("wah: filter bank: %w", err)
	}

	w := &Wah{
		cfg:      proc,
		numTaps:  cfg.numTaps,
		follower: follower,
		osc:      osc,
		designer: designer,
		bank:     bank,
		mod:      make([]float32, proc.MaxBlockSize),
		dry:      buffer.NewArena(proc.Channels, proc.MaxBlockSize),
		wet:      buffer.NewArena(proc.Channels, proc.MaxBlockSize),
	}
	w.params = params.withEnvelope(follower.Params())

	return w, nil
}

// SetParams replaces the parameter set for the next block. Gain is clamped to
// [0, 1], intensity to >= 0, LFO frequency to [0, sampleRate] and the
// follower parameters to [0, 1]; every clamp is reported with an error
// matching core.ErrParamClamped while the clamped values take effect.
// Non-finite values return ErrInvalidParam and change nothing.
func (w *Wah) SetParams(p Params) error {
	if err := p.validate(); err != nil {
		return err
	}

	p, clampErr := p.clamp(float32(w.cfg.SampleRate))

	envErr := w.follower.SetParams(p.EnvelopeParams())
	p = p.withEnvelope(w.follower.Params())

	if err := w.osc.SetFrequency(p.LFOFrequency); err != nil {
		return err
	}

	w.params = p

	return errors.Join(clampErr, envErr)
}

// ProcessBlock filters float32 channel blocks in place.
//
// A band that falls outside (0, sampleRate/2) after modulation is reported
// with sinc.ErrInvalidFilterRange; the block is still processed with the
// previous taps.
func (w *Wah) ProcessBlock(channels [][]float32) error {
	return processBlock(w, channels)
}

// ProcessBlock64 is ProcessBlock for float64 hosts.
func (w *Wah) ProcessBlock64(channels [][]float64) error {
	return processBlock(w, channels)
}

func processBlock[T float32 | float64](w *Wah, channels [][]T) error {
	if len(channels) != w.cfg.Channels {
		return fmt.Errorf("%w: got %d, want %d", ErrChannelCount, len(channels), w.cfg.Channels)
	}

	n := len(channels[0])
	for ch := range channels {
		if len(channels[ch]) != n {
			return fmt.Errorf("%w: channel %d has %d samples, want %d", ErrLengthMismatch, ch, len(channels[ch]), n)
		}
	}

	if n == 0 {
		return nil
	}

	w.ensureCapacity(n)

	mod := w.mod[:n]
	if err := w.osc.ProcessBlock(mod); err != nil {
		return err
	}

	p := w.params
	delta := float64(mod[0]) * float64(p.LFOIntensity) * (p.BaseHighCutoff - p.BaseLowCutoff)

	taps, designErr := w.designer.Design(p.BaseLowCutoff+delta, p.BaseHighCutoff+delta)
	if designErr == nil {
		w.lowHz, w.highHz = p.BaseLowCutoff+delta, p.BaseHighCutoff+delta
	}

	for ch, samples := range channels {
		dry := w.dry.Slot(ch)[:n]
		wet := w.wet.Slot(ch)[:n]

		for i, x := range samples {
			dry[i] = float64(x)
		}

		if err := w.bank.ProcessBlockTo(ch, wet, dry, taps); err != nil {
			return errors.Join(designErr, err)
		}
	}

	gain := float64(p.Gain)

	if !p.UseOnsetDetection {
		for ch, samples := range channels {
			wet := w.wet.Slot(ch)[:n]
			f64.Scale(wet, wet, gain)

			for i := range samples {
				samples[i] = T(wet[i])
			}
		}

		return designErr
	}

	for i := range n {
		for ch, samples := range channels {
			dry := w.dry.Slot(ch)[i]
			env := w.follower.ProcessSample(float32(dry))
			g := gain * float64(env)
			samples[i] = T(w.wet.Slot(ch)[i]*g + dry*(1-g))
		}
	}

	return designErr
}

// ensureCapacity grows the per-block scratch for an oversize block.
func (w *Wah) ensureCapacity(n int) {
	if n <= len(w.mod) {
		return
	}

	w.mod = make([]float32, n)
	w.dry.Grow(n)
	w.wet.Grow(n)
}

// Reset clears filter history, the envelope and the oscillator position.
func (w *Wah) Reset() {
	w.bank.Reset()
	w.follower.Reset()
	w.osc.Reset()
}

// Params returns the parameters in effect after clamping.
func (w *Wah) Params() Params { return w.params }

// Config returns the fixed processor configuration.
func (w *Wah) Config() core.ProcessorConfig { return w.cfg }

// NumTaps returns the FIR length.
func (w *Wah) NumTaps() int { return w.numTaps }

// Taps returns the coefficient set used by the last block.
func (w *Wah) Taps() []float64 { return w.designer.Taps() }

// Band returns the modulated pass-band of the last block that designed a
// valid filter.
func (w *Wah) Band() (lowHz, highHz float64) { return w.lowHz, w.highHz }

// Envelope returns the follower amplitude and state.
func (w *Wah) Envelope() (float32, envelope.State) {
	return w.follower.Value(), w.follower.State()
}
