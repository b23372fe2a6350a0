package wah

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-wah/dsp/core"
	"github.com/cwbudde/algo-wah/dsp/envelope"
)

const (
	defaultGain         = 1.0
	defaultLFOFrequency = 4.0
	defaultLFOIntensity = 0.03
	defaultLowCutoff    = 100.0
	defaultHighCutoff   = 3000.0
)

// ErrInvalidParam is returned for NaN or infinite parameters. The previous
// parameters stay in effect.
var ErrInvalidParam = errors.New("wah: parameter must be finite")

// Params is the host-facing parameter set, re-read at every block.
type Params struct {
	// Gain scales the wet signal, in [0, 1].
	Gain float32

	AttackRate     float32
	DecayRate      float32
	OnsetThreshold float32
	ResetThreshold float32

	// UseOnsetDetection enables the envelope cross-fade.
	UseOnsetDetection bool

	LFOFrequency float32
	// LFOIntensity scales the band shift relative to the base bandwidth (>= 0).
	LFOIntensity float32

	BaseLowCutoff  float64
	BaseHighCutoff float64
}

// DefaultParams returns unity gain, the follower defaults, a 4 Hz LFO and a
// 100-3000 Hz base band.
func DefaultParams() Params {
	env := envelope.DefaultParams()

	return Params{
		Gain:           defaultGain,
		AttackRate:     env.AttackRate,
		DecayRate:      env.DecayRate,
		OnsetThreshold: env.OnsetThreshold,
		ResetThreshold: env.ResetThreshold,
		LFOFrequency:   defaultLFOFrequency,
		LFOIntensity:   defaultLFOIntensity,
		BaseLowCutoff:  defaultLowCutoff,
		BaseHighCutoff: defaultHighCutoff,
	}
}

// EnvelopeParams returns the follower part of p.
func (p Params) EnvelopeParams() envelope.Params {
	return envelope.Params{
		AttackRate:     p.AttackRate,
		DecayRate:      p.DecayRate,
		OnsetThreshold: p.OnsetThreshold,
		ResetThreshold: p.ResetThreshold,
	}
}

func (p Params) withEnvelope(e envelope.Params) Params {
	p.AttackRate = e.AttackRate
	p.DecayRate = e.DecayRate
	p.OnsetThreshold = e.OnsetThreshold
	p.ResetThreshold = e.ResetThreshold

	return p
}

func (p Params) validate() error {
	for _, v := range []float64{
		float64(p.Gain), float64(p.LFOFrequency), float64(p.LFOIntensity),
		float64(p.AttackRate), float64(p.DecayRate),
		float64(p.OnsetThreshold), float64(p.ResetThreshold),
		p.BaseLowCutoff, p.BaseHighCutoff,
	} {
		if !core.IsFinite(v) {
			return fmt.Errorf("%w: %+v", ErrInvalidParam, p)
		}
	}

	return nil
}

// clamp limits gain, intensity and LFO frequency to their domains and reports
// every clamp. maxLFOFrequency keeps the oscillator index within one wrap.
func (p Params) clamp(maxLFOFrequency float32) (Params, error) {
	var errs [3]error
	p.Gain, errs[0] = core.ClampReport32("gain", p.Gain, 0, 1)
	p.LFOIntensity, errs[1] = core.ClampReport32("lfo intensity", p.LFOIntensity, 0, math.MaxFloat32)
	p.LFOFrequency, errs[2] = core.ClampReport32("lfo frequency", p.LFOFrequency, 0, maxLFOFrequency)

	return p, errors.Join(errs[:]...)
}
