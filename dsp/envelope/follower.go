package envelope

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-wah/dsp/core"
)

const (
	defaultAttackRate     = 0.001
	defaultDecayRate      = 0.0001
	defaultOnsetThreshold = 0.3
	defaultResetThreshold = 0.05
)

// ErrInvalidParam is returned for NaN or infinite parameters. The previous
// parameters stay in effect.
var ErrInvalidParam = errors.New("envelope: parameter must be finite")

// State is the phase of the follower.
type State int

const (
	StateWaiting State = iota
	StateAttack
	StateDecay
	StateFinal
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateWaiting:
		return "waiting"
	case StateAttack:
		return "attack"
	case StateDecay:
		return "decay"
	case StateFinal:
		return "final"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Params holds the follower parameters. Rates are amplitude steps per sample;
// thresholds are compared against raw (signed) sample values.
type Params struct {
	AttackRate     float32
	DecayRate      float32
	OnsetThreshold float32
	ResetThreshold float32
}

// DefaultParams returns slow-attack, slower-decay defaults.
func DefaultParams() Params {
	return Params{
		AttackRate:     defaultAttackRate,
		DecayRate:      defaultDecayRate,
		OnsetThreshold: defaultOnsetThreshold,
		ResetThreshold: defaultResetThreshold,
	}
}

// Follower tracks signal onsets one sample at a time.
type Follower struct {
	state  State
	value  float32
	params Params
}

// New returns a follower in StateWaiting with amplitude 0.
//
// Out-of-range parameters are clamped into [0, 1] and reported with an error
// matching core.ErrParamClamped; the returned follower is usable in that case.
// Non-finite parameters return a nil follower and ErrInvalidParam.
func New(p Params) (*Follower, error) {
	f := &Follower{}
	err := f.SetParams(p)
	if errors.Is(err, ErrInvalidParam) {
		return nil, err
	}
	return f, err
}

// SetParams overwrites all four parameters at once. State and amplitude are
// kept and no smoothing is applied, so abrupt changes take effect on the very
// next sample. Values outside [0, 1] are clamped and reported.
func (f *Follower) SetParams(p Params) error {
	for _, v := range []float32{p.AttackRate, p.DecayRate, p.OnsetThreshold, p.ResetThreshold} {
		if !core.IsFinite(float64(v)) {
			return fmt.Errorf("%w: %+v", ErrInvalidParam, p)
		}
	}

	var errs [4]error
	p.AttackRate, errs[0] = core.ClampReport32("attack rate", p.AttackRate, 0, 1)
	p.DecayRate, errs[1] = core.ClampReport32("decay rate", p.DecayRate, 0, 1)
	p.OnsetThreshold, errs[2] = core.ClampReport32("onset threshold", p.OnsetThreshold, 0, 1)
	p.ResetThreshold, errs[3] = core.ClampReport32("reset threshold", p.ResetThreshold, 0, 1)

	f.params = p

	return errors.Join(errs[:]...)
}

// Params returns the parameters in effect.
func (f *Follower) Params() Params {
	return f.params
}

// ProcessSample advances the state machine by one sample and returns the
// current amplitude.
func (f *Follower) ProcessSample(x float32) float32 {
	switch f.state {
	case StateWaiting:
		if x > f.params.OnsetThreshold {
			f.state = StateAttack
		}
	case StateAttack:
		f.value += f.params.AttackRate
		if f.value >= 1 {
			f.value = 1
			f.state = StateDecay
		}
	case StateDecay:
		f.value -= f.params.DecayRate
		if f.value <= 0 {
			f.value = 0
			f.state = StateWaiting
		}
	case StateFinal:
		if x <= f.params.ResetThreshold {
			f.state = StateWaiting
		}
	}

	return f.value
}

// ProcessBlock runs ProcessSample over src and writes the amplitude after
// each sample into dst. dst must be at least as long as src.
func (f *Follower) ProcessBlock(dst, src []float32) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// State returns the current state.
func (f *Follower) State() State {
	return f.state
}

// SetState forces the follower into s. This is the only way to enter
// StateFinal.
func (f *Follower) SetState(s State) {
	f.state = s
}

// Value returns the current amplitude in [0, 1].
func (f *Follower) Value() float32 {
	return f.value
}

// SetValue overrides the amplitude, clamped to [0, 1].
func (f *Follower) SetValue(v float32) {
	if math.IsNaN(float64(v)) {
		v = 0
	}
	f.value = float32(core.Clamp(float64(v), 0, 1))
}

// Reset returns to StateWaiting with amplitude 0. Parameters are kept.
func (f *Follower) Reset() {
	f.state = StateWaiting
	f.value = 0
}
