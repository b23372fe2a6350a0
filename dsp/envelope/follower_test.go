package envelope

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-wah/dsp/core"
)

func newTestFollower(t *testing.T, p Params) *Follower {
	t.Helper()
	f, err := New(p)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return f
}

func TestTransitionTiming(t *testing.T) {
	f := newTestFollower(t, Params{AttackRate: 0.1, DecayRate: 0.1, OnsetThreshold: 0.5})

	if v := f.ProcessSample(0.6); v != 0 || f.State() != StateAttack {
		t.Fatalf("after onset: value=%v state=%v, want 0 attack", v, f.State())
	}

	for i := 1; i <= 10; i++ {
		f.ProcessSample(0.6)
		if i < 10 && f.State() != StateAttack {
			t.Fatalf("attack call %d: state=%v, want attack", i, f.State())
		}
	}
	if f.State() != StateDecay || f.Value() != 1 {
		t.Fatalf("after attack: value=%v state=%v, want 1 decay", f.Value(), f.State())
	}

	for i := 1; i <= 10; i++ {
		f.ProcessSample(0.6)
		if i < 10 && f.State() != StateDecay {
			t.Fatalf("decay call %d: state=%v, want decay", i, f.State())
		}
	}
	if f.State() != StateWaiting || f.Value() != 0 {
		t.Fatalf("after decay: value=%v state=%v, want 0 waiting", f.Value(), f.State())
	}
}

func TestWaitingIgnoresQuietInput(t *testing.T) {
	f := newTestFollower(t, DefaultParams())
	for range 100 {
		if v := f.ProcessSample(0.3); v != 0 {
			t.Fatalf("value = %v, want 0", v)
		}
	}
	if f.State() != StateWaiting {
		t.Fatalf("state = %v, want waiting", f.State())
	}
}

func TestOnsetComparesSignedSample(t *testing.T) {
	f := newTestFollower(t, DefaultParams())
	f.ProcessSample(-0.9)
	if f.State() != StateWaiting {
		t.Fatalf("state = %v, want waiting for negative sample", f.State())
	}
}

func TestFinalOnlyViaSetState(t *testing.T) {
	f := newTestFollower(t, Params{AttackRate: 1, DecayRate: 1, OnsetThreshold: 0.1, ResetThreshold: 0.2})

	seen := map[State]bool{}
	for i := range 1000 {
		f.ProcessSample(float32(math.Sin(float64(i) * 0.37)))
		seen[f.State()] = true
	}
	if seen[StateFinal] {
		t.Fatal("StateFinal reached through transitions")
	}

	f.SetState(StateFinal)
	f.ProcessSample(0.5)
	if f.State() != StateFinal {
		t.Fatalf("state = %v, want final while above reset threshold", f.State())
	}
	f.ProcessSample(0.2)
	if f.State() != StateWaiting {
		t.Fatalf("state = %v, want waiting at reset threshold", f.State())
	}
}

func TestSetParamsKeepsStateAndValue(t *testing.T) {
	f := newTestFollower(t, Params{AttackRate: 0.25, DecayRate: 0.25, OnsetThreshold: 0.5})
	f.ProcessSample(1)
	f.ProcessSample(1)
	if f.Value() != 0.25 || f.State() != StateAttack {
		t.Fatalf("value=%v state=%v, want 0.25 attack", f.Value(), f.State())
	}

	if err := f.SetParams(Params{AttackRate: 0.5, DecayRate: 0.1, OnsetThreshold: 0.9, ResetThreshold: 0.1}); err != nil {
		t.Fatalf("SetParams() error = %v", err)
	}
	if f.Value() != 0.25 || f.State() != StateAttack {
		t.Fatalf("SetParams changed value/state: %v %v", f.Value(), f.State())
	}

	// The new attack rate applies on the very next sample.
	if v := f.ProcessSample(0); v != 0.75 {
		t.Fatalf("value = %v, want 0.75", v)
	}
}

func TestSetParamsClampsAndReports(t *testing.T) {
	f := newTestFollower(t, DefaultParams())
	err := f.SetParams(Params{AttackRate: -0.5, DecayRate: 2, OnsetThreshold: 0.5, ResetThreshold: 1.5})
	if !errors.Is(err, core.ErrParamClamped) {
		t.Fatalf("err = %v, want ErrParamClamped", err)
	}

	want := Params{AttackRate: 0, DecayRate: 1, OnsetThreshold: 0.5, ResetThreshold: 1}
	if f.Params() != want {
		t.Fatalf("Params() = %+v, want %+v", f.Params(), want)
	}
}

func TestSetParamsRejectsNonFinite(t *testing.T) {
	f := newTestFollower(t, DefaultParams())
	err := f.SetParams(Params{AttackRate: float32(math.NaN())})
	if !errors.Is(err, ErrInvalidParam) {
		t.Fatalf("err = %v, want ErrInvalidParam", err)
	}
	if f.Params() != DefaultParams() {
		t.Fatalf("params changed after rejected update: %+v", f.Params())
	}
}

func TestNewReportsClampButReturnsFollower(t *testing.T) {
	f, err := New(Params{AttackRate: 3})
	if !errors.Is(err, core.ErrParamClamped) {
		t.Fatalf("err = %v, want ErrParamClamped", err)
	}
	if f == nil {
		t.Fatal("follower should be usable after a clamp")
	}

	f, err = New(Params{DecayRate: float32(math.Inf(1))})
	if !errors.Is(err, ErrInvalidParam) || f != nil {
		t.Fatalf("New() = (%v, %v), want (nil, ErrInvalidParam)", f, err)
	}
}

func TestProcessBlockMatchesSample(t *testing.T) {
	p := Params{AttackRate: 0.05, DecayRate: 0.02, OnsetThreshold: 0.4, ResetThreshold: 0.1}
	f1 := newTestFollower(t, p)
	f2 := newTestFollower(t, p)

	src := make([]float32, 200)
	for i := range src {
		src[i] = float32(math.Sin(float64(i) * 0.11))
	}

	dst := make([]float32, len(src))
	f2.ProcessBlock(dst, src)
	for i, x := range src {
		if want := f1.ProcessSample(x); dst[i] != want {
			t.Fatalf("sample %d: block=%v, sample=%v", i, dst[i], want)
		}
	}

	f2.ProcessBlock(nil, nil)
}

func TestValueStaysInUnitRange(t *testing.T) {
	f := newTestFollower(t, Params{AttackRate: 0.7, DecayRate: 0.3, OnsetThreshold: 0})
	for i := range 500 {
		v := f.ProcessSample(float32(math.Cos(float64(i))))
		if v < 0 || v > 1 {
			t.Fatalf("sample %d: value %v outside [0, 1]", i, v)
		}
	}
}

func TestResetAndSetValue(t *testing.T) {
	f := newTestFollower(t, DefaultParams())
	f.SetState(StateDecay)
	f.SetValue(4)
	if f.Value() != 1 {
		t.Fatalf("SetValue clamp: got %v, want 1", f.Value())
	}
	f.Reset()
	if f.State() != StateWaiting || f.Value() != 0 {
		t.Fatalf("after Reset: %v %v", f.State(), f.Value())
	}
	if f.Params() != DefaultParams() {
		t.Fatal("Reset should keep parameters")
	}
}

func TestStateString(t *testing.T) {
	for s, want := range map[State]string{
		StateWaiting: "waiting",
		StateAttack:  "attack",
		StateDecay:   "decay",
		StateFinal:   "final",
		State(9):     "State(9)",
	} {
		if got := s.String(); got != want {
			t.Fatalf("String() = %q, want %q", got, want)
		}
	}
}
