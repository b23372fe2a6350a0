package fir

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-wah/internal/testutil"
)

func TestBankChannelsAreIndependent(t *testing.T) {
	taps := asymmetricTaps(9)
	bank, err := NewBank(2, len(taps), 16)
	if err != nil {
		t.Fatalf("NewBank() error = %v", err)
	}

	left := testutil.DeterministicNoise(1, 0.5, 48)
	right := testutil.DeterministicNoise(2, 0.5, 48)
	outL := make([]float64, len(left))
	outR := make([]float64, len(right))

	for start := 0; start < len(left); start += 16 {
		end := start + 16
		if err := bank.ProcessBlockTo(0, outL[start:end], left[start:end], taps); err != nil {
			t.Fatalf("channel 0: %v", err)
		}
		if err := bank.ProcessBlockTo(1, outR[start:end], right[start:end], taps); err != nil {
			t.Fatalf("channel 1: %v", err)
		}
	}

	testutil.RequireSliceNearlyEqual(t, outL, referenceFilter(left, taps), 1e-12)
	testutil.RequireSliceNearlyEqual(t, outR, referenceFilter(right, taps), 1e-12)
	testutil.RequireSliceNearlyEqual(t, bank.History(0), left[len(left)-8:], 0)
	testutil.RequireSliceNearlyEqual(t, bank.History(1), right[len(right)-8:], 0)
}

func TestBankGrowsForOversizeBlocks(t *testing.T) {
	taps := asymmetricTaps(5)
	bank, err := NewBank(2, len(taps), 4)
	if err != nil {
		t.Fatalf("NewBank() error = %v", err)
	}

	x := testutil.DeterministicNoise(5, 0.5, 40)
	got := make([]float64, len(x))

	// small, oversize, small: the grown scratch must not disturb history
	for _, span := range [][2]int{{0, 3}, {3, 33}, {33, 40}} {
		if err := bank.ProcessBlockTo(1, got[span[0]:span[1]], x[span[0]:span[1]], taps); err != nil {
			t.Fatalf("ProcessBlockTo(%v) error = %v", span, err)
		}
	}

	testutil.RequireSliceNearlyEqual(t, got, referenceFilter(x, taps), 1e-12)
}

func TestBankResetAndErrors(t *testing.T) {
	bank, err := NewBank(1, 3, 8)
	if err != nil {
		t.Fatalf("NewBank() error = %v", err)
	}

	taps := []float64{0.25, 0.5, 0.25}
	buf := []float64{1, 2, 3}
	if err := bank.ProcessBlockTo(0, buf, buf, taps); err != nil {
		t.Fatalf("ProcessBlockTo() error = %v", err)
	}
	bank.Reset()
	for i, v := range bank.History(0) {
		if v != 0 {
			t.Fatalf("history[%d] = %v after Reset", i, v)
		}
	}

	if err := bank.ProcessBlockTo(1, buf, buf, taps); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("out-of-range channel error = %v", err)
	}
	if _, err := NewBank(0, 3, 8); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("NewBank(0) error = %v", err)
	}
	if bank.Channels() != 1 || bank.NumTaps() != 3 {
		t.Fatalf("Channels/NumTaps = %d/%d", bank.Channels(), bank.NumTaps())
	}
}
