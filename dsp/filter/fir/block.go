package fir

import (
	"errors"
	"fmt"

	"github.com/tphakala/simd/f64"
)

// Errors returned by the block runtime.
var (
	ErrTapCountMismatch = errors.New("fir: tap count mismatch")
	ErrLengthMismatch   = errors.New("fir: dst and src length mismatch")
	ErrInvalidConfig    = errors.New("fir: invalid configuration")
)

// BlockFilter filters one channel block by block.
type BlockFilter struct {
	numTaps int
	history []float64
	scratch []float64
}

// NewBlockFilter returns a filter for numTaps coefficients with scratch
// pre-sized for blocks of up to maxBlockSize samples. History starts at zero.
func NewBlockFilter(numTaps, maxBlockSize int) (*BlockFilter, error) {
	if err := validateConfig(numTaps, maxBlockSize); err != nil {
		return nil, err
	}

	return &BlockFilter{
		numTaps: numTaps,
		history: make([]float64, numTaps-1),
		scratch: make([]float64, numTaps-1+maxBlockSize),
	}, nil
}

// ProcessBlockTo filters src into dst with taps and advances the history.
// dst may alias src. An empty block is a no-op. Blocks longer than the
// configured maximum grow the scratch once.
func (f *BlockFilter) ProcessBlockTo(dst, src, taps []float64) error {
	if len(taps) != f.numTaps {
		return fmt.Errorf("%w: got %d, want %d", ErrTapCountMismatch, len(taps), f.numTaps)
	}

	if len(dst) != len(src) {
		return fmt.Errorf("%w: dst=%d src=%d", ErrLengthMismatch, len(dst), len(src))
	}

	n := len(src)
	if n == 0 {
		return nil
	}

	keep := f.numTaps - 1
	if need := keep + n; need > len(f.scratch) {
		f.scratch = make([]float64, need)
	}

	combined := f.scratch[:keep+n]
	copy(combined, f.history)
	copy(combined[keep:], src)

	f64.ConvolveValid(dst, combined, taps)

	// The new history is the tail of history ++ src; for blocks shorter than
	// the history this shifts old samples left and appends the block.
	copy(f.history, combined[n:])

	return nil
}

// ProcessInPlace filters buf in place.
func (f *BlockFilter) ProcessInPlace(buf, taps []float64) error {
	return f.ProcessBlockTo(buf, buf, taps)
}

// Reset zeroes the history.
func (f *BlockFilter) Reset() {
	for i := range f.history {
		f.history[i] = 0
	}
}

// NumTaps returns the expected coefficient count.
func (f *BlockFilter) NumTaps() int { return f.numTaps }

// History returns the carried input tail (numTaps-1 samples, oldest first).
// The slice aliases internal state.
func (f *BlockFilter) History() []float64 { return f.history }

func validateConfig(numTaps, maxBlockSize int) error {
	if numTaps <= 0 {
		return fmt.Errorf("%w: tap count must be > 0: %d", ErrInvalidConfig, numTaps)
	}

	if maxBlockSize <= 0 {
		return fmt.Errorf("%w: max block size must be > 0: %d", ErrInvalidConfig, maxBlockSize)
	}

	return nil
}
