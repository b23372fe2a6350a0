package fir

import (
	"fmt"

	"github.com/cwbudde/algo-wah/dsp/buffer"
)

// Bank runs one BlockFilter per channel. Histories and scratch live in two
// arenas allocated at construction.
type Bank struct {
	numTaps int
	history *buffer.Arena
	scratch *buffer.Arena
	filters []BlockFilter
}

// NewBank returns a bank of channels filters.
func NewBank(channels, numTaps, maxBlockSize int) (*Bank, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("%w: channel count must be > 0: %d", ErrInvalidConfig, channels)
	}

	if err := validateConfig(numTaps, maxBlockSize); err != nil {
		return nil, err
	}

	b := &Bank{
		numTaps: numTaps,
		history: buffer.NewArena(channels, numTaps-1),
		scratch: buffer.NewArena(channels, numTaps-1+maxBlockSize),
		filters: make([]BlockFilter, channels),
	}

	for ch := range b.filters {
		b.filters[ch] = BlockFilter{
			numTaps: numTaps,
			history: b.history.Slot(ch),
			scratch: b.scratch.Slot(ch),
		}
	}

	return b, nil
}

// ProcessBlockTo filters src into dst on channel ch.
func (b *Bank) ProcessBlockTo(ch int, dst, src, taps []float64) error {
	if ch < 0 || ch >= len(b.filters) {
		return fmt.Errorf("%w: channel %d out of range [0, %d)", ErrInvalidConfig, ch, len(b.filters))
	}

	if need := b.numTaps - 1 + len(src); need > b.scratch.Stride() {
		b.scratch.Grow(need)
		for i := range b.filters {
			b.filters[i].scratch = b.scratch.Slot(i)
		}
	}

	return b.filters[ch].ProcessBlockTo(dst, src, taps)
}

// Reset zeroes every channel history.
func (b *Bank) Reset() {
	b.history.Zero()
}

// Channels returns the channel count.
func (b *Bank) Channels() int { return len(b.filters) }

// NumTaps returns the expected coefficient count.
func (b *Bank) NumTaps() int { return b.numTaps }

// History returns the carried input tail of channel ch.
func (b *Bank) History(ch int) []float64 {
	return b.filters[ch].history
}
