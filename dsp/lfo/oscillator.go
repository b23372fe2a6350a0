package lfo

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-wah/dsp/buffer"
)

// frequencyEpsilon is the smallest frequency change that regenerates the
// table.
const frequencyEpsilon = 0.001

// Errors returned by the oscillator.
var (
	ErrInvalidFrequency  = errors.New("lfo: frequency must be >= 0 and finite")
	ErrInvalidSampleRate = errors.New("lfo: sample rate must be > 0")
)

// Oscillator reads a precomputed sine table at a fractional rate.
type Oscillator struct {
	table      *buffer.Ring[float32]
	frequency  float32
	sampleRate int
	index      float32
}

// New returns an oscillator with a table of exactly sampleRate entries
// generated for frequency.
func New(frequency float32, sampleRate int) (*Oscillator, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	if err := validateFrequency(frequency); err != nil {
		return nil, err
	}

	table, err := buffer.New[float32](sampleRate)
	if err != nil {
		return nil, fmt.Errorf("lfo: allocate table: %w", err)
	}

	o := &Oscillator{
		table:      table,
		frequency:  frequency,
		sampleRate: sampleRate,
	}
	o.fillTable()

	return o, nil
}

// ProcessBlock writes one oscillator sample per slot of out.
func (o *Oscillator) ProcessBlock(out []float32) error {
	sr := float32(o.sampleRate)
	for i := range out {
		v, err := o.table.Interpolate(float64(o.index))
		if err != nil {
			return fmt.Errorf("lfo: read table: %w", err)
		}
		out[i] = v

		o.index += o.frequency
		if o.index > sr {
			o.index -= sr
		}
	}

	return nil
}

// SetFrequency retunes the oscillator. Changes of at most 0.001 are ignored;
// otherwise the table cursors are reset and every entry is regenerated. The
// read index is kept.
func (o *Oscillator) SetFrequency(frequency float32) error {
	if err := validateFrequency(frequency); err != nil {
		return err
	}

	if math.Abs(float64(frequency-o.frequency)) <= frequencyEpsilon {
		return nil
	}

	o.frequency = frequency
	o.table.Reset()
	o.fillTable()

	return nil
}

// Frequency returns the current frequency.
func (o *Oscillator) Frequency() float32 {
	return o.frequency
}

// SampleRate returns the sample rate, which is also the table length.
func (o *Oscillator) SampleRate() int {
	return o.sampleRate
}

// Index returns the fractional read position.
func (o *Oscillator) Index() float32 {
	return o.index
}

// Reset moves the read position back to the start of the table.
func (o *Oscillator) Reset() {
	o.index = 0
}

func (o *Oscillator) fillTable() {
	step := float64(o.frequency) * 2 * math.Pi / float64(o.sampleRate)
	for i := range o.sampleRate {
		o.table.Push(float32(math.Sin(float64(i) * step)))
	}
}

func validateFrequency(frequency float32) error {
	f := float64(frequency)
	if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: %g", ErrInvalidFrequency, f)
	}
	return nil
}
