package buffer

// Arena is a channel-indexed scratch space: one contiguous backing slice cut
// into fixed-stride slots, allocated once and reused for every block.
type Arena struct {
	samples  []float64
	stride   int
	channels int
}

// NewArena returns a zero-filled arena with one slot of length stride per
// channel. Negative sizes are treated as zero.
func NewArena(channels, stride int) *Arena {
	if channels < 0 {
		channels = 0
	}
	if stride < 0 {
		stride = 0
	}
	return &Arena{
		samples:  make([]float64, channels*stride),
		stride:   stride,
		channels: channels,
	}
}

// Channels returns the number of slots.
func (a *Arena) Channels() int {
	return a.channels
}

// Stride returns the length of each slot.
func (a *Arena) Stride() int {
	return a.stride
}

// Slot returns the scratch slice of channel ch. The slice aliases the arena
// and is capped so appends cannot spill into the next channel.
func (a *Arena) Slot(ch int) []float64 {
	start := ch * a.stride
	return a.samples[start : start+a.stride : start+a.stride]
}

// Grow widens every slot to at least stride samples, preserving each slot's
// existing prefix and zeroing the new tail. It is a no-op when the current
// stride is already large enough; otherwise it allocates once.
func (a *Arena) Grow(stride int) {
	if stride <= a.stride {
		return
	}

	grown := make([]float64, a.channels*stride)
	for ch := range a.channels {
		copy(grown[ch*stride:], a.Slot(ch))
	}

	a.samples = grown
	a.stride = stride
}

// Zero sets every slot to 0.
func (a *Arena) Zero() {
	for i := range a.samples {
		a.samples[i] = 0
	}
}
