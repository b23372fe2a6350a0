package testutil

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}
	floats.Scale(amplitude, out)
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	floats.AddConst(value, out)
	return out
}

// To32 converts a float64 signal to float32 samples.
func To32(src []float64) []float32 {
	out := make([]float32, len(src))
	for i, v := range src {
		out[i] = float32(v)
	}
	return out
}

// To64 converts float32 samples to float64.
func To64(src []float32) []float64 {
	out := make([]float64, len(src))
	for i, v := range src {
		out[i] = float64(v)
	}
	return out
}

// Partition splits n samples into consecutive block lengths drawn from
// sizes in round-robin order. Zero entries yield empty blocks; if no entry is
// positive the remainder is returned as one block.
func Partition(n int, sizes []int) []int {
	positive := false
	for _, size := range sizes {
		if size > 0 {
			positive = true
		}
	}
	if !positive {
		return []int{n}
	}

	var out []int
	for i := 0; n > 0; i++ {
		size := max(sizes[i%len(sizes)], 0)
		size = min(size, n)
		out = append(out, size)
		n -= size
	}
	return out
}
