package buffer

import (
	"errors"
	"math"
	"testing"
)

func TestNewRejectsNonPositiveCapacity(t *testing.T) {
	for _, c := range []int{0, -1} {
		if _, err := New[float32](c); !errors.Is(err, ErrInvalidCapacity) {
			t.Fatalf("New(%d) err = %v, want ErrInvalidCapacity", c, err)
		}
	}
}

func TestNewZeroFilled(t *testing.T) {
	r, err := New[float64](8)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if r.Cap() != 8 {
		t.Fatalf("Cap() = %d, want 8", r.Cap())
	}
	for i := range 8 {
		v, err := r.At(i)
		if err != nil {
			t.Fatalf("At(%d) error = %v", i, err)
		}
		if v != 0 {
			t.Fatalf("At(%d) = %v, want 0", i, v)
		}
	}
}

func TestRingFIFOWrap(t *testing.T) {
	r, err := New[float64](4)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Interleave so the ring never holds more than its capacity.
	for i := range 6 {
		r.Push(float64(i))
		if got := r.Pop(); got != float64(i) {
			t.Fatalf("Pop() #%d = %v, want %v", i, got, float64(i))
		}
	}

	if r.WriteIndex() != 2 || r.ReadIndex() != 2 {
		t.Fatalf("cursors = (w=%d, r=%d), want (2, 2)", r.WriteIndex(), r.ReadIndex())
	}
}

func TestRingCursorsWrapAtCapacity(t *testing.T) {
	r, err := New[float32](4)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	wantWrite := []int{1, 2, 3, 0, 1, 2}
	for i := range 6 {
		r.Push(float32(i))
		if r.WriteIndex() != wantWrite[i] {
			t.Fatalf("write #%d: cursor = %d, want %d", i, r.WriteIndex(), wantWrite[i])
		}
	}

	// Writes 4 and 5 overwrote slots 0 and 1.
	want := []float32{4, 5, 2, 3, 4, 5}
	for i := range 6 {
		if got := r.Pop(); got != want[i] {
			t.Fatalf("Pop() #%d = %v, want %v", i, got, want[i])
		}
	}
	if r.ReadIndex() != 2 {
		t.Fatalf("ReadIndex() = %d, want 2", r.ReadIndex())
	}
}

func TestPutDoesNotAdvance(t *testing.T) {
	r, _ := New[float64](3)
	r.Put(7)
	r.Put(9)
	if r.WriteIndex() != 0 {
		t.Fatalf("WriteIndex() = %d, want 0", r.WriteIndex())
	}
	if v, _ := r.At(0); v != 9 {
		t.Fatalf("At(0) = %v, want 9", v)
	}
}

func TestPeekDoesNotAdvance(t *testing.T) {
	r, _ := NewFrom([]float64{3, 4})
	if r.Peek() != 3 || r.Peek() != 3 {
		t.Fatal("Peek() should return the slot at the read cursor repeatedly")
	}
	if r.ReadIndex() != 0 {
		t.Fatalf("ReadIndex() = %d, want 0", r.ReadIndex())
	}
}

func TestAtRejectsOutOfRange(t *testing.T) {
	r, _ := New[float64](4)
	for _, off := range []int{-1, 4, 100} {
		if _, err := r.At(off); !errors.Is(err, ErrInvalidAccess) {
			t.Fatalf("At(%d) err = %v, want ErrInvalidAccess", off, err)
		}
	}
}

func TestInterpolateExactAtIntegers(t *testing.T) {
	r, _ := NewFrom([]float64{0.1, -0.7, 0.3333, 0.9})
	for i := range 12 {
		got, err := r.Interpolate(float64(i))
		if err != nil {
			t.Fatalf("Interpolate(%d) error = %v", i, err)
		}
		want, _ := r.At(i % r.Cap())
		if got != want {
			t.Fatalf("Interpolate(%d) = %v, want exactly %v", i, got, want)
		}
	}
}

func TestInterpolateMidpoint(t *testing.T) {
	vals := []float64{0.1, -0.7, 0.3333, 0.9}
	r, _ := NewFrom(vals)
	for i := range vals {
		got, err := r.Interpolate(float64(i) + 0.5)
		if err != nil {
			t.Fatalf("Interpolate(%v) error = %v", float64(i)+0.5, err)
		}
		want := (vals[i] + vals[(i+1)%len(vals)]) / 2
		if math.Abs(got-want) > 1e-15 {
			t.Fatalf("Interpolate(%v) = %v, want %v", float64(i)+0.5, got, want)
		}
	}
}

func TestInterpolateFloat32(t *testing.T) {
	r, _ := NewFrom([]float32{0, 1})
	got, err := r.Interpolate(0.25)
	if err != nil {
		t.Fatalf("Interpolate() error = %v", err)
	}
	if got != 0.25 {
		t.Fatalf("Interpolate(0.25) = %v, want 0.25", got)
	}
}

func TestInterpolateRejectsInvalidIndex(t *testing.T) {
	r, _ := New[float64](4)
	for _, idx := range []float64{-0.5, math.NaN(), math.Inf(1)} {
		if _, err := r.Interpolate(idx); !errors.Is(err, ErrInvalidAccess) {
			t.Fatalf("Interpolate(%v) err = %v, want ErrInvalidAccess", idx, err)
		}
	}
}

func TestResetKeepsContents(t *testing.T) {
	r, _ := New[float64](3)
	r.Push(1)
	r.Push(2)
	r.Pop()
	r.Reset()
	if r.WriteIndex() != 0 || r.ReadIndex() != 0 {
		t.Fatalf("cursors after Reset = (%d, %d), want (0, 0)", r.WriteIndex(), r.ReadIndex())
	}
	if r.Peek() != 1 {
		t.Fatalf("Peek() after Reset = %v, want 1", r.Peek())
	}
}

func TestSetIndexNormalises(t *testing.T) {
	r, _ := New[float64](4)
	r.SetWriteIndex(9)
	if r.WriteIndex() != 1 {
		t.Fatalf("WriteIndex() = %d, want 1", r.WriteIndex())
	}
	r.SetReadIndex(-1)
	if r.ReadIndex() != 3 {
		t.Fatalf("ReadIndex() = %d, want 3", r.ReadIndex())
	}
}

func TestRingOperationsDoNotAllocate(t *testing.T) {
	r, _ := New[float32](16)
	allocs := testing.AllocsPerRun(100, func() {
		r.Push(1)
		_ = r.Pop()
		_, _ = r.Interpolate(3.25)
		_, _ = r.At(2)
	})
	if allocs != 0 {
		t.Fatalf("allocs = %v, want 0", allocs)
	}
}
