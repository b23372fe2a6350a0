package buffer

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-wah/dsp/interp"
)

// Errors returned by buffer accessors.
var (
	ErrInvalidCapacity = errors.New("buffer: capacity must be > 0")
	ErrInvalidAccess   = errors.New("buffer: access outside valid domain")
)

// Sample is the set of element types a Ring can hold.
type Sample interface {
	~float32 | ~float64
}

// Ring is a fixed-capacity circular buffer with independent read and write
// cursors. Both cursors always stay in [0, Cap()).
type Ring[T Sample] struct {
	data     []T
	writePos int
	readPos  int
}

// New returns a zero-filled ring of the given capacity.
func New[T Sample](capacity int) (*Ring[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	return &Ring[T]{data: make([]T, capacity)}, nil
}

// NewFrom returns a ring whose capacity and contents are copied from values.
// Both cursors start at 0.
func NewFrom[T Sample](values []T) (*Ring[T], error) {
	r, err := New[T](len(values))
	if err != nil {
		return nil, err
	}
	copy(r.data, values)
	return r, nil
}

// Cap returns the fixed capacity.
func (r *Ring[T]) Cap() int {
	return len(r.data)
}

// Put stores v at the write cursor without advancing it.
func (r *Ring[T]) Put(v T) {
	r.data[r.writePos] = v
}

// Push stores v at the write cursor and advances it.
func (r *Ring[T]) Push(v T) {
	r.data[r.writePos] = v
	r.writePos++
	if r.writePos == len(r.data) {
		r.writePos = 0
	}
}

// Peek returns the value at the read cursor without advancing it.
func (r *Ring[T]) Peek() T {
	return r.data[r.readPos]
}

// Pop returns the value at the read cursor and advances it.
func (r *Ring[T]) Pop() T {
	v := r.data[r.readPos]
	r.readPos++
	if r.readPos == len(r.data) {
		r.readPos = 0
	}
	return v
}

// At returns the raw slot at offset. Offsets are not wrapped: anything
// outside [0, Cap()) is rejected with ErrInvalidAccess.
func (r *Ring[T]) At(offset int) (T, error) {
	if offset < 0 || offset >= len(r.data) {
		var zero T
		return zero, fmt.Errorf("%w: offset %d, capacity %d", ErrInvalidAccess, offset, len(r.data))
	}
	return r.data[offset], nil
}

// Interpolate reads at a fractional index. It returns the linear
// interpolation between slots floor(index) mod Cap() and
// (floor(index)+1) mod Cap(), weighted by the fractional part of index.
// Integer indices return the stored slot exactly. Negative or non-finite
// indices are rejected with ErrInvalidAccess.
func (r *Ring[T]) Interpolate(index float64) (T, error) {
	if index < 0 || math.IsNaN(index) || math.IsInf(index, 0) {
		var zero T
		return zero, fmt.Errorf("%w: fractional index %g", ErrInvalidAccess, index)
	}

	n := len(r.data)
	base := math.Floor(index)
	i0 := int(math.Mod(base, float64(n)))
	i1 := i0 + 1
	if i1 == n {
		i1 = 0
	}

	return interp.Linear2(T(index-base), r.data[i0], r.data[i1]), nil
}

// Reset moves both cursors to 0. Stored values are left untouched.
func (r *Ring[T]) Reset() {
	r.writePos = 0
	r.readPos = 0
}

// ReadIndex returns the read cursor.
func (r *Ring[T]) ReadIndex() int {
	return r.readPos
}

// SetReadIndex moves the read cursor to index modulo Cap().
func (r *Ring[T]) SetReadIndex(index int) {
	r.readPos = r.wrap(index)
}

// WriteIndex returns the write cursor.
func (r *Ring[T]) WriteIndex() int {
	return r.writePos
}

// SetWriteIndex moves the write cursor to index modulo Cap().
func (r *Ring[T]) SetWriteIndex(index int) {
	r.writePos = r.wrap(index)
}

func (r *Ring[T]) wrap(index int) int {
	n := len(r.data)
	index %= n
	if index < 0 {
		index += n
	}
	return index
}
