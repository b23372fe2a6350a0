package interp

// Float is the set of sample types the interpolators operate on.
type Float interface {
	~float32 | ~float64
}

// Linear2 interpolates between x0 and x1 at frac in [0, 1].
// It returns x0 exactly when frac is 0.
func Linear2[T Float](frac, x0, x1 T) T {
	return x0 + frac*(x1-x0)
}
