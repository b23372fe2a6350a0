package core

import (
	"errors"
	"fmt"
	"math"
)

// ErrParamClamped reports that a parameter was outside its documented domain
// and has been clamped into it. The clamped value is in effect.
var ErrParamClamped = errors.New("core: parameter clamped")

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// ClampReport clamps value to [min, max] and returns a wrapped
// ErrParamClamped naming the parameter when the value had to change.
func ClampReport(name string, value, min, max float64) (float64, error) {
	clamped := Clamp(value, min, max)
	if clamped != value {
		return clamped, fmt.Errorf("%w: %s=%g outside [%g, %g], using %g", ErrParamClamped, name, value, min, max, clamped)
	}

	return clamped, nil
}

// ClampReport32 is the float32 form of ClampReport.
func ClampReport32(name string, value, min, max float32) (float32, error) {
	clamped, err := ClampReport(name, float64(value), float64(min), float64(max))
	return float32(clamped), err
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = 1e-12
	}

	return math.Abs(a-b) <= eps
}
