package common

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Vector helpers shared by the binned-spectrum stages, built on gonum

var (
	ErrLengthMismatch = errors.New("vector lengths differ")
	ErrZeroDivisor    = errors.New("division by zero")
)

// Sum returns the sum of all elements
func Sum(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return floats.Sum(data)
}

// AllFinite reports the index of the first NaN or Inf element, or -1
func AllFinite(data []float64) int {
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return i
		}
	}
	return -1
}

// Subtract returns a-b
func Subtract(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}
	out := make([]float64, len(a))
	floats.SubTo(out, a, b)
	return out, nil
}

// Multiply returns a*b elementwise
func Multiply(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}
	out := make([]float64, len(a))
	floats.MulTo(out, a, b)
	return out, nil
}

// Divide returns a/b elementwise and fails on any zero divisor
func Divide(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}
	for i, v := range b {
		if v == 0 {
			return nil, fmt.Errorf("%w at index %d", ErrZeroDivisor, i)
		}
	}
	out := make([]float64, len(a))
	floats.DivTo(out, a, b)
	return out, nil
}

// Clamp constrains a value to a range
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
