package common

import (
	"errors"
	"math"
)

// NormalizationType defines normalization method
type NormalizationType int

const (
	// UnitSum scales so the elements sum to one
	UnitSum NormalizationType = iota
	// Peak scales so the largest absolute element is one
	Peak
)

var ErrDegenerate = errors.New("cannot normalize: zero or non-finite reference value")

// Normalizer provides the normalizations used on spectra and bin vectors
type Normalizer struct {
	method NormalizationType
}

// NewNormalizer creates a new normalizer
func NewNormalizer(method NormalizationType) *Normalizer {
	return &Normalizer{
		method: method,
	}
}

// Normalize returns a normalized copy of signal. It fails when the divisor
// (sum or peak) is zero or not finite.
func (n *Normalizer) Normalize(signal []float64) ([]float64, error) {
	var divisor float64
	switch n.method {
	case Peak:
		divisor = peakOf(signal)
	default:
		divisor = Sum(signal)
	}

	if divisor == 0 || math.IsNaN(divisor) || math.IsInf(divisor, 0) {
		return nil, ErrDegenerate
	}

	normalized := make([]float64, len(signal))
	for i, val := range signal {
		normalized[i] = val / divisor
	}
	return normalized, nil
}

func peakOf(signal []float64) float64 {
	peak := 0.0
	for _, val := range signal {
		abs := math.Abs(val)
		if abs > peak {
			peak = abs
		}
	}
	return peak
}
