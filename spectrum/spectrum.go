package spectrum

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Default wavelength domain in nanometers (inclusive)
const (
	DefaultStart = 370
	DefaultEnd   = 730

	// DefaultFill is the power every sample starts with in New
	DefaultFill = 0.5

	// MissingSentinel marks an unmeasured sample in sentinel-filled data
	MissingSentinel = -1.0
)

var (
	ErrInvalidDomain            = errors.New("spectrum: start must be less than end")
	ErrLengthMismatch           = errors.New("spectrum: data length does not match domain")
	ErrDomainMismatch           = errors.New("spectrum: operands have different domains")
	ErrOutOfDomain              = errors.New("spectrum: wavelength outside domain")
	ErrInsufficientMeasurements = errors.New("spectrum: need at least two measured samples")
)

// Spectrum is a discretized power-vs-wavelength function over an integer
// nanometer domain. Index i of data always holds wavelength start+i.
type Spectrum struct {
	start int
	end   int
	data  []float64
}

// New creates a spectrum over the default 370-730 nm domain filled with 0.5
func New() *Spectrum {
	s, _ := NewWithDomain(DefaultStart, DefaultEnd, DefaultFill)
	return s
}

// NewWithDomain creates a spectrum over [start, end] with every sample set to fill
func NewWithDomain(start, end int, fill float64) (*Spectrum, error) {
	if start >= end {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidDomain, start, end)
	}

	s := &Spectrum{
		start: start,
		end:   end,
		data:  make([]float64, end-start+1),
	}
	s.Fill(fill)
	return s, nil
}

// FromData creates a spectrum from an existing power vector. The slice is copied.
func FromData(start, end int, data []float64) (*Spectrum, error) {
	if start >= end {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidDomain, start, end)
	}
	if len(data) != end-start+1 {
		return nil, fmt.Errorf("%w: got %d samples for [%d, %d]", ErrLengthMismatch, len(data), start, end)
	}

	s := &Spectrum{
		start: start,
		end:   end,
		data:  make([]float64, len(data)),
	}
	copy(s.data, data)
	return s, nil
}

func (s *Spectrum) Start() int { return s.start }
func (s *Spectrum) End() int   { return s.end }
func (s *Spectrum) Len() int   { return len(s.data) }

// Data returns a copy of the power vector
func (s *Spectrum) Data() []float64 {
	out := make([]float64, len(s.data))
	copy(out, s.data)
	return out
}

// SameDomain reports whether both spectra cover the same wavelengths
func (s *Spectrum) SameDomain(other *Spectrum) bool {
	return other != nil && s.start == other.start && s.end == other.end
}

// Contains reports whether nm lies within [start, end]
func (s *Spectrum) Contains(nm int) bool {
	return nm >= s.start && nm <= s.end
}

// At returns the power at nm without clamping
func (s *Spectrum) At(nm int) (float64, bool) {
	if !s.Contains(nm) {
		return 0, false
	}
	return s.data[nm-s.start], true
}

// Set stores power at nm
func (s *Spectrum) Set(nm int, power float64) error {
	if !s.Contains(nm) {
		return fmt.Errorf("%w: %d nm not in [%d, %d]", ErrOutOfDomain, nm, s.start, s.end)
	}
	s.data[nm-s.start] = power
	return nil
}

// Sample returns the power at nm, clamping to the first or last sample
// for wavelengths outside the domain.
func (s *Spectrum) Sample(nm int) float64 {
	switch {
	case nm < s.start:
		return s.data[0]
	case nm > s.end:
		return s.data[len(s.data)-1]
	default:
		return s.data[nm-s.start]
	}
}

// Zero sets every sample to 0
func (s *Spectrum) Zero() {
	s.Fill(0)
}

// Fill sets every sample to value. Fill(MissingSentinel) marks the whole
// domain as unmeasured ahead of a FloodFill.
func (s *Spectrum) Fill(value float64) {
	for i := range s.data {
		s.data[i] = value
	}
}

// Scale multiplies every sample by factor
func (s *Spectrum) Scale(factor float64) {
	floats.Scale(factor, s.data)
}

// Power returns the sum of all samples
func (s *Spectrum) Power() float64 {
	return floats.Sum(s.data)
}

// Max returns the highest sample, floored at 0
func (s *Spectrum) Max() float64 {
	m := 0.0
	for _, v := range s.data {
		if v > m {
			m = v
		}
	}
	return m
}

// Normalize scales the spectrum so its power sums to one. A non-positive
// total power leaves the data untouched.
func (s *Spectrum) Normalize() {
	p := s.Power()
	if p > 0 {
		s.Scale(1 / p)
	}
}

// AddGaussian adds a lobe amplitude*exp(-(nm-center)^2 / (2*sigma^2)) to every sample
func (s *Spectrum) AddGaussian(center, amplitude, sigma float64) {
	twoSigmaSq := 2 * sigma * sigma
	for i := range s.data {
		d := float64(s.start+i) - center
		s.data[i] += amplitude * math.Exp(-(d*d)/twoSigmaSq)
	}
}

// trapezoidTaps holds the 11-tap kernel weights for offsets -5..+5
var trapezoidTaps = [11]float64{0.5, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0.5}

// TrapezoidBin10nm resamples the spectrum into 10 nm bins centered at
// start, start+10, ... up to end. Each bin is
// p[n-5]/2 + p[n-4] + ... + p[n+4] + p[n+5]/2, with edge taps clamped.
func (s *Spectrum) TrapezoidBin10nm() []float64 {
	result := make([]float64, 0, (s.end-s.start)/10+1)
	for n := s.start; n <= s.end; n += 10 {
		acc := 0.0
		for k, w := range trapezoidTaps {
			acc += w * s.Sample(n+k-5)
		}
		result = append(result, acc)
	}
	return result
}
