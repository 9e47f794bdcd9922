package ssi

import (
	"fmt"

	"github.com/RyanBlaney/sonido-ssi/algorithms/common"
	"github.com/RyanBlaney/sonido-ssi/spectrum"
)

// Config holds the constant tables the pipeline scores against
type Config struct {
	Bins             int         `json:"bins" yaml:"bins"`
	Reference        []float64   `json:"reference" yaml:"reference"`
	Falloff          []float64   `json:"falloff" yaml:"falloff"`
	FrequencyWeights []float64   `json:"frequency_weights" yaml:"frequency_weights"`
	Index            IndexConfig `json:"index" yaml:"index"`
}

// DefaultConfig returns the committee tables with the tungsten reference and no index stage
func DefaultConfig() Config {
	return Config{
		Bins:             DefaultBins,
		Reference:        append([]float64(nil), Tungsten7589[:]...),
		Falloff:          append([]float64(nil), Falloff[:]...),
		FrequencyWeights: append([]float64(nil), FrequencyWeights[:]...),
		Index:            IndexConfig{Mode: "none"},
	}
}

func (c Config) clone() Config {
	c.Reference = append([]float64(nil), c.Reference...)
	c.Falloff = append([]float64(nil), c.Falloff...)
	c.FrequencyWeights = append([]float64(nil), c.FrequencyWeights...)
	return c
}

// Validate checks table lengths and values
func (c Config) Validate() error {
	if c.Bins <= 0 {
		return fmt.Errorf("%w: bins must be positive, got %d", ErrLengthMismatch, c.Bins)
	}
	if len(c.Reference) != c.Bins {
		return fmt.Errorf("%w: reference has %d values, want %d", ErrLengthMismatch, len(c.Reference), c.Bins)
	}
	if len(c.Falloff) != c.Bins {
		return fmt.Errorf("%w: falloff has %d values, want %d", ErrLengthMismatch, len(c.Falloff), c.Bins)
	}
	// the real transform yields Bins/2+1 coefficients and index 0 is skipped
	if len(c.FrequencyWeights) == 0 || len(c.FrequencyWeights) > c.Bins/2 {
		return fmt.Errorf("%w: %d frequency weights for %d bins", ErrLengthMismatch, len(c.FrequencyWeights), c.Bins)
	}
	for name, table := range map[string][]float64{
		"reference":         c.Reference,
		"falloff":           c.Falloff,
		"frequency weights": c.FrequencyWeights,
	} {
		if i := common.AllFinite(table); i >= 0 {
			return fmt.Errorf("%w: %s[%d]", ErrNonFinite, name, i)
		}
	}
	for i, v := range c.Reference {
		if v == 0 {
			return fmt.Errorf("%w: reference[%d]", ErrZeroReferenceBin, i)
		}
	}
	return nil
}

// ReferenceFromSpectrum bins s the same way test spectra are binned and
// returns the first bins values as a reference table.
func ReferenceFromSpectrum(s *spectrum.Spectrum, bins int) ([]float64, error) {
	if s == nil {
		return nil, ErrNilSpectrum
	}
	binned := s.TrapezoidBin10nm()
	if len(binned) < bins {
		return nil, fmt.Errorf("%w: spectrum yields %d bins, want %d", ErrLengthMismatch, len(binned), bins)
	}
	return binned[:bins], nil
}
