package ssi

import (
	"fmt"
	"strings"

	"github.com/RyanBlaney/sonido-ssi/algorithms/common"
)

// IndexFunc converts the summed error into a reported index value. The
// conversion is provisional in the committee procedure, so it is pluggable.
type IndexFunc interface {
	// Index returns the index for errValue and whether one applies
	Index(errValue float64) (float64, bool)
	Name() string
}

// ErrorOnly reports the raw error without an index
type ErrorOnly struct{}

func (ErrorOnly) Index(float64) (float64, bool) { return 0, false }
func (ErrorOnly) Name() string                  { return "none" }

// AffineIndex maps error e to Base - Scale*e, clamped to [0, Base]
type AffineIndex struct {
	Base  float64
	Scale float64
}

func (a AffineIndex) Index(errValue float64) (float64, bool) {
	return common.Clamp(a.Base-a.Scale*errValue, 0, a.Base), true
}

func (a AffineIndex) Name() string { return "affine" }

// IndexConfig selects and parameterizes the final stage
type IndexConfig struct {
	Mode  string  `json:"mode" yaml:"mode"` // "none", "affine"
	Base  float64 `json:"base,omitempty" yaml:"base,omitempty"`
	Scale float64 `json:"scale,omitempty" yaml:"scale,omitempty"`
}

// Build returns the IndexFunc described by c
func (c IndexConfig) Build() (IndexFunc, error) {
	switch strings.ToLower(c.Mode) {
	case "", "none":
		return ErrorOnly{}, nil
	case "affine":
		if c.Base <= 0 {
			return nil, fmt.Errorf("affine index needs a positive base, got %v", c.Base)
		}
		if c.Scale < 0 {
			return nil, fmt.Errorf("affine index scale must not be negative, got %v", c.Scale)
		}
		return AffineIndex{Base: c.Base, Scale: c.Scale}, nil
	default:
		return nil, fmt.Errorf("unknown index mode %q", c.Mode)
	}
}
