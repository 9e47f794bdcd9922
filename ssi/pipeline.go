package ssi

import (
	"errors"
	"math"

	"github.com/RyanBlaney/sonido-ssi/algorithms/common"
	"github.com/RyanBlaney/sonido-ssi/algorithms/spectral"
	"github.com/RyanBlaney/sonido-ssi/logging"
	"github.com/RyanBlaney/sonido-ssi/spectrum"
)

// Result carries the score and every intermediate vector of one evaluation
type Result struct {
	TestBins            []float64 `json:"test_bins" yaml:"test_bins"`
	NormalizedTest      []float64 `json:"normalized_test" yaml:"normalized_test"`
	NormalizedReference []float64 `json:"normalized_reference" yaml:"normalized_reference"`
	Difference          []float64 `json:"difference" yaml:"difference"`
	RelativeDifference  []float64 `json:"relative_difference" yaml:"relative_difference"`
	Weighted            []float64 `json:"weighted" yaml:"weighted"`
	Magnitudes          []float64 `json:"magnitudes" yaml:"magnitudes"`
	WeightedMagnitudes  []float64 `json:"weighted_magnitudes" yaml:"weighted_magnitudes"`

	Error     float64 `json:"error" yaml:"error"`
	Index     float64 `json:"index,omitempty" yaml:"index,omitempty"`
	HasIndex  bool    `json:"has_index" yaml:"has_index"`
	IndexMode string  `json:"index_mode" yaml:"index_mode"`
}

// Pipeline scores test spectra against a fixed reference illuminant:
// bin, normalize, difference, relative difference, spectral weighting,
// real DFT, frequency weighting, sum and finally the index stage.
type Pipeline struct {
	cfg        Config
	reference  []float64 // normalized
	normalizer *common.Normalizer
	fft        *spectral.FFT
	index      IndexFunc
	logger     logging.Logger
}

// Option customizes a Pipeline
type Option func(*Pipeline)

// WithLogger sets the logger used for per-stage debug output
func WithLogger(logger logging.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithIndex overrides the index stage built from the config
func WithIndex(index IndexFunc) Option {
	return func(p *Pipeline) {
		if index != nil {
			p.index = index
		}
	}
}

// New validates cfg and prepares the normalized reference
func New(cfg Config, opts ...Option) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, NewComputationError(StageConfig, "invalid configuration", err)
	}

	index, err := cfg.Index.Build()
	if err != nil {
		return nil, NewComputationError(StageIndex, "invalid index stage", err)
	}

	p := &Pipeline{
		cfg:        cfg.clone(),
		normalizer: common.NewNormalizer(common.UnitSum),
		fft:        spectral.NewFFT(),
		index:      index,
		logger:     logging.GetGlobalLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.WithFields(logging.Fields{"component": "ssi"})

	p.reference, err = p.normalizer.Normalize(cfg.Reference)
	if err != nil {
		return nil, NewComputationError(StageNormalize, "reference", errors.Join(ErrDegeneratePower, err))
	}
	if i := common.AllFinite(p.reference); i >= 0 {
		return nil, NewComputationError(StageNormalize, "reference", ErrNonFinite)
	}

	return p, nil
}

// Config returns a copy of the configuration the pipeline was built from
func (p *Pipeline) Config() Config {
	return p.cfg.clone()
}

// Evaluate bins the test spectrum, keeps the first Bins values and scores them
func (p *Pipeline) Evaluate(test *spectrum.Spectrum) (*Result, error) {
	if test == nil {
		return nil, NewComputationError(StageBin, "test spectrum", ErrNilSpectrum)
	}

	binned := test.TrapezoidBin10nm()
	if len(binned) < p.cfg.Bins {
		return nil, NewComputationError(StageBin, "test spectrum domain too narrow", ErrLengthMismatch)
	}
	p.logger.Debug("binned test spectrum", logging.Fields{
		"stage": StageBin,
		"start": test.Start(),
		"end":   test.End(),
		"bins":  len(binned),
	})

	return p.EvaluateBins(binned[:p.cfg.Bins])
}

// EvaluateBins scores an already binned test vector of exactly Bins values
func (p *Pipeline) EvaluateBins(bins []float64) (*Result, error) {
	if len(bins) != p.cfg.Bins {
		return nil, NewComputationError(StageBin, "test bins", ErrLengthMismatch)
	}
	if i := common.AllFinite(bins); i >= 0 {
		return nil, NewComputationError(StageBin, "test bins", ErrNonFinite)
	}

	res := &Result{
		TestBins:            append([]float64(nil), bins...),
		NormalizedReference: append([]float64(nil), p.reference...),
		IndexMode:           p.index.Name(),
	}

	var err error
	res.NormalizedTest, err = p.normalizer.Normalize(bins)
	if err != nil {
		return nil, NewComputationError(StageNormalize, "test bins", errors.Join(ErrDegeneratePower, err))
	}

	res.Difference, err = common.Subtract(res.NormalizedTest, p.reference)
	if err != nil {
		return nil, NewComputationError(StageDiff, "test minus reference", errors.Join(ErrLengthMismatch, err))
	}

	res.RelativeDifference, err = common.Divide(res.Difference, p.reference)
	if err != nil {
		return nil, NewComputationError(StageRelative, "difference over reference", errors.Join(ErrZeroReferenceBin, err))
	}

	res.Weighted, err = common.Multiply(res.RelativeDifference, p.cfg.Falloff)
	if err != nil {
		return nil, NewComputationError(StageWeight, "falloff", errors.Join(ErrLengthMismatch, err))
	}

	coeffs := p.fft.ComputeReal(res.Weighted)
	weights := p.cfg.FrequencyWeights
	res.Magnitudes = p.fft.Magnitudes(coeffs, len(weights)+1)
	if len(res.Magnitudes) != len(weights)+1 {
		return nil, NewComputationError(StageTransform, "too few Fourier coefficients", ErrLengthMismatch)
	}
	p.logger.Debug("transformed weighted difference", logging.Fields{
		"stage":        StageTransform,
		"coefficients": len(coeffs),
		"dc":           res.Magnitudes[0],
	})

	// DC (index 0) carries no weight
	res.WeightedMagnitudes, err = common.Multiply(res.Magnitudes[1:], weights)
	if err != nil {
		return nil, NewComputationError(StageSum, "frequency weights", errors.Join(ErrLengthMismatch, err))
	}

	res.Error = common.Sum(res.WeightedMagnitudes)
	if math.IsNaN(res.Error) || math.IsInf(res.Error, 0) {
		return nil, NewComputationError(StageSum, "error value", ErrNonFinite)
	}

	res.Index, res.HasIndex = p.index.Index(res.Error)
	p.logger.Debug("scored spectrum", logging.Fields{
		"stage": StageIndex,
		"error": res.Error,
		"index": res.Index,
		"mode":  res.IndexMode,
	})

	return res, nil
}
