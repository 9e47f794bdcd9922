package ssi

import "errors"

// Pipeline stage names used in errors and log fields
const (
	StageConfig    = "config"
	StageBin       = "bin"
	StageNormalize = "normalize"
	StageDiff      = "difference"
	StageRelative  = "relative"
	StageWeight    = "weight"
	StageTransform = "transform"
	StageSum       = "sum"
	StageIndex     = "index"
)

var (
	ErrLengthMismatch   = errors.New("wrong vector length")
	ErrZeroReferenceBin = errors.New("reference bin is zero")
	ErrNonFinite        = errors.New("non-finite value")
	ErrDegeneratePower  = errors.New("total power is zero")
	ErrNilSpectrum      = errors.New("nil spectrum")
)

// ComputationError reports which stage of the pipeline faulted
type ComputationError struct {
	Stage   string `json:"stage"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

func (e *ComputationError) Error() string {
	msg := "ssi " + e.Stage + ": " + e.Message
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *ComputationError) Unwrap() error {
	return e.Cause
}

// NewComputationError creates a new computation error
func NewComputationError(stage, message string, cause error) *ComputationError {
	return &ComputationError{
		Stage:   stage,
		Message: message,
		Cause:   cause,
	}
}
