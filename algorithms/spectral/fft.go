package spectral

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// FFT provides the real-input discrete Fourier transform
type FFT struct {
	// No state needed for now
}

// NewFFT creates a new FFT calculator
func NewFFT() *FFT {
	return &FFT{}
}

// ComputeReal returns the non-redundant half of the spectrum of a real
// signal: N/2+1 coefficients for N inputs, index 0 being the DC term.
// mjibson/go-dsp handles non-power-of-2 lengths.
func (f *FFT) ComputeReal(x []float64) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}

	full := fft.FFTReal(x)
	return full[:len(x)/2+1]
}

// Magnitudes returns |c| for the first count coefficients (all when count
// exceeds the input length)
func (f *FFT) Magnitudes(coeffs []complex128, count int) []float64 {
	if count > len(coeffs) || count < 0 {
		count = len(coeffs)
	}

	mags := make([]float64, count)
	for i := range mags {
		mags[i] = cmplx.Abs(coeffs[i])
	}
	return mags
}
