package ssi

// Bin layout of the committee procedure: 36 bins of 10 nm, 380-730 nm
const (
	DefaultBins = 36

	// BinStart is the center of the first reference bin in nm
	BinStart = 380
	BinWidth = 10
)

// Tungsten7589 is the ISO 7589 photographic tungsten reference (CIE
// illuminant A relative spectral power) at 380, 390, ... 730 nm.
var Tungsten7589 = [DefaultBins]float64{
	9.7951, 12.0853, 14.7080, 17.6753, 20.9950, 24.6709,
	28.7027, 33.0859, 37.8121, 42.8693, 48.2423, 53.9132,
	59.8611, 66.0635, 72.4959, 79.1326, 85.9470, 92.9120,
	100.0000, 107.1840, 114.4360, 121.7310, 129.0430, 136.3460,
	143.6180, 150.8360, 157.9790, 165.0280, 171.9630, 178.7690,
	185.4290, 191.9310, 198.2610, 204.4090, 210.3650, 216.1200,
}

// Falloff is the spectral weighting that rolls off both ends of the
// measured range.
var Falloff = [DefaultBins]float64{
	12.0 / 45, 22.0 / 45, 32.0 / 45, 40.0 / 45, 44.0 / 45,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1,
	11.0 / 15, 3.0 / 15,
}

// FrequencyWeights multiply Fourier magnitudes 1..15; the DC term is not weighted
var FrequencyWeights = [15]float64{15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1}

// BinWavelengths returns the center wavelength of each of n reference bins
func BinWavelengths(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = BinStart + i*BinWidth
	}
	return out
}
