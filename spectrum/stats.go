package spectrum

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes a spectrum for reporting
type Stats struct {
	Power          float64 `json:"power" yaml:"power"`
	Peak           float64 `json:"peak" yaml:"peak"`
	PeakWavelength int     `json:"peak_wavelength" yaml:"peak_wavelength"`
	Centroid       float64 `json:"centroid" yaml:"centroid"` // power-weighted mean wavelength, nm
	Mean           float64 `json:"mean" yaml:"mean"`
	StdDev         float64 `json:"std_dev" yaml:"std_dev"`
}

// Stats computes summary statistics over the whole domain
func (s *Spectrum) Stats() Stats {
	st := Stats{
		Power:          s.Power(),
		Peak:           s.Max(),
		PeakWavelength: s.start + floats.MaxIdx(s.data),
		Mean:           stat.Mean(s.data, nil),
		StdDev:         stat.StdDev(s.data, nil),
	}

	if st.Power > 0 {
		wavelengths := make([]float64, len(s.data))
		for i := range wavelengths {
			wavelengths[i] = float64(s.start + i)
		}
		st.Centroid = stat.Mean(wavelengths, s.data)
	}
	return st
}
