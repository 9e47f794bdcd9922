package interchange

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/RyanBlaney/sonido-ssi/spectrum"
)

var ErrNoDataPoints = errors.New("asensetek: no data points")

// asensetekExport mirrors the JSON export of Asensetek spectrometers: each
// spectrum point is a single-key object {"<nm>": power}.
type asensetekExport struct {
	DataPoints []struct {
		SpectrumPoints []map[string]float64 `json:"spectrumPoints"`
	} `json:"data_points"`
}

// ParseAsensetek reads the first measurement of an Asensetek export. Points
// outside [start, end] are dropped and missing wavelengths interpolated.
func ParseAsensetek(r io.Reader, start, end int) (*spectrum.Spectrum, error) {
	var export asensetekExport
	if err := json.NewDecoder(r).Decode(&export); err != nil {
		return nil, fmt.Errorf("asensetek: %w", err)
	}
	if len(export.DataPoints) == 0 {
		return nil, ErrNoDataPoints
	}

	m, err := spectrum.NewMeasurements(start, end)
	if err != nil {
		return nil, err
	}

	for _, point := range export.DataPoints[0].SpectrumPoints {
		for key, power := range point {
			nm, err := parseWavelength(key)
			if err != nil {
				return nil, fmt.Errorf("asensetek: %w", err)
			}
			m.Mark(nm, power)
		}
	}

	return m.Complete()
}

func parseWavelength(key string) (int, error) {
	if nm, err := strconv.Atoi(key); err == nil {
		return nm, nil
	}
	f, err := strconv.ParseFloat(key, 64)
	if err != nil {
		return 0, fmt.Errorf("bad wavelength key %q", key)
	}
	return int(math.Round(f)), nil
}
