package spectrum

import "fmt"

// Sample is one wavelength slot of a partially measured spectrum
type Sample struct {
	Power    float64
	Measured bool
}

// Measurements collects sparse measured points over a fixed domain and
// reconstructs a full Spectrum from them.
type Measurements struct {
	start   int
	end     int
	samples []Sample
}

// NewMeasurements creates an empty (fully unmeasured) set over [start, end]
func NewMeasurements(start, end int) (*Measurements, error) {
	if start >= end {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidDomain, start, end)
	}
	return &Measurements{
		start:   start,
		end:     end,
		samples: make([]Sample, end-start+1),
	}, nil
}

// Mark records a measured power at nm. Points outside the domain are
// dropped and reported with false.
func (m *Measurements) Mark(nm int, power float64) bool {
	if nm < m.start || nm > m.end {
		return false
	}
	m.samples[nm-m.start] = Sample{Power: power, Measured: true}
	return true
}

// Get returns the slot for nm
func (m *Measurements) Get(nm int) (Sample, bool) {
	if nm < m.start || nm > m.end {
		return Sample{}, false
	}
	return m.samples[nm-m.start], true
}

// Count returns the number of measured samples
func (m *Measurements) Count() int {
	n := 0
	for _, s := range m.samples {
		if s.Measured {
			n++
		}
	}
	return n
}

// Complete fills every unmeasured slot by gap interpolation and returns the
// resulting spectrum. The receiver is left unchanged.
func (m *Measurements) Complete() (*Spectrum, error) {
	data := make([]float64, len(m.samples))
	measured := make([]bool, len(m.samples))
	for i, s := range m.samples {
		data[i] = s.Power
		measured[i] = s.Measured
	}

	if err := floodFill(data, measured); err != nil {
		return nil, err
	}
	return &Spectrum{start: m.start, end: m.end, data: data}, nil
}

// FloodFill interpolates over samples holding a negative value, the
// convention left behind by Fill(MissingSentinel).
func (s *Spectrum) FloodFill() error {
	measured := make([]bool, len(s.data))
	for i, v := range s.data {
		measured[i] = v >= 0
	}
	return floodFill(s.data, measured)
}

// floodFill replaces unmeasured entries of data with straight-line values.
//
// The interval length L is taken from the first interior gap (measured
// sample, run of unmeasured, measured sample) and reused for the rest of
// the scan: at every measured sample the value L positions ahead becomes the
// ramp target. Gaps of a different length therefore ramp toward whatever
// sits L positions ahead. Unmeasured samples before the first or after the
// last measurement hold the nearest measured value.
func floodFill(data []float64, measured []bool) error {
	first, count := -1, 0
	for i, ok := range measured {
		if ok {
			if first < 0 {
				first = i
			}
			count++
		}
	}
	if count < 2 {
		return fmt.Errorf("%w: found %d", ErrInsufficientMeasurements, count)
	}
	if count == len(data) {
		return nil
	}

	interval := firstInterval(measured, first)

	lastVal := data[first]
	nextVal := lastVal
	dist := 0
	for i := range data {
		if measured[i] {
			lastVal = data[i]
			nextVal = lastVal
			if j := i + interval; j < len(data) && measured[j] {
				nextVal = data[j]
			}
			dist = 0
			continue
		}

		if nextVal == lastVal {
			// flat, including the edges past the outermost measurements
			data[i] = lastVal
		} else {
			w := float64(dist) / float64(interval)
			data[i] = lastVal*(1-w) + nextVal*w
		}
		dist++
	}
	return nil
}

// firstInterval returns the distance between the two measured samples that
// bound the first interior gap, or 1 when every gap touches a domain edge.
func firstInterval(measured []bool, first int) int {
	prev := first
	for i := first + 1; i < len(measured); i++ {
		if !measured[i] {
			continue
		}
		if i-prev > 1 {
			return i - prev
		}
		prev = i
	}
	return 1
}
