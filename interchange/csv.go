package interchange

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/RyanBlaney/sonido-ssi/spectrum"
)

// CSVHeader is the first line of every exported table
const CSVHeader = "wavelength (nanometers),power (peak normalized)"

var ErrNoHeader = errors.New("csv: no wavelength header found")

// WriteCSV writes one "<wavelength>, <power>" row per sample under CSVHeader
func WriteCSV(w io.Writer, s *spectrum.Spectrum) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, CSVHeader); err != nil {
		return err
	}
	for i, v := range s.Data() {
		if _, err := fmt.Fprintf(bw, "%d, %f\n", s.Start()+i, v); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadCSV parses a two-column table. Lines before the header row (the first
// line mentioning "wavelength") are ignored, rows outside [start, end] are
// dropped and wavelengths without a row are interpolated.
func ReadCSV(r io.Reader, start, end int) (*spectrum.Spectrum, error) {
	m, err := spectrum.NewMeasurements(start, end)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'
	// instrument preambles are free text
	cr.LazyQuotes = true

	inTable := false
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: %w", err)
		}

		if !inTable {
			inTable = strings.Contains(strings.Join(record, ","), "wavelength")
			continue
		}
		if len(record) < 2 {
			continue
		}

		line, _ := cr.FieldPos(0)
		nm, err := strconv.Atoi(strings.TrimSpace(record[0]))
		if err != nil {
			return nil, fmt.Errorf("csv line %d: wavelength: %w", line, err)
		}
		power, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("csv line %d: power: %w", line, err)
		}
		m.Mark(nm, power)
	}

	if !inTable {
		return nil, ErrNoHeader
	}
	return m.Complete()
}
