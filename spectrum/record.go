package spectrum

import (
	"encoding/json"
	"fmt"
	"io"
)

// Record is the interchange form of a Spectrum
type Record struct {
	Start int       `json:"start" yaml:"start"`
	End   int       `json:"end" yaml:"end"`
	Data  []float64 `json:"data" yaml:"data"`
}

// Record returns the interchange form of s
func (s *Spectrum) Record() Record {
	return Record{Start: s.start, End: s.end, Data: s.Data()}
}

// FromRecord validates r and builds a Spectrum from it
func FromRecord(r Record) (*Spectrum, error) {
	return FromData(r.Start, r.End, r.Data)
}

func (s *Spectrum) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Record())
}

func (s *Spectrum) UnmarshalJSON(b []byte) error {
	var r Record
	if err := json.Unmarshal(b, &r); err != nil {
		return err
	}
	decoded, err := FromRecord(r)
	if err != nil {
		return err
	}
	*s = *decoded
	return nil
}

// Encode writes s as a JSON record
func (s *Spectrum) Encode(w io.Writer) error {
	if err := json.NewEncoder(w).Encode(s); err != nil {
		return fmt.Errorf("encode spectrum: %w", err)
	}
	return nil
}

// Decode reads a JSON record from r
func Decode(r io.Reader) (*Spectrum, error) {
	var s Spectrum
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode spectrum: %w", err)
	}
	return &s, nil
}
