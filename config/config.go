package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/RyanBlaney/sonido-ssi/spectrum"
	"github.com/RyanBlaney/sonido-ssi/ssi"
)

// Output formats understood by the command line
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// File is the on-disk configuration
type File struct {
	LogLevel string `yaml:"log_level" json:"log_level"`
	Output   string `yaml:"output" json:"output"`

	// ReferenceSpectrum, when set, names a spectrum record whose binned
	// values replace SSI.Reference. Relative paths resolve against the
	// directory of the config file.
	ReferenceSpectrum string `yaml:"reference_spectrum,omitempty" json:"reference_spectrum,omitempty"`

	SSI ssi.Config `yaml:"ssi" json:"ssi"`

	dir string
}

// Default returns the built-in configuration
func Default() File {
	return File{
		LogLevel: "info",
		Output:   OutputText,
		SSI:      ssi.DefaultConfig(),
	}
}

// Load reads a YAML config file, overlaying it on Default
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read config: %w", err)
	}

	f, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	f.dir = filepath.Dir(path)
	return f, nil
}

// Parse decodes YAML config data, overlaying it on Default. Unknown keys are rejected.
func Parse(data []byte) (File, error) {
	f := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("parse config: %w", err)
	}

	switch f.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return File{}, fmt.Errorf("unknown output format %q", f.Output)
	}
	return f, nil
}

// Resolve returns the pipeline configuration, loading the reference spectrum if one is named
func (f File) Resolve() (ssi.Config, error) {
	cfg := f.SSI
	if f.ReferenceSpectrum == "" {
		return cfg, cfg.Validate()
	}

	path := f.ReferenceSpectrum
	if !filepath.IsAbs(path) && f.dir != "" {
		path = filepath.Join(f.dir, path)
	}

	fh, err := os.Open(path)
	if err != nil {
		return ssi.Config{}, fmt.Errorf("open reference spectrum: %w", err)
	}
	defer fh.Close()

	s, err := spectrum.Decode(fh)
	if err != nil {
		return ssi.Config{}, fmt.Errorf("reference spectrum %s: %w", path, err)
	}

	cfg.Reference, err = ssi.ReferenceFromSpectrum(s, cfg.Bins)
	if err != nil {
		return ssi.Config{}, fmt.Errorf("reference spectrum %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}
