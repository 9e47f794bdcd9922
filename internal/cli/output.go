package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/RyanBlaney/sonido-ssi/config"
	"github.com/RyanBlaney/sonido-ssi/spectrum"
)

// render writes v in the configured format; text output is delegated to text
func (a *app) render(w io.Writer, v any, text func(io.Writer) error) error {
	switch a.file.Output {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return text(w)
	}
}

func readSpectrum(path string) (*spectrum.Spectrum, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	s, err := spectrum.Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// writeFile creates path and hands it to write, removing it again on failure
func writeFile(path string, write func(io.Writer) error) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := write(fh); err != nil {
		fh.Close()
		os.Remove(path)
		return fmt.Errorf("%s: %w", path, err)
	}
	return fh.Close()
}
