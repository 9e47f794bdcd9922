package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/sonido-ssi/spectrum"
	"github.com/RyanBlaney/sonido-ssi/ssi"
)

func TestParseEmptyKeepsDefaults(t *testing.T) {
	f, err := Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, "info", f.LogLevel)
	assert.Equal(t, OutputText, f.Output)
	assert.Equal(t, ssi.DefaultConfig(), f.SSI)
}

func TestParseOverlay(t *testing.T) {
	data := []byte(`
log_level: debug
output: json
ssi:
  frequency_weights: [3, 2, 1]
  index:
    mode: affine
    base: 100
    scale: 4.5
`)

	f, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "debug", f.LogLevel)
	assert.Equal(t, OutputJSON, f.Output)
	assert.Equal(t, []float64{3, 2, 1}, f.SSI.FrequencyWeights)
	assert.Equal(t, ssi.IndexConfig{Mode: "affine", Base: 100, Scale: 4.5}, f.SSI.Index)
	assert.Equal(t, ssi.DefaultBins, f.SSI.Bins)
	assert.Len(t, f.SSI.Reference, ssi.DefaultBins)

	cfg, err := f.Resolve()
	require.NoError(t, err)
	assert.Equal(t, f.SSI, cfg)
}

func TestParseRejects(t *testing.T) {
	_, err := Parse([]byte("colour: blue\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("output: xml\n"))
	assert.Error(t, err)

	f, err := Parse([]byte("ssi:\n  reference: [1, 2]\n"))
	require.NoError(t, err)
	_, err = f.Resolve()
	assert.ErrorIs(t, err, ssi.ErrLengthMismatch)
}

func TestLoadWithReferenceSpectrum(t *testing.T) {
	dir := t.TempDir()

	ref := spectrum.New()
	ref.Zero()
	ref.AddGaussian(560, 1, 80)
	fh, err := os.Create(filepath.Join(dir, "ref.json"))
	require.NoError(t, err)
	require.NoError(t, ref.Encode(fh))
	require.NoError(t, fh.Close())

	path := filepath.Join(dir, "ssi.yaml")
	require.NoError(t, os.WriteFile(path, []byte("reference_spectrum: ref.json\n"), 0o644))

	f, err := Load(path)
	require.NoError(t, err)

	cfg, err := f.Resolve()
	require.NoError(t, err)
	assert.Equal(t, ref.TrapezoidBin10nm()[:ssi.DefaultBins], cfg.Reference)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
