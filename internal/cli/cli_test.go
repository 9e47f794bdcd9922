package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/sonido-ssi/logging"
	"github.com/RyanBlaney/sonido-ssi/spectrum"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	prev := logging.GetGlobalLogger()
	t.Cleanup(func() { logging.SetGlobalLogger(prev) })

	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestSynthThenScore(t *testing.T) {
	dir := t.TempDir()
	led := filepath.Join(dir, "led.json")

	_, _, err := run(t, "synth", "--lobe", "450:1:10", "--lobe", "570:0.6:50", "--normalize", led)
	require.NoError(t, err)

	s, err := readSpectrum(led)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s.Power(), 1e-9)
	assert.Equal(t, spectrum.DefaultStart, s.Start())

	stdout, stderr, err := run(t, "score", "-o", "json", "--index-scale", "0.1", led)
	require.NoError(t, err)
	assert.Contains(t, stderr, "scored spectrum")

	var reports []scoreReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, led, reports[0].File)
	assert.Greater(t, reports[0].Error, 0.0)
	require.NotNil(t, reports[0].Index)
	assert.Equal(t, "affine", reports[0].IndexMode)
	assert.Nil(t, reports[0].Details)

	stdout, _, err = run(t, "score", led)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, led+"\terror="))
	assert.NotContains(t, stdout, "index=")
}

func TestScoreAgainstReferenceSpectrum(t *testing.T) {
	dir := t.TempDir()
	lamp := filepath.Join(dir, "lamp.json")
	_, _, err := run(t, "synth", "--base", "0.2", "--lobe", "600:1:80", lamp)
	require.NoError(t, err)

	cfgPath := filepath.Join(dir, "ssi.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("reference_spectrum: lamp.json\noutput: yaml\n"), 0o644))

	stdout, _, err := run(t, "--config", cfgPath, "score", "--details", lamp)
	require.NoError(t, err)
	assert.Contains(t, stdout, "error: 0\n")
	assert.Contains(t, stdout, "relative_difference:")
}

func TestOutputFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	lamp := filepath.Join(dir, "lamp.json")
	_, _, err := run(t, "synth", "--base", "1", lamp)
	require.NoError(t, err)

	t.Setenv("SONIDO_SSI_OUTPUT", "json")
	stdout, _, err := run(t, "info", lamp)
	require.NoError(t, err)

	var st spectrum.Stats
	require.NoError(t, json.Unmarshal([]byte(stdout), &st))
	assert.InDelta(t, 361.0, st.Power, 1e-9)
	assert.Equal(t, 1.0, st.Peak)
}

func TestConvertImportExport(t *testing.T) {
	dir := t.TempDir()
	export := filepath.Join(dir, "export.json")
	require.NoError(t, os.WriteFile(export, []byte(
		`{"data_points":[{"spectrumPoints":[{"400":0.1},{"500":0.9}]}]}`), 0o644))

	table := filepath.Join(dir, "lamp.csv")
	_, _, err := run(t, "convert", "--peak-normalize", export, table)
	require.NoError(t, err)

	raw, err := os.ReadFile(table)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 362)
	assert.Equal(t, "wavelength (nanometers),power (peak normalized)", lines[0])
	assert.Equal(t, "500, 1.000000", lines[131])

	record := filepath.Join(dir, "lamp.json")
	_, _, err = run(t, "import", table, record)
	require.NoError(t, err)

	s, err := readSpectrum(record)
	require.NoError(t, err)
	assert.InDelta(t, 0.1/0.9, s.Sample(400), 1e-6)
	for nm := 500; nm <= 730; nm++ {
		assert.Equal(t, 1.0, s.Sample(nm), "nm %d", nm)
	}

	again := filepath.Join(dir, "again.csv")
	_, _, err = run(t, "export", record, again)
	require.NoError(t, err)
	rawAgain, err := os.ReadFile(again)
	require.NoError(t, err)
	assert.Equal(t, string(raw), string(rawAgain))
}

func TestGlobalLoggerInstalled(t *testing.T) {
	dir := t.TempDir()
	lamp := filepath.Join(dir, "lamp.json")

	tests := []struct {
		name string
		args []string
	}{
		{"text", []string{"synth", "--base", "1", lamp}},
		{"no color flag", []string{"--no-color", "synth", "--base", "1", lamp}},
		{"json output", []string{"-o", "json", "synth", "--base", "1", lamp}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, err := run(t, tt.args...)
			require.NoError(t, err)

			logger, ok := logging.GetGlobalLogger().(*logging.DefaultLogger)
			require.True(t, ok)
			assert.False(t, logger.ColorsEnabled())

			assert.Contains(t, stderr, "synthesized spectrum")
			assert.NotContains(t, stderr, "\033[")
		})
	}
}

func TestNoColorFromEnvironment(t *testing.T) {
	lamp := filepath.Join(t.TempDir(), "lamp.json")
	t.Setenv("SONIDO_SSI_NO_COLOR", "true")

	_, _, err := run(t, "synth", "--base", "1", lamp)
	require.NoError(t, err)

	logger, ok := logging.GetGlobalLogger().(*logging.DefaultLogger)
	require.True(t, ok)
	assert.False(t, logger.ColorsEnabled())
}

func TestCommandErrors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := run(t, "score", filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	_, _, err = run(t, "--log-level", "shout", "info", "x")
	assert.Error(t, err)

	_, _, err = run(t, "-o", "xml", "info", "x")
	assert.Error(t, err)

	_, _, err = run(t, "synth", "--lobe", "450:1", filepath.Join(dir, "bad.json"))
	assert.Error(t, err)
	_, statErr := os.Stat(filepath.Join(dir, "bad.json"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestParseLobe(t *testing.T) {
	l, err := parseLobe("450:1.5:10")
	require.NoError(t, err)
	assert.Equal(t, lobe{center: 450, amplitude: 1.5, sigma: 10}, l)

	_, err = parseLobe("450:1:0")
	assert.Error(t, err)

	_, err = parseLobe("a:b:c")
	assert.Error(t, err)
}
