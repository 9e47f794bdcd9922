package logging

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want Level
	}{
		{"debug", DebugLevel},
		{"INFO", InfoLevel},
		{"", InfoLevel},
		{"warning", WarnLevel},
		{" error ", ErrorLevel},
		{"fatal", FatalLevel},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestDefaultLoggerRouting(t *testing.T) {
	var stdout, stderr bytes.Buffer
	logger := NewDefaultLoggerTo(&stdout, &stderr)
	logger.SetLevel(DebugLevel)

	logger.Debug("binned", Fields{"bins": 36})
	logger.Warn("odd reference")
	logger.Error(errors.New("zero bin"), "evaluate failed", Fields{"stage": "relative"})

	assert.Contains(t, stdout.String(), "[DEBUG] binned bins=36")
	assert.NotContains(t, stdout.String(), "WARN")
	assert.Contains(t, stderr.String(), "[WARN] odd reference")
	assert.Contains(t, stderr.String(), "[ERROR] evaluate failed: zero bin stage=relative")
}

func TestDefaultLoggerLevelFilter(t *testing.T) {
	var stdout, stderr bytes.Buffer
	logger := NewDefaultLoggerTo(&stdout, &stderr)

	logger.Debug("hidden")
	logger.Info("shown")

	assert.NotContains(t, stdout.String(), "hidden")
	assert.Contains(t, stdout.String(), "shown")
}

func TestFatalExits(t *testing.T) {
	var stdout, stderr bytes.Buffer
	logger := NewDefaultLoggerTo(&stdout, &stderr)
	code := -1
	logger.exit = func(c int) { code = c }

	logger.Fatal(errors.New("boom"), "giving up")

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "[FATAL] giving up: boom")
}

func TestWithFieldsAndContext(t *testing.T) {
	var stdout bytes.Buffer
	base := NewDefaultLoggerTo(&stdout, &stdout)

	scoped := base.WithFields(Fields{"component": "ssi"})
	ctx := ContextWithFields(context.Background(), Fields{"run": "a1"})
	scoped.WithContext(ctx).Info("done", Fields{"error": 0.5})

	assert.Contains(t, stdout.String(), "[INFO] done component=ssi error=0.5 run=a1")

	stdout.Reset()
	base.Info("plain")
	assert.NotContains(t, stdout.String(), "component")
}

func TestSetGlobalLoggerNil(t *testing.T) {
	prev := GetGlobalLogger()
	defer SetGlobalLogger(prev)

	SetGlobalLogger(nil)
	assert.IsType(t, &NoOpLogger{}, GetGlobalLogger())
	GetGlobalLogger().Info("discarded")

	// no-op on loggers without color support
	DisableColors()
	EnableColors()
}

func TestGlobalColorToggle(t *testing.T) {
	prev := GetGlobalLogger()
	defer SetGlobalLogger(prev)

	var stderr bytes.Buffer
	logger := NewDefaultLoggerTo(&stderr, &stderr)
	SetGlobalLogger(logger)
	assert.False(t, logger.ColorsEnabled())

	EnableColors()
	require.True(t, logger.ColorsEnabled())
	GetGlobalLogger().Warn("dim reference")
	GetGlobalLogger().Error(errors.New("nan"), "evaluate failed")
	assert.Contains(t, stderr.String(), ColorYellow+"[WARN] dim reference"+ColorReset)
	assert.Contains(t, stderr.String(), ColorRed+"[ERROR] evaluate failed: nan"+ColorReset)

	stderr.Reset()
	DisableColors()
	assert.False(t, logger.ColorsEnabled())
	GetGlobalLogger().Warn("dim reference")
	assert.NotContains(t, stderr.String(), "\033[")
}

func TestIsTerminal(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, IsTerminal(&buf))

	f, err := os.CreateTemp(t.TempDir(), "log")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, IsTerminal(f))
}
