package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	f, err := parseFlags([]string{"-tui", "-seed", "9", "-phrases", "deck.yaml"})
	require.NoError(t, err)
	assert.True(t, f.tui)
	assert.False(t, f.pickMusic)
	assert.Equal(t, uint64(9), f.seed)
	assert.Equal(t, "deck.yaml", f.phrases)

	_, err = parseFlags([]string{"-volume-knob"})
	assert.Error(t, err)
}

func TestRunReportsStartupFailureThroughExitCode(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "valentine.log")
	t.Setenv("VALENTINE_LOG_FILE", logPath)
	t.Setenv("VALENTINE_AUDIO_ENABLED", "false")

	code := run([]string{"-tui", "-phrases", filepath.Join(dir, "missing.yaml")})
	assert.Equal(t, 1, code)

	// run returned instead of exiting, so the log file was flushed and closed
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "failed to load phrases")
}

func TestRunRejectsInvalidSettings(t *testing.T) {
	t.Setenv("VALENTINE_VOLUME", "3")
	assert.Equal(t, 1, run(nil))
}
