package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerLevel(t *testing.T) {
	flagLogLevel = "warn"
	t.Cleanup(func() { flagLogLevel = "info" })

	var buf bytes.Buffer
	logger, err := newLogger(&buf, "test")
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewLoggerBadLevel(t *testing.T) {
	flagLogLevel = "loud"
	t.Cleanup(func() { flagLogLevel = "info" })

	_, err := newLogger(&bytes.Buffer{}, "test")
	assert.Error(t, err)
}

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "pong.log")
	flagLogFile = path
	t.Cleanup(func() { flagLogFile = "~/.pong/pong.log" })

	logger, closer, err := newFileLogger("pong")
	require.NoError(t, err)
	logger.Info("match started")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "match started")
}

func TestNewFileLoggerDisabled(t *testing.T) {
	flagLogFile = ""
	t.Cleanup(func() { flagLogFile = "~/.pong/pong.log" })

	logger, closer, err := newFileLogger("pong")
	require.NoError(t, err)
	logger.Error("goes nowhere")
	assert.NoError(t, closer.Close())
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := expandHome("~/.pong/pong.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".pong", "pong.db"), got)

	got, err = expandHome("/tmp/pong.db")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/pong.db", got)
}

func TestLoadMatchConfigPreset(t *testing.T) {
	flagConfig, flagDifficulty = "", "hard"
	t.Cleanup(func() { flagDifficulty = "" })

	cfg, err := loadMatchConfig()
	require.NoError(t, err)
	assert.InDelta(t, 0.7, cfg.Difficulty.InitialLevel, 1e-9)

	flagDifficulty = "impossible"
	_, err = loadMatchConfig()
	assert.Error(t, err)
}
