//go:build !integration

package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/guttosm/nutrition-lookup/config"
	"github.com/guttosm/nutrition-lookup/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.LogConfig
		wantLevel zerolog.Level
	}{
		{name: "default level", cfg: config.LogConfig{}, wantLevel: zerolog.InfoLevel},
		{name: "debug level", cfg: config.LogConfig{Level: "debug"}, wantLevel: zerolog.DebugLevel},
		{name: "pretty output", cfg: config.LogConfig{Level: "warn", Pretty: true}, wantLevel: zerolog.WarnLevel},
		{name: "error level", cfg: config.LogConfig{Level: "error"}, wantLevel: zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				InitializeLogger(tt.cfg)
			})
			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
		})
	}
}

func TestInitializeFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")

	closer, err := InitializeFileLogger(config.LogConfig{Level: "info", File: path})
	require.NoError(t, err)

	log := logger.Logger()
	log.Info().Str("component", "test").Msg("written to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")

	InitializeLogger(config.LogConfig{Level: "info"})
}

func TestInitializeFileLogger_InvalidPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "client.log")

	closer, err := InitializeFileLogger(config.LogConfig{File: path})

	assert.Error(t, err)
	assert.Nil(t, closer)
}
