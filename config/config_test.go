//go:build !integration

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		cfg := Load()

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
		assert.Equal(t, "https://api.nal.usda.gov/fdc/v1", cfg.FDC.BaseURL)
		assert.Equal(t, 20, cfg.FDC.PageSize)
		assert.Equal(t, 1000, cfg.Cache.Size)
		assert.Equal(t, 30*time.Minute, cfg.Cache.TTL)
		assert.Equal(t, "http://localhost:8080", cfg.Client.APIBaseURL)
		assert.Equal(t, "en", cfg.Client.Locale)
		assert.Equal(t, 5, cfg.CircuitBreaker.FailureThreshold)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.False(t, cfg.Log.Pretty)
	})

	t.Run("loads values from environment", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("RATE_LIMIT", "50")
		t.Setenv("RATE_WINDOW", "30s")
		t.Setenv("CACHE_SIZE", "500")
		t.Setenv("CACHE_TTL", "10m")
		t.Setenv("USDA_API_KEY", "secret")
		t.Setenv("FDC_BASE_URL", "http://fdc.local/v1/")
		t.Setenv("API_BASE_URL", "http://api.local/")
		t.Setenv("LOCALE", "pt")
		t.Setenv("LOG_PRETTY", "true")

		cfg := Load()

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 50, cfg.Server.RateLimit)
		assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
		assert.Equal(t, 500, cfg.Cache.Size)
		assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
		assert.Equal(t, "secret", cfg.FDC.APIKey)
		assert.Equal(t, "http://fdc.local/v1", cfg.FDC.BaseURL)
		assert.Equal(t, "http://api.local", cfg.Client.APIBaseURL)
		assert.Equal(t, "pt", cfg.Client.Locale)
		assert.True(t, cfg.Log.Pretty)
	})

	t.Run("handles invalid values gracefully", func(t *testing.T) {
		t.Setenv("RATE_LIMIT", "invalid")
		t.Setenv("LOG_PRETTY", "invalid")
		t.Setenv("RATE_WINDOW", "invalid")

		cfg := Load()

		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.False(t, cfg.Log.Pretty)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
	})
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("NUTRITION_TEST_KEY=from-file\nNUTRITION_TEST_KEEP=from-file\n"), 0o600))

	t.Setenv("NUTRITION_TEST_KEEP", "from-env")
	t.Cleanup(func() { _ = os.Unsetenv("NUTRITION_TEST_KEY") })

	loadDotEnv(path)

	assert.Equal(t, "from-file", os.Getenv("NUTRITION_TEST_KEY"))
	assert.Equal(t, "from-env", os.Getenv("NUTRITION_TEST_KEEP"), "existing variables win")

	loadDotEnv(filepath.Join(dir, "missing.env"))
}

func TestParseCORSOrigins(t *testing.T) {
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, parseCORSOrigins(""))
	assert.Equal(t,
		[]string{"http://localhost:3000", "http://127.0.0.1:3000", "https://food.example"},
		parseCORSOrigins(" https://food.example , "),
	)
}
