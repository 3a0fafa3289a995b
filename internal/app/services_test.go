//go:build !integration

package app

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/guttosm/nutrition-lookup/config"
	"github.com/guttosm/nutrition-lookup/internal/circuitbreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func TestInitializeServices(t *testing.T) {
	tests := []struct {
		name      string
		cacheSize int
		wantCache bool
	}{
		{name: "cache enabled", cacheSize: 1000, wantCache: true},
		{name: "cache disabled", cacheSize: 0, wantCache: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig("http://127.0.0.1:0")
			cfg.Cache = config.CacheConfig{Size: tt.cacheSize, TTL: 5 * time.Minute}

			components := InitializeServices(cfg)
			defer components.Close()

			assert.NotNil(t, components.Searcher)
			assert.NotNil(t, components.Calculator)
			require.NotNil(t, components.Breaker)
			assert.Equal(t, "fdc", components.Breaker.Name())
			assert.Equal(t, circuitbreaker.StateClosed, components.Breaker.State())
			if tt.wantCache {
				assert.NotNil(t, components.Cache)
			} else {
				assert.Nil(t, components.Cache)
			}
		})
	}
}

func TestServiceComponents_CloseWithoutCache(t *testing.T) {
	components := &ServiceComponents{}
	assert.NotPanics(t, components.Close)
}
