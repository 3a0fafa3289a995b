//go:build !integration

package app

import (
	"testing"

	"github.com/guttosm/nutrition-lookup/internal/circuitbreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeClient(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:0")
	cfg.Client.APIBaseURL = "http://localhost:8080"
	cfg.Client.Locale = "pt"

	components := InitializeClient(cfg)

	require.NotNil(t, components.Remote)
	require.NotNil(t, components.Breaker)
	assert.Equal(t, "backend", components.Breaker.Name())
	assert.Equal(t, circuitbreaker.StateClosed, components.Breaker.State())
	assert.Equal(t, "pt", components.Locale)
}
