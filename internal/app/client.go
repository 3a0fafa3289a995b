// Package app provides the terminal client wiring.
package app

import (
	"github.com/guttosm/nutrition-lookup/config"
	"github.com/guttosm/nutrition-lookup/internal/circuitbreaker"
	"github.com/guttosm/nutrition-lookup/internal/client"
)

// ClientComponents holds the terminal client's connection to the backend.
type ClientComponents struct {
	Remote  *client.HTTPClient
	Breaker *circuitbreaker.CircuitBreaker
	Locale  string
}

// InitializeClient builds the backend client used by the terminal controller.
func InitializeClient(cfg config.Config) *ClientComponents {
	breaker := newCircuitBreaker("backend", cfg.CircuitBreaker, nil)

	remote := client.New(client.Config{
		BaseURL: cfg.Client.APIBaseURL,
		Timeout: cfg.Client.Timeout,
		Locale:  cfg.Client.Locale,
	}, client.WithCircuitBreaker(breaker))

	return &ClientComponents{
		Remote:  remote,
		Breaker: breaker,
		Locale:  cfg.Client.Locale,
	}
}
