// Package app provides service initialization.
package app

import (
	"github.com/guttosm/nutrition-lookup/config"
	"github.com/guttosm/nutrition-lookup/internal/circuitbreaker"
	"github.com/guttosm/nutrition-lookup/internal/fdc"
	"github.com/guttosm/nutrition-lookup/internal/logger"
	"github.com/guttosm/nutrition-lookup/internal/metrics"
	"github.com/guttosm/nutrition-lookup/internal/service"
	"github.com/guttosm/nutrition-lookup/internal/service/cache"
)

// Number of shards of the food details cache.
const detailsCacheShards = 16

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Searcher   service.FoodSearcher
	Calculator service.NutritionCalculator
	// Breaker guards every FoodData Central call.
	Breaker *circuitbreaker.CircuitBreaker
	// Cache is nil when CACHE_SIZE is 0.
	Cache cache.Cache
}

// InitializeServices builds the FoodData Central client and the services on top of it.
func InitializeServices(cfg config.Config) *ServiceComponents {
	breaker := newCircuitBreaker("fdc", cfg.CircuitBreaker, fdc.IsFailure)

	source := fdc.NewClient(fdc.Config{
		APIKey:   cfg.FDC.APIKey,
		BaseURL:  cfg.FDC.BaseURL,
		PageSize: cfg.FDC.PageSize,
		Timeout:  cfg.FDC.Timeout,
	}, breaker)

	components := &ServiceComponents{
		Searcher: service.NewFoodSearchService(source),
		Breaker:  breaker,
	}

	var opts []service.NutritionOption
	if cfg.Cache.Size > 0 {
		components.Cache = service.NewShardedCache(cfg.Cache.Size, cfg.Cache.TTL, detailsCacheShards)
		opts = append(opts, service.WithDetailsCache(components.Cache))
	}
	components.Calculator = service.NewNutritionService(source, opts...)

	return components
}

// Close stops the cache cleanup goroutines.
func (s *ServiceComponents) Close() {
	if s.Cache != nil {
		s.Cache.Stop()
	}
}

// newCircuitBreaker creates a breaker that logs and exports its state changes.
func newCircuitBreaker(name string, cfg config.CircuitBreakerConfig, isFailure func(error) bool) *circuitbreaker.CircuitBreaker {
	cbLog := logger.Component("circuitbreaker")
	metrics.SetCircuitBreakerState(name, int(circuitbreaker.StateClosed))

	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.FailureThreshold,
		SuccessThreshold: cfg.SuccessThreshold,
		Timeout:          cfg.Timeout,
		Name:             name,
		IsFailure:        isFailure,
		OnStateChange: func(name string, from, to circuitbreaker.State) {
			metrics.SetCircuitBreakerState(name, int(to))
			cbLog.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Circuit breaker state changed")
		},
	})
}
