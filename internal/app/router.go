// Package app provides router configuration.
package app

import (
	"github.com/guttosm/nutrition-lookup/config"
	"github.com/guttosm/nutrition-lookup/internal/http"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Routes        []http.RouteGroup
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(services *ServiceComponents, cfg config.ServerConfig) *RouterComponents {
	handler := http.NewHandler(services.Searcher, services.Calculator)

	healthHandler := http.NewHealthHandler()
	healthHandler.RegisterCircuitBreaker("fdc", services.Breaker)

	routerCfg := http.RouterConfig{
		RateLimit:      cfg.RateLimit,
		RateWindow:     cfg.RateWindow,
		RequestTimeout: cfg.RequestTimeout,
		CORSOrigins:    cfg.CORSOrigins,
		SwaggerUser:    cfg.SwaggerUser,
		SwaggerPass:    cfg.SwaggerPass,
	}

	return &RouterComponents{
		Routes:        []http.RouteGroup{http.NewFoodRoutes(handler)},
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
