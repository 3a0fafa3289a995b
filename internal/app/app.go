// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/guttosm/nutrition-lookup/config"
	"github.com/guttosm/nutrition-lookup/internal/http"
)

// App is the wired backend: the router and the services it serves.
type App struct {
	Router   *http.Router
	Services *ServiceComponents
}

// InitializeApp creates and wires all backend dependencies.
func InitializeApp(cfg config.Config) *App {
	// Initialize logger first (needed by other components)
	InitializeLogger(cfg.Log)

	serviceComponents := InitializeServices(cfg)
	routerComponents := InitializeRouter(serviceComponents, cfg.Server)

	router := http.NewRouter(
		routerComponents.HealthHandler,
		routerComponents.Config,
		routerComponents.Routes...,
	)

	return &App{
		Router:   router,
		Services: serviceComponents,
	}
}

// Close stops the background work of the router and the services.
func (a *App) Close() {
	a.Router.Close()
	a.Services.Close()
}
