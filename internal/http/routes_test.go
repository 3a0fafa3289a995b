//go:build !integration

package http

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/nutrition-lookup/internal/mocks"
	"github.com/stretchr/testify/assert"
)

func TestFoodRoutes_RegisterRoutes(t *testing.T) {
	handler := NewHandler(mocks.NewMockFoodSearcher(t), mocks.NewMockNutritionCalculator(t))
	engine := gin.New()

	var group RouteGroup = NewFoodRoutes(handler)
	group.RegisterRoutes(engine.Group("/api"))

	registered := make(map[string]string)
	for _, route := range engine.Routes() {
		registered[route.Path] = route.Method
	}

	assert.Equal(t, map[string]string{
		"/api/search":    http.MethodGet,
		"/api/calculate": http.MethodPost,
	}, registered)
}
