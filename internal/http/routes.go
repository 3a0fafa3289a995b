package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup is a set of API routes registered under /api.
type RouteGroup interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// FoodRoutes registers the search and calculate endpoints.
type FoodRoutes struct {
	handler *Handler
}

// NewFoodRoutes creates FoodRoutes serving handler.
func NewFoodRoutes(handler *Handler) *FoodRoutes {
	return &FoodRoutes{handler: handler}
}

// RegisterRoutes implements RouteGroup.
func (r *FoodRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/search", r.handler.SearchFoods)
	rg.POST("/calculate", r.handler.CalculateNutrition)
}
