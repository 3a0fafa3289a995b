package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/nutrition-lookup/internal/circuitbreaker"
	"github.com/guttosm/nutrition-lookup/internal/domain/dto"
	"github.com/guttosm/nutrition-lookup/internal/i18n"
	"github.com/guttosm/nutrition-lookup/internal/service"
)

// Handler provides the food search and nutrition calculation endpoints.
type Handler struct {
	searcher   service.FoodSearcher
	calculator service.NutritionCalculator
}

// NewHandler creates a new Handler instance.
func NewHandler(searcher service.FoodSearcher, calculator service.NutritionCalculator) *Handler {
	return &Handler{
		searcher:   searcher,
		calculator: calculator,
	}
}

// SearchFoods handles GET /api/search requests.
//
// @Summary      Search foods
// @Description  Searches FoodData Central for dishes first and falls back to plain ingredients. Names are cleaned and duplicates removed.
// @Tags         Foods
// @Produce      json
// @Param        query query string true "Food name" example(chicken curry)
// @Success      200 {object} dto.SearchResponse "Matching foods, possibly none"
// @Failure      400 {object} dto.ErrorResponse "Query parameter is required"
// @Failure      429 {object} dto.ErrorResponse "Too many requests"
// @Failure      502 {object} dto.ErrorResponse "Food database unavailable"
// @Failure      504 {object} dto.ErrorResponse "Request timeout"
// @Router       /api/search [get]
func (h *Handler) SearchFoods(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildQueryAndValidate[dto.SearchRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyQueryRequired, nil)
		return
	}

	foods, err := h.searcher.Search(c.Request.Context(), req.Normalized())
	if err != nil {
		upstreamError(builder, err)
		return
	}

	builder.SuccessOK(dto.SearchResponse{Foods: foods})
}

// CalculateNutrition handles POST /api/calculate requests.
//
// @Summary      Calculate nutrition
// @Description  Scales the nutrients of a food to the given weight in grams and computes the share of calories from protein, fat and carbs.
// @Tags         Foods
// @Accept       json
// @Produce      json
// @Param        request body dto.CalculateRequest true "Food and weight"
// @Success      200 {object} dto.CalculateResponse "Nutrient breakdown"
// @Failure      400 {object} dto.ErrorResponse "fdcId and weight are required"
// @Failure      404 {object} dto.ErrorResponse "Food details not found"
// @Failure      429 {object} dto.ErrorResponse "Too many requests"
// @Failure      502 {object} dto.ErrorResponse "Food database unavailable"
// @Failure      504 {object} dto.ErrorResponse "Request timeout"
// @Router       /api/calculate [post]
func (h *Handler) CalculateNutrition(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CalculateRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyCalculateFields, nil)
		return
	}

	resp, err := h.calculator.Calculate(c.Request.Context(), req.FdcID, req.Weight)
	if err != nil {
		if errors.Is(err, service.ErrFoodNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyFoodNotFound, nil)
			return
		}
		upstreamError(builder, err)
		return
	}

	builder.SuccessOK(resp)
}

// upstreamError maps a failed FoodData Central call to 504, 503 or 502.
func upstreamError(builder *ResponseBuilder, err error) {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		builder.Error(http.StatusGatewayTimeout, i18n.ErrKeyTimeout, err)
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyUpstreamUnavailable, err)
	default:
		builder.Error(http.StatusBadGateway, i18n.ErrKeyUpstreamUnavailable, err)
	}
}
