// Package dto defines Data Transfer Objects for the search and calculate endpoints.
//
// The same types are used by the backend handlers and by the remote client,
// so both sides agree on the wire format.
package dto

import (
	"math"
	"strings"

	"github.com/guttosm/nutrition-lookup/internal/domain/model"
)

// SearchRequest carries the query string of GET /api/search.
type SearchRequest struct {
	Query string `form:"query" binding:"required" example:"chicken curry"`
}

// Normalized returns the trimmed query.
func (r SearchRequest) Normalized() string {
	return strings.TrimSpace(r.Query)
}

// Validate rejects queries that are empty after trimming.
func (r *SearchRequest) Validate() error {
	if r.Normalized() == "" {
		return ErrQueryRequired
	}
	return nil
}

// CalculateRequest represents the JSON request body for the calculate endpoint.
//
// @Description Request to scale a food's nutrients to a serving weight
// @Example {"fdcId": 2344719, "weight": 150}
type CalculateRequest struct {
	// FdcID identifies the food to calculate.
	FdcID model.FoodID `json:"fdcId" binding:"required" example:"2344719"`
	// Weight is the serving weight in grams. Must be greater than 0.
	Weight float64 `json:"weight" binding:"required" example:"150" minimum:"0"`
} // @name CalculateRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrQueryRequired is returned when the search query is missing.
	ErrQueryRequired = &ValidationError{
		Field:   "query",
		Message: "is required",
	}
	// ErrInvalidFoodID is returned when fdcId is not positive.
	ErrInvalidFoodID = &ValidationError{
		Field:   "fdcId",
		Message: "must be a positive integer",
	}
	// ErrInvalidWeight is returned when weight is not a positive number.
	ErrInvalidWeight = &ValidationError{
		Field:   "weight",
		Message: "must be a positive number",
	}
)

// Validate performs custom validation on the request.
func (r *CalculateRequest) Validate() error {
	if r.FdcID <= 0 {
		return ErrInvalidFoodID
	}
	if math.IsNaN(r.Weight) || math.IsInf(r.Weight, 0) || r.Weight <= 0 {
		return ErrInvalidWeight
	}
	return nil
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
