package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/nutrition-lookup/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeUpstream indicates the food database could not be reached.
	ErrCodeUpstream = "upstream_unavailable"
)

// SearchResponse is the body of a successful search.
// @Description Search result list
type SearchResponse struct {
	Foods []model.FoodSummary `json:"foods"`
} // @name SearchResponse

// CalculateResponse is the body of the calculate endpoint.
// Either Nutrients or Error is set.
// @Description Nutrient breakdown for a food at a given weight
type CalculateResponse struct {
	FoodName  string          `json:"food_name,omitempty" example:"Chicken curry"`
	Weight    float64         `json:"weight,omitempty" example:"150"`
	Nutrients model.Nutrients `json:"nutrients,omitempty"`
	Error     string          `json:"error,omitempty"`
} // @name CalculateResponse

// ErrorResponse represents a standardized error response for the API.
// Error holds the human readable message so clients can show it as is.
// @Description Standardized error response
type ErrorResponse struct {
	Error     string            `json:"error" example:"Food details not found"`
	Code      string            `json:"code" example:"not_found"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     message,
		Code:      code,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		return ErrCodeUpstream
	default:
		return ErrCodeInternal
	}
}
