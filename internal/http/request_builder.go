package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/nutrition-lookup/internal/domain/dto"
	"github.com/guttosm/nutrition-lookup/internal/i18n"
	"github.com/guttosm/nutrition-lookup/internal/middleware"
)

// Validator is implemented by request DTOs that check themselves after binding.
type Validator interface {
	Validate() error
}

// BuildRequestAndValidate binds the JSON body into a T and validates it when T implements Validator.
func BuildRequestAndValidate[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	if v, ok := any(&req).(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return &req, nil
}

// BuildQueryAndValidate binds the query string into a T and validates it when T implements Validator.
func BuildQueryAndValidate[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindQuery(&req); err != nil {
		return nil, err
	}
	if v, ok := any(&req).(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return &req, nil
}

// ResponseBuilder writes handler responses.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success writes data as the JSON body.
func (b *ResponseBuilder) Success(statusCode int, data any) {
	b.c.JSON(statusCode, data)
}

// SuccessOK writes data with 200 OK.
func (b *ResponseBuilder) SuccessOK(data any) {
	b.Success(http.StatusOK, data)
}

// Error aborts with an ErrorResponse whose message is messageKey translated for the request locale.
// err, when set, is attached to the context for ErrorHandler to log.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(b.c))
	b.ErrorWithMessage(statusCode, message, err)
}

// ErrorWithMessage aborts with an ErrorResponse carrying message as is.
func (b *ResponseBuilder) ErrorWithMessage(statusCode int, message string, err error) {
	if err != nil {
		_ = b.c.Error(err)
	}
	resp := dto.NewError(dto.ErrCodeFromStatus(statusCode), message).
		WithRequestID(middleware.GetRequestID(b.c))
	b.c.AbortWithStatusJSON(statusCode, resp)
}
