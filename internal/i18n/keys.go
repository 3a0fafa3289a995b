// Package i18n provides internationalization support for the nutrition lookup tool.
package i18n

// Error message translation keys used by the backend.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyQueryRequired indicates a missing search query.
	ErrKeyQueryRequired = "error.validation.query"
	// ErrKeyCalculateFields indicates a missing or invalid fdcId or weight.
	ErrKeyCalculateFields = "error.validation.calculate"
	// ErrKeyFoodNotFound indicates the food id is unknown upstream.
	ErrKeyFoodNotFound = "error.food_not_found"
	// ErrKeyUpstreamUnavailable indicates the food database could not be reached.
	ErrKeyUpstreamUnavailable = "error.upstream_unavailable"
)

// Notice keys shown by the lookup client.
const (
	// NoticeKeyNoFoods is shown when a search returns nothing.
	NoticeKeyNoFoods = "notice.no_foods"
	// NoticeKeySearchFailed is shown when a search request fails.
	NoticeKeySearchFailed = "notice.search_failed"
	// NoticeKeyInvalidWeight is shown when the weight input is not a positive number.
	NoticeKeyInvalidWeight = "notice.invalid_weight"
	// NoticeKeyCalculateFailed is shown when a calculate request fails.
	NoticeKeyCalculateFailed = "notice.calculate_failed"
)

// Label keys for the lookup client controls.
const (
	// LabelKeyAnalyze is the idle label of the search control.
	LabelKeyAnalyze = "label.analyze"
	// LabelKeyCalculate is the idle label of the calculate control.
	LabelKeyCalculate = "label.calculate"
	// LabelKeyTitle heads the terminal view.
	LabelKeyTitle = "label.title"
	// LabelKeyQueryPlaceholder is shown in the empty food input.
	LabelKeyQueryPlaceholder = "label.query_placeholder"
	// LabelKeyWeight labels the weight input.
	LabelKeyWeight = "label.weight"
	// LabelKeyDetails heads the detailed nutrient list.
	LabelKeyDetails = "label.details"
	// LabelKeyDismiss explains how to dismiss a notice.
	LabelKeyDismiss = "label.dismiss"
	// LabelKeyHelp lists the key bindings.
	LabelKeyHelp = "label.help"
)
