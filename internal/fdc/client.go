// Package fdc is a client for the USDA FoodData Central API.
package fdc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/guttosm/nutrition-lookup/internal/circuitbreaker"
	"github.com/guttosm/nutrition-lookup/internal/domain/model"
	"github.com/guttosm/nutrition-lookup/internal/metrics"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Data types accepted by the search endpoint.
const (
	DataTypeSurvey     = "Survey (FNDDS)"
	DataTypeFoundation = "Foundation"
	DataTypeSRLegacy   = "SR Legacy"
)

const (
	defaultBaseURL  = "https://api.nal.usda.gov/fdc/v1"
	defaultPageSize = 20
	maxErrorBody    = 512
)

// ErrFoodNotFound is returned by Food when the id is unknown upstream.
var ErrFoodNotFound = errors.New("food not found")

// StatusError is an unexpected HTTP status from FoodData Central.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fdc: unexpected status %d: %s", e.StatusCode, e.Body)
}

// Config holds client settings.
type Config struct {
	APIKey   string
	BaseURL  string
	PageSize int
	Timeout  time.Duration
}

// Client calls FoodData Central. It is safe for concurrent use.
type Client struct {
	apiKey   string
	baseURL  string
	pageSize int
	http     *http.Client
	breaker  *circuitbreaker.CircuitBreaker
	log      zerolog.Logger
}

// NewClient creates a client. A nil breaker disables circuit breaking.
func NewClient(cfg Config, breaker *circuitbreaker.CircuitBreaker) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		apiKey:   cfg.APIKey,
		baseURL:  cfg.BaseURL,
		pageSize: cfg.PageSize,
		http:     &http.Client{Timeout: cfg.Timeout},
		breaker:  breaker,
		log:      log.With().Str("component", "fdc").Logger(),
	}
}

// IsFailure reports whether err should count against the upstream circuit.
// Unknown foods and cancelled requests say nothing about upstream health.
func IsFailure(err error) bool {
	return !errors.Is(err, ErrFoodNotFound) && !errors.Is(err, context.Canceled)
}

// Breaker returns the circuit breaker guarding upstream calls, or nil.
func (c *Client) Breaker() *circuitbreaker.CircuitBreaker {
	return c.breaker
}

type searchResponse struct {
	Foods []searchFood `json:"foods"`
}

type searchFood struct {
	FdcID       int    `json:"fdcId"`
	Description string `json:"description"`
	BrandOwner  string `json:"brandOwner"`
	DataType    string `json:"dataType"`
}

// Search returns the raw foods matching query within dataTypes, sorted by data type.
func (c *Client) Search(ctx context.Context, query string, dataTypes ...string) ([]model.FoodSummary, error) {
	params := url.Values{}
	params.Set("query", query)
	for _, dt := range dataTypes {
		params.Add("dataType", dt)
	}
	params.Set("pageSize", strconv.Itoa(c.pageSize))
	params.Set("sortBy", "dataType.keyword")
	params.Set("sortOrder", "asc")

	var resp searchResponse
	if err := c.get(ctx, "search", "/foods/search", params, &resp); err != nil {
		return nil, err
	}

	foods := make([]model.FoodSummary, 0, len(resp.Foods))
	for _, f := range resp.Foods {
		foods = append(foods, model.FoodSummary{
			FdcID:       model.FoodID(f.FdcID),
			Description: f.Description,
			BrandOwner:  f.BrandOwner,
		})
	}
	return foods, nil
}

type foodResponse struct {
	FdcID         int    `json:"fdcId"`
	Description   string `json:"description"`
	FoodNutrients []struct {
		Amount   *float64 `json:"amount"`
		Nutrient struct {
			Name     string `json:"name"`
			UnitName string `json:"unitName"`
		} `json:"nutrient"`
	} `json:"foodNutrients"`
}

// Food returns the nutrient record of one food. Amounts are per 100 g.
func (c *Client) Food(ctx context.Context, id model.FoodID) (*model.FoodDetails, error) {
	var resp foodResponse
	path := "/food/" + strconv.Itoa(int(id))
	if err := c.get(ctx, "food", path, url.Values{}, &resp); err != nil {
		return nil, err
	}

	details := &model.FoodDetails{
		FdcID:       model.FoodID(resp.FdcID),
		Description: resp.Description,
		Nutrients:   make([]model.FoodNutrient, 0, len(resp.FoodNutrients)),
	}
	for _, n := range resp.FoodNutrients {
		var amount float64
		if n.Amount != nil {
			amount = *n.Amount
		}
		details.Nutrients = append(details.Nutrients, model.FoodNutrient{
			Name:   n.Nutrient.Name,
			Unit:   n.Nutrient.UnitName,
			Amount: amount,
		})
	}
	return details, nil
}

func (c *Client) get(ctx context.Context, operation, path string, params url.Values, out any) error {
	start := time.Now()
	err := c.execute(ctx, func(ctx context.Context) error {
		return c.do(ctx, path, params, out)
	})
	metrics.RecordUpstreamRequest(operation, outcome(err), time.Since(start))

	if err != nil && !errors.Is(err, ErrFoodNotFound) {
		c.log.Warn().Err(err).Str("operation", operation).Dur("duration", time.Since(start)).Msg("FoodData Central request failed")
	}
	return err
}

func (c *Client) execute(ctx context.Context, fn func(ctx context.Context) error) error {
	if c.breaker == nil {
		return fn(ctx)
	}
	return c.breaker.Execute(ctx, fn)
}

func (c *Client) do(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("api_key", c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("fdc: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("fdc: request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrFoodNotFound
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("fdc: failed to decode response: %w", err)
	}
	return nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrFoodNotFound):
		return "not_found"
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		return "circuit_open"
	default:
		return "error"
	}
}
