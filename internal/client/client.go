// Package client calls the nutrition backend on behalf of the terminal UI.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/nutrition-lookup/internal/circuitbreaker"
	"github.com/guttosm/nutrition-lookup/internal/domain/dto"
	"github.com/guttosm/nutrition-lookup/internal/domain/model"
	"github.com/guttosm/nutrition-lookup/internal/metrics"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	searchPath    = "/api/search"
	calculatePath = "/api/calculate"
)

// ErrDecode is returned when a response body is not the expected JSON.
var ErrDecode = errors.New("client: malformed response body")

// Config holds client settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Locale  string
}

// HTTPClient implements the search and calculate calls over HTTP.
//
// Status codes are not inspected: a body that parses is a result, so a calculate
// error body arrives as a CalculateResponse with Error set.
type HTTPClient struct {
	baseURL string
	locale  string
	http    *http.Client
	breaker *circuitbreaker.CircuitBreaker
	log     zerolog.Logger
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithCircuitBreaker fails calls fast while the backend is unreachable.
func WithCircuitBreaker(cb *circuitbreaker.CircuitBreaker) Option {
	return func(c *HTTPClient) {
		c.breaker = cb
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		c.http = hc
	}
}

// New creates an HTTPClient.
func New(cfg Config, opts ...Option) *HTTPClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	c := &HTTPClient{
		baseURL: cfg.BaseURL,
		locale:  cfg.Locale,
		http:    &http.Client{Timeout: cfg.Timeout},
		log:     log.With().Str("component", "remote_client").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search calls GET /api/search. A body without foods yields no foods.
func (c *HTTPClient) Search(ctx context.Context, query string) ([]model.FoodSummary, error) {
	endpoint := c.baseURL + searchPath + "?" + url.Values{"query": {query}}.Encode()

	var resp dto.SearchResponse
	if err := c.call(ctx, "search", http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Foods, nil
}

// Calculate calls POST /api/calculate.
func (c *HTTPClient) Calculate(ctx context.Context, id model.FoodID, weightGrams float64) (*dto.CalculateResponse, error) {
	body, err := json.Marshal(dto.CalculateRequest{FdcID: id, Weight: weightGrams})
	if err != nil {
		return nil, fmt.Errorf("client: failed to marshal request: %w", err)
	}

	var resp dto.CalculateResponse
	if err := c.call(ctx, "calculate", http.MethodPost, c.baseURL+calculatePath, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) call(ctx context.Context, endpoint, method, target string, body []byte, out any) error {
	start := time.Now()
	err := c.execute(ctx, func(ctx context.Context) error {
		return c.do(ctx, method, target, body, out)
	})
	metrics.RecordRemoteRequest(endpoint, outcome(err), time.Since(start))
	if err != nil {
		c.log.Warn().Err(err).Str("endpoint", endpoint).Dur("duration", time.Since(start)).Msg("Backend request failed")
	}
	return err
}

func (c *HTTPClient) execute(ctx context.Context, fn func(ctx context.Context) error) error {
	if c.breaker == nil {
		return fn(ctx)
	}
	return c.breaker.Execute(ctx, fn)
}

func (c *HTTPClient) do(ctx context.Context, method, target string, body []byte, out any) error {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := newRequest(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("client: failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.locale != "" {
		req.Header.Set("Accept-Language", c.locale)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("client: request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: status %d: %v", ErrDecode, resp.StatusCode, err)
	}
	return nil
}

// newRequest avoids handing http.NewRequest a typed nil reader.
func newRequest(ctx context.Context, method, target string, body *bytes.Reader) (*http.Request, error) {
	if body == nil {
		return http.NewRequestWithContext(ctx, method, target, nil)
	}
	return http.NewRequestWithContext(ctx, method, target, body)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		return "circuit_open"
	case errors.Is(err, ErrDecode):
		return "decode_error"
	default:
		return "error"
	}
}
