//go:build !integration

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/nutrition-lookup/internal/circuitbreaker"
	"github.com/guttosm/nutrition-lookup/internal/domain/dto"
	"github.com/guttosm/nutrition-lookup/internal/domain/model"
	"github.com/guttosm/nutrition-lookup/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ui.RemoteClient = (*HTTPClient)(nil)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{BaseURL: srv.URL, Timeout: time.Second, Locale: "pt"}, opts...)
}

func TestHTTPClient_Search(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/search", r.URL.Path)
		assert.Equal(t, "chicken & rice", r.URL.Query().Get("query"))
		assert.Equal(t, "pt", r.Header.Get("Accept-Language"))
		_, err := uuid.Parse(r.Header.Get("X-Request-ID"))
		assert.NoError(t, err)

		_, _ = w.Write([]byte(`{"foods":[{"fdcId":1,"description":"Chicken curry","brandOwner":""},{"fdcId":2,"description":"Rice","brandOwner":"Acme"}]}`))
	})

	foods, err := client.Search(context.Background(), "chicken & rice")

	require.NoError(t, err)
	assert.Equal(t, []model.FoodSummary{
		{FdcID: 1, Description: "Chicken curry"},
		{FdcID: 2, Description: "Rice", BrandOwner: "Acme"},
	}, foods)
}

func TestHTTPClient_SearchWithoutFoods(t *testing.T) {
	for _, body := range []string{`{}`, `{"foods":[]}`, `{"error":"Query parameter is required"}`} {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(body))
		})

		foods, err := client.Search(context.Background(), "x")

		require.NoError(t, err, body)
		assert.Empty(t, foods, body)
	}
}

func TestHTTPClient_Calculate(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/calculate", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req dto.CalculateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, model.FoodID(171477), req.FdcID)
		assert.Equal(t, 150.0, req.Weight)

		_, _ = w.Write([]byte(`{"food_name":"Chicken","weight":150,"nutrients":{"Calories":{"amount":300,"unit":"kcal"},"Fat":{"amount":15,"unit":"g","percent":45}}}`))
	})

	resp, err := client.Calculate(context.Background(), 171477, 150)

	require.NoError(t, err)
	assert.Equal(t, "Chicken", resp.FoodName)
	assert.Equal(t, 300.0, resp.Nutrients.Amount(model.NutrientCalories))
	assert.Equal(t, 45.0, resp.Nutrients.Percent(model.NutrientFat))
	assert.Empty(t, resp.Error)
}

func TestHTTPClient_CalculateSkipsNullNutrients(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"food_name":"Rice","weight":100,"nutrients":{"Calories":{"amount":130,"unit":"kcal"},"Vitamin C":null,"Na":{"amount":1,"unit":"mg"}}}`))
	})

	resp, err := client.Calculate(context.Background(), 1, 100)
	require.NoError(t, err)

	screen := ui.NewScreen()
	ui.NewNutritionPresenter(nil).Present(screen, resp.Nutrients)

	assert.NotContains(t, resp.Nutrients, "Vitamin C")
	assert.Equal(t, []ui.Item{{Primary: "Na", Secondary: "1mg"}}, screen.Children(ui.DetailedList))
}

func TestHTTPClient_CalculateErrorBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Food details not found","code":"not_found"}`))
	})

	resp, err := client.Calculate(context.Background(), 9, 100)

	require.NoError(t, err)
	assert.Equal(t, "Food details not found", resp.Error)
	assert.Nil(t, resp.Nutrients)
}

func TestHTTPClient_MalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	})

	_, err := client.Search(context.Background(), "x")
	assert.ErrorIs(t, err, ErrDecode)

	_, err = client.Calculate(context.Background(), 1, 100)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestHTTPClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	client := New(Config{BaseURL: srv.URL, Timeout: time.Second})

	_, err := client.Search(context.Background(), "x")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDecode)
}

func TestHTTPClient_CircuitBreaker(t *testing.T) {
	calls := 0
	breaker := circuitbreaker.New(circuitbreaker.Config{FailureThreshold: 1, SuccessThreshold: 1, Timeout: time.Minute, Name: "backend"})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`not json`))
	}, WithCircuitBreaker(breaker))

	_, err := client.Search(context.Background(), "x")
	assert.ErrorIs(t, err, ErrDecode)

	_, err = client.Search(context.Background(), "x")
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	assert.Equal(t, 1, calls)
}

func TestHTTPClient_ContextCancelled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"foods":[]}`))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Search(ctx, "x")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "success", outcome(nil))
	assert.Equal(t, "circuit_open", outcome(circuitbreaker.ErrCircuitOpen))
	assert.Equal(t, "decode_error", outcome(ErrDecode))
	assert.Equal(t, "error", outcome(context.DeadlineExceeded))
}
