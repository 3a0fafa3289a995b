//go:build !integration

package fdc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/guttosm/nutrition-lookup/internal/circuitbreaker"
	"github.com/guttosm/nutrition-lookup/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, breaker *circuitbreaker.CircuitBreaker) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{APIKey: "test-key", BaseURL: srv.URL, Timeout: time.Second}, breaker)
}

func TestClient_Search(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/foods/search", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "chicken curry", q.Get("query"))
		assert.Equal(t, []string{DataTypeFoundation, DataTypeSRLegacy}, q["dataType"])
		assert.Equal(t, "20", q.Get("pageSize"))
		assert.Equal(t, "dataType.keyword", q.Get("sortBy"))
		assert.Equal(t, "asc", q.Get("sortOrder"))
		assert.Equal(t, "test-key", q.Get("api_key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"totalHits":2,"foods":[
			{"fdcId":2344719,"description":"Restaurant, chicken curry","dataType":"Survey (FNDDS)"},
			{"fdcId":1750339,"description":"Chicken curry","brandOwner":"Acme Foods"}]}`))
	}, nil)

	foods, err := client.Search(context.Background(), "chicken curry", DataTypeFoundation, DataTypeSRLegacy)

	require.NoError(t, err)
	assert.Equal(t, []model.FoodSummary{
		{FdcID: 2344719, Description: "Restaurant, chicken curry"},
		{FdcID: 1750339, Description: "Chicken curry", BrandOwner: "Acme Foods"},
	}, foods)
}

func TestClient_SearchNoFoods(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"foods":[]}`))
	}, nil)

	foods, err := client.Search(context.Background(), "zzz", DataTypeSurvey)

	require.NoError(t, err)
	assert.Empty(t, foods)
}

func TestClient_Food(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/food/171477", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		_, _ = w.Write([]byte(`{"fdcId":171477,"description":"Chicken, breast","foodNutrients":[
			{"nutrient":{"name":"Protein","unitName":"g"},"amount":31.0},
			{"nutrient":{"name":"Energy","unitName":"kcal"},"amount":165},
			{"nutrient":{"name":"Iron, Fe","unitName":"mg"}}]}`))
	}, nil)

	details, err := client.Food(context.Background(), 171477)

	require.NoError(t, err)
	assert.Equal(t, &model.FoodDetails{
		FdcID:       171477,
		Description: "Chicken, breast",
		Nutrients: []model.FoodNutrient{
			{Name: "Protein", Unit: "g", Amount: 31},
			{Name: "Energy", Unit: "kcal", Amount: 165},
			{Name: "Iron, Fe", Unit: "mg", Amount: 0},
		},
	}, details)
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "not found",
			status: http.StatusNotFound,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrFoodNotFound)
			},
		},
		{
			name:   "server error",
			status: http.StatusInternalServerError,
			body:   "boom",
			check: func(t *testing.T, err error) {
				var statusErr *StatusError
				require.ErrorAs(t, err, &statusErr)
				assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
				assert.Equal(t, "boom", statusErr.Body)
			},
		},
		{
			name:   "invalid json",
			status: http.StatusOK,
			body:   "{not json",
			check: func(t *testing.T, err error) {
				assert.ErrorContains(t, err, "failed to decode response")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}, nil)

			_, err := client.Food(context.Background(), 1)

			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestClient_CircuitBreaker(t *testing.T) {
	calls := 0
	breaker := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 2,
		SuccessThreshold: 1,
		Timeout:          time.Minute,
		Name:             "fdc",
		IsFailure:        IsFailure,
	})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Path == "/food/404" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusBadGateway)
	}, breaker)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := client.Food(ctx, 404)
		assert.ErrorIs(t, err, ErrFoodNotFound)
	}
	assert.Equal(t, circuitbreaker.StateClosed, breaker.State(), "unknown foods do not trip the circuit")

	for i := 0; i < 2; i++ {
		_, err := client.Food(ctx, 1)
		require.Error(t, err)
	}
	assert.Equal(t, circuitbreaker.StateOpen, breaker.State())

	_, err := client.Search(ctx, "apple", DataTypeSurvey)
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	assert.Equal(t, 5, calls)
	assert.Same(t, breaker, client.Breaker())
}

func TestIsFailure(t *testing.T) {
	assert.False(t, IsFailure(ErrFoodNotFound))
	assert.False(t, IsFailure(context.Canceled))
	assert.True(t, IsFailure(&StatusError{StatusCode: 500}))
	assert.True(t, IsFailure(context.DeadlineExceeded))
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "success", outcome(nil))
	assert.Equal(t, "not_found", outcome(ErrFoodNotFound))
	assert.Equal(t, "circuit_open", outcome(circuitbreaker.ErrCircuitOpen))
	assert.Equal(t, "error", outcome(&StatusError{StatusCode: 503}))
}
