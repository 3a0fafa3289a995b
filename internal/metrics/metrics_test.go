//go:build !integration

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(PrometheusMiddleware())
	router.GET("/api/search", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.POST("/api/calculate", func(c *gin.Context) {
		c.String(http.StatusBadGateway, "error")
	})

	tests := []struct {
		name           string
		method         string
		path           string
		route          string
		expectedStatus int
	}{
		{name: "successful request", method: http.MethodGet, path: "/api/search?query=dal", route: "/api/search", expectedStatus: http.StatusOK},
		{name: "error request", method: http.MethodPost, path: "/api/calculate", route: "/api/calculate", expectedStatus: http.StatusBadGateway},
		{name: "unmatched route", method: http.MethodGet, path: "/nope", route: "unmatched", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := HTTPRequestTotal.WithLabelValues(tt.method, tt.route, strconv.Itoa(tt.expectedStatus))
			before := testutil.ToFloat64(counter)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, before+1, testutil.ToFloat64(counter))
		})
	}
}

func TestRecordUpstreamRequest(t *testing.T) {
	counter := UpstreamRequestsTotal.WithLabelValues("search", "success")
	before := testutil.ToFloat64(counter)

	RecordUpstreamRequest("search", "success", 120*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestRecordRemoteRequest(t *testing.T) {
	counter := RemoteRequestsTotal.WithLabelValues("calculate", "remote_error")
	before := testutil.ToFloat64(counter)

	RecordRemoteRequest("calculate", "remote_error", 10*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestRecordNutritionCalculation(t *testing.T) {
	counter := NutritionCalculationsTotal.WithLabelValues("success")
	before := testutil.ToFloat64(counter)

	RecordNutritionCalculation("success")

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestSetCircuitBreakerState(t *testing.T) {
	SetCircuitBreakerState("fdc", 1)
	assert.Equal(t, 1.0, testutil.ToFloat64(CircuitBreakerState.WithLabelValues("fdc")))

	SetCircuitBreakerState("fdc", 0)
	assert.Equal(t, 0.0, testutil.ToFloat64(CircuitBreakerState.WithLabelValues("fdc")))
}

func TestCacheMetrics(t *testing.T) {
	UpdateCacheMetrics(3, 10)
	assert.Equal(t, 3.0, testutil.ToFloat64(CacheSize))
	assert.Equal(t, 10.0, testutil.ToFloat64(CacheCapacity))

	counter := CacheOperationsTotal.WithLabelValues("get", "hit")
	before := testutil.ToFloat64(counter)
	RecordCacheOperation("get", "hit")
	assert.Equal(t, before+1, testutil.ToFloat64(counter))

	RecordSearchResults(5)
}
