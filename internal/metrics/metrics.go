// Package metrics provides Prometheus metrics collection for the nutrition lookup tool.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// UpstreamRequestsTotal counts FoodData Central calls by operation and outcome.
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fdc_requests_total",
			Help: "Total number of FoodData Central requests",
		},
		[]string{"operation", "outcome"},
	)

	// UpstreamRequestDuration tracks FoodData Central latency.
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fdc_request_duration_seconds",
			Help:    "FoodData Central request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"operation"},
	)

	// NutritionCalculationsTotal tracks nutrient breakdowns served.
	NutritionCalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nutrition_calculations_total",
			Help: "Total number of nutrition calculations",
		},
		[]string{"status"},
	)

	// SearchResultsReturned tracks how many foods each search returns after deduplication.
	SearchResultsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "food_search_results",
			Help:    "Number of foods returned per search",
			Buckets: []float64{0, 1, 5, 10, 20, 50},
		},
	)

	// RemoteRequestsTotal counts client calls to the backend by endpoint and outcome.
	RemoteRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "client_remote_requests_total",
			Help: "Total number of requests issued by the lookup client",
		},
		[]string{"endpoint", "outcome"},
	)

	// RemoteRequestDuration tracks client round-trip latency.
	RemoteRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "client_remote_request_duration_seconds",
			Help:    "Lookup client request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// CircuitBreakerState reports 0 closed, 1 open, 2 half-open per breaker.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordUpstreamRequest records one FoodData Central call.
func RecordUpstreamRequest(operation, outcome string, duration time.Duration) {
	UpstreamRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
	UpstreamRequestsTotal.WithLabelValues(operation, outcome).Inc()
}

// RecordNutritionCalculation records the outcome of a calculate request.
func RecordNutritionCalculation(status string) {
	NutritionCalculationsTotal.WithLabelValues(status).Inc()
}

// RecordSearchResults records the size of a search result set.
func RecordSearchResults(count int) {
	SearchResultsReturned.Observe(float64(count))
}

// RecordRemoteRequest records one client call to the backend.
func RecordRemoteRequest(endpoint, outcome string, duration time.Duration) {
	RemoteRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
	RemoteRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
}

// SetCircuitBreakerState publishes the numeric state of a named breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}
