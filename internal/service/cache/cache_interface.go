// Package cache defines the contract of the food details cache.
package cache

import "github.com/guttosm/nutrition-lookup/internal/domain/model"

// Cache stores upstream food records by id.
type Cache interface {
	Get(key model.FoodID) (*model.FoodDetails, bool)
	Set(key model.FoodID, value *model.FoodDetails)
	Invalidate(key model.FoodID)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
