//go:build !integration

package cache

import (
	"testing"

	"github.com/guttosm/nutrition-lookup/internal/domain/model"
	"github.com/stretchr/testify/assert"
)

type mapCache map[model.FoodID]*model.FoodDetails

func (m mapCache) Get(key model.FoodID) (*model.FoodDetails, bool) {
	v, ok := m[key]
	return v, ok
}
func (m mapCache) Set(key model.FoodID, value *model.FoodDetails) { m[key] = value }
func (m mapCache) Invalidate(key model.FoodID)                    { delete(m, key) }
func (m mapCache) Clear() {
	for k := range m {
		delete(m, k)
	}
}
func (m mapCache) Stop()            {}
func (m mapCache) Metrics() Metrics { return Metrics{Size: len(m)} }

func TestCacheContract(t *testing.T) {
	var c CacheWithMetrics = mapCache{}

	_, found := c.Get(1)
	assert.False(t, found)

	c.Set(1, &model.FoodDetails{FdcID: 1})
	got, found := c.Get(1)
	assert.True(t, found)
	assert.Equal(t, model.FoodID(1), got.FdcID)
	assert.Equal(t, 1, c.Metrics().Size)

	c.Invalidate(1)
	c.Clear()
	c.Stop()
	assert.Zero(t, c.Metrics().Size)
}
