//go:build !integration

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoodSummary_Brand(t *testing.T) {
	assert.Equal(t, "Acme Foods", FoodSummary{BrandOwner: "Acme Foods"}.Brand())
	assert.Equal(t, GenericBrand, FoodSummary{}.Brand())
}
