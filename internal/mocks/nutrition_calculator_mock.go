// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/nutrition-lookup/internal/domain/dto"
	"github.com/guttosm/nutrition-lookup/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockNutritionCalculator struct {
	mock.Mock
}

func NewMockNutritionCalculator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockNutritionCalculator {
	m := &MockNutritionCalculator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockNutritionCalculator) Calculate(ctx context.Context, id model.FoodID, weightGrams float64) (*dto.CalculateResponse, error) {
	args := m.Called(ctx, id, weightGrams)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CalculateResponse), args.Error(1)
}
