// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/nutrition-lookup/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockFoodSearcher struct {
	mock.Mock
}

func NewMockFoodSearcher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFoodSearcher {
	m := &MockFoodSearcher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockFoodSearcher) Search(ctx context.Context, query string) ([]model.FoodSummary, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FoodSummary), args.Error(1)
}
