// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/nutrition-lookup/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockFoodSource struct {
	mock.Mock
}

func NewMockFoodSource(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFoodSource {
	m := &MockFoodSource{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockFoodSource) Search(ctx context.Context, query string, dataTypes ...string) ([]model.FoodSummary, error) {
	args := m.Called(ctx, query, dataTypes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FoodSummary), args.Error(1)
}

func (m *MockFoodSource) Food(ctx context.Context, id model.FoodID) (*model.FoodDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FoodDetails), args.Error(1)
}
