// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/nutrition-lookup/internal/domain/dto"
	"github.com/guttosm/nutrition-lookup/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockRemoteClient struct {
	mock.Mock
}

func NewMockRemoteClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRemoteClient {
	m := &MockRemoteClient{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockRemoteClient) Search(ctx context.Context, query string) ([]model.FoodSummary, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FoodSummary), args.Error(1)
}

func (m *MockRemoteClient) Calculate(ctx context.Context, id model.FoodID, weightGrams float64) (*dto.CalculateResponse, error) {
	args := m.Called(ctx, id, weightGrams)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CalculateResponse), args.Error(1)
}
