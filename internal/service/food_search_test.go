//go:build !integration

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/guttosm/nutrition-lookup/internal/domain/model"
	"github.com/guttosm/nutrition-lookup/internal/fdc"
	"github.com/guttosm/nutrition-lookup/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	surveyTypes     = []string{fdc.DataTypeSurvey}
	ingredientTypes = []string{fdc.DataTypeFoundation, fdc.DataTypeSRLegacy}
)

func TestCleanFoodName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Restaurant, chicken curry", want: "Chicken curry"},
		{in: "Fast foods, FRENCH FRIES", want: "French fries"},
		{in: "Restaurant, Fast foods, burger", want: "Burger"},
		{in: "Fast foods, Restaurant, burger", want: "Restaurant, burger"},
		{in: "Inc., Co., dal", want: "Dal"},
		{in: "  spinach, raw  ", want: "Spinach, raw"},
		{in: "Restaurant chicken", want: "Restaurant chicken"},
		{in: "", want: "Unknown food"},
		{in: "élan", want: "Élan"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanFoodName(tt.in))
		})
	}
}

func TestDeduplicate(t *testing.T) {
	foods := []model.FoodSummary{
		{FdcID: 1, Description: "Restaurant, Chicken curry"},
		{FdcID: 2, Description: "chicken CURRY"},
		{FdcID: 3, Description: "Chicken curry, with rice", BrandOwner: "Acme"},
	}

	got := Deduplicate(foods)

	assert.Equal(t, []model.FoodSummary{
		{FdcID: 1, Description: "Chicken curry", OriginalDescription: "Restaurant, Chicken curry"},
		{FdcID: 3, Description: "Chicken curry, with rice", OriginalDescription: "Chicken curry, with rice", BrandOwner: "Acme"},
	}, got)
}

func TestFoodSearchService_Search(t *testing.T) {
	dishes := []model.FoodSummary{{FdcID: 10, Description: "Chicken curry"}}
	ingredients := []model.FoodSummary{{FdcID: 20, Description: "Spinach, raw"}}
	upstreamErr := errors.New("upstream down")

	tests := []struct {
		name    string
		setup   func(m *mocks.MockFoodSource)
		want    []model.FoodSummary
		wantErr error
	}{
		{
			name: "dishes found",
			setup: func(m *mocks.MockFoodSource) {
				m.On("Search", mock.Anything, "curry", surveyTypes).Return(dishes, nil).Once()
			},
			want: []model.FoodSummary{{FdcID: 10, Description: "Chicken curry", OriginalDescription: "Chicken curry"}},
		},
		{
			name: "no dishes falls back to ingredients",
			setup: func(m *mocks.MockFoodSource) {
				m.On("Search", mock.Anything, "curry", surveyTypes).Return([]model.FoodSummary{}, nil).Once()
				m.On("Search", mock.Anything, "curry", ingredientTypes).Return(ingredients, nil).Once()
			},
			want: []model.FoodSummary{{FdcID: 20, Description: "Spinach, raw", OriginalDescription: "Spinach, raw"}},
		},
		{
			name: "dish failure falls back to ingredients",
			setup: func(m *mocks.MockFoodSource) {
				m.On("Search", mock.Anything, "curry", surveyTypes).Return(nil, upstreamErr).Once()
				m.On("Search", mock.Anything, "curry", ingredientTypes).Return(ingredients, nil).Once()
			},
			want: []model.FoodSummary{{FdcID: 20, Description: "Spinach, raw", OriginalDescription: "Spinach, raw"}},
		},
		{
			name: "nothing anywhere",
			setup: func(m *mocks.MockFoodSource) {
				m.On("Search", mock.Anything, "curry", surveyTypes).Return(nil, nil).Once()
				m.On("Search", mock.Anything, "curry", ingredientTypes).Return(nil, nil).Once()
			},
			want: []model.FoodSummary{},
		},
		{
			name: "ingredient failure is returned",
			setup: func(m *mocks.MockFoodSource) {
				m.On("Search", mock.Anything, "curry", surveyTypes).Return(nil, nil).Once()
				m.On("Search", mock.Anything, "curry", ingredientTypes).Return(nil, upstreamErr).Once()
			},
			wantErr: upstreamErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := mocks.NewMockFoodSource(t)
			tt.setup(source)

			got, err := NewFoodSearchService(source).Search(context.Background(), "curry")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
