package service

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/guttosm/nutrition-lookup/internal/domain/model"
	"github.com/guttosm/nutrition-lookup/internal/fdc"
	"github.com/guttosm/nutrition-lookup/internal/metrics"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// FoodSource is the upstream food database.
type FoodSource interface {
	Search(ctx context.Context, query string, dataTypes ...string) ([]model.FoodSummary, error)
	Food(ctx context.Context, id model.FoodID) (*model.FoodDetails, error)
}

// FoodSearcher finds foods by name.
type FoodSearcher interface {
	Search(ctx context.Context, query string) ([]model.FoodSummary, error)
}

var (
	// dishDataTypes are searched first: prepared dishes and their varieties.
	dishDataTypes = []string{fdc.DataTypeSurvey}
	// ingredientDataTypes are the fallback for plain ingredients.
	ingredientDataTypes = []string{fdc.DataTypeFoundation, fdc.DataTypeSRLegacy}

	// namePrefixes are stripped from upstream descriptions, in order.
	namePrefixes = []string{"Restaurant, ", "Fast foods, ", "Inc., ", "Co., "}
)

// FoodSearchService searches dishes first and falls back to ingredients.
type FoodSearchService struct {
	source FoodSource
	log    zerolog.Logger
}

// NewFoodSearchService creates a FoodSearchService.
func NewFoodSearchService(source FoodSource) *FoodSearchService {
	return &FoodSearchService{
		source: source,
		log:    log.With().Str("component", "food_search").Logger(),
	}
}

// Search returns the foods matching query with display names cleaned and duplicates removed.
//
// Dishes are searched first. When that fails or finds nothing, ingredients are searched;
// only a failure of that second stage is returned.
func (s *FoodSearchService) Search(ctx context.Context, query string) ([]model.FoodSummary, error) {
	foods, err := s.source.Search(ctx, query, dishDataTypes...)
	if err != nil {
		s.log.Warn().Err(err).Str("query", query).Msg("Dish search failed, falling back to ingredients")
	}
	if err != nil || len(foods) == 0 {
		foods, err = s.source.Search(ctx, query, ingredientDataTypes...)
		if err != nil {
			return nil, err
		}
	}

	results := Deduplicate(foods)
	metrics.RecordSearchResults(len(results))
	return results, nil
}

// Deduplicate cleans every description and keeps the first food of each
// case-insensitive name. The upstream description is kept as OriginalDescription.
func Deduplicate(foods []model.FoodSummary) []model.FoodSummary {
	seen := make(map[string]struct{}, len(foods))
	results := make([]model.FoodSummary, 0, len(foods))
	for _, food := range foods {
		name := CleanFoodName(food.Description)
		norm := strings.ToLower(strings.TrimSpace(name))
		if _, dup := seen[norm]; dup {
			continue
		}
		seen[norm] = struct{}{}

		results = append(results, model.FoodSummary{
			FdcID:               food.FdcID,
			Description:         name,
			OriginalDescription: food.Description,
			BrandOwner:          food.BrandOwner,
		})
	}
	return results
}

// CleanFoodName strips vendor prefixes from a description and capitalises it:
// "Restaurant, CHICKEN curry" becomes "Chicken curry".
func CleanFoodName(description string) string {
	if description == "" {
		description = "Unknown Food"
	}
	for _, prefix := range namePrefixes {
		description = strings.TrimPrefix(description, prefix)
	}
	return capitalize(strings.TrimSpace(description))
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
