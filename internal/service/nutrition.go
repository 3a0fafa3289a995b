package service

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/guttosm/nutrition-lookup/internal/domain/dto"
	"github.com/guttosm/nutrition-lookup/internal/domain/model"
	"github.com/guttosm/nutrition-lookup/internal/fdc"
	"github.com/guttosm/nutrition-lookup/internal/metrics"
	"github.com/guttosm/nutrition-lookup/internal/service/cache"
)

// ErrFoodNotFound is returned when the requested food does not exist upstream.
var ErrFoodNotFound = errors.New("food details not found")

// nutrientNames maps FoodData Central nutrient names to display names.
var nutrientNames = map[string]string{
	"Energy":                         model.NutrientCalories,
	"Protein":                        model.NutrientProtein,
	"Total lipid (fat)":              model.NutrientFat,
	"Carbohydrate, by difference":    model.NutrientCarbs,
	"Fiber, total dietary":           "Dietary Fiber",
	"Cholesterol":                    "Cholesterol",
	"Vitamin A, RAE":                 "Vitamin A",
	"Thiamin":                        "Vitamin B1",
	"Riboflavin":                     "Vitamin B2",
	"Niacin":                         "Niacin",
	"Vitamin C, total ascorbic acid": "Vitamin C",
	"Vitamin E (alpha-tocopherol)":   "Vitamin E",
	"Vitamin K (phylloquinone)":      "Vitamin K",
	"Sodium, Na":                     "Na",
	"Calcium, Ca":                    "Ca",
	"Magnesium, Mg":                  "Mg",
	"Iron, Fe":                       "Fe",
	"Manganese, Mn":                  "Mn",
	"Zinc, Zn":                       "Zn",
	"Copper, Cu":                     "Cu",
	"Phosphorus, P":                  "P",
	"Carotene, beta":                 "Carotene",
	"Retinol":                        "Retinol Equivalent",
}

// Calories per gram of each macro.
const (
	kcalPerGramFat     = 9
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
)

// NutritionCalculator computes nutrient breakdowns.
type NutritionCalculator interface {
	Calculate(ctx context.Context, id model.FoodID, weightGrams float64) (*dto.CalculateResponse, error)
}

// NutritionService loads food records, through the cache when one is set,
// and scales them to a serving weight.
type NutritionService struct {
	source FoodSource
	cache  cache.Cache
}

// NutritionOption configures a NutritionService.
type NutritionOption func(*NutritionService)

// WithDetailsCache caches upstream records.
func WithDetailsCache(c cache.Cache) NutritionOption {
	return func(s *NutritionService) {
		s.cache = c
	}
}

// NewNutritionService creates a NutritionService.
func NewNutritionService(source FoodSource, opts ...NutritionOption) *NutritionService {
	s := &NutritionService{source: source}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Calculate returns the breakdown of food id for weightGrams.
// Unknown foods return ErrFoodNotFound.
func (s *NutritionService) Calculate(ctx context.Context, id model.FoodID, weightGrams float64) (*dto.CalculateResponse, error) {
	details, err := s.details(ctx, id)
	if err != nil {
		if errors.Is(err, fdc.ErrFoodNotFound) {
			metrics.RecordNutritionCalculation("not_found")
			return nil, ErrFoodNotFound
		}
		metrics.RecordNutritionCalculation("upstream_error")
		return nil, err
	}

	metrics.RecordNutritionCalculation("success")
	return &dto.CalculateResponse{
		FoodName:  details.Description,
		Weight:    weightGrams,
		Nutrients: ExtractNutrients(details, weightGrams),
	}, nil
}

func (s *NutritionService) details(ctx context.Context, id model.FoodID) (*model.FoodDetails, error) {
	if s.cache != nil {
		if d, ok := s.cache.Get(id); ok {
			return d, nil
		}
	}

	d, err := s.source.Food(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Set(id, d)
	}
	return d, nil
}

// ExtractNutrients scales the mapped nutrients of details to weightGrams.
//
// Amounts are rounded to two decimals and units lower-cased. The four macros are always
// present, and carry their share of calories rounded to one decimal.
func ExtractNutrients(details *model.FoodDetails, weightGrams float64) model.Nutrients {
	scale := weightGrams / 100
	out := make(model.Nutrients, len(nutrientNames))

	for _, n := range details.Nutrients {
		name, ok := nutrientNames[n.Name]
		if !ok {
			continue
		}
		// Energy is also reported in kJ.
		if name == model.NutrientCalories && !strings.EqualFold(n.Unit, "kcal") {
			continue
		}
		out[name] = model.NutrientEntry{
			Amount: round(n.Amount*scale, 2),
			Unit:   strings.ToLower(n.Unit),
		}
	}

	for _, macro := range []string{model.NutrientCalories, model.NutrientProtein, model.NutrientFat, model.NutrientCarbs} {
		if _, ok := out[macro]; !ok {
			unit := "g"
			if macro == model.NutrientCalories {
				unit = "kcal"
			}
			out[macro] = model.NutrientEntry{Unit: unit}
		}
	}

	calories := out[model.NutrientCalories].Amount
	setPercent(out, model.NutrientFat, kcalPerGramFat, calories)
	setPercent(out, model.NutrientProtein, kcalPerGramProtein, calories)
	setPercent(out, model.NutrientCarbs, kcalPerGramCarbs, calories)

	return out
}

func setPercent(n model.Nutrients, name string, kcalPerGram, calories float64) {
	entry := n[name]
	pct := 0.0
	if calories > 0 {
		pct = round(entry.Amount*kcalPerGram/calories*100, 1)
	}
	entry.Percent = model.Float(pct)
	n[name] = entry
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
