package model

import "encoding/json"

// Nutrient names shared with the calculation service.
const (
	NutrientCalories = "Calories"
	NutrientProtein  = "Protein"
	NutrientFat      = "Fat"
	NutrientCarbs    = "Carbs"
)

// DisplayOrder lists the nutrients of the detailed panel in the order they are shown.
// Names are opaque keys agreed with the calculation service.
var DisplayOrder = []string{
	"Dietary Fiber",
	"Cholesterol",
	"Na", "Ca", "Mg", "Fe", "Mn", "Zn", "Cu", "P",
	"Vitamin A", "Vitamin C", "Vitamin E", "Vitamin K",
	"Vitamin B1", "Vitamin B2", "Niacin",
	"Carotene", "Retinol Equivalent",
}

// NutrientEntry is one nutrient's scaled amount.
//
// @Description Scaled nutrient amount
// @Example {"amount": 12.5, "unit": "g", "percent": 20.1}
type NutrientEntry struct {
	Amount float64 `json:"amount" example:"12.5"`
	Unit   string  `json:"unit,omitempty" example:"g"`
	// Percent is the share of calories, set for Protein, Fat and Carbs only
	Percent *float64 `json:"percent,omitempty" example:"20.1"`
}

// Nutrients maps a nutrient name to its entry. Any key may be missing.
type Nutrients map[string]NutrientEntry

// UnmarshalJSON drops entries sent as null, so they read as missing.
func (n *Nutrients) UnmarshalJSON(data []byte) error {
	var raw map[string]*NutrientEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*n = nil
		return nil
	}
	out := make(Nutrients, len(raw))
	for name, entry := range raw {
		if entry != nil {
			out[name] = *entry
		}
	}
	*n = out
	return nil
}

// Amount returns the amount for name, or 0 when the nutrient is absent.
func (n Nutrients) Amount(name string) float64 {
	if e, ok := n[name]; ok {
		return e.Amount
	}
	return 0
}

// Percent returns the percent for name, or 0 when absent or unset.
func (n Nutrients) Percent(name string) float64 {
	if e, ok := n[name]; ok && e.Percent != nil {
		return *e.Percent
	}
	return 0
}

// Float returns a pointer to v, for building entries with a percent.
func Float(v float64) *float64 {
	return &v
}
