// Package model defines the core domain entities for the nutrition lookup tool.
package model

// GenericBrand is shown when a food carries no brand owner.
const GenericBrand = "Generic"

// FoodID identifies a food in the FoodData Central database.
type FoodID int

// FoodSummary is a single search-result candidate.
//
// @Description Food candidate returned by the search endpoint
// @Example {"fdcId": 2344719, "description": "Chicken curry", "brandOwner": ""}
type FoodSummary struct {
	// FdcID is the FoodData Central identifier
	FdcID FoodID `json:"fdcId" example:"2344719"`
	// Description is the cleaned display name
	Description string `json:"description" example:"Chicken curry"`
	// OriginalDescription is the upstream description before cleaning
	OriginalDescription string `json:"original_description,omitempty" example:"Restaurant, chicken curry"`
	// BrandOwner is empty for generic foods
	BrandOwner string `json:"brandOwner,omitempty" example:""`
}

// Brand returns the brand owner, or GenericBrand when none is set.
func (f FoodSummary) Brand() string {
	if f.BrandOwner == "" {
		return GenericBrand
	}
	return f.BrandOwner
}

// FoodNutrient is one nutrient row of an upstream food record, per 100 g.
type FoodNutrient struct {
	Name   string
	Unit   string
	Amount float64
}

// FoodDetails is the upstream record used to compute a nutrient breakdown.
type FoodDetails struct {
	FdcID       FoodID
	Description string
	Nutrients   []FoodNutrient
}
