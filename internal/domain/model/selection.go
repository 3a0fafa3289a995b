package model

// DefaultWeightGrams is the serving weight a freshly opened selection starts with.
const DefaultWeightGrams = 100.0

// SelectionState is the food currently selected in the modal and the weight last used for it.
type SelectionState struct {
	FoodID      FoodID
	Active      bool
	WeightGrams float64
}

// NewSelection starts a selection for id at the default weight.
func NewSelection(id FoodID) SelectionState {
	return SelectionState{FoodID: id, Active: true, WeightGrams: DefaultWeightGrams}
}
