package ui

import (
	"math"
	"strconv"

	"github.com/guttosm/nutrition-lookup/internal/domain/model"
)

// NutritionPresenter projects a nutrient mapping onto the nutrition panel.
// It holds no state besides its display order.
type NutritionPresenter struct {
	order []string
}

// NewNutritionPresenter creates a presenter listing details in order.
// A nil order uses model.DisplayOrder.
func NewNutritionPresenter(order []string) *NutritionPresenter {
	if order == nil {
		order = model.DisplayOrder
	}
	return &NutritionPresenter{order: order}
}

// Present renders nutrients onto d.
func (p *NutritionPresenter) Present(d Display, nutrients model.Nutrients) {
	d.Apply(p.Render(nutrients)...)
}

// Render returns the commands showing nutrients. The same input always yields the same commands.
//
// The bar is only resized when the macro percentages add up to more than zero, so an empty
// response keeps the previous bar. The detailed list is rebuilt from scratch and the panel is
// shown last.
func (p *NutritionPresenter) Render(nutrients model.Nutrients) []Command {
	protein := nutrients.Percent(model.NutrientProtein)
	fat := nutrients.Percent(model.NutrientFat)
	carbs := nutrients.Percent(model.NutrientCarbs)

	cmds := make([]Command, 0, 12+len(p.order))
	cmds = append(cmds,
		Text(ValCalories, formatCalories(nutrients.Amount(model.NutrientCalories))),
		Text(ValProtein, formatGrams(nutrients.Amount(model.NutrientProtein))),
		Text(ValFat, formatGrams(nutrients.Amount(model.NutrientFat))),
		Text(ValCarbs, formatGrams(nutrients.Amount(model.NutrientCarbs))),
		Text(PctProtein, formatPercent(protein)),
		Text(PctFat, formatPercent(fat)),
		Text(PctCarbs, formatPercent(carbs)),
	)

	if protein+fat+carbs > 0 {
		cmds = append(cmds,
			Width(BarProtein, protein),
			Width(BarFat, fat),
			Width(BarCarbs, carbs),
		)
	}

	cmds = append(cmds, Clear(DetailedList))
	for _, name := range p.order {
		entry, ok := nutrients[name]
		if !ok {
			continue
		}
		cmds = append(cmds, Append(DetailedList, Item{
			Primary:   name,
			Secondary: formatAmount(entry.Amount) + entry.Unit,
		}))
	}

	return append(cmds, Show(NutritionResults))
}

// formatCalories rounds half up to a whole number.
func formatCalories(v float64) string {
	return strconv.FormatFloat(math.Floor(v+0.5), 'f', 0, 64)
}

func formatGrams(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "g"
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

// formatAmount prints the shortest decimal form, e.g. 12.5 or 3.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
