// Package shopping flattens a weekly meal plan into a consolidated shopping
// list and renders it as plain text.
package shopping

import (
	"strings"

	"github.com/dukerupert/mealcart/internal/grocery"
	"github.com/dukerupert/mealcart/internal/ingredient"
	"github.com/dukerupert/mealcart/internal/model"
	"github.com/dukerupert/mealcart/internal/units"
)

type itemKey struct {
	canonical string
	unit      string
}

// Build consolidates every ingredient mention in the plan. Mentions merge
// when they share a canonical ingredient name and a normalized unit; the
// first mention seen supplies the display name and category. A recipe used
// in several slots counts once per slot, for both ingredients and cost.
func Build(plan model.MealPlan) model.ShoppingList {
	list := model.ShoppingList{Items: []model.ConsolidatedItem{}}
	index := make(map[itemKey]int)

	for _, slot := range plan.Slots() {
		r := slot.Recipe
		list.TotalCost += r.EstimatedCost()

		for _, ing := range r.Ingredients {
			normalized := ingredient.Normalize(ing.Name)
			if normalized == "" {
				continue
			}
			unit := units.Normalize(ing.Quantity.Unit)
			value := model.NonNegative(ing.Quantity.Value)
			key := itemKey{canonical: ingredient.CanonicalName(normalized), unit: unit}

			if i, ok := index[key]; ok {
				list.Items[i].Quantity.Value += value
				continue
			}
			index[key] = len(list.Items)
			list.Items = append(list.Items, model.ConsolidatedItem{
				Name:     strings.TrimSpace(ing.Name),
				Quantity: model.Quantity{Value: value, Unit: unit},
				Category: grocery.Categorize(ing.Name),
			})
		}
	}

	list.TotalCost = units.Round2(list.TotalCost)
	list.TotalItems = len(list.Items)
	return list
}
