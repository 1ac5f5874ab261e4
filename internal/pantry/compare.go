// Package pantry reconciles a consolidated shopping list against the pantry
// and sorts every item into have, need-more or need-to-buy.
package pantry

import (
	"fmt"

	"github.com/dukerupert/mealcart/internal/ingredient"
	"github.com/dukerupert/mealcart/internal/model"
	"github.com/dukerupert/mealcart/internal/units"
)

// Compare buckets each shopping item against the pantry. Bucket order
// follows the input order of items.
func Compare(items []model.ConsolidatedItem, entries []model.PantryEntry) model.Comparison {
	cmp := model.Comparison{
		AlreadyHave: []model.CategorizedItem{},
		NeedMore:    []model.CategorizedItem{},
		NeedToBuy:   []model.CategorizedItem{},
	}
	for _, item := range items {
		c := Categorize(item, entries)
		switch c.Status {
		case model.StatusHave:
			cmp.AlreadyHave = append(cmp.AlreadyHave, c)
		case model.StatusPartial:
			cmp.NeedMore = append(cmp.NeedMore, c)
		default:
			cmp.NeedToBuy = append(cmp.NeedToBuy, c)
		}
	}
	return cmp
}

// FindMatch returns the first pantry entry, in input order, whose name
// matches the ingredient. There is no ranking between candidates.
func FindMatch(name string, entries []model.PantryEntry) (model.PantryEntry, bool) {
	for _, e := range entries {
		if ingredient.NamesMatch(name, e.Name) {
			return e, true
		}
	}
	return model.PantryEntry{}, false
}

// Categorize decides the bucket for a single shopping item.
func Categorize(item model.ConsolidatedItem, entries []model.PantryEntry) model.CategorizedItem {
	out := model.CategorizedItem{ConsolidatedItem: item}

	entry, ok := FindMatch(item.Name, entries)
	if !ok {
		out.Status = model.StatusBuy
		out.Message = "Not in pantry"
		return out
	}

	have := model.Quantity{
		Value: model.NonNegative(entry.Quantity.Value),
		Unit:  units.Normalize(entry.Quantity.Unit),
	}
	out.PantryQuantity = &have

	need := model.NonNegative(item.Quantity.Value)
	unit := units.Normalize(item.Quantity.Unit)

	switch {
	case unit != "" && unit == have.Unit:
		switch {
		case have.Value >= need:
			out.Status = model.StatusHave
			out.Message = fmt.Sprintf("You have %s", units.Display(have.Value, have.Unit))
		case have.Value > 0:
			out.Status = model.StatusPartial
			out.NeedQuantity = &model.Quantity{Value: units.Round2(need - have.Value), Unit: unit}
			out.Message = fmt.Sprintf("You have %s, need %s more",
				units.Display(have.Value, have.Unit), units.Display(need-have.Value, unit))
		default:
			out.Status = model.StatusBuy
			out.Message = "None left in pantry"
		}

	case unit == "" || have.Unit == "":
		if have.Value > 0 {
			out.Status = model.StatusHave
			out.Message = "In pantry, amount not compared"
		} else {
			out.Status = model.StatusBuy
			out.Message = "None left in pantry"
		}

	default:
		converted, err := units.Convert(have.Value, have.Unit, unit, ingredient.Normalize(item.Name))
		switch {
		case err != nil:
			out.Status = model.StatusPartial
			out.NeedQuantity = &model.Quantity{Value: units.Round2(need), Unit: unit}
			out.Message = fmt.Sprintf("You have %s, which can't be compared with %s",
				units.Display(have.Value, have.Unit), unit)
		case converted <= 0:
			out.Status = model.StatusBuy
			out.Message = "None left in pantry"
		case converted >= need:
			out.Status = model.StatusHave
			out.Message = fmt.Sprintf("You have %s (about %s)",
				units.Display(have.Value, have.Unit), units.Display(converted, unit))
		default:
			out.Status = model.StatusPartial
			out.NeedQuantity = &model.Quantity{Value: units.Round2(need - converted), Unit: unit}
			out.Message = fmt.Sprintf("You have %s (about %s), need %s more",
				units.Display(have.Value, have.Unit), units.Display(converted, unit), units.Display(need-converted, unit))
		}
	}
	return out
}

// Summary counts items per bucket.
type Summary struct {
	Have    int `json:"have"`
	Partial int `json:"partial"`
	Buy     int `json:"buy"`
	Total   int `json:"total"`
}

func Summarize(cmp model.Comparison) Summary {
	return Summary{
		Have:    len(cmp.AlreadyHave),
		Partial: len(cmp.NeedMore),
		Buy:     len(cmp.NeedToBuy),
		Total:   cmp.Total(),
	}
}
