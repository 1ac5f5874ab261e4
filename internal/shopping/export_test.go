package shopping

import (
	"strings"
	"testing"

	"github.com/dukerupert/mealcart/internal/model"
)

func TestExport(t *testing.T) {
	p := model.MealPlan{}
	p.Set("monday", "dinner", recipe("Chicken Dinner", 3.5, 4,
		ing("chicken breast", 2, "lb"),
		ing("yellow onion", 1, "whole"),
		ing("olive oil", 2, "tbsp"),
	))

	out := Export(Build(p))
	wants := []string{
		"Shopping List\n",
		"🥬 Produce\n- Yellow Onion: 1 piece\n",
		"🥩 Meat & Seafood\n- Chicken Breast: 2 lb\n",
		"- Olive Oil: 2 tbsp\n",
		"Total items: 3\n",
		"Estimated cost: $14.00\n",
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("Export missing %q\n%s", want, out)
		}
	}
	if strings.Index(out, "Produce") > strings.Index(out, "Meat & Seafood") {
		t.Errorf("Produce should come before Meat & Seafood\n%s", out)
	}
}

func TestExportEmpty(t *testing.T) {
	out := Export(Build(nil))
	if !strings.Contains(out, "Nothing to buy this week.") {
		t.Errorf("Export(empty) = %q", out)
	}
	if !strings.Contains(out, "Total items: 0\nEstimated cost: $0.00\n") {
		t.Errorf("Export(empty) footer = %q", out)
	}
}

func TestExportComparison(t *testing.T) {
	cmp := model.Comparison{
		AlreadyHave: []model.CategorizedItem{{
			ConsolidatedItem: model.ConsolidatedItem{Name: "flour", Quantity: model.Quantity{Value: 2, Unit: "cup"}},
			Status:           model.StatusHave,
			Message:          "You have 500 g (about 4.17 cup)",
		}},
		NeedMore: []model.CategorizedItem{{
			ConsolidatedItem: model.ConsolidatedItem{Name: "onion", Quantity: model.Quantity{Value: 3, Unit: "piece"}},
			Status:           model.StatusPartial,
			NeedQuantity:     &model.Quantity{Value: 2, Unit: "piece"},
		}},
		NeedToBuy: []model.CategorizedItem{},
	}

	out := ExportComparison(cmp)
	wants := []string{
		"Already have (1)\n- Flour: 2 cup (You have 500 g (about 4.17 cup))\n",
		"Need more (1)\n- Onion: 2 piece\n",
		"Need to buy (0)\n",
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("ExportComparison missing %q\n%s", want, out)
		}
	}
}
