package planfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dukerupert/mealcart/internal/model"
)

const planYAML = `
recipes:
  pancakes:
    name: Pancakes
    cost_per_serving: 1.25
    servings: 4
    ingredients:
      - {name: flour, quantity: "1 1/2", unit: cups}
      - {name: eggs, quantity: 2, unit: whole}
      - {name: milk, quantity: "a splash", unit: cup}
  chili:
    cost_per_serving: "2.50"
    ingredients:
      - {name: ground beef, quantity: 1, unit: lb}
      - {name: kidney beans, quantity: -1, unit: can}
plan:
  Monday:
    breakfast: pancakes
    dinner: chili
  saturday:
    breakfast: pancakes
    lunch: ""
`

func TestReadPlan(t *testing.T) {
	plan, err := ReadPlan(strings.NewReader(planYAML))
	if err != nil {
		t.Fatalf("ReadPlan: %v", err)
	}

	slots := plan.Slots()
	if len(slots) != 3 {
		t.Fatalf("len(slots) = %d, want 3", len(slots))
	}

	p := plan.Get("monday", "breakfast")
	if p == nil || p.Name != "Pancakes" || p.Servings != 4 || p.CostPerServing != 1.25 {
		t.Fatalf("monday breakfast = %+v", p)
	}
	want := []model.Ingredient{
		{Name: "flour", Quantity: model.Quantity{Value: 1.5, Unit: "cups"}},
		{Name: "eggs", Quantity: model.Quantity{Value: 2, Unit: "whole"}},
		{Name: "milk", Quantity: model.Quantity{Value: 0, Unit: "cup"}},
	}
	for i, w := range want {
		if p.Ingredients[i] != w {
			t.Errorf("ingredients[%d] = %+v, want %+v", i, p.Ingredients[i], w)
		}
	}

	c := plan.Get("monday", "dinner")
	if c == nil || c.Name != "chili" || c.Servings != 1 || c.CostPerServing != 2.5 {
		t.Errorf("monday dinner = %+v", c)
	}
	if c.Ingredients[1].Quantity.Value != 0 {
		t.Errorf("negative quantity = %v, want 0", c.Ingredients[1].Quantity.Value)
	}

	if plan.Get("saturday", "breakfast") != p {
		t.Error("saturday breakfast should share the pancakes recipe")
	}
}

func TestReadPlanErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"unknown recipe", "plan:\n  monday:\n    dinner: tacos\n", ErrUnknownRecipe},
	}
	for _, tt := range tests {
		_, err := ReadPlan(strings.NewReader(tt.doc))
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: error = %v, want %v", tt.name, err, tt.want)
		}
	}

	if _, err := ReadPlan(strings.NewReader("recipes: [1, 2")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestReadPlanSkipsKeysOutsideGrid(t *testing.T) {
	doc := `
recipes:
  t: {name: Toast}
plan:
  holiday:
    dinner: t
  monday:
    brunch: missing
    breakfast: t
`
	plan, err := ReadPlan(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadPlan: %v", err)
	}
	slots := plan.Slots()
	if len(slots) != 1 {
		t.Fatalf("slots = %+v, want only monday breakfast", slots)
	}
	if slots[0].Day != "monday" || slots[0].Meal != "breakfast" || slots[0].Recipe.Name != "Toast" {
		t.Errorf("slot = %+v, want monday breakfast Toast", slots[0])
	}
}

func TestReadPlanEmpty(t *testing.T) {
	plan, err := ReadPlan(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ReadPlan(empty): %v", err)
	}
	if len(plan.Slots()) != 0 {
		t.Errorf("slots = %v, want none", plan.Slots())
	}
}

func TestReadPantry(t *testing.T) {
	doc := `
- {name: all-purpose flour, quantity: 500, unit: g}
- {name: onion, quantity: "1", unit: whole}
- {name: salt}
`
	entries, err := ReadPantry(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadPantry: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("len(entries) = %d, want 3", len(entries))
	}
	if entries[0].Name != "all-purpose flour" || entries[0].Quantity != (model.Quantity{Value: 500, Unit: "g"}) {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	if entries[1].Quantity.Value != 1 || entries[1].ID != 2 {
		t.Errorf("entries[1] = %+v", entries[1])
	}
	if entries[2].Quantity != (model.Quantity{}) {
		t.Errorf("entries[2] = %+v", entries[2])
	}
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	planPath := filepath.Join(dir, "week.yaml")
	if err := os.WriteFile(planPath, []byte(planYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadPlan(planPath); err != nil {
		t.Errorf("LoadPlan: %v", err)
	}
	if _, err := LoadPlan(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing plan file")
	}

	entries, err := LoadPantry("")
	if err != nil || len(entries) != 0 {
		t.Errorf("LoadPantry(\"\") = %v, %v", entries, err)
	}
}
