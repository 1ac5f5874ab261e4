package model

import (
	"encoding/json"
	"math"
	"testing"
)

func TestAmountUnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want Amount
	}{
		{`2`, 2},
		{`1.5`, 1.5},
		{`"3"`, 3},
		{`"1/2"`, 0.5},
		{`"1 1/2"`, 1.5},
		{`"lots"`, 0},
		{`-4`, 0},
		{`"-1"`, 0},
		{`null`, 0},
		{`true`, 0},
		{`[1]`, 0},
	}
	for _, tt := range tests {
		var got struct {
			Quantity Amount `json:"quantity"`
		}
		if err := json.Unmarshal([]byte(`{"quantity":`+tt.in+`}`), &got); err != nil {
			t.Errorf("Unmarshal(%s): %v", tt.in, err)
			continue
		}
		if math.Abs(float64(got.Quantity-tt.want)) > 1e-9 {
			t.Errorf("Unmarshal(%s) = %v, want %v", tt.in, got.Quantity, tt.want)
		}
	}
}

func TestNonNegative(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.25, 1.25},
		{0, 0},
		{-3, 0},
		{math.NaN(), 0},
		{math.Inf(1), 0},
	}
	for _, tt := range tests {
		if got := NonNegative(tt.in); got != tt.want {
			t.Errorf("NonNegative(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRecipeInput(t *testing.T) {
	in := RecipeInput{
		Name:           "Pancakes",
		CostPerServing: 1.25,
		Servings:       0,
		Ingredients: []IngredientInput{
			{Name: "flour", Quantity: 2, Unit: "cups"},
		},
	}
	r := in.Recipe()
	if r.Servings != 1 {
		t.Errorf("Servings = %d, want 1", r.Servings)
	}
	if len(r.Ingredients) != 1 || r.Ingredients[0].Quantity != (Quantity{Value: 2, Unit: "cups"}) {
		t.Errorf("Ingredients = %+v", r.Ingredients)
	}
	if got := r.EstimatedCost(); got != 1.25 {
		t.Errorf("EstimatedCost() = %v, want 1.25", got)
	}
}
