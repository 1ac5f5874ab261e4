package model

import "time"

// Ingredient is a single mention of an ingredient inside a recipe.
type Ingredient struct {
	Name     string   `json:"name"`
	Quantity Quantity `json:"quantity"`
}

type Recipe struct {
	ID             int64        `json:"id"`
	Name           string       `json:"name"`
	Ingredients    []Ingredient `json:"ingredients"`
	CostPerServing float64      `json:"cost_per_serving"`
	Servings       int          `json:"servings"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// EstimatedCost is CostPerServing × Servings. Servings below one count as one.
func (r *Recipe) EstimatedCost() float64 {
	servings := r.Servings
	if servings < 1 {
		servings = 1
	}
	return NonNegative(r.CostPerServing) * float64(servings)
}

// IngredientInput is the flat {name, quantity, unit} shape used by the API
// and the YAML report files.
type IngredientInput struct {
	Name     string `json:"name" yaml:"name"`
	Quantity Amount `json:"quantity" yaml:"quantity"`
	Unit     string `json:"unit" yaml:"unit"`
}

func (in IngredientInput) Ingredient() Ingredient {
	return Ingredient{
		Name:     in.Name,
		Quantity: Quantity{Value: float64(in.Quantity), Unit: in.Unit},
	}
}

// RecipeInput is the external shape of a recipe.
type RecipeInput struct {
	Name           string            `json:"name" yaml:"name"`
	Ingredients    []IngredientInput `json:"ingredients" yaml:"ingredients"`
	CostPerServing Amount            `json:"cost_per_serving" yaml:"cost_per_serving"`
	Servings       int               `json:"servings" yaml:"servings"`
}

func (in RecipeInput) Recipe() Recipe {
	r := Recipe{
		Name:           in.Name,
		CostPerServing: float64(in.CostPerServing),
		Servings:       in.Servings,
	}
	if r.Servings < 1 {
		r.Servings = 1
	}
	for _, ing := range in.Ingredients {
		r.Ingredients = append(r.Ingredients, ing.Ingredient())
	}
	return r
}
