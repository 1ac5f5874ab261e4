package model

import (
	"errors"
	"strings"
)

var (
	ErrInvalidDay  = errors.New("invalid day")
	ErrInvalidMeal = errors.New("invalid meal")
)

// Days and Meals are the fixed axes of the weekly grid, in iteration order.
var (
	Days  = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
	Meals = []string{"breakfast", "lunch", "dinner"}
)

// MealPlan is the 7 × 3 weekly grid keyed by lowercase day and meal names.
// A nil plan, a missing day or a nil cell all mean "nothing planned".
type MealPlan map[string]map[string]*Recipe

// NormalizeDay lowercases and validates a day name.
func NormalizeDay(day string) (string, error) {
	d := strings.ToLower(strings.TrimSpace(day))
	for _, known := range Days {
		if d == known {
			return d, nil
		}
	}
	return "", ErrInvalidDay
}

// NormalizeMeal lowercases and validates a meal name.
func NormalizeMeal(meal string) (string, error) {
	m := strings.ToLower(strings.TrimSpace(meal))
	for _, known := range Meals {
		if m == known {
			return m, nil
		}
	}
	return "", ErrInvalidMeal
}

// Set places a recipe in a slot, creating the day row if needed.
func (p MealPlan) Set(day, meal string, r *Recipe) error {
	d, err := NormalizeDay(day)
	if err != nil {
		return err
	}
	m, err := NormalizeMeal(meal)
	if err != nil {
		return err
	}
	if p[d] == nil {
		p[d] = make(map[string]*Recipe)
	}
	p[d][m] = r
	return nil
}

// Get returns the recipe in a slot, or nil.
func (p MealPlan) Get(day, meal string) *Recipe {
	if p == nil {
		return nil
	}
	return p[day][meal]
}

// Slot is one filled cell of the grid.
type Slot struct {
	Day    string
	Meal   string
	Recipe *Recipe
}

// Slots returns the filled cells in fixed order: Monday to Sunday, breakfast
// to dinner. Keys outside the grid are ignored.
func (p MealPlan) Slots() []Slot {
	var out []Slot
	for _, d := range Days {
		for _, m := range Meals {
			if r := p.Get(d, m); r != nil {
				out = append(out, Slot{Day: d, Meal: m, Recipe: r})
			}
		}
	}
	return out
}

// PlanSlot is a persisted grid cell referencing a recipe by ID.
type PlanSlot struct {
	Day        string `json:"day"`
	Meal       string `json:"meal"`
	RecipeID   int64  `json:"recipe_id"`
	RecipeName string `json:"recipe_name"`
}
