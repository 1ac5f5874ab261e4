// Package planfile reads a week of meals and a pantry inventory from YAML so
// a shopping list can be produced without the service.
//
// A plan file names its recipes once and refers to them from the grid:
//
//	recipes:
//	  pancakes:
//	    name: Pancakes
//	    cost_per_serving: 1.25
//	    servings: 4
//	    ingredients:
//	      - {name: flour, quantity: "1 1/2", unit: cups}
//	plan:
//	  monday:
//	    breakfast: pancakes
//
// A pantry file is a list of {name, quantity, unit} entries.
package planfile

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/dukerupert/mealcart/internal/model"
	"github.com/goccy/go-yaml"
)

var ErrUnknownRecipe = errors.New("unknown recipe")

type planFile struct {
	Recipes map[string]model.RecipeInput `yaml:"recipes"`
	Plan    map[string]map[string]string `yaml:"plan"`
}

// ReadPlan decodes a plan document. Day and meal names are case-insensitive;
// an empty cell or a day or meal outside the weekly grid is skipped.
func ReadPlan(r io.Reader) (model.MealPlan, error) {
	var f planFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return model.MealPlan{}, nil
		}
		return nil, fmt.Errorf("decode plan: %w", err)
	}

	recipes := make(map[string]*model.Recipe, len(f.Recipes))
	for key, in := range f.Recipes {
		if in.Name == "" {
			in.Name = key
		}
		r := in.Recipe()
		recipes[key] = &r
	}

	plan := model.MealPlan{}
	for _, day := range sortedKeys(f.Plan) {
		if _, err := model.NormalizeDay(day); err != nil {
			slog.Warn("skipping plan day", "day", day, "error", err)
			continue
		}
		for _, meal := range sortedKeys(f.Plan[day]) {
			if _, err := model.NormalizeMeal(meal); err != nil {
				slog.Warn("skipping plan slot", "day", day, "meal", meal, "error", err)
				continue
			}
			key := f.Plan[day][meal]
			if key == "" {
				continue
			}
			r, ok := recipes[key]
			if !ok {
				return nil, fmt.Errorf("%s %s: %w %q", day, meal, ErrUnknownRecipe, key)
			}
			if err := plan.Set(day, meal, r); err != nil {
				return nil, fmt.Errorf("%s %s: %w", day, meal, err)
			}
		}
	}
	return plan, nil
}

// ReadPantry decodes a pantry document. Entries keep file order, which
// decides matching when two entries fit the same ingredient.
func ReadPantry(r io.Reader) ([]model.PantryEntry, error) {
	var in []model.PantryInput
	if err := yaml.NewDecoder(r).Decode(&in); err != nil {
		if errors.Is(err, io.EOF) {
			return []model.PantryEntry{}, nil
		}
		return nil, fmt.Errorf("decode pantry: %w", err)
	}

	entries := make([]model.PantryEntry, 0, len(in))
	for i, e := range in {
		entry := e.Entry()
		entry.ID = int64(i + 1)
		entries = append(entries, entry)
	}
	return entries, nil
}

func LoadPlan(path string) (model.MealPlan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open plan: %w", err)
	}
	defer f.Close()
	return ReadPlan(f)
}

// LoadPantry reads a pantry file. An empty path means an empty pantry.
func LoadPantry(path string) ([]model.PantryEntry, error) {
	if path == "" {
		return []model.PantryEntry{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pantry: %w", err)
	}
	defer f.Close()
	return ReadPantry(f)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
