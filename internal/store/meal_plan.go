package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dukerupert/mealcart/internal/model"
)

type MealPlanStore struct {
	db      *sql.DB
	recipes *RecipeStore
}

func NewMealPlanStore(db *sql.DB) *MealPlanStore {
	return &MealPlanStore{db: db, recipes: NewRecipeStore(db)}
}

func scanPlanSlot(scanner interface{ Scan(...any) error }) (*model.PlanSlot, error) {
	var s model.PlanSlot
	if err := scanner.Scan(&s.Day, &s.Meal, &s.RecipeID, &s.RecipeName); err != nil {
		return nil, err
	}
	return &s, nil
}

// slotOrder sorts slots Monday to Sunday, breakfast to dinner.
const slotOrder = `ORDER BY
	CASE s.day WHEN 'monday' THEN 1 WHEN 'tuesday' THEN 2 WHEN 'wednesday' THEN 3
		WHEN 'thursday' THEN 4 WHEN 'friday' THEN 5 WHEN 'saturday' THEN 6 ELSE 7 END,
	CASE s.meal WHEN 'breakfast' THEN 1 WHEN 'lunch' THEN 2 ELSE 3 END`

// ListSlots returns the filled cells of the week.
func (s *MealPlanStore) ListSlots() ([]model.PlanSlot, error) {
	rows, err := s.db.Query(
		`SELECT s.day, s.meal, s.recipe_id, r.name
		 FROM meal_plan_slots s JOIN recipes r ON r.id = s.recipe_id ` + slotOrder,
	)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	slots := []model.PlanSlot{}
	for rows.Next() {
		slot, err := scanPlanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		slots = append(slots, *slot)
	}
	return slots, rows.Err()
}

// SetSlot assigns a recipe to a cell, replacing whatever was there. Day and
// meal must already be normalized.
func (s *MealPlanStore) SetSlot(day, meal string, recipeID int64) error {
	_, err := s.db.Exec(
		`INSERT INTO meal_plan_slots (day, meal, recipe_id, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(day, meal) DO UPDATE SET recipe_id = excluded.recipe_id, updated_at = excluded.updated_at`,
		day, meal, recipeID, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("set slot %s/%s: %w", day, meal, err)
	}
	return nil
}

func (s *MealPlanStore) ClearSlot(day, meal string) error {
	_, err := s.db.Exec(`DELETE FROM meal_plan_slots WHERE day = ? AND meal = ?`, day, meal)
	if err != nil {
		return fmt.Errorf("clear slot %s/%s: %w", day, meal, err)
	}
	return nil
}

// ClearAll empties the week and reports how many cells were filled.
func (s *MealPlanStore) ClearAll() (int64, error) {
	result, err := s.db.Exec(`DELETE FROM meal_plan_slots`)
	if err != nil {
		return 0, fmt.Errorf("clear plan: %w", err)
	}
	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return count, nil
}

// Plan materializes the stored week as a MealPlan with full recipes.
func (s *MealPlanStore) Plan() (model.MealPlan, error) {
	slots, err := s.ListSlots()
	if err != nil {
		return nil, err
	}
	recipes, err := s.recipes.List()
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*model.Recipe, len(recipes))
	for i := range recipes {
		byID[recipes[i].ID] = &recipes[i]
	}

	plan := model.MealPlan{}
	for _, slot := range slots {
		r, ok := byID[slot.RecipeID]
		if !ok {
			continue
		}
		if err := plan.Set(slot.Day, slot.Meal, r); err != nil {
			return nil, fmt.Errorf("load slot %s/%s: %w", slot.Day, slot.Meal, err)
		}
	}
	return plan, nil
}
