package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dukerupert/mealcart/internal/model"
)

type RecipeStore struct {
	db *sql.DB
}

func NewRecipeStore(db *sql.DB) *RecipeStore {
	return &RecipeStore{db: db}
}

func scanRecipe(scanner interface{ Scan(...any) error }) (*model.Recipe, error) {
	var r model.Recipe
	err := scanner.Scan(&r.ID, &r.Name, &r.CostPerServing, &r.Servings, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	r.Ingredients = []model.Ingredient{}
	return &r, nil
}

const recipeCols = `id, name, cost_per_serving, servings, created_at, updated_at`

func (s *RecipeStore) GetByID(id int64) (*model.Recipe, error) {
	row := s.db.QueryRow(`SELECT `+recipeCols+` FROM recipes WHERE id = ?`, id)
	r, err := scanRecipe(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get recipe: %w", err)
	}

	byRecipe, err := s.loadIngredients(`WHERE recipe_id = ?`, id)
	if err != nil {
		return nil, err
	}
	if ings, ok := byRecipe[r.ID]; ok {
		r.Ingredients = ings
	}
	return r, nil
}

// List returns every recipe ordered by name, ingredients included.
func (s *RecipeStore) List() ([]model.Recipe, error) {
	rows, err := s.db.Query(`SELECT ` + recipeCols + ` FROM recipes ORDER BY name COLLATE NOCASE ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}

	var recipes []model.Recipe
	for rows.Next() {
		r, err := scanRecipe(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		recipes = append(recipes, *r)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	// The pool holds one connection, so rows must be released before the
	// ingredient query runs.
	rows.Close()

	byRecipe, err := s.loadIngredients("")
	if err != nil {
		return nil, err
	}
	for i := range recipes {
		if ings, ok := byRecipe[recipes[i].ID]; ok {
			recipes[i].Ingredients = ings
		}
	}
	return recipes, nil
}

func (s *RecipeStore) loadIngredients(where string, args ...any) (map[int64][]model.Ingredient, error) {
	rows, err := s.db.Query(
		`SELECT recipe_id, name, quantity, unit FROM recipe_ingredients `+where+` ORDER BY recipe_id ASC, position ASC`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	defer rows.Close()

	out := make(map[int64][]model.Ingredient)
	for rows.Next() {
		var recipeID int64
		var ing model.Ingredient
		if err := rows.Scan(&recipeID, &ing.Name, &ing.Quantity.Value, &ing.Quantity.Unit); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		out[recipeID] = append(out[recipeID], ing)
	}
	return out, rows.Err()
}

func (s *RecipeStore) Create(r model.Recipe) (*model.Recipe, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	result, err := tx.Exec(
		`INSERT INTO recipes (name, cost_per_serving, servings, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		strings.TrimSpace(r.Name), model.NonNegative(r.CostPerServing), max(r.Servings, 1), now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert recipe: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	if err := insertIngredients(tx, id, r.Ingredients); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return s.GetByID(id)
}

// Update replaces the recipe and its ingredient list. It returns nil, nil
// when the recipe does not exist.
func (s *RecipeStore) Update(id int64, r model.Recipe) (*model.Recipe, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		`UPDATE recipes SET name = ?, cost_per_serving = ?, servings = ?, updated_at = ? WHERE id = ?`,
		strings.TrimSpace(r.Name), model.NonNegative(r.CostPerServing), max(r.Servings, 1), time.Now().UTC(), id,
	)
	if err != nil {
		return nil, fmt.Errorf("update recipe: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return nil, nil
	}

	if _, err := tx.Exec(`DELETE FROM recipe_ingredients WHERE recipe_id = ?`, id); err != nil {
		return nil, fmt.Errorf("delete ingredients: %w", err)
	}
	if err := insertIngredients(tx, id, r.Ingredients); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return s.GetByID(id)
}

func insertIngredients(tx *sql.Tx, recipeID int64, ings []model.Ingredient) error {
	for i, ing := range ings {
		name := strings.TrimSpace(ing.Name)
		if name == "" {
			continue
		}
		_, err := tx.Exec(
			`INSERT INTO recipe_ingredients (recipe_id, position, name, quantity, unit) VALUES (?, ?, ?, ?, ?)`,
			recipeID, i, name, model.NonNegative(ing.Quantity.Value), strings.TrimSpace(ing.Quantity.Unit),
		)
		if err != nil {
			return fmt.Errorf("insert ingredient: %w", err)
		}
	}
	return nil
}

// Delete removes a recipe. Its ingredients and any meal plan slots that
// reference it go with it.
func (s *RecipeStore) Delete(id int64) error {
	_, err := s.db.Exec(`DELETE FROM recipes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	return nil
}
