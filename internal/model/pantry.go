package model

import "time"

type PantryEntry struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Quantity  Quantity  `json:"quantity"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PantryInput is the flat {name, quantity, unit} shape of a pantry entry.
type PantryInput IngredientInput

func (in PantryInput) Entry() PantryEntry {
	ing := IngredientInput(in).Ingredient()
	return PantryEntry{Name: ing.Name, Quantity: ing.Quantity}
}
