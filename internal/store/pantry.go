package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dukerupert/mealcart/internal/model"
)

type PantryStore struct {
	db *sql.DB
}

func NewPantryStore(db *sql.DB) *PantryStore {
	return &PantryStore{db: db}
}

func scanPantryEntry(scanner interface{ Scan(...any) error }) (*model.PantryEntry, error) {
	var e model.PantryEntry
	err := scanner.Scan(&e.ID, &e.Name, &e.Quantity.Value, &e.Quantity.Unit, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

const pantryCols = `id, name, quantity, unit, updated_at`

func (s *PantryStore) GetByID(id int64) (*model.PantryEntry, error) {
	row := s.db.QueryRow(`SELECT `+pantryCols+` FROM pantry_entries WHERE id = ?`, id)
	e, err := scanPantryEntry(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get pantry entry: %w", err)
	}
	return e, nil
}

// List returns entries in insertion order. Pantry matching takes the first
// entry that matches, so this order is significant.
func (s *PantryStore) List() ([]model.PantryEntry, error) {
	rows, err := s.db.Query(`SELECT ` + pantryCols + ` FROM pantry_entries ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list pantry: %w", err)
	}
	defer rows.Close()

	entries := []model.PantryEntry{}
	for rows.Next() {
		e, err := scanPantryEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pantry entry: %w", err)
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

func (s *PantryStore) Create(e model.PantryEntry) (*model.PantryEntry, error) {
	result, err := s.db.Exec(
		`INSERT INTO pantry_entries (name, quantity, unit, updated_at) VALUES (?, ?, ?, ?)`,
		strings.TrimSpace(e.Name), model.NonNegative(e.Quantity.Value), strings.TrimSpace(e.Quantity.Unit), time.Now().UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert pantry entry: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id)
}

func (s *PantryStore) Update(id int64, e model.PantryEntry) (*model.PantryEntry, error) {
	_, err := s.db.Exec(
		`UPDATE pantry_entries SET name = ?, quantity = ?, unit = ?, updated_at = ? WHERE id = ?`,
		strings.TrimSpace(e.Name), model.NonNegative(e.Quantity.Value), strings.TrimSpace(e.Quantity.Unit), time.Now().UTC(), id,
	)
	if err != nil {
		return nil, fmt.Errorf("update pantry entry: %w", err)
	}
	return s.GetByID(id)
}

func (s *PantryStore) Delete(id int64) error {
	_, err := s.db.Exec(`DELETE FROM pantry_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete pantry entry: %w", err)
	}
	return nil
}
