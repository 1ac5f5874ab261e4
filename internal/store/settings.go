package store

import (
	"database/sql"
	"fmt"
	"time"
)

// KeyPINHash holds the bcrypt hash of the kitchen PIN. No row means no PIN.
const KeyPINHash = "pin_hash"

type SettingsStore struct {
	db *sql.DB
}

func NewSettingsStore(db *sql.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

// Get returns the value for key, or "" when it is not set.
func (s *SettingsStore) Get(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get setting %q: %w", key, err)
	}
	return value, nil
}

func (s *SettingsStore) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("set setting %q: %w", key, err)
	}
	return nil
}

func (s *SettingsStore) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM settings WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("delete setting %q: %w", key, err)
	}
	return nil
}

// PINHash returns the stored kitchen PIN hash, or "" when no PIN is set.
func (s *SettingsStore) PINHash() (string, error) {
	return s.Get(KeyPINHash)
}

func (s *SettingsStore) SetPINHash(hash string) error {
	return s.Set(KeyPINHash, hash)
}

func (s *SettingsStore) ClearPIN() error {
	return s.Delete(KeyPINHash)
}
