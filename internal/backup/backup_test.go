package backup

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dukerupert/mealcart/internal/database"
	"github.com/dukerupert/mealcart/internal/model"
	"github.com/dukerupert/mealcart/internal/store"
)

func setupDB(t *testing.T, path string) *sql.DB {
	t.Helper()
	db, err := database.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func recipeNames(t *testing.T, path string) []string {
	t.Helper()
	db := setupDB(t, path)
	list, err := store.NewRecipeStore(db).List()
	if err != nil {
		t.Fatalf("list recipes: %v", err)
	}
	var names []string
	for _, r := range list {
		names = append(names, r.Name)
	}
	return names
}

func TestDefaultName(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 30, 5, 0, time.UTC)
	if got := DefaultName(now, false); got != "mealcart-2026-03-01T093005Z.db" {
		t.Errorf("plain name = %q", got)
	}
	if got := DefaultName(now, true); got != "mealcart-2026-03-01T093005Z.db.enc" {
		t.Errorf("encrypted name = %q", got)
	}
}

func TestSnapshotAndRestore(t *testing.T) {
	tests := []struct {
		name       string
		passphrase string
	}{
		{"plain", ""},
		{"encrypted", "pantry-key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			livePath := filepath.Join(dir, "live.db")
			snapPath := filepath.Join(dir, "snap.db")

			db := setupDB(t, livePath)
			recipes := store.NewRecipeStore(db)
			if _, err := recipes.Create(model.Recipe{Name: "Pancakes", Servings: 2}); err != nil {
				t.Fatalf("create recipe: %v", err)
			}

			size, err := Snapshot(context.Background(), db, snapPath, tt.passphrase)
			if err != nil {
				t.Fatalf("snapshot: %v", err)
			}
			if size <= 0 {
				t.Errorf("size = %d, want > 0", size)
			}

			raw, err := os.ReadFile(snapPath)
			if err != nil {
				t.Fatalf("read snapshot: %v", err)
			}
			if IsSealed(raw) != (tt.passphrase != "") {
				t.Errorf("IsSealed = %v with passphrase %q", IsSealed(raw), tt.passphrase)
			}

			// Changes after the snapshot must not survive a restore.
			if _, err := recipes.Create(model.Recipe{Name: "Tacos", Servings: 4}); err != nil {
				t.Fatalf("create recipe: %v", err)
			}
			db.Close()

			if err := Restore(snapPath, livePath, tt.passphrase); err != nil {
				t.Fatalf("restore: %v", err)
			}

			names := recipeNames(t, livePath)
			if len(names) != 1 || names[0] != "Pancakes" {
				t.Errorf("restored recipes = %v, want [Pancakes]", names)
			}
			if _, err := os.Stat(livePath + ".bak"); err != nil {
				t.Errorf("expected previous database kept as .bak: %v", err)
			}
		})
	}
}

func TestSnapshotRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	db := setupDB(t, filepath.Join(dir, "live.db"))
	dst := filepath.Join(dir, "exists.db")
	if err := os.WriteFile(dst, []byte("keep me"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Snapshot(context.Background(), db, dst, ""); err == nil {
		t.Fatal("expected error when destination exists")
	}
	data, _ := os.ReadFile(dst)
	if string(data) != "keep me" {
		t.Error("existing file was overwritten")
	}
}

func TestRestoreErrors(t *testing.T) {
	dir := t.TempDir()
	db := setupDB(t, filepath.Join(dir, "live.db"))
	sealedPath := filepath.Join(dir, "sealed.db.enc")
	if _, err := Snapshot(context.Background(), db, sealedPath, "secret"); err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	junkPath := filepath.Join(dir, "junk.db")
	if err := os.WriteFile(junkPath, []byte("definitely not sqlite"), 0600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		src        string
		passphrase string
		wantErr    string
	}{
		{"missing file", filepath.Join(dir, "nope.db"), "", "read snapshot"},
		{"encrypted without passphrase", sealedPath, "", "passphrase required"},
		{"wrong passphrase", sealedPath, "guess", "wrong passphrase"},
		{"not sqlite", junkPath, "", "not a SQLite database"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := filepath.Join(dir, "target-"+strings.ReplaceAll(tt.name, " ", "-")+".db")
			err := Restore(tt.src, target, tt.passphrase)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("err = %v, want containing %q", err, tt.wantErr)
			}
			if _, statErr := os.Stat(target); statErr == nil {
				t.Error("target database should not be created on failure")
			}
		})
	}
}
