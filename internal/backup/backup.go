// Package backup writes and restores point-in-time copies of the kitchen
// database. Snapshots are plain SQLite files unless a passphrase is given.
package backup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dukerupert/mealcart/internal/database"
)

// sqliteHeader is the first 16 bytes of every SQLite 3 database file.
var sqliteHeader = []byte("SQLite format 3\x00")

// DefaultName returns a timestamped snapshot file name.
func DefaultName(now time.Time, encrypted bool) string {
	name := "mealcart-" + now.UTC().Format("2006-01-02T150405Z") + ".db"
	if encrypted {
		name += ".enc"
	}
	return name
}

// Snapshot writes a consistent copy of db to dstPath. The WAL is checkpointed
// first so the copy holds every committed write.
func Snapshot(ctx context.Context, db *sql.DB, dstPath, passphrase string) (int64, error) {
	if _, err := os.Stat(dstPath); err == nil {
		return 0, fmt.Errorf("snapshot: %s already exists", dstPath)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		return 0, fmt.Errorf("wal checkpoint: %w", err)
	}

	tmp := filepath.Join(filepath.Dir(dstPath), "."+filepath.Base(dstPath)+".tmp")
	os.Remove(tmp)
	defer os.Remove(tmp)

	if _, err := db.ExecContext(ctx, "VACUUM INTO ?", tmp); err != nil {
		return 0, fmt.Errorf("vacuum into: %w", err)
	}

	if passphrase == "" {
		if err := os.Rename(tmp, dstPath); err != nil {
			return 0, fmt.Errorf("move snapshot: %w", err)
		}
		return fileSize(dstPath)
	}

	plain, err := os.ReadFile(tmp)
	if err != nil {
		return 0, fmt.Errorf("read snapshot: %w", err)
	}
	sealed, err := Seal(plain, passphrase)
	if err != nil {
		return 0, fmt.Errorf("encrypt: %w", err)
	}
	if err := os.WriteFile(dstPath, sealed, 0600); err != nil {
		return 0, fmt.Errorf("write snapshot: %w", err)
	}
	return int64(len(sealed)), nil
}

// Restore validates the snapshot at srcPath and installs it as dbPath.
// The previous database, if any, is kept beside it with a .bak suffix.
// The service must not be running against dbPath.
func Restore(srcPath, dbPath, passphrase string) error {
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}

	if IsSealed(data) {
		if passphrase == "" {
			return errors.New("snapshot is encrypted: passphrase required")
		}
		if data, err = Open(data, passphrase); err != nil {
			return err
		}
	}

	if len(data) < len(sqliteHeader) || string(data[:len(sqliteHeader)]) != string(sqliteHeader) {
		return errors.New("snapshot is not a SQLite database")
	}

	staged := dbPath + ".restore"
	if err := os.WriteFile(staged, data, 0600); err != nil {
		return fmt.Errorf("stage snapshot: %w", err)
	}
	defer os.Remove(staged)

	// Opening runs migrations, so an older snapshot is brought up to date
	// before it replaces the live file.
	check, err := database.Open(staged)
	if err != nil {
		return fmt.Errorf("validate snapshot: %w", err)
	}
	if _, err := check.Exec("PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		check.Close()
		return fmt.Errorf("validate snapshot: %w", err)
	}
	check.Close()
	os.Remove(staged + "-wal")
	os.Remove(staged + "-shm")

	if _, err := os.Stat(dbPath); err == nil {
		if err := os.Rename(dbPath, dbPath+".bak"); err != nil {
			return fmt.Errorf("keep previous database: %w", err)
		}
		os.Remove(dbPath + "-wal")
		os.Remove(dbPath + "-shm")
	}

	if err := os.Rename(staged, dbPath); err != nil {
		return fmt.Errorf("install snapshot: %w", err)
	}
	return nil
}

func fileSize(path string) (int64, error) {
	st, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return st.Size(), nil
}
