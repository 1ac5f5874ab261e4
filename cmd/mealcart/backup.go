package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/dukerupert/mealcart/internal/backup"
	"github.com/dukerupert/mealcart/internal/config"
	"github.com/dukerupert/mealcart/internal/database"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newBackupCmd(opts *rootOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Write a snapshot of the kitchen database",
		Long: `Write a consistent copy of the database to a file. When a passphrase is set
(--backup-passphrase or MEALCART_BACKUP_PASSPHRASE) the snapshot is encrypted.`,
		Example: `  mealcart backup
  mealcart backup --out /mnt/usb/kitchen.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.v)
			if err != nil {
				return err
			}
			passphrase := opts.v.GetString("backup_passphrase")

			if out == "" {
				out = filepath.Join(filepath.Dir(cfg.DBPath), backup.DefaultName(time.Now(), passphrase != ""))
			}

			db, err := database.Open(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer db.Close()

			size, err := backup.Snapshot(cmd.Context(), db, out, passphrase)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s)\n", out, humanize.Bytes(uint64(size)))
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "snapshot file (default beside the database)")
	cmd.Flags().String("db-path", "", "SQLite database file (default mealcart.db)")
	cmd.Flags().String("backup-passphrase", "", "encrypt the snapshot with this passphrase")
	return cmd
}

func newRestoreCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore SNAPSHOT",
		Short: "Replace the kitchen database with a snapshot",
		Long: `Replace the database with a snapshot written by "mealcart backup". Stop the
service first. The current database is kept with a .bak suffix.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.v)
			if err != nil {
				return err
			}
			if err := backup.Restore(args[0], cfg.DBPath, opts.v.GetString("backup_passphrase")); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "restored %s from %s\n", cfg.DBPath, args[0])
			return nil
		},
	}

	cmd.Flags().String("db-path", "", "SQLite database file (default mealcart.db)")
	cmd.Flags().String("backup-passphrase", "", "passphrase for an encrypted snapshot")
	return cmd
}
