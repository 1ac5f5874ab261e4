package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	v, err := New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "8080" || cfg.Addr() != ":8080" {
		t.Errorf("port = %q, addr = %q", cfg.Port, cfg.Addr())
	}
	if cfg.DBPath != "mealcart.db" {
		t.Errorf("db path = %q", cfg.DBPath)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Errorf("log = %q/%q", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.PINMaxAttempts != 5 || cfg.PINWindow != 5*time.Minute {
		t.Errorf("pin = %d/%s", cfg.PINMaxAttempts, cfg.PINWindow)
	}
	if len(cfg.AllowedOrigins) != 0 {
		t.Errorf("allowed origins = %v, want none", cfg.AllowedOrigins)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	yaml := "port: 9000\ndb_path: /var/lib/mealcart/kitchen.db\nlog_format: json\n"
	if err := os.WriteFile(filepath.Join(dir, "mealcart.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MEALCART_PORT", "9100")
	t.Setenv("MEALCART_ALLOWED_ORIGINS", "kitchen.local, tablet.local")

	v, err := New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "9100" {
		t.Errorf("port = %q, want env value 9100", cfg.Port)
	}
	if cfg.DBPath != "/var/lib/mealcart/kitchen.db" {
		t.Errorf("db path = %q", cfg.DBPath)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("log format = %q", cfg.LogFormat)
	}
	want := []string{"kitchen.local", "tablet.local"}
	if !reflect.DeepEqual(cfg.AllowedOrigins, want) {
		t.Errorf("allowed origins = %v, want %v", cfg.AllowedOrigins, want)
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MEALCART_DB_PATH", "env.db")

	flags := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	flags.String("db-path", "", "")
	flags.String("port", "", "")
	if err := flags.Parse([]string{"--db-path", "flag.db"}); err != nil {
		t.Fatal(err)
	}

	v, err := New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := BindFlags(v, flags); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "flag.db" {
		t.Errorf("db path = %q, want flag.db", cfg.DBPath)
	}
	// An unset flag does not hide the default.
	if cfg.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Port)
	}
}

func TestExplicitConfigFileMissing(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestLoadValidation(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MEALCART_PIN_MAX_ATTEMPTS", "0")

	v, err := New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := Load(v); err == nil {
		t.Error("expected error for pin_max_attempts = 0")
	}
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("MEALCART_TEST_FROM_DOTENV=yes\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MEALCART_TEST_FROM_DOTENV", "")
	os.Unsetenv("MEALCART_TEST_FROM_DOTENV")

	LoadEnvFiles(path, filepath.Join(dir, "missing.env"))

	if got := os.Getenv("MEALCART_TEST_FROM_DOTENV"); got != "yes" {
		t.Errorf("MEALCART_TEST_FROM_DOTENV = %q, want yes", got)
	}
}
