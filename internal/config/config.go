// Package config resolves service settings from flags, MEALCART_* environment
// variables, an optional mealcart.yaml file, and .env files, in that order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "MEALCART"

type Config struct {
	Port      string
	DBPath    string
	LogLevel  string
	LogFormat string

	// AllowedOrigins restricts WebSocket origins. Empty allows any.
	AllowedOrigins []string

	PINMaxAttempts int
	PINWindow      time.Duration

	ShutdownTimeout time.Duration
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("db_path", "mealcart.db")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("allowed_origins", []string{})
	v.SetDefault("pin_max_attempts", 5)
	v.SetDefault("pin_window", 5*time.Minute)
	v.SetDefault("shutdown_timeout", 5*time.Second)
}

// LoadEnvFiles loads .env then .env.local into the process environment.
// Missing files are ignored and existing variables are never overwritten.
func LoadEnvFiles(files ...string) {
	if len(files) == 0 {
		files = []string{".env", ".env.local"}
	}
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}

// New returns a viper instance wired for mealcart: defaults, MEALCART_*
// environment variables, and an optional config file. configFile may be
// empty, in which case mealcart.yaml is looked for in the working directory.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("mealcart")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

// BindFlags lets command-line flags override every other source. Flag names
// use dashes; keys use underscores.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		key := strings.ReplaceAll(f.Name, "-", "_")
		if bindErr := v.BindPFlag(key, f); bindErr != nil {
			err = fmt.Errorf("bind flag %q: %w", f.Name, bindErr)
		}
	})
	return err
}

// Load reads the resolved settings out of v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:            strings.TrimPrefix(strings.TrimSpace(v.GetString("port")), ":"),
		DBPath:          v.GetString("db_path"),
		LogLevel:        v.GetString("log_level"),
		LogFormat:       v.GetString("log_format"),
		AllowedOrigins:  splitList(v.GetStringSlice("allowed_origins")),
		PINMaxAttempts:  v.GetInt("pin_max_attempts"),
		PINWindow:       v.GetDuration("pin_window"),
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),
	}

	if cfg.Port == "" {
		return nil, errors.New("port must not be empty")
	}
	if cfg.DBPath == "" {
		return nil, errors.New("db_path must not be empty")
	}
	if cfg.PINMaxAttempts < 1 {
		return nil, fmt.Errorf("pin_max_attempts must be at least 1, got %d", cfg.PINMaxAttempts)
	}
	if cfg.PINWindow <= 0 {
		return nil, fmt.Errorf("pin_window must be positive, got %s", cfg.PINWindow)
	}
	return cfg, nil
}

// splitList accepts both YAML lists and comma-separated env values.
func splitList(in []string) []string {
	var out []string
	for _, s := range in {
		for _, part := range strings.Split(s, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
