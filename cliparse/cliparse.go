package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// Store type constants
const (
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
)

type Config struct {
	DataFile  string
	StoreType string
	UserName  string
	Admin     bool
}

// ParseFlags validates flags, with environment variables as fallback.
// A .env file in the working directory is loaded first when present.
func ParseFlags(args []string) (Config, error) {
	// A missing .env is normal; a broken one deserves a warning but is
	// not fatal, flags and real env vars still apply.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	var cfg Config

	fs := flag.NewFlagSet("lowstock", flag.ContinueOnError)

	fs.StringVar(&cfg.DataFile, "f", "", "Data file path")
	fs.StringVar(&cfg.StoreType, "t", "", "Store type (json or sqlite)")

	// Identity (optional; skips the login prompt)
	fs.StringVar(&cfg.UserName, "user", "", "Preset user name")
	fs.BoolVar(&cfg.Admin, "admin", false, "Preset user is an administrator")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.StoreType == "" {
		cfg.StoreType = os.Getenv("LOWSTOCK_STORE")
		if cfg.StoreType == "" {
			cfg.StoreType = StoreJSON // default
		}
	}
	if cfg.StoreType != StoreJSON && cfg.StoreType != StoreSQLite {
		return Config{}, fmt.Errorf("unknown store type %q (use json or sqlite)", cfg.StoreType)
	}

	if cfg.DataFile == "" {
		cfg.DataFile = os.Getenv("LOWSTOCK_FILE")
	}
	if cfg.DataFile == "" {
		if cfg.StoreType == StoreSQLite {
			cfg.DataFile = "lowstock.db"
		} else {
			cfg.DataFile = "lowstock.json"
		}
	}

	if cfg.UserName == "" {
		cfg.UserName = os.Getenv("LOWSTOCK_USER")
	}
	if !cfg.Admin {
		cfg.Admin = os.Getenv("LOWSTOCK_ADMIN") == "1"
	}

	return cfg, nil
}
