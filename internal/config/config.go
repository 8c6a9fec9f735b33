// Package config loads and validates application configuration from environment
// variables, after first reading an optional .env file in the working directory.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Store backends accepted in STORE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Export formats accepted in EXPORT_FORMAT.
const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
)

// Config holds all configuration values for the ledger.
// Values are populated by Load from environment variables.
type Config struct {
	// StoreBackend selects the record store: "memory" (default) or "postgres".
	StoreBackend string

	// DatabaseURL is the Postgres connection string.
	// Required only when StoreBackend is "postgres".
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// LogFile is where JSON log lines are written. Stdout belongs to the menu,
	// so logs never go there. Defaults to "ledger.log".
	LogFile string

	// LogMaxSizeMB is the size at which the log file is rotated. Defaults to 10.
	LogMaxSizeMB int

	// Locale picks the UI language, e.g. "en" or "ru". Defaults to "en".
	Locale string

	// ExportDir is the directory export files are written to. Defaults to ".".
	ExportDir string

	// ExportFormat is "xlsx" (default) or "csv".
	ExportFormat string
}

// Load reads configuration from environment variables and returns a Config.
// A .env file, if present, fills in variables that are not already set.
// Returns an error listing every missing or invalid variable.
func Load() (Config, error) {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	cfg := Config{
		StoreBackend: strings.ToLower(getEnv("STORE_BACKEND", BackendMemory)),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFile:      getEnv("LOG_FILE", "ledger.log"),
		Locale:       getEnv("LOCALE", "en"),
		ExportDir:    getEnv("EXPORT_DIR", "."),
		ExportFormat: strings.ToLower(getEnv("EXPORT_FORMAT", FormatXLSX)),
	}

	var problems []string

	switch cfg.StoreBackend {
	case BackendMemory:
	case BackendPostgres:
		if cfg.DatabaseURL == "" {
			problems = append(problems, "DATABASE_URL is required when STORE_BACKEND=postgres")
		}
	default:
		problems = append(problems, fmt.Sprintf("STORE_BACKEND must be %q or %q, got %q", BackendMemory, BackendPostgres, cfg.StoreBackend))
	}

	switch cfg.ExportFormat {
	case FormatXLSX, FormatCSV:
	default:
		problems = append(problems, fmt.Sprintf("EXPORT_FORMAT must be %q or %q, got %q", FormatXLSX, FormatCSV, cfg.ExportFormat))
	}

	size, err := strconv.Atoi(getEnv("LOG_MAX_SIZE_MB", "10"))
	if err != nil || size < 1 {
		problems = append(problems, "LOG_MAX_SIZE_MB must be a positive integer")
	}
	cfg.LogMaxSizeMB = size

	if len(problems) > 0 {
		return Config{}, fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
