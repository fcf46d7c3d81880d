// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration values for the site server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string for hand-authored location
	// pages. Optional: when empty only code-registered and generic pages are served.
	DatabaseURL string

	// RunMigrations applies pending goose migrations at startup. Defaults to false.
	RunMigrations bool

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:3000"] (site dev server).
	CORSOrigins []string

	// CatalogPath is a YAML priority catalog that replaces the built-in one.
	CatalogPath string

	// FirmName, FirmPhone and FirmCTA fill the contact block on every page.
	// FirmPhone is required.
	FirmName  string
	FirmPhone string
	FirmCTA   string

	// MaxBodyBytes caps request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set and any
// values that do not parse.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		CatalogPath: os.Getenv("CATALOG_PATH"),
		FirmName:    getEnv("FIRM_NAME", "Carolina Law Group"),
		FirmCTA:     getEnv("FIRM_CTA", "Schedule a free consultation"),
	}

	var missing, invalid []string

	cfg.FirmPhone = os.Getenv("FIRM_PHONE")
	if cfg.FirmPhone == "" {
		missing = append(missing, "FIRM_PHONE")
	}

	migrate, err := strconv.ParseBool(getEnv("RUN_MIGRATIONS", "false"))
	if err != nil {
		invalid = append(invalid, "RUN_MIGRATIONS")
	}
	cfg.RunMigrations = migrate

	maxBody, err := strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64)
	if err != nil || maxBody <= 0 {
		invalid = append(invalid, "MAX_BODY_BYTES")
	}
	cfg.MaxBodyBytes = maxBody

	if cfg.RunMigrations && cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL (required when RUN_MIGRATIONS is set)")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
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

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
