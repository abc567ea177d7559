package common

import (
	"log/slog"
	"os"
	"strings"
)

// Output formats for the tabular emission.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Config holds all application configuration.
type Config struct {
	Output   string   // output file path
	Format   string   // "csv" or "xlsx"; empty means infer from Output
	Exts     []string // discovery extension filter
	LogLevel slog.Level
}

// LoadConfig loads configuration from environment variables. Flags and an
// optional YAML file are layered on top by the caller.
func LoadConfig() *Config {
	return &Config{
		Output:   getEnv("CONTRACTS_OUTPUT", "contracts.csv"),
		Format:   getEnv("CONTRACTS_FORMAT", ""),
		Exts:     getEnvAsList("CONTRACTS_EXTS", []string{"pdf"}),
		LogLevel: getEnvAsLevel("LOG_LEVEL", slog.LevelInfo),
	}
}

// ResolveFormat returns the effective output format: explicit Format if set,
// otherwise inferred from the Output extension.
func (c *Config) ResolveFormat() string {
	if c.Format != "" {
		return strings.ToLower(c.Format)
	}
	if strings.HasSuffix(strings.ToLower(c.Output), ".xlsx") {
		return FormatXLSX
	}
	return FormatCSV
}

// Validate validates the loaded configuration.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Output) == "" {
		return NewAppError("CONFIG_ERROR", "output path is required", ErrInvalidInput)
	}
	switch c.ResolveFormat() {
	case FormatCSV, FormatXLSX:
	default:
		return NewAppError("CONFIG_ERROR", "format must be csv or xlsx", ErrInvalidInput)
	}
	return nil
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

func getEnvAsLevel(key string, defaultValue slog.Level) slog.Level {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return defaultValue
	}
	return level
}
