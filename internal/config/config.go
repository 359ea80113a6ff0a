package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/smartresolve/admin-creator/internal/validator"
)

// Config holds all tool configuration.
type Config struct {
	// SupabaseURL is the project base URL, e.g. https://<ref>.supabase.co.
	SupabaseURL string `env:"SUPABASE_URL" validate:"required,url"`
	// SupabaseKey is sent as both the apikey header and the bearer token.
	SupabaseKey string `env:"SUPABASE_KEY" validate:"required"`
	UsersTable  string `env:"SUPABASE_USERS_TABLE" validate:"required"`
	// RequestTimeout bounds the insert request. Zero means no timeout.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT_SECONDS" validate:"gte=0"`
	MaskPassword   bool          `env:"MASK_PASSWORD"`
	LogLevel       string        `env:"LOG_LEVEL"`
	LogFormat      string        `env:"LOG_FORMAT" validate:"oneof=pretty json"`
	// DatabaseURL is only used by the migrate command.
	DatabaseURL string `env:"DATABASE_URL"`
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // .env is optional

	return &Config{
		SupabaseURL:    strings.TrimRight(getEnv("SUPABASE_URL", ""), "/"),
		SupabaseKey:    getEnv("SUPABASE_KEY", getEnv("SUPABASE_ANON_KEY", "")),
		UsersTable:     getEnv("SUPABASE_USERS_TABLE", "users"),
		RequestTimeout: time.Duration(getEnvInt("REQUEST_TIMEOUT_SECONDS", 0)) * time.Second,
		MaskPassword:   getEnvBool("MASK_PASSWORD", false),
		LogLevel:       getEnv("LOG_LEVEL", "warn"),
		LogFormat:      getEnv("LOG_FORMAT", "pretty"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// Validate reports every missing or malformed setting at once.
func (c *Config) Validate() error {
	if err := validator.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
