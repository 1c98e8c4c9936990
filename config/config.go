package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers accepted in STORE_DRIVER.
const (
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string

	StoreDriver string
	SQLitePath  string
	DBUrl       string

	// APIKey enables description generation; empty means every event gets the fallback text.
	APIKey           string
	GeminiModel      string
	GeminiBaseURL    string
	GeneratorTimeout time.Duration

	AllowedOrigins []string

	MailerProvider     string
	MailerFromAddress  string
	MailerFromName     string
	OrganizerEmail     string
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production we rely on system environment variables only
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:        env,
		Port:               getEnv("PORT", "8080"),
		StoreDriver:        strings.ToLower(getEnv("STORE_DRIVER", StoreSQLite)),
		SQLitePath:         getEnv("SQLITE_PATH", "checkin.db"),
		DBUrl:              os.Getenv("DATABASE_URL"),
		APIKey:             os.Getenv("API_KEY"),
		GeminiModel:        os.Getenv("GEMINI_MODEL"),
		GeminiBaseURL:      os.Getenv("GEMINI_BASE_URL"),
		GeneratorTimeout:   15 * time.Second,
		AllowedOrigins:     splitList(os.Getenv("ALLOWED_ORIGINS")),
		MailerProvider:     strings.ToLower(os.Getenv("MAILER_PROVIDER")),
		MailerFromAddress:  os.Getenv("MAILER_FROM_ADDRESS"),
		MailerFromName:     os.Getenv("MAILER_FROM_NAME"),
		OrganizerEmail:     os.Getenv("ORGANIZER_EMAIL"),
		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	if s := os.Getenv("GENERATOR_TIMEOUT"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid GENERATOR_TIMEOUT %q", s)
		}
		cfg.GeneratorTimeout = d
	}

	switch cfg.StoreDriver {
	case StoreSQLite, StoreMemory:
	case StorePostgres:
		if cfg.DBUrl == "" {
			return nil, fmt.Errorf("DATABASE_URL is required when STORE_DRIVER=%s", StorePostgres)
		}
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
