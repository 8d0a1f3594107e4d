package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// devSessionSecret is only ever used outside production so that the app
// starts without any configuration during local development.
const devSessionSecret = "camptrail-dev-secret-do-not-use-in-production"

// Config holds all environment-derived settings.
type Config struct {
	Env           string
	Port          string
	DatabasePath  string
	SessionSecret string
	RedisURL      string
	BcryptCost    int
	CookieSecure  bool
}

// Load reads configuration from the environment. Outside production a
// .env file is loaded first if present, and every setting has a
// documented default; in production the session secret is mandatory.
func Load() (*Config, error) {
	env := envOrDefault("ENV", "development")
	if env != "production" {
		// Missing .env is fine; explicit env vars still apply.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Env:          env,
		Port:         envOrDefault("PORT", "8080"),
		DatabasePath: envOrDefault("DATABASE_PATH", "camptrail.db"),
		RedisURL:     os.Getenv("REDIS_URL"),
		// Default to secure cookies; disable only for local development.
		CookieSecure: os.Getenv("COOKIE_SECURE") != "false",
		BcryptCost:   12,
	}

	cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	if cfg.SessionSecret == "" {
		if env == "production" {
			return nil, fmt.Errorf("SESSION_SECRET environment variable is required in production")
		}
		cfg.SessionSecret = devSessionSecret
	}
	if env == "production" && len(cfg.SessionSecret) < 32 {
		return nil, fmt.Errorf("SESSION_SECRET must be at least 32 characters for HMAC-SHA256 security")
	}

	if v := os.Getenv("BCRYPT_COST"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
		}
		if parsed < 4 || parsed > 14 {
			return nil, fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", parsed)
		}
		cfg.BcryptCost = parsed
	}

	return cfg, nil
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
