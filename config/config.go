package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

type Config struct {
	// HTTP listen address, e.g. ":8000"
	Address  string `env:"ADDRESS" envDefault:":8000"`
	Env      string `env:"ENV" envDefault:"local"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Empty disables error reporting.
	SentryDSN string `env:"SENTRY_DSN"`

	// Empty runs every generation from the catalog.
	GeminiAPIKey      string        `env:"GEMINI_API_KEY"`
	GeminiModel       string        `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`
	GenerationTimeout time.Duration `env:"GENERATION_TIMEOUT" envDefault:"10s"`
	// Zero disables the completion cache.
	CompletionCacheTTL time.Duration `env:"COMPLETION_CACHE_TTL" envDefault:"10m"`

	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"http://localhost:3000,http://127.0.0.1:3000" envSeparator:","`
	// Requests per second per client; zero disables rate limiting.
	RateLimit float64 `env:"RATE_LIMIT" envDefault:"20"`
}

func (c Config) Local() bool {
	return c.Env == "local"
}

func (c Config) GeminiConfigured() bool {
	return c.GeminiAPIKey != ""
}

// Load loads .env (if present) and parses environment variables into Config.
func Load() (Config, error) {
	// Load .env if available; ignore error if file does not exist
	_ = godotenv.Load()
	return Parse()
}

// Parse reads Config from the process environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.GenerationTimeout <= 0 {
		return Config{}, fmt.Errorf("GENERATION_TIMEOUT must be positive, got %s", cfg.GenerationTimeout)
	}
	if cfg.CompletionCacheTTL < 0 {
		return Config{}, fmt.Errorf("COMPLETION_CACHE_TTL must not be negative, got %s", cfg.CompletionCacheTTL)
	}
	if cfg.RateLimit < 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT must not be negative, got %v", cfg.RateLimit)
	}
	return cfg, nil
}
