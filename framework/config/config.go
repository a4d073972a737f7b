package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/km-arc/go-registration/framework/http/validation"
)

const defaultCountries = "US:United States,CA:Canada,GB:United Kingdom,DE:Germany,IN:India"

// Config is the central typed configuration struct.
type Config struct {
	App     AppConfig
	Log     LogConfig
	Session SessionConfig
	Form    FormConfig
}

type AppConfig struct {
	Name  string `validate:"required"`
	Env   string `validate:"oneof=local production testing"`
	Debug bool
	URL   string `validate:"required,url"`
	Port  string `validate:"required,numeric"`
}

type LogConfig struct {
	Level string `validate:"oneof=debug info warn error"`
}

type SessionConfig struct {
	Cookie string        `validate:"required"`
	TTL    time.Duration `validate:"gt=0"`
	Max    int           `validate:"gt=0"`
}

type FormConfig struct {
	// Countries is the country select, as "value:label" pairs.
	Countries string `validate:"required"`
}

// Load reads .env (if present), populates a Config from environment variables
// and validates it. Call once at bootstrap: cfg, err := config.Load()
func Load(envFiles ...string) (*Config, error) {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	// Non-fatal: .env may not exist in production
	_ = godotenv.Load(files...)

	ttl, errTTL := envParse("SESSION_TTL", 30*time.Minute, time.ParseDuration)
	maxSessions, errMax := envParse("SESSION_MAX", 10000, strconv.Atoi)
	debug, errDebug := envParse("APP_DEBUG", true, strconv.ParseBool)
	if err := errors.Join(errTTL, errMax, errDebug); err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Name:  Get("APP_NAME", "Registration"),
			Env:   Get("APP_ENV", "local"),
			Debug: debug,
			URL:   Get("APP_URL", "http://localhost"),
			Port:  Get("APP_PORT", "8000"),
		},
		Log: LogConfig{
			Level: Get("LOG_LEVEL", "info"),
		},
		Session: SessionConfig{
			Cookie: Get("SESSION_COOKIE", "registration_session"),
			TTL:    ttl,
			Max:    maxSessions,
		},
		Form: FormConfig{
			Countries: Get("FORM_COUNTRIES", defaultCountries),
		},
	}

	if err := validation.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: invalid configuration: %w", err)
	}
	return cfg, nil
}

// Get returns a raw env value, falling back to defaultVal.
func Get(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

// ── helpers ─────────────────────────────────────────────────────────────────

// envParse reads key with parse, falling back when it is unset. A value
// that does not parse is an error rather than a silent default.
func envParse[T any](key string, fallback T, parse func(string) (T, error)) (T, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	out, err := parse(v)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("config: %s: %w", key, err)
	}
	return out, nil
}
