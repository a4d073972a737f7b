package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/km-arc/go-registration/framework/config"
)

// ── helpers ──────────────────────────────────────────────────────────────────

var managedKeys = []string{
	"APP_NAME", "APP_ENV", "APP_DEBUG", "APP_URL", "APP_PORT", "LOG_LEVEL",
	"SESSION_COOKIE", "SESSION_TTL", "SESSION_MAX", "FORM_COUNTRIES",
}

// clearEnv blanks every key Load reads; blank values fall back to defaults.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range managedKeys {
		t.Setenv(k, "")
	}
}

func mustLoad(t *testing.T, files ...string) *config.Config {
	t.Helper()
	cfg, err := config.Load(files...)
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}
	return cfg
}

// ── Load ─────────────────────────────────────────────────────────────────────

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg := mustLoad(t, "testdata/empty.env")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"App.Name", cfg.App.Name, "Registration"},
		{"App.Env", cfg.App.Env, "local"},
		{"App.Port", cfg.App.Port, "8000"},
		{"App.URL", cfg.App.URL, "http://localhost"},
		{"Log.Level", cfg.Log.Level, "info"},
		{"Session.Cookie", cfg.Session.Cookie, "registration_session"},
		{"Form.Countries", cfg.Form.Countries, "US:United States,CA:Canada,GB:United Kingdom,DE:Germany,IN:India"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}

	if cfg.Session.TTL != 30*time.Minute {
		t.Errorf("Session.TTL: got %v want 30m", cfg.Session.TTL)
	}
	if cfg.Session.Max != 10000 {
		t.Errorf("Session.Max: got %d want 10000", cfg.Session.Max)
	}
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_NAME", "MyApp")
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("SESSION_TTL", "5m")
	t.Setenv("SESSION_MAX", "50")

	cfg := mustLoad(t, "testdata/empty.env")

	if cfg.App.Name != "MyApp" {
		t.Errorf("App.Name: got %q want %q", cfg.App.Name, "MyApp")
	}
	if cfg.App.Env != "production" {
		t.Errorf("App.Env: got %q want %q", cfg.App.Env, "production")
	}
	if cfg.App.Port != "9000" {
		t.Errorf("App.Port: got %q want %q", cfg.App.Port, "9000")
	}
	if cfg.Session.TTL != 5*time.Minute {
		t.Errorf("Session.TTL: got %v want 5m", cfg.Session.TTL)
	}
	if cfg.Session.Max != 50 {
		t.Errorf("Session.Max: got %d want 50", cfg.Session.Max)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv never overrides variables that are already set, even to ""
	os.Unsetenv("APP_NAME")
	os.Unsetenv("FORM_COUNTRIES")

	cfg := mustLoad(t, "testdata/app.env")
	t.Cleanup(func() {
		os.Unsetenv("APP_NAME")
		os.Unsetenv("FORM_COUNTRIES")
	})

	if cfg.App.Name != "FromFile" {
		t.Errorf("App.Name: got %q want FromFile", cfg.App.Name)
	}
	if cfg.Form.Countries != "FR:France,ES:Spain" {
		t.Errorf("Form.Countries: got %q", cfg.Form.Countries)
	}
}

func TestLoad_AppDebug(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_DEBUG", "false")
	if mustLoad(t, "testdata/empty.env").App.Debug {
		t.Error("expected App.Debug to be false")
	}

	t.Setenv("APP_DEBUG", "true")
	if !mustLoad(t, "testdata/empty.env").App.Debug {
		t.Error("expected App.Debug to be true")
	}
}

// ── Validation ───────────────────────────────────────────────────────────────

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		key, val string
	}{
		{"APP_ENV", "staging"},
		{"APP_PORT", "http"},
		{"LOG_LEVEL", "verbose"},
		{"SESSION_TTL", "soon"},
		{"SESSION_TTL", "-1m"},
		{"SESSION_MAX", "-3"},
		{"SESSION_MAX", "lots"},
		{"APP_DEBUG", "sometimes"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.val, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)
			if _, err := config.Load("testdata/empty.env"); err == nil {
				t.Errorf("expected error for %s=%s", tt.key, tt.val)
			}
		})
	}
}

// ── Get ────────────────────────────────────────────────────────────────────────

func TestGet_ReturnsValue(t *testing.T) {
	t.Setenv("CUSTOM_KEY", "hello")
	if got := config.Get("CUSTOM_KEY", "default"); got != "hello" {
		t.Errorf("got %q want %q", got, "hello")
	}
}

func TestGet_ReturnsFallback(t *testing.T) {
	os.Unsetenv("MISSING_KEY")
	if got := config.Get("MISSING_KEY", "fallback"); got != "fallback" {
		t.Errorf("got %q want %q", got, "fallback")
	}
}
