package providers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/km-arc/go-registration/framework/config"
	"github.com/km-arc/go-registration/framework/container"
	"github.com/km-arc/go-registration/framework/providers"
)

func TestNewLogger_Level(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel},
		{"bogus", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := &config.Config{
				App: config.AppConfig{Name: "test"},
				Log: config.LogConfig{Level: tt.level},
			}
			log := providers.NewLogger(cfg)
			assert.True(t, log.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, log.Core().Enabled(tt.want-1))
			}
		})
	}
}

func TestConfigProvider_Alias(t *testing.T) {
	c := container.New()
	r := container.NewProviderRegistry(c)
	cfg := &config.Config{App: config.AppConfig{Name: "test"}}

	r.Register(&providers.ConfigServiceProvider{Config: cfg})
	r.Register(&providers.LogServiceProvider{})

	assert.Same(t, cfg, container.Resolve[*config.Config](c, "configuration"))
	assert.IsType(t, &zap.Logger{}, c.Make("logger"))
}
