package providers

import (
	"io/fs"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/km-arc/go-registration/framework/config"
	"github.com/km-arc/go-registration/framework/container"
	gohttp "github.com/km-arc/go-registration/framework/http"
	"github.com/km-arc/go-registration/framework/routing"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider binds the loaded configuration.
//
// Bound abstracts:
//   - "config"        → *config.Config
//   - "configuration" → alias of "config"
type ConfigServiceProvider struct {
	container.BaseProvider
	Config *config.Config
}

func (p *ConfigServiceProvider) Register(app *container.Container) {
	app.Instance("config", p.Config)
	app.Alias("config", "configuration")
}

// ── LogServiceProvider ────────────────────────────────────────────────────────

// LogServiceProvider builds the zap logger: a development logger when
// APP_DEBUG is on, a production JSON logger otherwise, at LOG_LEVEL.
//
// Bound abstracts:
//   - "logger" → *zap.Logger
type LogServiceProvider struct {
	container.BaseProvider
}

func (p *LogServiceProvider) Register(app *container.Container) {
	app.Singleton("logger", func(c *container.Container) any {
		cfg := container.Resolve[*config.Config](c, "config")
		return NewLogger(cfg)
	})
}

// NewLogger builds a logger from configuration. It falls back to a no-op
// logger if zap cannot be built.
func NewLogger(cfg *config.Config) *zap.Logger {
	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	zc := zap.NewProductionConfig()
	if cfg.App.Debug {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	log, err := zc.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log.With(zap.String("app", cfg.App.Name))
}

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider registers the HTTP router.
//
// Bound abstracts:
//   - "router" → *routing.Router
type RoutingServiceProvider struct {
	container.BaseProvider
}

func (p *RoutingServiceProvider) Register(app *container.Container) {
	app.Singleton("router", func(c *container.Container) any {
		log := container.Resolve[*zap.Logger](c, "logger")
		return routing.New(log.Named("http"))
	})
}

// ── ViewServiceProvider ───────────────────────────────────────────────────────

// ViewServiceProvider registers the template engine.
//
// Bound abstracts:
//   - "view" → *gohttp.ViewEngine
type ViewServiceProvider struct {
	container.BaseProvider
	FS  fs.FS  // templates, default: ./resources/views on disk
	Ext string // file extension, default: ".html"
}

func (p *ViewServiceProvider) Register(app *container.Container) {
	fsys := p.FS
	if fsys == nil {
		fsys = os.DirFS("./resources/views")
	}
	ext := p.Ext
	if ext == "" {
		ext = ".html"
	}

	app.Singleton("view", func(c *container.Container) any {
		return gohttp.NewViewEngine(fsys, ext)
	})
}
