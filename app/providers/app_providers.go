package providers

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/km-arc/go-registration/app/http/controllers"
	"github.com/km-arc/go-registration/app/metrics"
	"github.com/km-arc/go-registration/app/registration"
	"github.com/km-arc/go-registration/app/session"
	"github.com/km-arc/go-registration/framework/config"
	"github.com/km-arc/go-registration/framework/container"
	gohttp "github.com/km-arc/go-registration/framework/http"
	"github.com/km-arc/go-registration/framework/routing"
	"github.com/km-arc/go-registration/routes"
)

// ── MetricsServiceProvider ───────────────────────────────────────────────────

// MetricsServiceProvider is deferred: the registry is only built once
// something asks for metrics.
//
// Bound abstracts:
//   - "metrics.registry" → *prometheus.Registry
//   - "metrics"          → *metrics.Metrics
//   - "metrics.handler"  → http.Handler
type MetricsServiceProvider struct {
	container.BaseProvider
}

func (p *MetricsServiceProvider) Register(app *container.Container) {
	app.Singleton("metrics.registry", func(c *container.Container) any {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		return reg
	})
	app.Singleton("metrics", func(c *container.Container) any {
		return metrics.New(container.Resolve[*prometheus.Registry](c, "metrics.registry"))
	})
	app.Singleton("metrics.handler", func(c *container.Container) any {
		reg := container.Resolve[*prometheus.Registry](c, "metrics.registry")
		return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
	})
}

func (p *MetricsServiceProvider) Provides() []string {
	return []string{"metrics.registry", "metrics", "metrics.handler"}
}

func (p *MetricsServiceProvider) IsDeferred() bool { return true }

// ── SessionServiceProvider ───────────────────────────────────────────────────

// SessionServiceProvider binds the in-memory session store. Every session's
// validator reports rule outcomes to the metrics.
//
// Bound abstracts:
//   - "sessions" → *session.Store
type SessionServiceProvider struct {
	container.BaseProvider
}

func (p *SessionServiceProvider) Register(app *container.Container) {
	app.Singleton("sessions", func(c *container.Container) any {
		cfg := container.Resolve[*config.Config](c, "config")
		log := container.Resolve[*zap.Logger](c, "logger")
		m := container.Resolve[*metrics.Metrics](c, "metrics")

		return session.NewStore(
			registration.ParseChoices(cfg.Form.Countries),
			cfg.Session.TTL,
			cfg.Session.Max,
			log.Named("session"),
			session.WithValidatorOptions(registration.WithObserver(m.ObserveField)),
			session.WithActiveHook(m.SetActiveSessions),
		)
	})
}

// ── RegistrationServiceProvider ──────────────────────────────────────────────

// RegistrationServiceProvider binds the form controller and mounts the web
// routes during Boot.
//
// Bound abstracts:
//   - "controllers.registration" → *controllers.RegistrationController
type RegistrationServiceProvider struct {
	container.BaseProvider
}

func (p *RegistrationServiceProvider) Register(app *container.Container) {
	app.Singleton("controllers.registration", func(c *container.Container) any {
		cfg := container.Resolve[*config.Config](c, "config")
		return &controllers.RegistrationController{
			Sessions:     container.Resolve[*session.Store](c, "sessions"),
			Views:        container.Resolve[*gohttp.ViewEngine](c, "view"),
			Metrics:      container.Resolve[*metrics.Metrics](c, "metrics"),
			Log:          container.Resolve[*zap.Logger](c, "logger").Named("registration"),
			AppName:      cfg.App.Name,
			Cookie:       cfg.Session.Cookie,
			CookieTTL:    cfg.Session.TTL,
			SecureCookie: cfg.App.Env == "production",
		}
	})
}

func (p *RegistrationServiceProvider) Boot(app *container.Container) {
	metricsHandler, _ := container.TryResolve[http.Handler](app, "metrics.handler")
	routes.Web(
		container.Resolve[*routing.Router](app, "router"),
		container.Resolve[*controllers.RegistrationController](app, "controllers.registration"),
		metricsHandler,
	)
}
