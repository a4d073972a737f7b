// Package container provides the service container and service providers the
// application is assembled from.
//
// # Overview
//
// The container owns construction of the long-lived services: configuration,
// logger, router, view engine, metrics and the session store. Go has no
// constructor reflection, so every binding is an explicit factory function.
//
// # Container Lifecycle
//
//  1. Create: c := container.New()
//  2. Register providers: registry.Register(&MyProvider{})
//  3. Boot: registry.Boot()        (safe to resolve everything after this)
//  4. Serve requests
//
// # Bindings
//
//	// Transient: new instance every Make()
//	c.Bind("panel", func(c *container.Container) any { return &session.Panel{} })
//
//	// Singleton: created once, reused
//	c.Singleton("sessions", func(c *container.Container) any {
//	    cfg := container.Resolve[*config.Config](c, "config")
//	    return session.NewStore(...)
//	})
//
//	// Pre-built value
//	c.Instance("config", cfg)
//
//	// Alias
//	c.Alias("config", "configuration")
//
// # Resolving
//
//	raw := c.Make("sessions")
//	store := container.Resolve[*session.Store](c, "sessions")
//	store, ok := container.TryResolve[*session.Store](c, "sessions")
//
// # Service Providers
//
//	type RegistrationServiceProvider struct{ container.BaseProvider }
//
//	func (p *RegistrationServiceProvider) Register(app *container.Container) {
//	    app.Singleton("controllers.registration", func(c *container.Container) any { ... })
//	}
//
//	func (p *RegistrationServiceProvider) Boot(app *container.Container) {
//	    // safe to resolve other bindings here, e.g. mount routes
//	}
//
//	registry := container.NewProviderRegistry(c)
//	registry.Register(&RegistrationServiceProvider{})
//	registry.Boot()
//
// # Deferred Providers
//
// A deferred provider is registered only when one of its Provides() keys is
// first resolved:
//
//	func (p *MetricsServiceProvider) IsDeferred() bool   { return true }
//	func (p *MetricsServiceProvider) Provides() []string { return []string{"metrics"} }
package container
