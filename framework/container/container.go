package container

import (
	"fmt"
	"sync"
)

// Factory builds a service, resolving whatever it depends on from c.
type Factory func(c *Container) any

type binding struct {
	build  Factory
	shared bool
}

// Container holds the services the registration app is assembled from:
// config, logger, router, views, metrics, the session store and the
// controller. Services are addressed by string key.
type Container struct {
	mu       sync.RWMutex
	bindings map[string]*binding
	built    map[string]any    // shared services, once built
	aliases  map[string]string // alias → key
}

// New creates an empty container that resolves itself as "container".
func New() *Container {
	c := &Container{
		bindings: make(map[string]*binding),
		built:    make(map[string]any),
		aliases:  make(map[string]string),
	}
	c.Instance("container", c)
	return c
}

// Bind registers a factory that runs on every Make.
func (c *Container) Bind(key string, build Factory) {
	c.register(key, build, false)
}

// Singleton registers a factory that runs once; later Makes share the result.
//
//	c.Singleton("sessions", func(c *container.Container) any {
//	    return session.NewStore(...)
//	})
func (c *Container) Singleton(key string, build Factory) {
	c.register(key, build, true)
}

// Instance registers an already built service.
func (c *Container) Instance(key string, service any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key = c.resolveAlias(key)
	delete(c.bindings, key)
	c.built[key] = service
}

// register replaces any previous binding, dropping a service it had built.
func (c *Container) register(key string, build Factory, shared bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key = c.resolveAlias(key)
	delete(c.built, key)
	c.bindings[key] = &binding{build: build, shared: shared}
}

// Alias makes alias resolve to key, e.g. "configuration" to "config".
func (c *Container) Alias(key, alias string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if key == alias {
		panic(fmt.Sprintf("container: [%s] is aliased to itself", key))
	}
	c.aliases[alias] = c.resolveAlias(key)
}

// Make returns the service for key. An unbound key is a wiring bug and
// panics at boot rather than surfacing mid-request.
func (c *Container) Make(key string) any {
	c.mu.RLock()
	key = c.resolveAlias(key)
	if svc, ok := c.built[key]; ok {
		c.mu.RUnlock()
		return svc
	}
	b, ok := c.bindings[key]
	c.mu.RUnlock()
	if !ok {
		panic(fmt.Sprintf("container: no binding registered for [%s]", key))
	}

	// Factories resolve their own dependencies, so run them unlocked.
	svc := b.build(c)
	if !b.shared {
		return svc
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// A deferred provider's placeholder re-binds key while it runs; the
	// inner Make has already stored the real service.
	if c.bindings[key] != b {
		return svc
	}
	if first, ok := c.built[key]; ok {
		return first
	}
	c.built[key] = svc
	return svc
}

// Bound reports whether key (or its alias target) has a binding or a built
// service.
func (c *Container) Bound(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	key = c.resolveAlias(key)
	_, hasBinding := c.bindings[key]
	_, hasService := c.built[key]
	return hasBinding || hasService
}

// Resolved reports whether a shared service for key has been built.
func (c *Container) Resolved(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.built[c.resolveAlias(key)]
	return ok
}

// resolveAlias must be called with mu held.
func (c *Container) resolveAlias(key string) string {
	if target, ok := c.aliases[key]; ok {
		return target
	}
	return key
}

// Resolve is Make with a type assertion; a mismatch panics with both types.
//
//	store := container.Resolve[*session.Store](c, "sessions")
func Resolve[T any](c *Container, key string) T {
	svc := c.Make(key)
	typed, ok := svc.(T)
	if !ok {
		panic(fmt.Sprintf("container: Resolve[%T]: [%s] resolved to %T", *new(T), key, svc))
	}
	return typed
}

// TryResolve is Resolve for optional services: an unbound key or another
// type yields false.
func TryResolve[T any](c *Container, key string) (T, bool) {
	var zero T
	if !c.Bound(key) {
		return zero, false
	}
	typed, ok := c.Make(key).(T)
	return typed, ok
}
