package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-registration/framework/container"
)

// recorder binds each of its keys to the key's own name and counts the
// lifecycle calls it receives.
type recorder struct {
	container.BaseProvider
	keys     []string
	deferred bool

	registers int
	boots     int
}

func (p *recorder) Register(app *container.Container) {
	p.registers++
	for _, k := range p.keys {
		key := k
		app.Singleton(key, func(c *container.Container) any { return key + "-value" })
	}
}

func (p *recorder) Boot(_ *container.Container) { p.boots++ }
func (p *recorder) Provides() []string          { return p.keys }
func (p *recorder) IsDeferred() bool            { return p.deferred }

func newRegistry() (*container.Container, *container.ProviderRegistry) {
	c := container.New()
	return c, container.NewProviderRegistry(c)
}

func TestRegistry_EagerLifecycle(t *testing.T) {
	c, reg := newRegistry()
	p := &recorder{keys: []string{"a"}}

	reg.Register(p)
	assert.Equal(t, 1, p.registers)
	assert.Zero(t, p.boots, "Boot runs only once the registry boots")
	assert.False(t, reg.Booted())

	reg.Boot()
	reg.Boot()
	assert.Equal(t, 1, p.boots)
	assert.True(t, reg.Booted())
	assert.Equal(t, "a-value", c.Make("a"))
}

func TestRegistry_RegisterTwiceIsNoop(t *testing.T) {
	_, reg := newRegistry()
	p := &recorder{keys: []string{"a"}}

	reg.Register(p)
	reg.Register(p)

	assert.Equal(t, 1, p.registers)
	assert.Len(t, reg.Providers(), 1)
}

func TestRegistry_LateRegistrationBootsImmediately(t *testing.T) {
	_, reg := newRegistry()
	reg.Boot()

	p := &recorder{keys: []string{"a"}}
	reg.Register(p)

	assert.Equal(t, 1, p.boots)
}

func TestRegistry_DeferredLoadsOnceAcrossKeys(t *testing.T) {
	c, reg := newRegistry()
	p := &recorder{keys: []string{"a", "b"}, deferred: true}

	reg.Register(p)
	reg.Boot()
	require.Zero(t, p.registers, "deferred provider waits for its first Make")
	assert.Empty(t, reg.Providers(), "deferred providers are not listed as eager")
	assert.True(t, c.Bound("a"))

	assert.Equal(t, "a-value", c.Make("a"))
	assert.Equal(t, "b-value", c.Make("b"))
	assert.Equal(t, "a-value", c.Make("a"))

	assert.Equal(t, 1, p.registers)
	assert.Equal(t, 1, p.boots, "loaded after Boot, so booted on load")
}

func TestRegistry_DeferredLoadedBeforeBoot(t *testing.T) {
	c, reg := newRegistry()
	p := &recorder{keys: []string{"a"}, deferred: true}
	reg.Register(p)

	assert.Equal(t, "a-value", c.Make("a"))
	assert.Zero(t, p.boots, "not booted while the registry has not booted")

	reg.Boot()
	assert.Equal(t, 1, p.boots)
}

func TestBaseProvider_Defaults(t *testing.T) {
	var p container.BaseProvider

	assert.NotPanics(t, func() { p.Boot(container.New()) })
	assert.False(t, p.IsDeferred())
	assert.Empty(t, p.Provides())
}
