// Package appctx provides the explicit theme context that replaces a global
// theme manager: the current effective Theme, the override registry, and
// the token catalog behind a single layered lookup. The context is built by
// the application's composition root and injected into anything that
// resolves tokens.
package appctx

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/vilosource/vfwidgets-theme/internal/color"
	"github.com/vilosource/vfwidgets-theme/internal/overrides"
	"github.com/vilosource/vfwidgets-theme/internal/theme"
	"github.com/vilosource/vfwidgets-theme/internal/tokens"
)

// Themeable is the capability interface a themed component implements.
// Components hold a ThemedState by composition rather than inheriting from
// a themed base class.
type Themeable interface {
	// OnThemeChanged is called after the context's effective theme changes.
	OnThemeChanged()
}

// Handle identifies a registered Themeable. Handles carry a generation
// counter: after Unregister, a stale handle is inert rather than pointing
// at whatever reused the slot.
type Handle struct {
	index      int
	generation uint64
}

type slot struct {
	widget     Themeable
	generation uint64
}

// Context is the injected theme context: base theme, composed effective
// theme, per-theme resolver, and the override registry. All methods are
// safe for concurrent use.
type Context struct {
	mu        sync.RWMutex
	base      *theme.Theme
	effective *theme.Theme
	resolver  *theme.Resolver
	overrides *overrides.Registry
	composer  *theme.Composer

	slots []slot
	free  []int
}

// New creates a context over a base theme and an override registry.
// A nil registry gets an empty one; a nil base theme is an error.
func New(base *theme.Theme, reg *overrides.Registry) (*Context, error) {
	if base == nil {
		return nil, fmt.Errorf("%w: context needs a base theme", theme.ErrNotInitialized)
	}
	if reg == nil {
		reg = overrides.New()
	}

	resolver, err := theme.NewResolver(base)
	if err != nil {
		return nil, err
	}
	return &Context{
		base:      base,
		effective: base,
		resolver:  resolver,
		overrides: reg,
		composer:  theme.NewComposer(),
	}, nil
}

// Theme returns the current effective theme.
func (c *Context) Theme() *theme.Theme {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.effective
}

// Overrides returns the context's override registry.
func (c *Context) Overrides() *overrides.Registry {
	return c.overrides
}

// SetTheme replaces the base theme, resets the effective theme to it, and
// notifies every registered Themeable.
func (c *Context) SetTheme(t *theme.Theme) error {
	if t == nil {
		return fmt.Errorf("%w: cannot switch to a nil theme", theme.ErrNotInitialized)
	}
	resolver, err := theme.NewResolver(t)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.base = t
	c.effective = t
	c.resolver = resolver
	widgets := c.liveWidgets()
	c.mu.Unlock()

	notify(widgets)
	return nil
}

// ApplyOverlays folds overlay themes over the base theme to produce a new
// effective theme, then notifies registered Themeables. With no overlays
// the effective theme reverts to the base.
func (c *Context) ApplyOverlays(overlays ...*theme.Theme) error {
	c.mu.RLock()
	chain := append([]*theme.Theme{c.base}, overlays...)
	composer := c.composer
	c.mu.RUnlock()

	effective, err := composer.ComposeChain(chain)
	if err != nil {
		return err
	}
	resolver, err := theme.NewResolver(effective)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.effective = effective
	c.resolver = resolver
	widgets := c.liveWidgets()
	c.mu.Unlock()

	notify(widgets)
	return nil
}

// Color resolves a token through the full priority chain: user/app
// overrides, then the effective theme (following @references), then the
// token catalog's defaults and heuristics. Missing data never fails; the
// only possible error is structural corruption such as a reference cycle.
func (c *Context) Color(token string) (string, error) {
	if v, ok := c.overrides.Lookup(token); ok {
		return v, nil
	}

	// The resolver's memo cache is unsynchronized, so resolution happens
	// under the context lock.
	c.mu.Lock()
	effective := c.effective
	v, err := c.resolver.Color(token)
	c.mu.Unlock()
	if err == nil {
		return v, nil
	}
	if !errors.Is(err, theme.ErrTokenNotFound) {
		return "", err
	}

	return tokens.Resolve(token, effective), nil
}

// Style resolves a style token against the effective theme, falling back to
// the theme's colors and then the catalog the same way Color does.
func (c *Context) Style(token string) (string, error) {
	c.mu.Lock()
	effective := c.effective
	v, err := c.resolver.Style(token)
	c.mu.Unlock()
	if err == nil {
		return v, nil
	}
	if !errors.Is(err, theme.ErrTokenNotFound) {
		return "", err
	}

	return tokens.Resolve(token, effective), nil
}

// TcellColor resolves a token and converts it for tcell-based consumers.
// Values that resolve but do not parse (custom non-color styles) come back
// as tcell.ColorDefault with no error.
func (c *Context) TcellColor(token string) (tcell.Color, error) {
	v, err := c.Color(token)
	if err != nil {
		return tcell.ColorDefault, err
	}
	tc, err := color.Tcell(v)
	if err != nil {
		return tcell.ColorDefault, nil
	}
	return tc, nil
}

// Register adds a Themeable to the notification registry and returns its
// handle. Components must Unregister at teardown; there is no finalizer
// magic.
func (c *Context) Register(w Themeable) Handle {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n := len(c.free); n > 0 {
		idx := c.free[n-1]
		c.free = c.free[:n-1]
		c.slots[idx].widget = w
		c.slots[idx].generation++
		return Handle{index: idx, generation: c.slots[idx].generation}
	}

	c.slots = append(c.slots, slot{widget: w, generation: 1})
	return Handle{index: len(c.slots) - 1, generation: 1}
}

// Unregister removes the component behind the handle. Stale handles (wrong
// generation, already unregistered, or out of range) return false.
func (c *Context) Unregister(h Handle) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if h.index < 0 || h.index >= len(c.slots) {
		return false
	}
	s := &c.slots[h.index]
	if s.widget == nil || s.generation != h.generation {
		return false
	}
	s.widget = nil
	c.free = append(c.free, h.index)
	return true
}

// RegisteredCount returns the number of live registrations.
func (c *Context) RegisteredCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.slots) - len(c.free)
}

// liveWidgets snapshots the registered components. Callers must hold the
// lock; notification happens outside it.
func (c *Context) liveWidgets() []Themeable {
	widgets := make([]Themeable, 0, len(c.slots))
	for _, s := range c.slots {
		if s.widget != nil {
			widgets = append(widgets, s.widget)
		}
	}
	return widgets
}

func notify(widgets []Themeable) {
	for _, w := range widgets {
		w.OnThemeChanged()
	}
}
