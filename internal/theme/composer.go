package theme

import (
	"fmt"
	"sync"
)

// Strategy selects how ComposeWithStrategy folds themes together.
type Strategy string

// StrategyPriority layers themes left to right: later themes win.
const StrategyPriority Strategy = "priority"

// composeKey caches compositions by the identity of the exact input Theme
// instances. Themes are immutable and identity-stable, so a cached result
// stays valid until ClearCache drops it.
type composeKey struct {
	base     *Theme
	override *Theme
}

// Composer merges Themes with deterministic override priority. Safe for
// concurrent use; the composition cache is guarded by a mutex.
type Composer struct {
	mu    sync.Mutex
	cache map[composeKey]*Theme
}

// NewComposer creates a composer with an empty cache.
func NewComposer() *Composer {
	return &Composer{cache: make(map[composeKey]*Theme)}
}

// Compose returns a new Theme holding base's values with override's layered
// on top: override wins on key collisions, keys unique to either side are
// preserved, and syntax rules are concatenated with override's appended
// after base's.
func (c *Composer) Compose(base, override *Theme) (*Theme, error) {
	if base == nil {
		return nil, fmt.Errorf("%w: no base theme to compose onto", ErrNotInitialized)
	}
	if override == nil {
		return nil, fmt.Errorf("%w: nil override theme", ErrNotInitialized)
	}

	key := composeKey{base: base, override: override}
	c.mu.Lock()
	if cached, ok := c.cache[key]; ok {
		c.mu.Unlock()
		return cached, nil
	}
	c.mu.Unlock()

	composed := merge(base, override)

	c.mu.Lock()
	c.cache[key] = composed
	c.mu.Unlock()
	return composed, nil
}

// ComposeChain folds themes left to right, equivalent to
// Compose(Compose(t1, t2), t3) and so on. A single theme is returned as-is.
func (c *Composer) ComposeChain(themes []*Theme) (*Theme, error) {
	if len(themes) == 0 {
		return nil, fmt.Errorf("%w: empty composition chain", ErrNotInitialized)
	}

	result := themes[0]
	if result == nil {
		return nil, fmt.Errorf("%w: nil base theme in chain", ErrNotInitialized)
	}
	for _, t := range themes[1:] {
		var err error
		result, err = c.Compose(result, t)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// ComposeWithStrategy folds themes with the named strategy. Only
// StrategyPriority is currently defined.
func (c *Composer) ComposeWithStrategy(themes []*Theme, strategy Strategy) (*Theme, error) {
	switch strategy {
	case StrategyPriority:
		return c.ComposeChain(themes)
	default:
		return nil, fmt.Errorf("%w: unknown composition strategy %q", ErrInvalidFormat, strategy)
	}
}

// ClearCache drops all cached compositions. There is no implicit
// invalidation: Themes never change, so entries only go stale when the
// caller stops holding the input instances.
func (c *Composer) ClearCache() {
	c.mu.Lock()
	c.cache = make(map[composeKey]*Theme)
	c.mu.Unlock()
}

// CacheSize returns the number of cached compositions, for diagnostics.
func (c *Composer) CacheSize() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cache)
}

func merge(base, override *Theme) *Theme {
	colors := copyMap(base.colors)
	for k, v := range override.colors {
		colors[k] = v
	}
	styles := copyMap(base.styles)
	for k, v := range override.styles {
		styles[k] = v
	}
	metadata := copyMap(base.metadata)
	for k, v := range override.metadata {
		metadata[k] = v
	}

	tokenColors := make([]TokenColor, 0, len(base.tokenColors)+len(override.tokenColors))
	tokenColors = append(tokenColors, base.tokenColors...)
	tokenColors = append(tokenColors, override.tokenColors...)

	themeType := override.themeType
	if themeType == "" {
		themeType = base.themeType
	}
	version := override.version
	if version == "" {
		version = base.version
	}

	return New(base.name+"+"+override.name, version, themeType, colors, styles, metadata, tokenColors)
}
