// Package overrides implements the run-time token->color override store:
// two layers, "app" and "user", with "user" taking priority. The registry
// is independent of any single theme and outlives theme switches; it is
// continuously mutated as preferences change, so every operation is guarded
// by a registry-scoped lock.
package overrides

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vilosource/vfwidgets-theme/internal/color"
	"github.com/vilosource/vfwidgets-theme/internal/tokens"
)

// Layer names. "user" wins over "app".
const (
	LayerApp  = "app"
	LayerUser = "user"
)

// MaxLayerEntries caps how many overrides a single layer may hold.
const MaxLayerEntries = 10000

var (
	// ErrUnknownLayer is returned for layer names other than "app"/"user".
	ErrUnknownLayer = errors.New("unknown override layer")

	// ErrLayerFull is returned when an operation would push a layer past
	// MaxLayerEntries.
	ErrLayerFull = errors.New("override layer capacity exceeded")

	// ErrInvalidOverride is returned for malformed token names or color
	// values.
	ErrInvalidOverride = errors.New("invalid override")
)

// Registry is the thread-safe two-layer override store. Go locks are not
// reentrant, so public methods take the lock exactly once and internal
// helpers assume it is held.
type Registry struct {
	mu     sync.RWMutex
	layers map[string]map[string]string
}

// New creates an empty registry with both layers present.
func New() *Registry {
	return &Registry{
		layers: map[string]map[string]string{
			LayerApp:  {},
			LayerUser: {},
		},
	}
}

// FromMap reconstructs a registry from previously persisted state. Per-entry
// validation is skipped, trusting data that was validated when stored, but
// unknown layer names are still rejected.
func FromMap(data map[string]map[string]string) (*Registry, error) {
	r := New()
	for layer, entries := range data {
		if layer != LayerApp && layer != LayerUser {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLayer, layer)
		}
		if len(entries) > MaxLayerEntries {
			return nil, fmt.Errorf("%w: layer %q holds %d entries", ErrLayerFull, layer, len(entries))
		}
		for token, value := range entries {
			r.layers[layer][token] = value
		}
	}
	return r, nil
}

// ToMap snapshots the full two-layer state for persistence.
func (r *Registry) ToMap() map[string]map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]map[string]string, len(r.layers))
	for layer, entries := range r.layers {
		copied := make(map[string]string, len(entries))
		for token, value := range entries {
			copied[token] = value
		}
		out[layer] = copied
	}
	return out
}

// Set stores one override after validating the token name and color value.
func (r *Registry) Set(layer, token, value string) error {
	if err := validateEntry(token, value); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.setLocked(layer, token, value)
}

// SetUnvalidated stores one override without per-entry validation, for
// callers replaying values that were validated when first stored. Unknown
// layers and the capacity bound are still enforced.
func (r *Registry) SetUnvalidated(layer, token, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.setLocked(layer, token, value)
}

// setLocked assumes r.mu is held.
func (r *Registry) setLocked(layer, token, value string) error {
	entries, ok := r.layers[layer]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLayer, layer)
	}
	if _, exists := entries[token]; !exists && len(entries) >= MaxLayerEntries {
		return fmt.Errorf("%w: layer %q is at %d entries", ErrLayerFull, layer, MaxLayerEntries)
	}
	entries[token] = value
	return nil
}

// SetBulk validates every entry and the capacity bound before applying
// anything: either all entries are stored or none are.
func (r *Registry) SetBulk(layer string, entries map[string]string) error {
	for token, value := range entries {
		if err := validateEntry(token, value); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.layers[layer]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLayer, layer)
	}

	added := 0
	for token := range entries {
		if _, exists := existing[token]; !exists {
			added++
		}
	}
	if len(existing)+added > MaxLayerEntries {
		return fmt.Errorf("%w: bulk set would put layer %q at %d entries",
			ErrLayerFull, layer, len(existing)+added)
	}

	for token, value := range entries {
		existing[token] = value
	}
	return nil
}

// Get returns the override stored in one specific layer.
func (r *Registry) Get(layer, token string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries, ok := r.layers[layer]
	if !ok {
		return "", false
	}
	v, ok := entries[token]
	return v, ok
}

// GetOr returns the layer's override for token, or fallback when absent.
func (r *Registry) GetOr(layer, token, fallback string) string {
	if v, ok := r.Get(layer, token); ok {
		return v
	}
	return fallback
}

// Has reports whether the layer defines an override for token.
func (r *Registry) Has(layer, token string) bool {
	_, ok := r.Get(layer, token)
	return ok
}

// Remove deletes one override, reporting whether it existed.
func (r *Registry) Remove(layer, token string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, ok := r.layers[layer]
	if !ok {
		return false
	}
	if _, exists := entries[token]; !exists {
		return false
	}
	delete(entries, token)
	return true
}

// ClearLayer drops every override in the layer, returning how many were
// removed.
func (r *Registry) ClearLayer(layer string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, ok := r.layers[layer]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLayer, layer)
	}
	count := len(entries)
	r.layers[layer] = make(map[string]string)
	return count, nil
}

// Len returns the number of overrides in the layer.
func (r *Registry) Len(layer string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.layers[layer])
}

// Lookup returns the effective override for token: the "user" layer's value
// if present, else "app"'s.
func (r *Registry) Lookup(token string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if v, ok := r.layers[LayerUser][token]; ok {
		return v, true
	}
	v, ok := r.layers[LayerApp][token]
	return v, ok
}

// Resolve is the priority read: "user" then "app" then the supplied
// fallback. It never fails for missing data.
func (r *Registry) Resolve(token, fallback string) string {
	if v, ok := r.Lookup(token); ok {
		return v
	}
	return fallback
}

// Effective returns the merged view across all overridden tokens, with
// "user" values shadowing "app" values.
func (r *Registry) Effective() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]string, len(r.layers[LayerApp])+len(r.layers[LayerUser]))
	for token, value := range r.layers[LayerApp] {
		out[token] = value
	}
	for token, value := range r.layers[LayerUser] {
		out[token] = value
	}
	return out
}

// Tokens returns the sorted set of tokens with any override, for diagnostics.
func (r *Registry) Tokens() []string {
	effective := r.Effective()
	names := make([]string, 0, len(effective))
	for token := range effective {
		names = append(names, token)
	}
	sort.Strings(names)
	return names
}

func validateEntry(token, value string) error {
	if !tokens.ValidName(token) {
		return fmt.Errorf("%w: bad token name %q", ErrInvalidOverride, token)
	}
	if !color.IsLiteral(value) {
		return fmt.Errorf("%w: %q is not a literal color", ErrInvalidOverride, value)
	}
	return nil
}
