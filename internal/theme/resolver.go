package theme

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vilosource/vfwidgets-theme/internal/color"
)

// embeddedRefPattern finds @token references inside calc() expressions.
var embeddedRefPattern = regexp.MustCompile(`@[a-zA-Z][a-zA-Z0-9._]*`)

// Resolver resolves @token references and calc() expressions against
// exactly one Theme, memoizing results per token for its own lifetime.
// Because Themes are immutable the cache never needs invalidation, but the
// cache itself is unsynchronized: use one Resolver per goroutine, or guard
// it externally. Multiple Resolvers over the same Theme are always safe.
type Resolver struct {
	theme *Theme
	cache map[string]string
}

// NewResolver creates a resolver bound to t.
func NewResolver(t *Theme) (*Resolver, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: resolver needs a theme", ErrNotInitialized)
	}
	return &Resolver{theme: t, cache: make(map[string]string)}, nil
}

// Theme returns the theme this resolver is bound to.
func (r *Resolver) Theme() *Theme { return r.theme }

// Color resolves a color token to its literal value, following @references.
// Missing tokens return ErrTokenNotFound; reference cycles return
// ErrCircularReference. Color tokens shadow style tokens of the same name.
func (r *Resolver) Color(token string) (string, error) {
	return r.resolve("color:", token, true)
}

// Style resolves a style token to its literal value, following @references
// and substituting them inside calc() expressions. Style tokens shadow
// color tokens of the same name.
func (r *Resolver) Style(token string) (string, error) {
	return r.resolve("style:", token, false)
}

func (r *Resolver) resolve(cachePrefix, token string, colorFirst bool) (string, error) {
	if v, ok := r.cache[cachePrefix+token]; ok {
		return v, nil
	}

	v, err := r.resolveToken(token, colorFirst, nil, make(map[string]bool))
	if err != nil {
		return "", err
	}
	r.cache[cachePrefix+token] = v
	return v, nil
}

// resolveToken walks the reference chain for token. path carries the
// in-progress resolution order for error messages; active is the set of
// tokens currently being resolved, which makes revisits a hard error.
func (r *Resolver) resolveToken(token string, colorFirst bool, path []string, active map[string]bool) (string, error) {
	if active[token] {
		return "", fmt.Errorf("%w: %s", ErrCircularReference, strings.Join(append(path, token), " -> "))
	}
	active[token] = true
	path = append(path, token)

	raw, ok := r.lookup(token, colorFirst)
	if !ok {
		if len(path) > 1 {
			// A dangling reference is structural corruption, not a miss.
			return "", fmt.Errorf("%w: reference chain %s points at undefined token %q",
				ErrInvalidFormat, strings.Join(path, " -> "), token)
		}
		return "", fmt.Errorf("%w: %q", ErrTokenNotFound, token)
	}

	switch {
	case color.IsReference(raw):
		resolved, err := r.resolveToken(color.ReferenceTarget(raw), colorFirst, path, active)
		if err != nil {
			return "", err
		}
		delete(active, token)
		return resolved, nil

	case strings.HasPrefix(raw, "calc("):
		substituted, err := r.substituteRefs(raw, colorFirst, path, active)
		if err != nil {
			return "", err
		}
		delete(active, token)
		return substituted, nil
	}

	delete(active, token)
	return raw, nil
}

// substituteRefs replaces each embedded @reference in a calc() expression
// with its resolved literal. The substituted string is returned verbatim;
// no arithmetic is evaluated.
func (r *Resolver) substituteRefs(expr string, colorFirst bool, path []string, active map[string]bool) (string, error) {
	var firstErr error
	out := embeddedRefPattern.ReplaceAllStringFunc(expr, func(ref string) string {
		if firstErr != nil {
			return ref
		}
		resolved, err := r.resolveToken(ref[1:], colorFirst, path, active)
		if err != nil {
			firstErr = err
			return ref
		}
		return resolved
	})
	if firstErr != nil {
		return "", firstErr
	}
	return out, nil
}

// lookup finds the stored value for token. Colors and styles share the
// reference namespace; the entry point decides which mapping shadows the
// other.
func (r *Resolver) lookup(token string, colorFirst bool) (string, bool) {
	if colorFirst {
		if v, ok := r.theme.colors[token]; ok {
			return v, true
		}
		v, ok := r.theme.styles[token]
		return v, ok
	}
	if v, ok := r.theme.styles[token]; ok {
		return v, true
	}
	v, ok := r.theme.colors[token]
	return v, ok
}
