package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/pkordes/firm-site/internal/domain"
)

// PageImplementation renders one specific location page. Implementations are
// registered under the exact key "state/city" or "state/city/service".
type PageImplementation interface {
	Render(ctx context.Context, slug domain.LocationSlug, locale domain.Locale) (domain.RenderedPage, error)
}

// PageFunc adapts a plain function to PageImplementation.
type PageFunc func(ctx context.Context, slug domain.LocationSlug, locale domain.Locale) (domain.RenderedPage, error)

// Render calls f.
func (f PageFunc) Render(ctx context.Context, slug domain.LocationSlug, locale domain.Locale) (domain.RenderedPage, error) {
	return f(ctx, slug, locale)
}

// Registry maps slug keys to specific page implementations. It is filled by
// explicit Register calls at startup and only read afterwards.
// It is independent of the priority catalog: a page may be registered for a
// city that is never prerendered, and the other way round.
type Registry struct {
	mu    sync.RWMutex
	pages map[string]PageImplementation
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{pages: map[string]PageImplementation{}}
}

// Register adds impl under key. The key is normalized through
// domain.ParseLocationKey; a malformed key or a key that is already taken is
// an error so that two pages never silently compete for one URL.
func (r *Registry) Register(key string, impl PageImplementation) error {
	if impl == nil {
		return fmt.Errorf("service.Registry.Register: %w: nil implementation for %q", domain.ErrConfiguration, key)
	}
	slug, err := domain.ParseLocationKey(key)
	if err != nil {
		return fmt.Errorf("service.Registry.Register: %w: key %q: %v", domain.ErrConfiguration, key, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.pages[slug.Key()]; exists {
		return fmt.Errorf("service.Registry.Register: %w: %q registered twice", domain.ErrConfiguration, slug.Key())
	}
	r.pages[slug.Key()] = impl
	return nil
}

// Lookup returns the implementation registered under key, if any.
func (r *Registry) Lookup(key string) (PageImplementation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	impl, ok := r.pages[key]
	return impl, ok
}

// Keys returns every registered key, sorted.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.pages))
	for k := range r.pages {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of registered pages.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.pages)
}
