package assets

import (
	"errors"
)

// Resolver combines custom and embedded loaders with fallback logic.
// When a custom loader is configured, it tries custom first, then falls back
// to embedded if the asset is not found in the custom location.
type Resolver struct {
	custom   Loader // nil if no custom path configured
	embedded Loader
}

// NewResolver creates a Resolver.
// If customBasePath is empty, only embedded assets are used.
// Returns error if customBasePath is set but invalid.
func NewResolver(customBasePath string) (*Resolver, error) {
	resolver := &Resolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadStyle loads a style set, trying the custom loader first if available.
func (r *Resolver) LoadStyle(name string) ([]byte, error) {
	return r.loadWithFallback(func(l Loader) ([]byte, error) {
		return l.LoadStyle(name)
	})
}

// LoadContent loads a content record, trying the custom loader first if available.
func (r *Resolver) LoadContent(name string) ([]byte, error) {
	return r.loadWithFallback(func(l Loader) ([]byte, error) {
		return l.LoadContent(name)
	})
}

// loadWithFallback implements the custom-first, fallback-to-embedded logic.
func (r *Resolver) loadWithFallback(loadFn func(Loader) ([]byte, error)) ([]byte, error) {
	if r.custom == nil {
		return loadFn(r.embedded)
	}

	data, err := loadFn(r.custom)
	if err == nil {
		return data, nil
	}

	// Only fall back for "not found" errors, not validation or I/O errors.
	if !isNotFoundError(err) {
		return nil, err
	}

	return loadFn(r.embedded)
}

// isNotFoundError checks if the error indicates the asset was not found.
func isNotFoundError(err error) bool {
	return errors.Is(err, ErrStyleNotFound) || errors.Is(err, ErrContentNotFound)
}

// HasCustomLoader returns true if a custom asset loader is configured.
func (r *Resolver) HasCustomLoader() bool {
	return r.custom != nil
}

// Compile-time interface check.
var _ Loader = (*Resolver)(nil)
