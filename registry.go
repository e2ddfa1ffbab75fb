package quantpool

import (
	"context"
	"fmt"
	"sync"
)

// DatasetLoader produces a decoded dataset by driving a DataVisitor.
type DatasetLoader interface {
	Do(ctx context.Context, visitor DataVisitor) error
}

// LoaderConstructor builds a DatasetLoader for one pool.
type LoaderConstructor func(ctx context.Context, pool *Pool, optFns ...Option) (DatasetLoader, error)

// LoaderRegistry maps dataset scheme names to loader constructors. It
// replaces ambient self-registration: construct one, register what the
// process needs, and pass it where loaders are built.
type LoaderRegistry struct {
	mu    sync.RWMutex
	ctors map[string]LoaderConstructor
}

// NewLoaderRegistry creates a registry with the "quantized" scheme bound
// to NewLoader.
func NewLoaderRegistry() *LoaderRegistry {
	r := &LoaderRegistry{ctors: make(map[string]LoaderConstructor)}
	r.Register("quantized", func(ctx context.Context, pool *Pool, optFns ...Option) (DatasetLoader, error) {
		return NewLoader(ctx, pool, optFns...)
	})
	return r
}

// Register adds or replaces the constructor for scheme.
func (r *LoaderRegistry) Register(scheme string, ctor LoaderConstructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ctors[scheme] = ctor
}

// New builds a DatasetLoader for the given scheme.
func (r *LoaderRegistry) New(ctx context.Context, scheme string, pool *Pool, optFns ...Option) (DatasetLoader, error) {
	r.mu.RLock()
	ctor, ok := r.ctors[scheme]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("quantpool: no dataset loader registered for scheme %q", scheme)
	}
	return ctor(ctx, pool, optFns...)
}
