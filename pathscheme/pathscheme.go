// Package pathscheme models scheme-qualified resource paths
// ("s3://bucket/key", plain file paths) and an explicit per-scheme
// handler registry for existence checks and reads.
//
// The registry is a plain component, not a process-global: construct
// one, register the backends the process actually uses, and pass it to
// whatever resolves paths. The "file" scheme is pre-registered.
package pathscheme

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// FileScheme is the scheme assigned to paths without an explicit one.
const FileScheme = "file"

// Path is a resource location qualified by a scheme. The zero value is
// the uninitialized path.
type Path struct {
	Scheme string
	Path   string
}

// Parse splits "scheme://rest" into a Path. A string without a scheme
// separator becomes a file path.
func Parse(s string) Path {
	if s == "" {
		return Path{}
	}
	if scheme, rest, ok := strings.Cut(s, "://"); ok {
		return Path{Scheme: scheme, Path: rest}
	}
	return Path{Scheme: FileScheme, Path: s}
}

// Inited reports whether the path is set.
func (p Path) Inited() bool {
	return p.Path != ""
}

func (p Path) String() string {
	if !p.Inited() {
		return ""
	}
	return p.Scheme + "://" + p.Path
}

// Handler resolves paths of one scheme.
type Handler interface {
	// Exists reports whether the resource exists.
	Exists(ctx context.Context, path string) (bool, error)
	// Open opens the resource for reading.
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// Registry maps schemes to handlers.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewRegistry creates a registry with the "file" scheme pre-registered.
func NewRegistry() *Registry {
	r := &Registry{handlers: make(map[string]Handler)}
	r.Register(FileScheme, FSHandler{})
	return r
}

// Register adds or replaces the handler for scheme.
func (r *Registry) Register(scheme string, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[scheme] = h
}

// Lookup returns the handler for scheme.
func (r *Registry) Lookup(scheme string) (Handler, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[scheme]
	if !ok {
		return nil, fmt.Errorf("pathscheme: no handler registered for scheme %q", scheme)
	}
	return h, nil
}

// Exists reports whether the resource at p exists.
func (r *Registry) Exists(ctx context.Context, p Path) (bool, error) {
	h, err := r.Lookup(p.Scheme)
	if err != nil {
		return false, err
	}
	return h.Exists(ctx, p.Path)
}

// Open opens the resource at p for reading.
func (r *Registry) Open(ctx context.Context, p Path) (io.ReadCloser, error) {
	h, err := r.Lookup(p.Scheme)
	if err != nil {
		return nil, err
	}
	return h.Open(ctx, p.Path)
}
