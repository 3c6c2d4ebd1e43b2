package cache

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrUnknownCache is returned by Lookup for a name that was never registered.
	ErrUnknownCache = errors.New("unknown cache")
	// ErrDuplicateCache is returned by Register when the name is taken.
	ErrDuplicateCache = errors.New("cache already registered")
)

// Registry holds named caches owned by a server. Each cache stays an
// independent value; the registry only resolves names.
type Registry[K comparable, V any] struct {
	mu     sync.RWMutex
	caches map[string]*BoundedCache[K, V]
}

func NewRegistry[K comparable, V any]() *Registry[K, V] {
	return &Registry[K, V]{caches: make(map[string]*BoundedCache[K, V])}
}

func (r *Registry[K, V]) Register(name string, c *BoundedCache[K, V]) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.caches[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateCache, name)
	}
	r.caches[name] = c
	return nil
}

func (r *Registry[K, V]) Lookup(name string) (*BoundedCache[K, V], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.caches[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCache, name)
	}
	return c, nil
}

// Names returns the registered names in sorted order.
func (r *Registry[K, V]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.caches))
	for name := range r.caches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
