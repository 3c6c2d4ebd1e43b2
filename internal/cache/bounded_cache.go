package cache

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"sync"
)

// DefaultMaxItems is the capacity used by the service when none is configured.
const DefaultMaxItems = 4

// ErrInvalidCapacity is returned by New when Options.Capacity is not positive.
var ErrInvalidCapacity = errors.New("cache capacity must be a positive integer")

// BoundedCache is a map-backed cache holding at most Capacity entries, with
// the entry to discard chosen by its Policy.
type BoundedCache[K comparable, V any] struct {
	// If muPtr is nil, the cache is NOT goroutine-safe.
	// If muPtr is non-nil, it guards all operations.
	muPtr *sync.RWMutex

	capacity  int
	policy    Policy
	store     *entryStore[K, V]
	tracker   *arrivalTracker[K]
	notify    io.Writer
	onEvicted func(key K, value V)
	stats     metrics
}

// Options controls construction of a BoundedCache.
type Options[K comparable, V any] struct {
	// Capacity is the maximum number of entries. It must be positive, even
	// for the Unbounded policy, which simply never enforces it.
	Capacity int

	Policy Policy

	// ConcurrencySafe controls whether operations are guarded by a RWMutex.
	// If false, the cache is not safe for concurrent use.
	ConcurrencySafe bool

	// Notify receives one "DISCARD: <key>" line per eviction. Defaults to os.Stdout.
	Notify io.Writer

	// OnEvicted is called after the DISCARD line, with the cache lock held.
	// It must not call back into the cache.
	OnEvicted func(key K, value V)
}

// New constructs an empty BoundedCache.
func New[K comparable, V any](opts Options[K, V]) (*BoundedCache[K, V], error) {
	if opts.Capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, opts.Capacity)
	}
	if opts.Policy < Unbounded || opts.Policy > LIFO {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPolicy, int(opts.Policy))
	}

	var mu *sync.RWMutex
	if opts.ConcurrencySafe {
		mu = &sync.RWMutex{}
	}
	notify := opts.Notify
	if notify == nil {
		notify = os.Stdout
	}

	return &BoundedCache[K, V]{
		muPtr:     mu,
		capacity:  opts.Capacity,
		policy:    opts.Policy,
		store:     newEntryStore[K, V](),
		tracker:   newArrivalTracker[K](opts.Policy.refreshesOnWrite()),
		notify:    notify,
		onEvicted: opts.OnEvicted,
	}, nil
}

func (c *BoundedCache[K, V]) lockR() func() {
	if c.muPtr == nil {
		return func() {}
	}
	c.muPtr.RLock()
	return c.muPtr.RUnlock
}

func (c *BoundedCache[K, V]) lockW() func() {
	if c.muPtr == nil {
		return func() {}
	}
	c.muPtr.Lock()
	return c.muPtr.Unlock
}

// Put implements Cache.Put.
//
// The size check, eviction, arrival bookkeeping and store write all happen
// under one write lock.
func (c *BoundedCache[K, V]) Put(key K, value V) {
	if isAbsent(key) || isAbsent(value) {
		return
	}

	unlock := c.lockW()
	defer unlock()

	if c.policy.bounded() && !c.store.has(key) && c.store.size() >= c.capacity {
		c.evictLocked()
	}
	c.tracker.recordArrival(key)
	c.store.set(key, value)
}

// Get implements Cache.Get.
func (c *BoundedCache[K, V]) Get(key K) (V, bool) {
	unlock := c.lockR()
	defer unlock()

	v, ok := c.store.get(key)
	if ok {
		c.stats.hits.Inc()
	} else {
		c.stats.misses.Inc()
	}
	return v, ok
}

// Delete implements Cache.Delete.
func (c *BoundedCache[K, V]) Delete(key K) {
	unlock := c.lockW()
	defer unlock()

	c.store.remove(key)
	c.tracker.remove(key)
}

// Len implements Cache.Len.
func (c *BoundedCache[K, V]) Len() int {
	unlock := c.lockR()
	defer unlock()
	return c.store.size()
}

// Keys implements Cache.Keys. The first key is the next FIFO victim, the
// last key the next LIFO victim.
func (c *BoundedCache[K, V]) Keys() []K {
	unlock := c.lockR()
	defer unlock()
	return c.tracker.keys()
}

// Clear implements Cache.Clear. Cleared entries are not reported as evictions.
func (c *BoundedCache[K, V]) Clear() {
	unlock := c.lockW()
	defer unlock()
	c.store.reset()
	c.tracker.reset()
}

func (c *BoundedCache[K, V]) Capacity() int {
	return c.capacity
}

func (c *BoundedCache[K, V]) Policy() Policy {
	return c.policy
}

// Stats returns a copy of the hit, miss and eviction counters.
func (c *BoundedCache[K, V]) Stats() Stats {
	return c.stats.snapshot()
}

// NextVictim reports the key the next new key would evict. It is false
// while the cache has room or never evicts.
func (c *BoundedCache[K, V]) NextVictim() (K, bool) {
	unlock := c.lockR()
	defer unlock()
	if !c.policy.bounded() || c.store.size() < c.capacity {
		var zero K
		return zero, false
	}
	return victim(c.policy, c.tracker)
}

func (c *BoundedCache[K, V]) evictLocked() {
	key, ok := popVictim(c.policy, c.tracker)
	if !ok {
		return
	}
	value, _ := c.store.get(key)
	c.store.remove(key)
	c.stats.evictions.Inc()

	fmt.Fprintf(c.notify, "DISCARD: %v\n", key)
	if c.onEvicted != nil {
		c.onEvicted(key, value)
	}
}

// isAbsent reports whether v is nil. Zero values such as "" or 0 are
// legitimate keys and values.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// Ensure BoundedCache implements Cache at compile time.
var _ Cache[any, any] = (*BoundedCache[any, any])(nil)
